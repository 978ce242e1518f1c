package handler

import (
	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/shape"
)

// Accumulator is the capability EnforceConsistency needs to schedule
// peer handlers for re-examination. It is satisfied by
// accumulator.Queue; declared here (rather than imported) to avoid a
// handler -> accumulator -> handler import cycle.
type Accumulator interface {
	// AddForCell enqueues every ordinary handler registered against
	// cell c that is not already pending.
	AddForCell(c int)
}

// Handler is the contract every constraint must satisfy. The core
// never constructs one; it only ever holds Handler values built by a
// caller-supplied constraint layer.
type Handler interface {
	// Cells returns the cell indices this handler constrains. Order is
	// significant for handlers whose semantics depend on it (e.g. an
	// arrow's sum cell vs. its arrow cells).
	Cells() []int

	// ExclusionCells returns cells known to be mutually exclusive in
	// value because of this handler; may be a subset or superset of
	// Cells() depending on the constraint's nature.
	ExclusionCells() []int

	// Priority is a static value used to seed per-cell search
	// priority before any backtracking has occurred.
	Priority() int

	// Initialize runs once, before any search. It may narrow
	// initialGrid and register tuple caches via cellExclusions. It
	// returns false if the handler alone proves the layout already
	// unsatisfiable.
	Initialize(initialGrid []mask.Set, cellExclusions ExclusionView, sh *shape.Shape) bool

	// EnforceConsistency is the fixpoint step: it may clear bits from
	// any cell's mask in grid, and must call acc.AddForCell(c) for
	// every cell c whose mask it narrowed. It returns false on domain
	// wipeout (some cell's mask became empty).
	EnforceConsistency(grid []mask.Set, acc Accumulator) bool

	// Essential reports whether this handler must still run once
	// every cell is fixed. Non-essential handlers are purely a
	// pruning optimization and may be skipped once the grid is
	// complete.
	Essential() bool
}

// ExclusionView is the read-only view into the cell-exclusion graph a
// handler's Initialize is given so it can register pair/tuple caches.
// The concrete type lives in package exclusion; it is referenced here
// by the minimal capability Initialize needs, again to avoid a cycle.
type ExclusionView interface {
	// Exclusions returns the sorted cell indices known to be mutually
	// exclusive with c.
	Exclusions(c int) []int
	// CachePair registers (or looks up) the intersection of the
	// exclusion sets of a and b.
	CachePair(a, b int) []int
	// CacheTuple registers (or looks up) the intersection of the
	// exclusion sets across an arbitrary cell tuple.
	CacheTuple(cells []int) []int
}

// Auxiliary is implemented by handlers that additionally want to run
// only when a specific cell becomes fixed and the grid is not yet
// complete. A plain Handler is never scheduled this way; only
// handlers also satisfying Auxiliary are indexed into Set.AuxByCell.
type Auxiliary interface {
	Handler
	// AuxCells returns the cells whose fixing should (re-)trigger this
	// handler, distinct from Cells().
	AuxCells() []int
}

// ExclusionEnforcer marks the generic per-cell exclusion handler built
// by package exclusion. Set uses this marker, rather than importing
// package exclusion, to keep the
// dependency direction handler -> (nothing) / exclusion -> handler
// acyclic.
type ExclusionEnforcer interface {
	Handler
	// EnforcerCell returns the single cell this enforcer was built
	// for.
	EnforcerCell() int
}

// PriorityOverride is implemented by handlers that want to overwrite
// (not just additively seed) the static search priority of specific
// cells (an overwrite-vs-additive choice resolved in DESIGN.md as
// "overwrite").
type PriorityOverride interface {
	Handler
	// PriorityCells returns the cells whose priority this handler
	// overrides, and the value to overwrite them with.
	PriorityCells() map[int]int
}
