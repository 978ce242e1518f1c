package exclusion

import (
	"github.com/katalvlaran/vsudoku/handler"
	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/shape"
)

// Enforcer is the generic N-way not-equal handler the engine builds
// once per cell from Graph. It requires no domain knowledge: whenever
// one of its cell's excluded peers becomes fixed, that value is
// struck from the cell's mask, and once the cell itself is fixed, its
// value is struck from every excluded peer.
type Enforcer struct {
	cell  int
	peers []int
}

// NewEnforcer builds the exclusion enforcer for cell c against graph.
func NewEnforcer(c int, graph *Graph) *Enforcer {
	return &Enforcer{cell: c, peers: graph.Exclusions(c)}
}

// EnforcerCell implements handler.ExclusionEnforcer.
func (e *Enforcer) EnforcerCell() int { return e.cell }

// Cells implements handler.Handler.
func (e *Enforcer) Cells() []int { return []int{e.cell} }

// ExclusionCells implements handler.Handler.
func (e *Enforcer) ExclusionCells() []int { return e.peers }

// Priority implements handler.Handler; exclusion enforcers carry no
// static priority signal of their own.
func (e *Enforcer) Priority() int { return 0 }

// Initialize implements handler.Handler. The exclusion enforcer never
// narrows the initial grid itself — it only reacts to peers becoming
// fixed during search — so it always reports success.
func (e *Enforcer) Initialize(_ []mask.Set, _ handler.ExclusionView, _ *shape.Shape) bool {
	return true
}

// EnforceConsistency implements handler.Handler: for every fixed peer,
// strike its value from this cell; then, if this cell is fixed, strike
// its value from every peer, re-queueing each peer it narrows.
func (e *Enforcer) EnforceConsistency(grid []mask.Set, acc handler.Accumulator) bool {
	cur := grid[e.cell]
	if cur.IsEmpty() {
		return false
	}
	changed := false
	for _, p := range e.peers {
		peerMask := grid[p]
		if !peerMask.IsSingleton() {
			continue
		}
		narrowed := cur &^ peerMask
		if narrowed != cur {
			cur = narrowed
			changed = true
		}
	}
	if cur.IsEmpty() {
		return false
	}
	if changed {
		grid[e.cell] = cur
		acc.AddForCell(e.cell)
	}
	if cur.IsSingleton() {
		for _, p := range e.peers {
			narrowed := grid[p] &^ cur
			if narrowed == grid[p] {
				continue
			}
			if narrowed.IsEmpty() {
				return false
			}
			grid[p] = narrowed
			acc.AddForCell(p)
		}
	}
	return true
}

// Essential implements handler.Handler. The exclusion enforcer is
// required for solution uniqueness (it is what actually forbids two
// peers sharing a value), so it must keep running even once the grid
// looks complete.
func (e *Enforcer) Essential() bool { return true }
