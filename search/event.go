package search

import "github.com/katalvlaran/vsudoku/mask"

// Kind distinguishes the events an Iterator can yield.
type Kind int

const (
	// EventSolution reports a complete, consistent grid.
	EventSolution Kind = iota
	// EventStep reports one assignment applied during step-mode
	// traversal, whether forced or guessed.
	EventStep
	// EventContradiction reports a branch attempt that failed
	// propagation immediately (no subtree was ever pushed).
	EventContradiction
)

// Event is one yield from Iterator.Next. Grid, OldGrid, CellOrder, and
// Values alias buffers owned by the driver: callers must not retain
// them past the next Iterator.Next call, since the driver overwrites
// them in place on every advance.
type Event struct {
	Kind Kind

	// Grid is the live grid at the moment of the event.
	Grid []mask.Set

	// OldGrid is Grid as it stood immediately before this event's
	// assignment was applied, letting a caller diff the two to see
	// exactly which candidates this step removed. Empty for
	// EventSolution and EventContradiction, which have no single
	// preceding assignment to diff against.
	OldGrid []mask.Set

	// CellOrder holds the cell this event fixed. It is length 1, not a
	// full root-to-event path: nothing in this module needs the whole
	// traversal history, and keeping only the latest cell avoids
	// unbounded bookkeeping as a run gets deeper. Empty for
	// EventSolution.
	CellOrder []int

	// Values holds the value assigned to the corresponding cell in
	// CellOrder (same length, same indexing). Empty for EventSolution.
	Values []mask.Set

	// IsSolution is true for EventSolution events.
	IsSolution bool

	// HasContradiction is true for EventContradiction events.
	HasContradiction bool
}
