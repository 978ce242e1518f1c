package search

import (
	"github.com/katalvlaran/vsudoku/accumulator"
	"github.com/katalvlaran/vsudoku/mask"
)

// watchingAccumulator wraps accumulator.Queue so that any handler's
// AddForCell(c) call is also checked against the live grid: if c has
// just become a singleton, its exclusion enforcer is scheduled too
// (accumulator.Queue.AddForFixedCell). A Handler only ever calls
// AddForCell per its contract, so without this wrapper a cell narrowed
// to singleton incidentally by some other handler would never have
// its own exclusion enforcer run against its peers.
type watchingAccumulator struct {
	q    *accumulator.Queue
	grid []mask.Set
}

// AddForCell implements handler.Accumulator.
func (w *watchingAccumulator) AddForCell(c int) {
	w.q.AddForCell(c)
	if w.grid[c].IsSingleton() {
		w.q.AddForFixedCell(c)
	}
}
