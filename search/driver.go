package search

import (
	"errors"

	"github.com/katalvlaran/vsudoku/accumulator"
	"github.com/katalvlaran/vsudoku/debuglog"
	"github.com/katalvlaran/vsudoku/exclusion"
	"github.com/katalvlaran/vsudoku/gridstack"
	"github.com/katalvlaran/vsudoku/handler"
	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/selector"
	"github.com/katalvlaran/vsudoku/shape"
)

// ErrIteratorInvalid is returned by Iterator.Next once the owning
// Driver has started a new Run: a runCounter bump invalidates every
// Iterator issued by a previous Run.
var ErrIteratorInvalid = errors.New("search: iterator invalidated by a new run")

// Driver is the constraint-propagation backtracking core. A Driver is
// reusable: Reset performs one-time setup against a shape and handler
// collection; Run may be called repeatedly afterward to enumerate the
// same puzzle's solution space from scratch, each call returning an
// independently valid Iterator.
type Driver struct {
	sh  *shape.Shape
	set *handler.Set
	gr  *exclusion.Graph
	acc *accumulator.Queue
	sel *selector.Selector

	stack *gridstack.Stack
	bt    []int
	watch *watchingAccumulator

	// Per-depth branch bookkeeping, sized numCells+1.
	fresh                 []bool
	branchCell            []int
	isHouse               []bool
	houseSecondCell       []int
	houseTriesLeft        []int
	houseValue            []mask.Set
	remainingMask         []mask.Set
	remainingProgress     []float64
	branchDelta           []float64
	lastContradictionCell []int

	depth int
	done  bool

	mode   YieldMode
	guides map[int]selector.Guide
	step   int

	// oldGrid, cellOrderBuf, and valuesBuf back Event.OldGrid/CellOrder/
	// Values for step-mode yields. They are reused across every event
	// rather than reallocated, under the same aliasing contract as
	// Event.Grid.
	oldGrid      []mask.Set
	cellOrderBuf []int
	valuesBuf    []mask.Set

	iteration     uint64
	runCounter    int
	counters      Counters
	uninteresting []mask.Set

	decayShift    uint
	decayInterval uint64
	debug         debuglog.Sink

	progressFn    ProgressFunc
	extraStateFn  ExtraStateFn
	progressMask  uint64
}

// New builds a Driver for sh. Call Reset before Run.
func New(sh *shape.Shape) *Driver {
	return &Driver{sh: sh}
}

// Reset performs one-time setup: it builds the exclusion graph and a
// per-cell exclusion.Enforcer from domainHandlers, runs every
// handler's Initialize, seeds the backtrack-trigger histogram, and
// primes the grid stack at depth 0.
//
// An Initialize that reports failure narrows its own Cells() to
// mask.Empty in the initial grid (or, if it names no cells, the whole
// grid) rather than aborting Reset: the resulting domain wipeout is
// then discovered and retired through the driver's ordinary
// dead-branch path the first time Run is pulled, so callers see zero
// solutions without any special-cased error. Likewise, if the initial
// propagation pass reports a contradiction, every cell of the depth-0
// grid is set to mask.Empty.
func (d *Driver) Reset(domainHandlers []handler.Handler, opts ...Option) error {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	d.decayShift = s.decayShift
	d.decayInterval = s.decayInterval
	d.debug = s.debug
	d.uninteresting = s.uninteresting
	d.progressFn = s.progressFn
	d.extraStateFn = s.extraStateFn
	d.progressMask = s.progressMask

	numCells := d.sh.NumCells()
	d.gr = exclusion.NewGraph(numCells, domainHandlers)

	all := append([]handler.Handler(nil), domainHandlers...)
	for c := 0; c < numCells; c++ {
		all = append(all, exclusion.NewEnforcer(c, d.gr))
	}
	d.set = handler.NewSet(all, numCells)
	d.acc = accumulator.NewQueue(d.set)
	d.watch = &watchingAccumulator{q: d.acc}

	initialGrid := make([]mask.Set, numCells)
	if len(s.initialGrid) == numCells {
		copy(initialGrid, s.initialGrid)
	} else {
		for c := range initialGrid {
			initialGrid[c] = d.sh.FullSet()
		}
	}
	for _, h := range domainHandlers {
		if !h.Initialize(initialGrid, d.gr, d.sh) {
			cells := h.Cells()
			if len(cells) == 0 {
				for c := range initialGrid {
					initialGrid[c] = mask.Empty
				}
				break
			}
			for _, c := range cells {
				initialGrid[c] = mask.Empty
			}
		}
	}

	d.bt = d.set.SeedPriorities(numCells)
	d.sel = selector.New(d.sh, d.bt)

	d.stack = gridstack.NewStack(numCells, numCells)
	copy(d.stack.At(0), initialGrid)

	d.fresh = make([]bool, numCells+1)
	d.branchCell = make([]int, numCells+1)
	d.isHouse = make([]bool, numCells+1)
	d.houseSecondCell = make([]int, numCells+1)
	d.houseTriesLeft = make([]int, numCells+1)
	d.houseValue = make([]mask.Set, numCells+1)
	d.remainingMask = make([]mask.Set, numCells+1)
	d.remainingProgress = make([]float64, numCells+1)
	d.branchDelta = make([]float64, numCells+1)
	d.lastContradictionCell = make([]int, numCells+1)
	for i := range d.lastContradictionCell {
		d.lastContradictionCell[i] = -1
	}

	d.oldGrid = make([]mask.Set, numCells)
	d.cellOrderBuf = make([]int, 1)
	d.valuesBuf = make([]mask.Set, 1)

	d.acc.Clear()
	frame0 := d.stack.At(0)
	d.watch.grid = frame0
	for c := 0; c < numCells; c++ {
		d.watch.AddForCell(c)
	}
	if !d.enforceConstraints(frame0, gridComplete(frame0)) {
		for c := range frame0 {
			frame0[c] = mask.Empty
		}
	}

	d.runCounter = 0
	d.resetRunState()
	return nil
}

// Counters returns the statistics accumulated since the most recent
// Run.
func (d *Driver) Counters() Counters { return d.counters }

// SetUninteresting replaces the uninterestingValues prune mask.
// Passing nil disables the prune.
func (d *Driver) SetUninteresting(vals []mask.Set) { d.uninteresting = vals }

// SetStepGuides installs the per-step selector overrides step-mode
// callers use to steer the search along a caller-chosen path.
func (d *Driver) SetStepGuides(guides map[int]selector.Guide) { d.guides = guides }

// Iterator pulls Events from one Run, one at a time.
type Iterator struct {
	d          *Driver
	runCounter int
}

// Run starts a fresh traversal of the grid Reset established, in the
// given YieldMode, and returns an Iterator bound to this run. Any
// Iterator from a previous Run is invalidated.
//
// The backtrack-trigger histogram bt[] is intentionally NOT reset
// across runs: it is a learned heuristic signal, and preserving it
// lets a later NthSolution/NthStep call on the same Driver benefit
// from branching pressure discovered during an earlier CountSolutions
// call.
func (d *Driver) Run(mode YieldMode) *Iterator {
	d.runCounter++
	d.mode = mode
	d.resetRunState()
	return &Iterator{d: d, runCounter: d.runCounter}
}

func (d *Driver) resetRunState() {
	d.depth = 0
	d.done = false
	d.step = 0
	d.iteration = 0
	d.counters = Counters{}
	for i := range d.fresh {
		d.fresh[i] = false
	}
	d.fresh[0] = true
	d.remainingProgress[0] = 1.0
}

// Next pulls the next Event, or (nil, nil) once the search space is
// exhausted. It returns ErrIteratorInvalid if the owning Driver has
// since started a new Run.
func (it *Iterator) Next() (*Event, error) {
	d := it.d
	if it.runCounter != d.runCounter {
		return nil, ErrIteratorInvalid
	}
	return d.advance()
}

func (d *Driver) advance() (*Event, error) {
	for {
		if d.done || d.depth < 0 {
			d.done = true
			return nil, nil
		}

		d.maybeProgress()

		frame := d.stack.At(d.depth)

		if d.fresh[d.depth] {
			d.fresh[d.depth] = false
			d.counters.NodesSearched++

			cand, complete := d.sel.Select(frame, d.guideForStep())
			d.step++

			if complete {
				d.counters.Solutions++
				d.counters.ProgressRatio += d.remainingProgress[d.depth]
				ev := &Event{Kind: EventSolution, Grid: frame, IsSolution: true}
				if d.debug.Enabled(debuglog.LevelInfo) {
					d.debug.Record(debuglog.Entry{Level: debuglog.LevelInfo, Message: "solution"})
				}
				d.depth--
				return ev, nil
			}

			if cand.Count == 0 {
				d.counters.Backtracks++
				d.counters.ProgressRatio += d.remainingProgress[d.depth]
				d.depth--
				continue
			}

			// Select never naturally returns Count==1 (it skips
			// singleton cells when scanning); this path is only
			// reachable when a step guide forces a specific value,
			// collapsing Count to 1 deliberately.
			if cand.Count == 1 {
				if d.mode == OnStep {
					copy(d.oldGrid, frame)
				}
				ok := d.applyInPlace(d.depth, cand.Cell, cand.Value, -1)
				d.counters.ValuesTried++
				if ok {
					if d.mode == OnStep {
						d.cellOrderBuf[0] = cand.Cell
						d.valuesBuf[0] = cand.Value
						ev := &Event{Kind: EventStep, Grid: d.stack.At(d.depth), OldGrid: d.oldGrid, CellOrder: d.cellOrderBuf, Values: d.valuesBuf}
						d.fresh[d.depth] = true
						return ev, nil
					}
					d.fresh[d.depth] = true
					continue
				}
				d.counters.Backtracks++
				d.counters.ProgressRatio += d.remainingProgress[d.depth]
				d.bt[cand.Cell]++
				d.lastContradictionCell[d.depth] = cand.Cell
				if d.mode == OnStep {
					ev := &Event{Kind: EventContradiction, Grid: d.stack.At(d.depth), HasContradiction: true}
					d.depth--
					return ev, nil
				}
				d.depth--
				continue
			}

			d.counters.Guesses++
			d.branchCell[d.depth] = cand.Cell
			d.isHouse[d.depth] = cand.House
			d.houseSecondCell[d.depth] = cand.SecondCell
			d.houseValue[d.depth] = cand.Value
			if cand.House {
				d.houseTriesLeft[d.depth] = 2
			} else {
				d.remainingMask[d.depth] = frame[cand.Cell]
			}
			d.branchDelta[d.depth] = d.remainingProgress[d.depth] / float64(cand.Count)
		}

		cell, value, ok := d.nextSibling(d.depth)
		if !ok {
			d.depth--
			continue
		}

		d.remainingProgress[d.depth] -= d.branchDelta[d.depth]
		d.counters.ValuesTried++

		d.stack.CopyInto(d.depth, d.depth+1)
		child := d.stack.At(d.depth + 1)
		ok = d.applyInPlace(d.depth+1, cell, value, d.lastContradictionCell[d.depth])

		if !ok {
			d.counters.Backtracks++
			d.counters.ProgressRatio += d.branchDelta[d.depth]
			d.bt[cell]++
			d.lastContradictionCell[d.depth] = cell
			if d.debug.Enabled(debuglog.LevelDebug) {
				d.debug.Record(debuglog.Entry{Level: debuglog.LevelDebug, Message: "contradiction", Fields: map[string]any{"cell": cell}})
			}
			if d.mode == OnStep {
				ev := &Event{Kind: EventContradiction, Grid: child, HasContradiction: true}
				return ev, nil
			}
			continue
		}
		d.lastContradictionCell[d.depth] = -1

		if d.isUninteresting(child) {
			d.counters.BranchesIgnoredRatio += d.branchDelta[d.depth]
			continue
		}

		d.remainingProgress[d.depth+1] = d.branchDelta[d.depth]
		d.fresh[d.depth+1] = true
		d.depth++

		if d.mode == OnStep {
			d.cellOrderBuf[0] = cell
			d.valuesBuf[0] = value
			ev := &Event{Kind: EventStep, Grid: d.stack.At(d.depth), OldGrid: frame, CellOrder: d.cellOrderBuf, Values: d.valuesBuf}
			return ev, nil
		}
	}
}

// applyInPlace assigns value to cell in frame depth, then drains the
// accumulator fixpoint. extraCell, if >= 0, is also re-queued: the
// cell whose peer assignment most recently failed here is
// reconsidered first on the next attempt. It returns false on domain
// wipeout.
func (d *Driver) applyInPlace(depth, cell int, value mask.Set, extraCell int) bool {
	frame := d.stack.At(depth)
	frame[cell] = value
	d.acc.Clear()
	d.watch.grid = frame
	d.watch.AddForCell(cell)
	d.acc.AddForFixedCell(cell)
	complete := gridComplete(frame)
	if !complete {
		d.acc.AddAuxForCell(cell)
	}
	if extraCell >= 0 && extraCell != cell {
		d.watch.AddForCell(extraCell)
	}
	return d.enforceConstraints(frame, complete)
}

// gridComplete reports whether every cell of grid already holds a
// single value.
func gridComplete(grid []mask.Set) bool {
	for _, m := range grid {
		if !m.IsSingleton() {
			return false
		}
	}
	return true
}

// enforceConstraints drains the accumulator to a fixpoint: repeatedly
// pop the next pending handler and run EnforceConsistency until the
// queue empties or a handler reports domain wipeout. When complete is
// true (the grid was fully fixed before the drain began), non-essential
// handlers are skipped.
func (d *Driver) enforceConstraints(grid []mask.Set, complete bool) bool {
	d.watch.grid = grid
	for {
		idx, ok := d.acc.TakeNext()
		if !ok {
			return true
		}
		d.counters.ConstraintsProcessed++
		h := d.set.Handlers[idx]
		if complete && !h.Essential() {
			continue
		}
		if !h.EnforceConsistency(grid, d.watch) {
			return false
		}
		d.maybeDecay()
	}
}

func allSingleton(grid []mask.Set, cells []int) bool {
	for _, c := range cells {
		if !grid[c].IsSingleton() {
			return false
		}
	}
	return true
}

func (d *Driver) maybeDecay() {
	d.iteration++
	if d.decayInterval == 0 || d.iteration%d.decayInterval != 0 {
		return
	}
	for i := range d.bt {
		d.bt[i] >>= d.decayShift
	}
}

// maybeProgress fires the caller-installed progress callback every
// progressMask+1 iterations of the search (a power-of-two frequency
// expressed as a mask so the check is a single AND). A nil progressFn
// disables the callback entirely regardless of the mask.
func (d *Driver) maybeProgress() {
	if d.progressFn == nil {
		return
	}
	if d.iteration&d.progressMask != 0 {
		return
	}
	var extra any
	if d.extraStateFn != nil {
		extra = d.extraStateFn()
	}
	d.progressFn(d.counters, extra)
}

// nextSibling returns the next untried (cell, value) at depth, and
// false once every sibling has been attempted.
func (d *Driver) nextSibling(depth int) (cell int, value mask.Set, ok bool) {
	if d.isHouse[depth] {
		switch d.houseTriesLeft[depth] {
		case 2:
			d.houseTriesLeft[depth] = 1
			return d.branchCell[depth], d.houseValue[depth], true
		case 1:
			d.houseTriesLeft[depth] = 0
			return d.houseSecondCell[depth], d.houseValue[depth], true
		default:
			return 0, 0, false
		}
	}
	rem := d.remainingMask[depth]
	if rem.IsEmpty() {
		return 0, 0, false
	}
	low := rem.LowBit()
	d.remainingMask[depth] = rem &^ low
	return d.branchCell[depth], low, true
}

// isUninteresting reports whether every cell of grid is already
// covered by the uninterestingValues prune mask: nothing new can be
// learned by descending further.
func (d *Driver) isUninteresting(grid []mask.Set) bool {
	if d.uninteresting == nil {
		return false
	}
	for c, m := range grid {
		if m&^d.uninteresting[c] != 0 {
			return false
		}
	}
	return true
}

func (d *Driver) guideForStep() *selector.Guide {
	if d.guides == nil {
		return nil
	}
	if g, ok := d.guides[d.step]; ok {
		return &g
	}
	return nil
}
