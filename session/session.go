package session

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/vsudoku/handler"
	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/selector"
	"github.com/katalvlaran/vsudoku/shape"
)

// ErrSolutionNotFound is returned by NthSolution/NthStep when the
// search space is exhausted before reaching the requested index.
var ErrSolutionNotFound = errors.New("session: requested index exceeds the solution space")

// Session is a reusable facade over one search.Driver.
type Session struct {
	sh       *shape.Shape
	drv      *search.Driver
	handlers []handler.Handler
	opts     []search.Option
}

// New builds a Session: it resets a fresh search.Driver against sh and
// handlers, running every handler's Initialize once.
func New(sh *shape.Shape, handlers []handler.Handler, opts ...search.Option) (*Session, error) {
	drv := search.New(sh)
	if err := drv.Reset(handlers, opts...); err != nil {
		return nil, err
	}
	return &Session{
		sh:       sh,
		drv:      drv,
		handlers: append([]handler.Handler(nil), handlers...),
		opts:     append([]search.Option(nil), opts...),
	}, nil
}

// Counters reports the underlying driver's cumulative search counters
// as of the most recent Run, for callers that want to observe solve
// cost (e.g. the telemetry package) without reaching into search.
func (s *Session) Counters() search.Counters {
	return s.drv.Counters()
}

// CountSolutions enumerates every solution to completion and returns
// how many exist. It respects ctx cancellation between events.
func (s *Session) CountSolutions(ctx context.Context) (int64, error) {
	it := s.drv.Run(search.OnSolution)
	var count int64
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		ev, err := it.Next()
		if err != nil {
			return count, err
		}
		if ev == nil {
			return count, nil
		}
		count++
	}
}

// NthSolution returns the n-th solution (1-indexed) in discovery
// order, or ErrSolutionNotFound if fewer than n solutions exist.
func (s *Session) NthSolution(ctx context.Context, n int) ([]mask.Set, error) {
	if n < 1 {
		return nil, ErrSolutionNotFound
	}
	it := s.drv.Run(search.OnSolution)
	var found int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := it.Next()
		if err != nil {
			return nil, err
		}
		if ev == nil {
			return nil, ErrSolutionNotFound
		}
		found++
		if found == n {
			return append([]mask.Set(nil), ev.Grid...), nil
		}
	}
}

// StepResult is the n-th event of a step-mode traversal, translated
// into the shape a step-mode caller (e.g. an interactive solver UI)
// actually wants: the grid's pencilmarks, what changed this step, and
// whether the traversal is done.
type StepResult struct {
	// Pencilmarks is the live grid at this event, one mask.Set per
	// cell.
	Pencilmarks []mask.Set

	// DiffPencilmarks holds, per cell, exactly the candidate values
	// this step removed (OldGrid[c] &^ Grid[c]). Empty for a solution
	// event, which has no single preceding assignment to diff against.
	DiffPencilmarks []mask.Set

	// LatestCell is the cell this event fixed, or -1 for a solution or
	// contradiction event.
	LatestCell int

	// IsSolution is true once the traversal reaches a complete,
	// consistent grid.
	IsSolution bool

	// HasContradiction is true when this event reports a failed
	// branch attempt.
	HasContradiction bool

	// Values is the value assigned to LatestCell, valid only when
	// LatestCell >= 0.
	Values mask.Set
}

// NthStep runs in step-mode with the given per-step guides and
// returns the n-th event (1-indexed) of any kind — assignment,
// contradiction, or solution — translated into a StepResult.
func (s *Session) NthStep(ctx context.Context, n int, guides map[int]selector.Guide) (*StepResult, error) {
	if n < 1 {
		return nil, ErrSolutionNotFound
	}
	s.drv.SetStepGuides(guides)
	defer s.drv.SetStepGuides(nil)

	it := s.drv.Run(search.OnStep)
	var found int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := it.Next()
		if err != nil {
			return nil, err
		}
		if ev == nil {
			return nil, ErrSolutionNotFound
		}
		found++
		if found == n {
			return toStepResult(ev), nil
		}
	}
}

func toStepResult(ev *search.Event) *StepResult {
	res := &StepResult{
		Pencilmarks:      append([]mask.Set(nil), ev.Grid...),
		LatestCell:       -1,
		IsSolution:       ev.IsSolution,
		HasContradiction: ev.HasContradiction,
	}
	if len(ev.CellOrder) > 0 {
		res.LatestCell = ev.CellOrder[0]
		res.Values = ev.Values[0]
	}
	if ev.OldGrid != nil {
		diff := make([]mask.Set, len(ev.OldGrid))
		for c := range diff {
			diff[c] = ev.OldGrid[c] &^ ev.Grid[c]
		}
		res.DiffPencilmarks = diff
	}
	return res
}

// SolveAllPossibilities harvests the union, per cell, of every value
// any solution ever assigns it. Once at least two solutions are on
// record, the driver is switched to prune branches that can only ever
// rediscover already-seen values, via search.Driver.SetUninteresting —
// so a puzzle with many solutions still terminates once no cell can
// gain a new candidate. sampleCap bounds how many solutions are
// actually enumerated before giving up and returning the union seen
// so far.
func (s *Session) SolveAllPossibilities(ctx context.Context, sampleCap int64) ([]mask.Set, int64, error) {
	numCells := s.sh.NumCells()
	union := make([]mask.Set, numCells)
	s.drv.SetUninteresting(nil)
	defer s.drv.SetUninteresting(nil)

	it := s.drv.Run(search.OnSolution)
	var solutions int64
	for {
		if err := ctx.Err(); err != nil {
			return union, solutions, err
		}
		if sampleCap > 0 && solutions >= sampleCap {
			return union, solutions, nil
		}
		ev, err := it.Next()
		if err != nil {
			return union, solutions, err
		}
		if ev == nil {
			return union, solutions, nil
		}
		solutions++
		for c, v := range ev.Grid {
			union[c] |= v
		}
		if solutions >= 2 {
			s.drv.SetUninteresting(union)
		}
	}
}

// HouseReport is one house's diagnostic entry in ValidateLayout's
// ranked attempt log.
type HouseReport struct {
	House         shape.House
	ProgressRatio float64
	// BranchesIgnoredRatio is carried alongside ProgressRatio but not
	// folded into the ranking: whether the two should be normalized
	// together before comparison is left open (see DESIGN.md Open
	// Question 2), and we do not resolve that here.
	BranchesIgnoredRatio float64
}

// ValidateLayout performs a bounded satisfiability check: it stops as
// soon as it finds one solution (valid) or the contradiction count
// exceeds budget, at which point the layout is treated as
// unsatisfiable rather than merely unresolved. When invalid, ranked
// holds one HouseReport per house, sorted by
// ProgressRatio descending from a house-biased retry; the houses at
// the tail of ranked contradicted soonest in their own biased attempt
// and are the likelier culprits.
func (s *Session) ValidateLayout(ctx context.Context, budget int64) (valid bool, ranked []HouseReport, err error) {
	it := s.drv.Run(search.OnStep)
	for {
		if cerr := ctx.Err(); cerr != nil {
			return false, nil, cerr
		}
		ev, nerr := it.Next()
		if nerr != nil {
			return false, nil, nerr
		}
		if ev == nil {
			break // exhausted: no solution exists
		}
		if ev.IsSolution {
			return true, nil, nil
		}
		if s.drv.Counters().Backtracks > budget {
			break // budget exceeded: treated as unsatisfiable, not inconclusive
		}
	}

	houses := s.sh.Houses()
	ranked = make([]HouseReport, 0, len(houses))
	for _, h := range houses {
		ranked = append(ranked, s.houseBiasedAttempt(ctx, h, budget))
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].ProgressRatio > ranked[j].ProgressRatio
	})
	return false, ranked, nil
}

// houseBiasedAttempt re-runs the search from scratch with h seeded by
// the identity permutation (h[k] <- value k+1, for k < NumValues; every
// other cell left at full candidates), stopping at the first
// contradiction, solution, or the budget, and reports how much of the
// search space that attempt resolved. A fresh Driver is built for the
// attempt rather than reusing s.drv, since the seed must apply before
// Reset's own handler Initialize/propagation pass runs, not just
// override the selector's first branch.
func (s *Session) houseBiasedAttempt(ctx context.Context, h shape.House, budget int64) HouseReport {
	if len(h) == 0 {
		return HouseReport{House: h}
	}

	numCells := s.sh.NumCells()
	numValues := s.sh.NumValues()
	seed := make([]mask.Set, numCells)
	for c := range seed {
		seed[c] = s.sh.FullSet()
	}
	for k, c := range h {
		if k >= numValues {
			break
		}
		seed[c] = mask.Bit(k + 1)
	}

	drv := search.New(s.sh)
	opts := append(append([]search.Option(nil), s.opts...), search.WithInitialGrid(seed))
	if err := drv.Reset(s.handlers, opts...); err != nil {
		return HouseReport{House: h}
	}

	it := drv.Run(search.OnStep)
	for {
		if ctx.Err() != nil {
			break
		}
		ev, err := it.Next()
		if err != nil || ev == nil {
			break
		}
		if ev.HasContradiction || ev.IsSolution {
			break
		}
		if drv.Counters().Backtracks > budget {
			break
		}
	}
	c := drv.Counters()
	return HouseReport{House: h, ProgressRatio: c.ProgressRatio, BranchesIgnoredRatio: c.BranchesIgnoredRatio}
}
