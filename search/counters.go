package search

// Counters accumulates one run's statistics. ProgressRatio plus
// BranchesIgnoredRatio conserve against the fully
// explored stack: at any point, ProgressRatio + BranchesIgnoredRatio +
// sum(remaining mass still open on the stack) == 1.0.
type Counters struct {
	ValuesTried          int64
	NodesSearched        int64
	Backtracks           int64
	Guesses              int64
	Solutions            int64
	ConstraintsProcessed int64

	// ProgressRatio is the fraction of the search space conclusively
	// resolved so far (solutions found plus contradictions hit).
	ProgressRatio float64

	// BranchesIgnoredRatio is the fraction of the search space skipped
	// by the uninterestingValues prune, tracked separately from
	// ProgressRatio since it represents unexplored, not resolved,
	// space.
	BranchesIgnoredRatio float64
}
