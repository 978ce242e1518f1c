// Package search implements the constraint-propagation backtracking
// core: an explicit-stack depth-first search over a handler.Set, using
// package gridstack for depth frames, package accumulator for the
// fixpoint work queue, and package selector to choose each branch.
//
// What:
//
//   - Driver owns the grid stack, the backtrack-trigger histogram, and
//     the run lifecycle. Reset performs one-time setup (handler
//     initialization, exclusion-enforcer construction, priority
//     seeding). Run starts a fresh traversal and returns an Iterator;
//     Iterator.Next pulls one Event at a time, resumable across calls.
//   - Event reports a Solution, an intermediate Step (step-mode only),
//     or a Contradiction sample.
//   - Counters accumulates the run's statistics, including the
//     conserved progressRatio accounting that advance maintains on
//     every backtrack, contradiction, and solution.
//
// Design notes:
//
//   - Depth only advances on a guess (a branch with more than one
//     sibling). Forced, singleton-propagated assignments are applied
//     in place at the current depth rather than pushed onto a new
//     stack frame; this collapses the textbook recursive formulation
//     into an explicit loop without changing any observable behavior,
//     since depth is a bookkeeping device, not an observable.
//   - A batched "extra singletons" micro-optimization is not
//     implemented: the accumulator fixpoint already drains every
//     forced singleton before the selector is consulted again, which
//     is observably equivalent, just without the batched re-entry.
package search
