// Package session implements the handful of operations a caller of
// the engine actually wants (counting solutions, fetching the nth
// one, stepping through a guided solve, harvesting every value any
// solution ever takes per cell, and a best-effort layout sanity
// check), each built on top of one reusable search.Driver.
//
// What:
//
//   - Session owns a search.Driver that Reset once against a shape and
//     handler collection; every method below calls Driver.Run and
//     drains its Iterator according to its own termination rule.
//   - CountSolutions / NthSolution / NthStep are thin: they differ only
//     in which Event they stop at.
//   - SolveAllPossibilities accumulates a per-cell union mask across
//     every solution found, switching the driver into
//     uninterestingValues-pruned mode once two solutions are on
//     record, so the remaining traversal only spends effort on
//     branches that could still contribute a genuinely new value
//     somewhere.
//   - ValidateLayout performs a bounded satisfiability check: it stops
//     as soon as it finds one solution (valid) or exceeds a
//     contradiction budget (treated as unsatisfiable, not
//     inconclusive). When invalid, it
//     additionally ranks every house by how far a house-biased retry
//     got before its first contradiction, as a coarse "where to look"
//     diagnostic.
//
// Why:
//
//   - A facade over one Driver, rather than exposing Driver directly,
//     matches the teacher's core/api.go shape: callers get operations,
//     not search internals.
package session
