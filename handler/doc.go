// Package handler defines the constraint contract the engine consumes
// and Set, the derived-index view over a finished handler collection.
//
// What:
//
//   - Handler is the capability every constraint exposes: its cells,
//     its exclusion cells, a static priority, a one-shot Initialize,
//     and EnforceConsistency, the fixpoint step.
//   - Set partitions a []Handler into the per-cell indices the
//     accumulator and driver need: OrdinaryByCell, AuxByCell,
//     ExclusionByCell, and the PriorityHandlers list.
//
// Why:
//
//   - The core never constructs a concrete constraint (house, arrow,
//     killer cage, thermo, ...); it only ever holds Handler values
//     built elsewhere. Set is the one place that turns an arbitrary
//     ordered handler list into the O(1)-by-cell lookups the rest of
//     the engine relies on.
//
// Complexity:
//
//   - NewSet: O(H + sum(len(h.Cells())) + sum(len(h.ExclusionCells()))).
package handler
