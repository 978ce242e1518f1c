// Package exclusion builds and caches the mutual-exclusion graph
// between cells and supplies the generic per-cell exclusion enforcer
// handler.Set indexes into ExclusionByCell.
//
// What:
//
//   - Graph.Exclusions(c) is the sorted list of cells that must differ
//     from c, the union of every handler's ExclusionCells() over
//     handlers whose Cells() contains c.
//   - CachePair / CacheTuple memoize the intersection of two or more
//     cells' exclusion sets, populated on demand by handlers during
//     Initialize.
//   - NewEnforcer(c, graph) builds the generic N-way not-equal handler
//     for c: whenever an excluded cell becomes fixed, its value is
//     struck from c, and once c is fixed, its value is struck from
//     every excluded cell.
//
// Why:
//
//   - The "every cell in a house differs" relationship is structural,
//     not domain knowledge — it falls out of whatever ExclusionCells()
//     a concrete handler (house, killer cage, ...) reports. Building
//     one generic enforcer per cell off that union means the engine
//     never has to know what kind of handler produced the exclusion.
//
// Complexity:
//
//   - NewGraph: O(H * avgCells * avgExclusions).
//   - Exclusions: O(1) (precomputed).
//   - CachePair / CacheTuple: O(min(|a|,|b|)) on first call, O(1) on
//     cache hit.
package exclusion
