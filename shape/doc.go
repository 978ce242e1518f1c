// Package shape defines the immutable grid descriptor every other
// vsudoku package builds against: how many cells, how many values per
// cell, and the houses (permutation groups) a layout is carved into.
//
// What:
//
//   - Shape fixes NumCells, NumValues, and a cell-id bijection once
//     built; its house list starts empty and grows via AddHouse.
//   - A House is a subset of cell indices that must, in any solution,
//     hold a permutation of {1..NumValues}.
//
// Why:
//
//   - Every downstream package (handler, exclusion, selector, search)
//     indexes arrays by cell index, not by human-facing cell id; Shape
//     is the single place that bijection lives, so it can never drift
//     between packages.
//
// Complexity:
//
//   - CellID / Index: O(1).
//   - NewShape: O(R) to build the bijection.
//
// Errors:
//
//	ErrNoCells      — cell id list is empty.
//	ErrTooManyValues — NumValues is negative or exceeds mask.MaxValues.
//	ErrDuplicateCellID — two cells share a human-facing id.
package shape
