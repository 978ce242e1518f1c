// Package gridstack implements the contiguous stack of candidate-mask
// vectors the search driver branches over: one vector per search
// depth, laid out in a single backing buffer so pushing a frame is one
// vector copy and frames at different depths never alias.
//
// What:
//
//   - Stack holds (maxDepth+1) frames of numCells mask.Set values each,
//     contiguous in one []mask.Set.
//   - At(d) returns the live frame at depth d; CopyInto(d, dst) copies
//     frame d's contents into another frame without reslicing.
//
// Why:
//
//   - The driver routinely needs "the next depth starts as a copy of
//     the current depth"; a contiguous buffer makes that a single
//     copy() call with no per-push allocation, grounded on the
//     buffer-reuse idiom in flow's capacity maps and dtw's row-buffer
//     reuse for its DP table.
//
// Complexity:
//
//   - NewStack: O((maxDepth+1) * numCells), one allocation.
//   - At, CopyInto: O(numCells) or O(1) for the slice header.
package gridstack
