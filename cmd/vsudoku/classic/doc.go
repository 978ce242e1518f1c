// Package classic is a concrete handler set for ordinary 9x9 Sudoku: 81
// cells, 9 values, 27 houses (rows, columns, and 3x3 boxes), each
// demanding a permutation of 1..9. It exists to give cmd/vsudoku
// something to solve and to exercise session end-to-end (a puzzle with
// only its last cell blank, a complete grid, contradictory givens, and
// possibilities on the trivial puzzle all run against this shape), not
// as part of the engine itself — any caller can define an
// equally valid handler set for a jigsaw or variant layout.
//
// What:
//
//   - NewShape builds the 81-cell, 9-value Shape.
//   - Handlers returns one houseHandler per row/column/box; each only
//     contributes ExclusionCells, since the search engine's automatic
//     per-cell exclusion enforcer (package exclusion) already performs
//     all the propagation an all-different house needs.
//   - ParseGrid/FormatGrid convert between an 81-character string
//     ('1'-'9' for givens, '.' or '0' for blanks) and a Shape-indexed
//     []mask.Set, the clue format cmd/vsudoku's commands accept.
package classic
