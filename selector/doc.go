// Package selector implements the candidate selector: given the live grid and the decayed backtrack-trigger histogram, it
// chooses the next (cell, value) branch, or instead a value within a
// house when that is a cheaper binary split than any single cell
// (house-value branching).
//
// What:
//
//   - Candidate describes one branch: the cell and value.Set to
//     assign, how many sibling choices exist (Count), and, for
//     house-value branches, the second cell a failed first attempt
//     forces a singleton assignment on.
//   - Select scans every still-undetermined cell, scores it
//     bt[c]/popcount(grid[c]), and falls back to minimum popcount if
//     every score is zero.
//
// Why:
//
//   - bt[] is shared, not copied: the selector and the search driver
//     both hold the same backing slice, so decay applied by the
//     driver is immediately visible here without any call needing to
//     pass it explicitly.
//
// Complexity:
//
//   - Select: O(numCells) to score, plus O(houses * houseSize) when a
//     house-value branch is attempted.
package selector
