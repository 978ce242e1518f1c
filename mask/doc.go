// Package mask represents a Sudoku cell's candidate set as a bitmask
// over the values {1..N}, N ≤ MaxValues (32), and provides constant-time queries
// over it.
//
// What:
//
//   - Set is a bitmask where bit i (0-indexed) represents value i+1.
//   - AllValues(n) builds the full candidate set for n values.
//   - Popcount, Low, and Values give O(1)/O(popcount) access to the
//     set's size, lowest member, and full membership.
//
// Why:
//
//   - The engine never materializes per-cell candidate lists; every
//     propagation step narrows a Set with bitwise AND/ANDNOT, which is
//     the only way the search driver can stay allocation-free on its
//     hot path.
//
// Complexity:
//
//   - Popcount, Low, IsEmpty, IsSingleton: O(1) (hardware popcount via
//     math/bits).
//   - Values: O(popcount(s)).
package mask
