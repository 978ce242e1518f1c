package classic

import (
	"fmt"

	"github.com/katalvlaran/vsudoku/shape"
)

// Size is the classic board's side length; NumCells is Size*Size and
// NumValues is Size.
const Size = 9

// boxSize is the side length of a sub-box (3 for the standard 9x9).
const boxSize = 3

// NewShape builds the 81-cell, 9-value Shape for a classic board. Cell
// ids are "r{row}c{col}" with row/col in [0,9), so CellID/Index round
// trip through the same scheme ParseGrid/FormatGrid use for ordering.
func NewShape() (*shape.Shape, error) {
	ids := make([]string, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			ids = append(ids, fmt.Sprintf("r%dc%d", r, c))
		}
	}
	return shape.NewShape(ids, Size)
}

// cellIndex returns the flat index of (row, col) in row-major order,
// matching NewShape's id ordering.
func cellIndex(row, col int) int {
	return row*Size + col
}
