package classic

import (
	"github.com/katalvlaran/vsudoku/handler"
	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/shape"
)

// houseHandler enforces that every cell in its house holds a value
// distinct from every other cell in that house. It contributes
// nothing in EnforceConsistency: the
// search engine builds one exclusion.Enforcer per cell automatically
// from ExclusionCells, and that alone is a complete all-different
// propagator. houseHandler exists only to describe the house to
// Initialize and to register it on the Shape for diagnostics (e.g.
// session.ValidateLayout's per-house ranking).
type houseHandler struct {
	cells []int
}

func (h *houseHandler) Cells() []int          { return h.cells }
func (h *houseHandler) ExclusionCells() []int { return h.cells }
func (h *houseHandler) Priority() int         { return 0 }
func (h *houseHandler) Essential() bool       { return true }

func (h *houseHandler) Initialize(_ []mask.Set, _ handler.ExclusionView, sh *shape.Shape) bool {
	sh.AddHouse(shape.House(append([]int(nil), h.cells...)))
	return true
}

func (h *houseHandler) EnforceConsistency(_ []mask.Set, _ handler.Accumulator) bool {
	return true
}

// Handlers returns the 27 row/column/box handlers for a classic board.
func Handlers() []handler.Handler {
	handlers := make([]handler.Handler, 0, 3*Size)

	for r := 0; r < Size; r++ {
		cells := make([]int, Size)
		for c := 0; c < Size; c++ {
			cells[c] = cellIndex(r, c)
		}
		handlers = append(handlers, &houseHandler{cells: cells})
	}

	for c := 0; c < Size; c++ {
		cells := make([]int, Size)
		for r := 0; r < Size; r++ {
			cells[r] = cellIndex(r, c)
		}
		handlers = append(handlers, &houseHandler{cells: cells})
	}

	for br := 0; br < Size; br += boxSize {
		for bc := 0; bc < Size; bc += boxSize {
			cells := make([]int, 0, boxSize*boxSize)
			for row := br; row < br+boxSize; row++ {
				for col := bc; col < bc+boxSize; col++ {
					cells = append(cells, cellIndex(row, col))
				}
			}
			handlers = append(handlers, &houseHandler{cells: cells})
		}
	}

	return handlers
}
