package shape

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vsudoku/mask"
)

// Sentinel errors for shape construction.
var (
	// ErrNoCells indicates an empty cell-id list was supplied.
	ErrNoCells = errors.New("shape: at least one cell is required")
	// ErrTooManyValues indicates NumValues exceeds mask.MaxValues.
	ErrTooManyValues = errors.New("shape: numValues exceeds mask.MaxValues")
	// ErrDuplicateCellID indicates two cells share a human-facing id.
	ErrDuplicateCellID = errors.New("shape: duplicate cell id")
)

// House is a subset of cell indices that must hold a permutation of
// {1..NumValues} in any solution.
type House []int

// Shape is the immutable grid descriptor: cell count, value count, the
// cell-id bijection, and the houses a layout is carved into.
type Shape struct {
	numValues int
	cellIDs   []string       // index -> human id
	idToIndex map[string]int // human id -> index
	houses    []House
}

// NewShape builds a Shape from the ordered list of human-facing cell
// ids and the number of values per cell. The Shape starts with no
// houses; callers typically populate them afterward via AddHouse, since
// houses are often derived only once handlers are known.
func NewShape(cellIDs []string, numValues int) (*Shape, error) {
	if len(cellIDs) == 0 {
		return nil, ErrNoCells
	}
	if numValues < 0 || numValues > mask.MaxValues {
		return nil, ErrTooManyValues
	}
	idToIndex := make(map[string]int, len(cellIDs))
	for i, id := range cellIDs {
		if _, dup := idToIndex[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCellID, id)
		}
		idToIndex[id] = i
	}
	return &Shape{
		numValues: numValues,
		cellIDs:   append([]string(nil), cellIDs...),
		idToIndex: idToIndex,
	}, nil
}

// NumCells returns the number of cells in the grid.
func (s *Shape) NumCells() int { return len(s.cellIDs) }

// NumValues returns the number of values per cell.
func (s *Shape) NumValues() int { return s.numValues }

// CellID returns the human-facing id of cell index idx.
func (s *Shape) CellID(idx int) string { return s.cellIDs[idx] }

// Index returns the cell index for human-facing id, and false if no
// such cell exists.
func (s *Shape) Index(id string) (int, bool) {
	idx, ok := s.idToIndex[id]
	return idx, ok
}

// AddHouse registers a house (cells that must hold a permutation of
// {1..NumValues}). Handlers register houses during initialization; the
// search engine never constructs one itself.
func (s *Shape) AddHouse(h House) {
	cp := append(House(nil), h...)
	s.houses = append(s.houses, cp)
}

// Houses returns every registered house.
func (s *Shape) Houses() []House { return s.houses }

// FullSet returns the all-candidates mask for this shape's NumValues.
func (s *Shape) FullSet() mask.Set { return mask.AllValues(s.numValues) }
