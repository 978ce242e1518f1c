package shape_test

import (
	"testing"

	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicIDs() []string {
	ids := make([]string, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			ids = append(ids, string(rune('A'+r))+string(rune('1'+c)))
		}
	}
	return ids
}

func TestNewShape(t *testing.T) {
	s, err := shape.NewShape(classicIDs(), 9)
	require.NoError(t, err)
	assert.Equal(t, 81, s.NumCells())
	assert.Equal(t, 9, s.NumValues())

	idx, ok := s.Index("A1")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "A1", s.CellID(0))
}

func TestNewShapeErrors(t *testing.T) {
	_, err := shape.NewShape(nil, 9)
	require.ErrorIs(t, err, shape.ErrNoCells)

	_, err = shape.NewShape([]string{"a"}, 33)
	require.ErrorIs(t, err, shape.ErrTooManyValues)

	_, err = shape.NewShape([]string{"a", "a"}, 2)
	require.ErrorIs(t, err, shape.ErrDuplicateCellID)
}

func TestHouses(t *testing.T) {
	s, err := shape.NewShape([]string{"a", "b", "c"}, 3)
	require.NoError(t, err)
	s.AddHouse(shape.House{0, 1, 2})
	require.Len(t, s.Houses(), 1)
	assert.Equal(t, shape.House{0, 1, 2}, s.Houses()[0])
	assert.Equal(t, mask.AllValues(3), s.FullSet())
}
