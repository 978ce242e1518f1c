package selector_test

import (
	"testing"

	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/selector"
	"github.com/katalvlaran/vsudoku/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCompleteWhenAllSingleton(t *testing.T) {
	sh, err := shape.NewShape([]string{"a", "b"}, 2)
	require.NoError(t, err)
	bt := make([]int, 2)
	sel := selector.New(sh, bt)

	grid := []mask.Set{mask.Bit(1), mask.Bit(2)}
	_, complete := sel.Select(grid, nil)
	assert.True(t, complete)
}

func TestSelectPicksHighestScoreCell(t *testing.T) {
	sh, err := shape.NewShape([]string{"a", "b", "c"}, 3)
	require.NoError(t, err)
	bt := []int{0, 4, 2}
	sel := selector.New(sh, bt)

	grid := []mask.Set{mask.Bit(1), mask.AllValues(3), mask.AllValues(3)}
	// cell 1: score 4/3=1.33, cell 2: score 2/3=0.67 -> cell 1 wins.
	cand, complete := sel.Select(grid, nil)
	require.False(t, complete)
	assert.Equal(t, 1, cand.Cell)
}

func TestSelectFallsBackToMinPopcountWhenAllBtZero(t *testing.T) {
	sh, err := shape.NewShape([]string{"a", "b", "c"}, 4)
	require.NoError(t, err)
	bt := make([]int, 3)
	sel := selector.New(sh, bt)

	grid := []mask.Set{mask.AllValues(4), mask.Bit(1) | mask.Bit(2), mask.AllValues(4)}
	cand, complete := sel.Select(grid, nil)
	require.False(t, complete)
	assert.Equal(t, 1, cand.Cell, "cell 1 has the smallest popcount (2)")
}

func TestHouseValueBranching(t *testing.T) {
	sh, err := shape.NewShape([]string{"a", "b", "c", "d", "e"}, 5)
	require.NoError(t, err)
	sh.AddHouse(shape.House{0, 1, 2, 3})

	// Cell 0 is the best plain cell-branch candidate (score 8/4=2.0,
	// popcount>2). But within the house, value 1 occurs in exactly
	// cells {0,1}, scoring max(8,5)/2=4.0 — high enough to beat it, and
	// no later value scores strictly higher (2, 4 and 5 tie at 4.0;
	// value 3 in cells {1,2} scores only 2.5).
	bt := []int{8, 5, 4, 0, 0}
	sel := selector.New(sh, bt)

	grid := []mask.Set{
		mask.Bit(1) | mask.Bit(2) | mask.Bit(4) | mask.Bit(5), // cell 0: popcount 4, has value 1
		mask.Bit(3) | mask.Bit(1) | mask.Bit(5),               // cell 1: popcount 3, has value 1
		mask.Bit(3) | mask.Bit(2) | mask.Bit(4),               // cell 2: popcount 3, no value 1
		mask.Bit(4), // cell 3: singleton
	}
	grid = append(grid, mask.Bit(5)) // cell 4: singleton

	cand, complete := sel.Select(grid, nil)
	require.False(t, complete)
	assert.True(t, cand.House)
	assert.Equal(t, mask.Bit(1), cand.Value)
	assert.ElementsMatch(t, []int{cand.Cell, cand.SecondCell}, []int{0, 1})
}

func TestGuideOverridesCellAndValue(t *testing.T) {
	sh, err := shape.NewShape([]string{"a", "b"}, 3)
	require.NoError(t, err)
	bt := make([]int, 2)
	sel := selector.New(sh, bt)

	grid := []mask.Set{mask.AllValues(3), mask.AllValues(3)}
	cell := 1
	value := 2
	guide := &selector.Guide{Cell: &cell, Value: &value}

	cand, complete := sel.Select(grid, guide)
	require.False(t, complete)
	assert.Equal(t, 1, cand.Cell)
	assert.Equal(t, mask.Bit(2), cand.Value)
	assert.Equal(t, 1, cand.Count)
}
