package classic_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/vsudoku/cmd/vsudoku/classic"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeSolution is a well-known valid, fully filled classic Sudoku
// grid (the example solution from Wikipedia's Sudoku article): every
// row, column, and 3x3 box holds a permutation of 1-9.
const completeSolution = "" +
	"534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

// lastCellBlank replaces completeSolution's final cell with '.', the
// classic "trivial last cell" scenario: exactly one solution,
// discoverable without a single guess.
func lastCellBlank(t *testing.T) string {
	t.Helper()
	require.Equal(t, 81, len(completeSolution))
	return completeSolution[:80] + "."
}

func TestClassicSolveFillsTheLastCell(t *testing.T) {
	sh, err := classic.NewShape()
	require.NoError(t, err)
	grid, err := classic.ParseGrid(sh, lastCellBlank(t))
	require.NoError(t, err)

	s, err := session.New(sh, classic.Handlers(), search.WithInitialGrid(grid))
	require.NoError(t, err)

	n, err := s.CountSolutions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClassicSolveReproducesTheCompleteGrid(t *testing.T) {
	sh, err := classic.NewShape()
	require.NoError(t, err)
	grid, err := classic.ParseGrid(sh, lastCellBlank(t))
	require.NoError(t, err)

	s, err := session.New(sh, classic.Handlers(), search.WithInitialGrid(grid))
	require.NoError(t, err)

	sol, err := s.NthSolution(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, completeSolution, classic.FormatGrid(sol))
}

func TestClassicAlreadyCompleteGridIsItsOwnUniqueSolution(t *testing.T) {
	sh, err := classic.NewShape()
	require.NoError(t, err)
	grid, err := classic.ParseGrid(sh, completeSolution)
	require.NoError(t, err)

	s, err := session.New(sh, classic.Handlers(), search.WithInitialGrid(grid))
	require.NoError(t, err)

	n, err := s.CountSolutions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClassicContradictoryGivensAreUnsatisfiable(t *testing.T) {
	sh, err := classic.NewShape()
	require.NoError(t, err)
	// Force the same digit into two cells of row 0, which completeSolution
	// never does: r0c0 is '5', so also clamping r0c1 to '5' is a direct
	// row-distinctness violation.
	clues := "55" + completeSolution[2:]
	require.Equal(t, 81, len(clues))
	grid, err := classic.ParseGrid(sh, clues)
	require.NoError(t, err)

	s, err := session.New(sh, classic.Handlers(), search.WithInitialGrid(grid))
	require.NoError(t, err)

	n, err := s.CountSolutions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestClassicPossibilitiesIsSingleValuedOnTheTrivialPuzzle(t *testing.T) {
	sh, err := classic.NewShape()
	require.NoError(t, err)
	grid, err := classic.ParseGrid(sh, lastCellBlank(t))
	require.NoError(t, err)

	s, err := session.New(sh, classic.Handlers(), search.WithInitialGrid(grid))
	require.NoError(t, err)

	union, n, err := s.SolveAllPossibilities(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	for _, m := range union {
		assert.True(t, m.IsSingleton())
	}
	assert.True(t, strings.HasPrefix(classic.FormatGrid(union), completeSolution[:80]))
}
