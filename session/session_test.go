package session_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vsudoku/handler"
	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/search"
	"github.com/katalvlaran/vsudoku/session"
	"github.com/katalvlaran/vsudoku/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliqueHandler mirrors search_test.go's test double: every cell in
// House must hold a distinct value from every other cell in House.
type cliqueHandler struct {
	cells []int
}

func (c *cliqueHandler) Cells() []int          { return c.cells }
func (c *cliqueHandler) ExclusionCells() []int { return c.cells }
func (c *cliqueHandler) Priority() int         { return 1 }
func (c *cliqueHandler) Essential() bool       { return false }

func (c *cliqueHandler) Initialize(_ []mask.Set, _ handler.ExclusionView, sh *shape.Shape) bool {
	sh.AddHouse(shape.House(append([]int(nil), c.cells...)))
	return true
}

func (c *cliqueHandler) EnforceConsistency(_ []mask.Set, _ handler.Accumulator) bool {
	return true
}

func latinSquareSession(t *testing.T) *session.Session {
	t.Helper()
	sh, err := shape.NewShape([]string{"00", "01", "10", "11"}, 2)
	require.NoError(t, err)
	handlers := []handler.Handler{
		&cliqueHandler{cells: []int{0, 1}},
		&cliqueHandler{cells: []int{2, 3}},
		&cliqueHandler{cells: []int{0, 2}},
		&cliqueHandler{cells: []int{1, 3}},
	}
	s, err := session.New(sh, handlers)
	require.NoError(t, err)
	return s
}

func TestCountSolutions(t *testing.T) {
	s := latinSquareSession(t)
	n, err := s.CountSolutions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestNthSolutionOutOfRange(t *testing.T) {
	s := latinSquareSession(t)
	_, err := s.NthSolution(context.Background(), 3)
	assert.ErrorIs(t, err, session.ErrSolutionNotFound)
}

func TestNthSolutionReturnsACompleteGrid(t *testing.T) {
	s := latinSquareSession(t)
	sol, err := s.NthSolution(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, sol, 4)
	for _, c := range sol {
		assert.True(t, c.IsSingleton())
	}
}

func TestSolveAllPossibilitiesUnionsEveryCell(t *testing.T) {
	s := latinSquareSession(t)
	union, n, err := s.SolveAllPossibilities(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	for _, m := range union {
		assert.Equal(t, mask.AllValues(2), m, "each cell takes both values across the two solutions")
	}
}

func TestValidateLayoutValid(t *testing.T) {
	s := latinSquareSession(t)
	valid, ranked, err := s.ValidateLayout(context.Background(), 1000)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Nil(t, ranked)
}

func TestNthStepOutOfRange(t *testing.T) {
	s := latinSquareSession(t)
	_, err := s.NthStep(context.Background(), 100, nil)
	assert.ErrorIs(t, err, session.ErrSolutionNotFound)
}

// TestNthStepReportsSolutionOnTrivialLastCell exercises the engine's
// actual behavior on a puzzle with exactly one undetermined cell: the
// single missing cell is resolved by the driver's own Reset-time
// constraint propagation before a single Iterator.Next call is ever
// made, so the very first step-mode event already reports the
// completed solution. See DESIGN.md for why this collapses what the
// abstract model treats as two separate yields (an assignment, then a
// solution) into one.
func TestNthStepReportsSolutionOnTrivialLastCell(t *testing.T) {
	sh, err := shape.NewShape([]string{"00", "01", "10", "11"}, 2)
	require.NoError(t, err)
	handlers := []handler.Handler{
		&cliqueHandler{cells: []int{0, 1}},
		&cliqueHandler{cells: []int{2, 3}},
		&cliqueHandler{cells: []int{0, 2}},
		&cliqueHandler{cells: []int{1, 3}},
	}
	// Every cell but the last is clamped; cell 3 must be 1 to complete
	// the Latin square [1,2,2,_].
	grid := []mask.Set{mask.Bit(1), mask.Bit(2), mask.Bit(2), sh.FullSet()}
	s, err := session.New(sh, handlers, search.WithInitialGrid(grid))
	require.NoError(t, err)

	res, err := s.NthStep(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsSolution)
	assert.False(t, res.HasContradiction)
	assert.Equal(t, 1, res.Pencilmarks[3].Low())
}

// TestNthStepReportsLatestCellAndDiff exercises a puzzle with four
// undetermined cells, so the driver must itself branch during Run: the
// first step-mode event is the branch's guessed assignment (LatestCell
// set, DiffPencilmarks reflecting exactly what that assignment
// narrowed), and the run concludes with a solution event.
func TestNthStepReportsLatestCellAndDiff(t *testing.T) {
	s := latinSquareSession(t)

	first, err := s.NthStep(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.False(t, first.IsSolution)
	assert.GreaterOrEqual(t, first.LatestCell, 0)
	require.Len(t, first.DiffPencilmarks, 4)
	// The assigned cell itself lost every candidate but the one chosen.
	assert.NotEqual(t, mask.Empty, first.DiffPencilmarks[first.LatestCell])
}

func TestValidateLayoutInvalid(t *testing.T) {
	sh, err := shape.NewShape([]string{"a", "b"}, 1)
	require.NoError(t, err)
	handlers := []handler.Handler{&cliqueHandler{cells: []int{0, 1}}}
	s, err := session.New(sh, handlers)
	require.NoError(t, err)

	valid, ranked, verr := s.ValidateLayout(context.Background(), 1000)
	require.NoError(t, verr)
	assert.False(t, valid)
	require.Len(t, ranked, 1)
}
