package accumulator_test

import (
	"testing"

	"github.com/katalvlaran/vsudoku/accumulator"
	"github.com/katalvlaran/vsudoku/handler"
	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ordinaryStub is a plain handler.Handler touching a fixed set of cells.
type ordinaryStub struct{ cells []int }

func (o ordinaryStub) Cells() []int          { return o.cells }
func (o ordinaryStub) ExclusionCells() []int { return nil }
func (o ordinaryStub) Priority() int         { return 0 }
func (o ordinaryStub) Initialize([]mask.Set, handler.ExclusionView, *shape.Shape) bool {
	return true
}
func (o ordinaryStub) EnforceConsistency([]mask.Set, handler.Accumulator) bool { return true }
func (o ordinaryStub) Essential() bool                                        { return true }

// enforcerStub is a handler.ExclusionEnforcer for a single cell.
type enforcerStub struct{ cell int }

func (e enforcerStub) Cells() []int          { return []int{e.cell} }
func (e enforcerStub) ExclusionCells() []int { return nil }
func (e enforcerStub) Priority() int         { return 0 }
func (e enforcerStub) Initialize([]mask.Set, handler.ExclusionView, *shape.Shape) bool {
	return true
}
func (e enforcerStub) EnforceConsistency([]mask.Set, handler.Accumulator) bool { return true }
func (e enforcerStub) Essential() bool                                        { return true }
func (e enforcerStub) EnforcerCell() int                                      { return e.cell }

func buildSet() *handler.Set {
	// handlers[0], handlers[1]: ordinary, both touching cell 0.
	// handlers[2]: exclusion enforcer for cell 0.
	all := []handler.Handler{
		ordinaryStub{cells: []int{0}},
		ordinaryStub{cells: []int{0}},
		enforcerStub{cell: 0},
	}
	return handler.NewSet(all, 2)
}

func TestQueueFIFOAndDedup(t *testing.T) {
	set := buildSet()
	q := accumulator.NewQueue(set)

	require.True(t, q.IsEmpty())
	q.AddForCell(0)
	q.AddForCell(0) // dedup: re-adding must not duplicate
	require.False(t, q.IsEmpty())

	first, ok := q.TakeNext()
	require.True(t, ok)
	assert.Equal(t, 0, first)

	second, ok := q.TakeNext()
	require.True(t, ok)
	assert.Equal(t, 1, second)

	_, ok = q.TakeNext()
	require.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestAddForFixedCellPushesFront(t *testing.T) {
	set := buildSet()
	q := accumulator.NewQueue(set)

	q.AddForCell(0)      // enqueues handlers 0,1
	q.AddForFixedCell(0) // enforcer (handler 2) must jump the queue

	first, ok := q.TakeNext()
	require.True(t, ok)
	assert.Equal(t, 2, first, "exclusion enforcer must run before ordinary handlers")
}

func TestClearEmptiesQueue(t *testing.T) {
	set := buildSet()
	q := accumulator.NewQueue(set)
	q.AddForCell(0)
	q.Clear()
	assert.True(t, q.IsEmpty())
	_, ok := q.TakeNext()
	assert.False(t, ok)
}
