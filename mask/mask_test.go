package mask_test

import (
	"testing"

	"github.com/katalvlaran/vsudoku/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllValues(t *testing.T) {
	require.Equal(t, mask.Set(0b111111111), mask.AllValues(9))
	require.Equal(t, mask.Set(0), mask.AllValues(0))
	require.Equal(t, ^mask.Set(0), mask.AllValues(32))
}

func TestBitAndHas(t *testing.T) {
	s := mask.Bit(3) | mask.Bit(7)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(4))
	assert.Equal(t, 2, s.Popcount())
}

func TestSingletonAndEmpty(t *testing.T) {
	assert.True(t, mask.Bit(5).IsSingleton())
	assert.False(t, mask.Empty.IsSingleton())
	assert.True(t, mask.Empty.IsEmpty())
	assert.False(t, mask.Bit(5).IsEmpty())
}

func TestLowAndWithout(t *testing.T) {
	s := mask.Bit(2) | mask.Bit(5) | mask.Bit(9)
	require.Equal(t, 2, s.Low())
	s2 := s.Without(2)
	require.Equal(t, 5, s2.Low())
	require.Equal(t, []int{5, 9}, s2.Values())
}

func TestNextIteration(t *testing.T) {
	s := mask.AllValues(4)
	var got []int
	for rest := s; rest != 0; {
		var v int
		v, rest = rest.Next()
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)
}
