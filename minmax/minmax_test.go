package minmax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func TestAccumulatorEmpty(t *testing.T) {
	var acc Accumulator[int]
	_, _, ok := acc.MinMax()
	require.False(t, ok)
}

func TestAccumulatorTracksExtremes(t *testing.T) {
	var acc Accumulator[int]
	for _, v := range []int{5, 1, 9, -3, 4} {
		acc.Observe(v, false, intLess)
	}

	min, max, ok := acc.MinMax()
	require.True(t, ok)
	require.Equal(t, -3, min)
	require.Equal(t, 9, max)
}

func TestAccumulatorNaNDisplacedByFirstRealValue(t *testing.T) {
	var acc Accumulator[float64]
	less := func(a, b float64) bool { return a < b }

	acc.Observe(0, true, less) // NaN placeholder
	min, max, ok := acc.MinMax()
	require.True(t, ok)
	require.Equal(t, float64(0), min)
	require.Equal(t, float64(0), max)

	acc.Observe(5, false, less)
	min, max, ok = acc.MinMax()
	require.True(t, ok)
	require.Equal(t, float64(5), min)
	require.Equal(t, float64(5), max)

	// A later NaN must not displace the now-real extrema.
	acc.Observe(0, true, less)
	min, max, ok = acc.MinMax()
	require.True(t, ok)
	require.Equal(t, float64(5), min)
	require.Equal(t, float64(5), max)
}
