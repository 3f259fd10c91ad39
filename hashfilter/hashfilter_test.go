package hashfilter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidatesSliceno(t *testing.T) {
	_, err := New(3, 2, false)
	require.Error(t, err)

	f, err := New(1, 4, false)
	require.NoError(t, err)
	require.Equal(t, uint32(1), f.Sliceno)
	require.Equal(t, uint32(4), f.Slices)
}

func TestAcceptPartitionsByModulo(t *testing.T) {
	f, err := New(2, 4, false)
	require.NoError(t, err)

	require.True(t, f.Accept(2))
	require.True(t, f.Accept(6))
	require.False(t, f.Accept(1))
	require.False(t, f.Accept(3))
}

func TestAcceptNoneWithoutSpread(t *testing.T) {
	f, err := New(0, 4, false)
	require.NoError(t, err)
	require.True(t, f.AcceptNone())

	f2, err := New(1, 4, false)
	require.NoError(t, err)
	require.False(t, f2.AcceptNone())
}

func TestAcceptNoneRoundRobinSpread(t *testing.T) {
	f, err := New(0, 2, true)
	require.NoError(t, err)

	var acceptedFromSlice0, acceptedFromSlice1 int
	for i := 0; i < 10; i++ {
		if f.AcceptNone() {
			acceptedFromSlice0++
		}
	}

	f2, err := New(1, 2, true)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		if f2.AcceptNone() {
			acceptedFromSlice1++
		}
	}

	// Each slice's own instance round-robins independently; across the two
	// instances every None is accepted by exactly one of the two slices.
	require.Equal(t, 10, acceptedFromSlice0+acceptedFromSlice1)
}
