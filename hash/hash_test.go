package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64EmptyIsZero(t *testing.T) {
	require.Equal(t, uint64(0), Sum64(nil))
	require.Equal(t, uint64(0), Sum64([]byte{}))
}

func TestSum64Deterministic(t *testing.T) {
	data := []byte("content hash input")
	require.Equal(t, Sum64(data), Sum64(data))
}

func TestSum64WithKeyDiffersFromDefault(t *testing.T) {
	data := []byte("same bytes, different key")
	other := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	require.NotEqual(t, Sum64(data), Sum64WithKey(other, data))
}
