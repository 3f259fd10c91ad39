package siphash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64Deterministic(t *testing.T) {
	var key [16]byte
	for i := range key {
		key[i] = byte(i)
	}

	data := []byte("the quick brown fox")
	require.Equal(t, Sum64(key, data), Sum64(key, data))
}

func TestSum64SensitiveToKey(t *testing.T) {
	var key1, key2 [16]byte
	for i := range key1 {
		key1[i] = byte(i)
		key2[i] = byte(i + 1)
	}

	data := []byte("same message, different key")
	require.NotEqual(t, Sum64(key1, data), Sum64(key2, data))
}

func TestSum64SensitiveToInput(t *testing.T) {
	var key [16]byte
	require.NotEqual(t, Sum64(key, []byte("a")), Sum64(key, []byte("b")))
}

func TestSum64VariousLengths(t *testing.T) {
	var key [16]byte
	for i := range key {
		key[i] = byte(i)
	}

	seen := map[uint64]bool{}
	for n := 0; n < 40; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		h := Sum64(key, data)
		require.False(t, seen[h], "length %d collided with a shorter/longer input", n)
		seen[h] = true
	}
}
