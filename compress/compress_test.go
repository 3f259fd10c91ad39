package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUnknownCodec(t *testing.T) {
	_, err := Get("made-up-codec-name")
	require.Error(t, err)
}

func TestGetKnownCodecs(t *testing.T) {
	for _, name := range []string{"gzip", "zstd", "s2", "lz4", "none"} {
		c, err := Get(name)
		require.NoError(t, err)
		require.Equal(t, name, c.Name())
	}
}

func roundTrip(t *testing.T, name string) {
	t.Helper()

	codec, err := Get(name)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := codec.OpenWriter(&buf, 0)
	require.NoError(t, err)

	payload := []byte("the quick brown fox jumps over the lazy dog, repeated for compressibility: the quick brown fox jumps over the lazy dog")
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := codec.OpenReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestRoundTripEachCodec(t *testing.T) {
	for _, name := range []string{"gzip", "zstd", "s2", "lz4", "none"} {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, name)
		})
	}
}

func TestGzipRejectsNonGzipStream(t *testing.T) {
	codec, err := Get("gzip")
	require.NoError(t, err)

	_, err = codec.OpenReader(bytes.NewReader([]byte("not a gzip stream")))
	require.Error(t, err)
}

func TestRegisterPanicsOnEmptyName(t *testing.T) {
	require.Panics(t, func() {
		Register("", noopCodec{})
	})
}
