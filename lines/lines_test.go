package lines

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "lines.gz")
}

func TestUnicodeLinesRoundTrip(t *testing.T) {
	path := tempPath(t)

	w, err := NewUnicodeLinesWriter(WithWriterName(path))
	require.NoError(t, err)

	input := []string{"hello", "héllo wörld", "日本語", "last line"}
	for _, line := range input {
		require.NoError(t, w.Write(line))
	}
	require.NoError(t, w.Close())
	require.Equal(t, int64(len(input)), w.Count())

	r, err := NewUnicodeLinesReader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	var got []string
	for {
		v, err := r.Pull()
		require.NoError(t, err)
		if v.EOF {
			break
		}
		got = append(got, v.Line)
	}
	require.Equal(t, input, got)
}

func TestUnicodeLinesStripBOM(t *testing.T) {
	path := tempPath(t)

	w, err := NewUnicodeLinesWriter(WithWriterName(path), WithWriteBOM(true))
	require.NoError(t, err)
	require.NoError(t, w.Write("first"))
	require.NoError(t, w.Write("second"))
	require.NoError(t, w.Close())

	r, err := NewUnicodeLinesReader(WithName(path), WithStripBOM(true))
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Pull()
	require.NoError(t, err)
	require.Equal(t, "first", v.Line)

	v, err = r.Pull()
	require.NoError(t, err)
	require.Equal(t, "second", v.Line)
}

func TestUnicodeLinesWithoutStripBOMKeepsMark(t *testing.T) {
	path := tempPath(t)

	w, err := NewUnicodeLinesWriter(WithWriterName(path), WithWriteBOM(true))
	require.NoError(t, err)
	require.NoError(t, w.Write("first"))
	require.NoError(t, w.Close())

	r, err := NewUnicodeLinesReader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Pull()
	require.NoError(t, err)
	require.NotEqual(t, "first", v.Line)
	require.Contains(t, v.Line, "first")
}

func TestAsciiLinesRejectsHighBytes(t *testing.T) {
	path := tempPath(t)

	w, err := NewAsciiLinesWriter(WithWriterName(path))
	require.NoError(t, err)
	defer w.Close()

	err = w.Write("héllo")
	require.Error(t, err)
}

func TestAsciiLinesRoundTrip(t *testing.T) {
	path := tempPath(t)

	w, err := NewAsciiLinesWriter(WithWriterName(path))
	require.NoError(t, err)
	require.NoError(t, w.Write("plain ascii line"))
	require.NoError(t, w.Close())

	r, err := NewAsciiLinesReader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Pull()
	require.NoError(t, err)
	require.Equal(t, "plain ascii line", v.Line)
}

func TestCRLFStripped(t *testing.T) {
	path := tempPath(t)

	w, err := NewUnicodeLinesWriter(WithWriterName(path))
	require.NoError(t, err)
	require.NoError(t, w.Write("line with trailing cr\r"))
	require.NoError(t, w.Close())

	r, err := NewUnicodeLinesReader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Pull()
	require.NoError(t, err)
	require.Equal(t, "line with trailing cr", v.Line)
}
