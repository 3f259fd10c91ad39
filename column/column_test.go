package column

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eBay/accelerator/errs"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "col.gz")
}

func TestInt64WriteReadRoundTrip(t *testing.T) {
	path := tempPath(t)

	w, err := NewInt64Writer(WithWriterName[int64](path))
	require.NoError(t, err)

	values := []int64{1, 2, 3, -4, 5}
	for _, v := range values {
		v := v
		res, err := w.Write(&v)
		require.NoError(t, err)
		require.Equal(t, ResultWritten, res)
	}
	require.NoError(t, w.Close())
	require.Equal(t, int64(len(values)), w.Count())

	min, max, ok := w.MinMax()
	require.True(t, ok)
	require.Equal(t, int64(-4), min)
	require.Equal(t, int64(5), max)

	r, err := NewInt64Reader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	var got []int64
	for {
		v, err := r.Pull()
		require.NoError(t, err)
		if v.EOF {
			break
		}
		got = append(got, v.V)
	}
	require.Equal(t, values, got)
}

func TestWriterNeverCreatesFileIfNothingWritten(t *testing.T) {
	path := tempPath(t)

	w, err := NewInt64Writer(WithWriterName[int64](path))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestWriterNoneRequiresNoneSupport(t *testing.T) {
	path := tempPath(t)

	w, err := NewInt64Writer(WithWriterName[int64](path))
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write(nil)
	require.Error(t, err)
}

func TestWriterNoneSupportRoundTrip(t *testing.T) {
	path := tempPath(t)

	w, err := NewInt64Writer(WithWriterName[int64](path), WithNoneSupport[int64](true))
	require.NoError(t, err)

	one := int64(1)
	_, err = w.Write(&one)
	require.NoError(t, err)
	_, err = w.Write(nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewInt64Reader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Pull()
	require.NoError(t, err)
	require.False(t, v.None)
	require.Equal(t, int64(1), v.V)

	v, err = r.Pull()
	require.NoError(t, err)
	require.True(t, v.None)

	v, err = r.Pull()
	require.NoError(t, err)
	require.True(t, v.EOF)
}

func TestReaderHashfilterPartitionsValues(t *testing.T) {
	path := tempPath(t)

	w, err := NewInt64Writer(WithWriterName[int64](path))
	require.NoError(t, err)
	for i := int64(0); i < 20; i++ {
		i := i
		_, err := w.Write(&i)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := NewInt64Reader(WithName(path), WithHashfilter(0, 3, false))
	require.NoError(t, err)
	defer r.Close()

	var kept, total int
	for {
		v, err := r.Pull()
		require.NoError(t, err)
		if v.EOF {
			break
		}
		total++
		if v.Kept {
			kept++
		}
	}
	require.Equal(t, 20, total)
	require.Greater(t, kept, 0)
	require.Less(t, kept, total)
}

func TestBytesWriteReadRoundTrip(t *testing.T) {
	path := tempPath(t)

	w, err := NewBytesWriter(WithWriterName[[]byte](path))
	require.NoError(t, err)

	values := [][]byte{[]byte("hello"), []byte(""), []byte("world, a longer value to cross short/long blob framing thresholds maybe")}
	for _, v := range values {
		v := v
		_, err := w.Write(&v)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := NewBytesReader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	var got [][]byte
	for {
		v, err := r.Pull()
		require.NoError(t, err)
		if v.EOF {
			break
		}
		got = append(got, v.V)
	}
	require.Equal(t, values, got)
}

func TestReaderProgressCallback(t *testing.T) {
	path := tempPath(t)

	w, err := NewInt64Writer(WithWriterName[int64](path))
	require.NoError(t, err)
	for i := int64(0); i < 10; i++ {
		i := i
		_, err := w.Write(&i)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	var calls []int64
	r, err := NewInt64Reader(
		WithName(path),
		WithWantCount(10),
		WithCallback(func(count int64) error {
			calls = append(calls, count)
			return nil
		}, 3, 100),
	)
	require.NoError(t, err)
	defer r.Close()

	for {
		v, err := r.Pull()
		require.NoError(t, err)
		if v.EOF {
			break
		}
	}

	require.Equal(t, []int64{103, 106, 109}, calls)
}

func TestWriterOverflowNotRecoveredByDefault(t *testing.T) {
	path := tempPath(t)

	fallback := int64(7)
	w, err := NewInt64Writer(WithWriterName[int64](path), WithDefault[int64](fallback))
	require.NoError(t, err)
	defer w.Close()

	sentinel := int64(math.MinInt64)
	_, err = w.Write(&sentinel)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrOverflow))
	require.Equal(t, int64(0), w.Count())
}

func TestOversizeRecordRoundTrip(t *testing.T) {
	path := tempPath(t)

	w, err := NewBytesWriter(WithWriterName[[]byte](path))
	require.NoError(t, err)

	big := []byte(strings.Repeat("x", 300*1024)) // exceeds the 128 KiB lookahead buffer
	small := []byte("tail")
	for _, v := range [][]byte{big, small} {
		v := v
		_, err := w.Write(&v)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := NewBytesReader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Pull()
	require.NoError(t, err)
	require.Equal(t, big, v.V)

	v, err = r.Pull()
	require.NoError(t, err)
	require.Equal(t, small, v.V)

	v, err = r.Pull()
	require.NoError(t, err)
	require.True(t, v.EOF)
}

func TestReaderClosedTwiceReturnsErrClosed(t *testing.T) {
	path := tempPath(t)

	w, err := NewInt64Writer(WithWriterName[int64](path))
	require.NoError(t, err)
	one := int64(1)
	_, err = w.Write(&one)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewInt64Reader(WithName(path))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Error(t, r.Close())
}
