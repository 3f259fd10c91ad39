package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMatchesByKindOnly(t *testing.T) {
	err := NewIO("/tmp/x", errors.New("disk full"))
	require.True(t, errors.Is(err, ErrIO))
	require.False(t, errors.Is(err, ErrFormat))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("underlying cause")
	err := NewCompressionInit("gzip", cause)
	require.ErrorIs(t, err, cause)
}

func TestWithContextAddsIndexOnce(t *testing.T) {
	err := NewFormat("/tmp/x", "bad byte")
	wrapped := WithContext(err, "extra", 5)

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	require.Equal(t, int64(5), e.Index)
	require.Contains(t, e.Msg, "extra")

	// Index already set: WithContext must not overwrite it.
	rewrapped := WithContext(wrapped, "more", 9)
	require.True(t, errors.As(rewrapped, &e))
	require.Equal(t, int64(5), e.Index)
}

func TestWithContextPassesThroughForeignErrors(t *testing.T) {
	plain := errors.New("not one of ours")
	require.Same(t, plain, WithContext(plain, "extra", 1))
}

func TestClosedSentinel(t *testing.T) {
	require.True(t, errors.Is(NewClosed(), ErrClosed))
}
