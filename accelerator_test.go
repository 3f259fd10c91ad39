package accelerator

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/eBay/accelerator/coltype"
	"github.com/stretchr/testify/require"
)

func TestHashCanonicalizesAcrossTypes(t *testing.T) {
	require.Equal(t, Hash(int64(1)), Hash(true))
	require.Equal(t, Hash(int64(1)), Hash(float64(1.0)))
	require.Equal(t, Hash(int64(1)), Hash(coltype.Number{IsInt: true, Int: big.NewInt(1)}))
}

func TestHashNilIsZero(t *testing.T) {
	require.Equal(t, uint64(0), Hash(nil))
}

func TestHashPanicsOnUnsupportedType(t *testing.T) {
	require.Panics(t, func() {
		Hash(struct{}{})
	})
}

func TestRootLevelConstructorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "col.gz")

	w, err := NewInt64Writer(WithWriterName[int64](path))
	require.NoError(t, err)
	one := int64(42)
	_, err = w.Write(&one)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewInt64Reader(WithName(path))
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Pull()
	require.NoError(t, err)
	require.Equal(t, int64(42), v.V)
}
