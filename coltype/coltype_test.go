package coltype

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlobRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x01},
		[]byte("hello"),
		make([]byte, 254),
		make([]byte, 255),
		make([]byte, 256),
		make([]byte, 1000),
	}

	for _, payload := range cases {
		dst, err := appendBlob(nil, payload)
		require.NoError(t, err)

		got, isNone, n, err := decodeBlob(dst)
		require.NoError(t, err)
		require.False(t, isNone)
		require.Equal(t, len(dst), n)
		require.Equal(t, payload, got)
	}
}

func TestBlobDisallowedSingleNull(t *testing.T) {
	_, err := appendBlob(nil, []byte{0x00})
	require.Error(t, err)
}

func TestBlobNone(t *testing.T) {
	dst := appendBlobNone(nil)
	got, isNone, n, err := decodeBlob(dst)
	require.NoError(t, err)
	require.True(t, isNone)
	require.Nil(t, got)
	require.Equal(t, len(dst), n)
}

func TestBlobShortBuffer(t *testing.T) {
	dst, err := appendBlob(nil, []byte("hello"))
	require.NoError(t, err)

	_, _, _, err = decodeBlob(dst[:len(dst)-1])
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestBytesCodecRoundTrip(t *testing.T) {
	c := BytesCodec{}
	for _, v := range [][]byte{[]byte("a"), []byte("hello world"), {}} {
		dst, err := c.AppendEncode(nil, v)
		require.NoError(t, err)

		got, isNone, n, err := c.Decode(dst)
		require.NoError(t, err)
		require.False(t, isNone)
		require.Equal(t, v, got)
		require.Equal(t, len(dst), n)
	}
}

func TestAsciiCodecRejectsHighBytes(t *testing.T) {
	c := AsciiCodec{}
	_, err := c.AppendEncode(nil, []byte{0x80})
	require.Error(t, err)

	_, err = c.AppendEncode(nil, []byte("plain ascii"))
	require.NoError(t, err)
}

func TestUnicodeCodecRoundTrip(t *testing.T) {
	c := UnicodeCodec{}
	for _, v := range []string{"hello", "héllo wörld", "日本語"} {
		dst, err := c.AppendEncode(nil, v)
		require.NoError(t, err)

		got, isNone, n, err := c.Decode(dst)
		require.NoError(t, err)
		require.False(t, isNone)
		require.Equal(t, v, got)
		require.Equal(t, len(dst), n)
	}
}

func TestInt64CodecRoundTripAndSentinel(t *testing.T) {
	c := Int64Codec{}
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64 + 1} {
		dst, err := c.AppendEncode(nil, v)
		require.NoError(t, err)
		got, isNone, n, err := c.Decode(dst)
		require.NoError(t, err)
		require.False(t, isNone)
		require.Equal(t, v, got)
		require.Equal(t, len(dst), n)
	}

	_, err := c.AppendEncode(nil, int64(math.MinInt64))
	require.Error(t, err)

	dst := c.AppendNone(nil)
	_, isNone, _, err := c.Decode(dst)
	require.NoError(t, err)
	require.True(t, isNone)
}

func TestBitsCodecsRoundTrip(t *testing.T) {
	b64 := Bits64Codec{}
	dst, err := b64.AppendEncode(nil, 0xDEADBEEFCAFEBABE)
	require.NoError(t, err)
	got, isNone, n, err := b64.Decode(dst)
	require.NoError(t, err)
	require.False(t, isNone)
	require.Equal(t, uint64(0xDEADBEEFCAFEBABE), got)
	require.Equal(t, len(dst), n)
	require.False(t, b64.NoneAdmissible())

	b32 := Bits32Codec{}
	dst2, err := b32.AppendEncode(nil, 0xCAFEBABE)
	require.NoError(t, err)
	got2, isNone, n2, err := b32.Decode(dst2)
	require.NoError(t, err)
	require.False(t, isNone)
	require.Equal(t, uint32(0xCAFEBABE), got2)
	require.Equal(t, len(dst2), n2)
	require.False(t, b32.NoneAdmissible())
}

func TestBoolCodecHashMatchesIntCanonicalization(t *testing.T) {
	boolCodec := BoolCodec{}
	intCodec := Int64Codec{}
	numCodec := NumberCodec{}

	require.Equal(t, intCodec.Hash(1, false), boolCodec.Hash(true, false))
	require.Equal(t, numCodec.Hash(Number{IsInt: false, Float: 1.0}, false), boolCodec.Hash(true, false))
	require.Equal(t, uint64(0), boolCodec.Hash(false, false))
}

func TestFloat64CodecSentinelAndNaN(t *testing.T) {
	c := Float64Codec{}
	dst := c.AppendNone(nil)
	_, isNone, _, err := c.Decode(dst)
	require.NoError(t, err)
	require.True(t, isNone)

	require.True(t, c.IsNaN(math.NaN()))
	require.False(t, c.IsNaN(1.0))
}

func TestNumberEncodingLengths(t *testing.T) {
	c := NumberCodec{}

	cases := []struct {
		n      Number
		length int
	}{
		{Number{IsInt: true, Int: big.NewInt(0)}, 1},
		{Number{IsInt: true, Int: big.NewInt(117)}, 1},
		{Number{IsInt: true, Int: big.NewInt(118)}, 3},
		{Number{IsInt: true, Int: big.NewInt(-6)}, 3},
		{Number{IsInt: true, Int: big.NewInt(32000)}, 3},
		{Number{IsInt: true, Int: new(big.Int).Lsh(big.NewInt(1), 40)}, 9},
		{Number{IsInt: true, Int: new(big.Int).Lsh(big.NewInt(1), 100)}, 14},
		{Number{IsInt: false, Float: 3.14}, 9},
	}

	for _, tc := range cases {
		dst, err := c.AppendEncode(nil, tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.length, len(dst))
	}

	noneDst := c.AppendNone(nil)
	require.Equal(t, 1, len(noneDst))
}

func TestNumberRoundTripIncludingBigInt(t *testing.T) {
	c := NumberCodec{}

	values := []Number{
		{IsInt: true, Int: big.NewInt(0)},
		{IsInt: true, Int: big.NewInt(117)},
		{IsInt: true, Int: big.NewInt(118)},
		{IsInt: true, Int: big.NewInt(-6)},
		{IsInt: true, Int: new(big.Int).Lsh(big.NewInt(1), 100)},
		{IsInt: false, Float: 3.14},
	}

	for _, v := range values {
		dst, err := c.AppendEncode(nil, v)
		require.NoError(t, err)

		got, isNone, n, err := c.Decode(dst)
		require.NoError(t, err)
		require.False(t, isNone)
		require.Equal(t, len(dst), n)
		if v.IsInt {
			require.True(t, got.IsInt)
			require.Equal(t, 0, got.Int.Cmp(v.Int))
		} else {
			require.Equal(t, v.Float, got.Float)
		}
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	c := DateTimeCodec{}
	v := DateTime{Year: 2024, Month: 3, Day: 15, Hour: 13, Minute: 45, Second: 30, Microsecond: 123456, Fold: false}

	dst, err := c.AppendEncode(nil, v)
	require.NoError(t, err)

	got, isNone, n, err := c.Decode(dst)
	require.NoError(t, err)
	require.False(t, isNone)
	require.Equal(t, len(dst), n)
	require.Equal(t, v, got)
}

func TestDateRoundTrip(t *testing.T) {
	c := DateCodec{}
	v := Date{Year: 2024, Month: 3, Day: 15}

	dst, err := c.AppendEncode(nil, v)
	require.NoError(t, err)

	got, isNone, n, err := c.Decode(dst)
	require.NoError(t, err)
	require.False(t, isNone)
	require.Equal(t, len(dst), n)
	require.Equal(t, v, got)
}

func TestTimeRoundTrip(t *testing.T) {
	c := TimeCodec{}
	v := Time{Hour: 13, Minute: 45, Second: 30, Microsecond: 123456}

	dst, err := c.AppendEncode(nil, v)
	require.NoError(t, err)

	got, isNone, n, err := c.Decode(dst)
	require.NoError(t, err)
	require.False(t, isNone)
	require.Equal(t, len(dst), n)
	require.Equal(t, v, got)
}
