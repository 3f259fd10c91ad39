package coltype

import (
	"math"

	"github.com/eBay/accelerator/endian"
	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/hash"
)

// Int64Codec implements Codec[int64]: fixed 8-byte little-endian
// two's-complement host-endian word, None sentinel math.MinInt64.
//
// The sentinel collision check runs unconditionally, regardless of a
// writer's none_support setting: the bit pattern is reserved at the
// encoding level, not merely at the API level (§7 Overflow).
type Int64Codec struct{}

func (Int64Codec) TypeName() string    { return "Int64" }
func (Int64Codec) NoneAdmissible() bool { return true }
func (Int64Codec) IsNaN(int64) bool     { return false }
func (Int64Codec) Less(a, b int64) bool { return a < b }

func (Int64Codec) AppendEncode(dst []byte, v int64) ([]byte, error) {
	if v == math.MinInt64 {
		return nil, errs.NewOverflow("value %d collides with the Int64 None sentinel", v)
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], uint64(v))
	return append(dst, buf[:]...), nil
}

func (Int64Codec) AppendNone(dst []byte) []byte {
	var buf [8]byte
	endian.Native.PutUint64(buf[:], 1<<63) // bit image of math.MinInt64
	return append(dst, buf[:]...)
}

func (Int64Codec) Decode(src []byte) (int64, bool, int, error) {
	if len(src) < 8 {
		return 0, false, 0, ErrShortBuffer
	}
	v := int64(endian.Native.Uint64(src[:8]))
	return v, v == math.MinInt64, 8, nil
}

func (Int64Codec) Hash(v int64, isNone bool) uint64 {
	if isNone || v == 0 {
		return 0
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], uint64(v))
	return hash.Sum64(buf[:])
}

// Int32Codec implements Codec[int32]: fixed 4-byte little-endian
// two's-complement host-endian word, None sentinel math.MinInt32.
type Int32Codec struct{}

func (Int32Codec) TypeName() string    { return "Int32" }
func (Int32Codec) NoneAdmissible() bool { return true }
func (Int32Codec) IsNaN(int32) bool     { return false }
func (Int32Codec) Less(a, b int32) bool { return a < b }

func (Int32Codec) AppendEncode(dst []byte, v int32) ([]byte, error) {
	if v == math.MinInt32 {
		return nil, errs.NewOverflow("value %d collides with the Int32 None sentinel", v)
	}
	var buf [4]byte
	endian.Native.PutUint32(buf[:], uint32(v))
	return append(dst, buf[:]...), nil
}

func (Int32Codec) AppendNone(dst []byte) []byte {
	var buf [4]byte
	endian.Native.PutUint32(buf[:], 1<<31) // bit image of math.MinInt32
	return append(dst, buf[:]...)
}

func (Int32Codec) Decode(src []byte) (int32, bool, int, error) {
	if len(src) < 4 {
		return 0, false, 0, ErrShortBuffer
	}
	v := int32(endian.Native.Uint32(src[:4]))
	return v, v == math.MinInt32, 4, nil
}

func (Int32Codec) Hash(v int32, isNone bool) uint64 {
	if isNone || v == 0 {
		return 0
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], uint64(int64(v)))
	return hash.Sum64(buf[:])
}
