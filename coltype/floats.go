package coltype

import (
	"math"

	"github.com/eBay/accelerator/endian"
	"github.com/eBay/accelerator/hash"
)

// float64NoneBits and float32NoneBits are the exact signalling-NaN bit
// patterns the reference implementation reserves for None, taken
// bit-for-bit from original_source/dsutil/dsutilmodule.c's noneval_double
// / noneval_float byte arrays (0xdead-patterned, host-endian).
const (
	float64NoneBits uint64 = 0xFFF0ADDEADDEADDE
	float32NoneBits uint32 = 0xFF80ADDE
)

// Float64Codec implements Codec[float64]: 8-byte IEEE-754 double, host
// endian, None sentinel float64NoneBits.
type Float64Codec struct{}

func (Float64Codec) TypeName() string    { return "Float64" }
func (Float64Codec) NoneAdmissible() bool { return true }
func (Float64Codec) IsNaN(v float64) bool { return math.IsNaN(v) }
func (Float64Codec) Less(a, b float64) bool { return a < b }

func (Float64Codec) AppendEncode(dst []byte, v float64) ([]byte, error) {
	var buf [8]byte
	endian.Native.PutUint64(buf[:], math.Float64bits(v))
	return append(dst, buf[:]...), nil
}

func (Float64Codec) AppendNone(dst []byte) []byte {
	var buf [8]byte
	endian.Native.PutUint64(buf[:], float64NoneBits)
	return append(dst, buf[:]...)
}

func (Float64Codec) Decode(src []byte) (float64, bool, int, error) {
	if len(src) < 8 {
		return 0, false, 0, ErrShortBuffer
	}
	bits := endian.Native.Uint64(src[:8])
	return math.Float64frombits(bits), bits == float64NoneBits, 8, nil
}

func (Float64Codec) Hash(v float64, isNone bool) uint64 {
	if isNone {
		return 0
	}
	if v == math.Trunc(v) && v >= math.MinInt64 && v <= math.MaxInt64 && !math.IsNaN(v) {
		return hashInt64(int64(v))
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], math.Float64bits(v))
	return hash.Sum64(buf[:])
}

// Float32Codec implements Codec[float32]: 4-byte IEEE-754 single, host
// endian, None sentinel float32NoneBits.
type Float32Codec struct{}

func (Float32Codec) TypeName() string    { return "Float32" }
func (Float32Codec) NoneAdmissible() bool { return true }
func (Float32Codec) IsNaN(v float32) bool { return math.IsNaN(float64(v)) }
func (Float32Codec) Less(a, b float32) bool { return a < b }

func (Float32Codec) AppendEncode(dst []byte, v float32) ([]byte, error) {
	var buf [4]byte
	endian.Native.PutUint32(buf[:], math.Float32bits(v))
	return append(dst, buf[:]...), nil
}

func (Float32Codec) AppendNone(dst []byte) []byte {
	var buf [4]byte
	endian.Native.PutUint32(buf[:], float32NoneBits)
	return append(dst, buf[:]...)
}

func (Float32Codec) Decode(src []byte) (float32, bool, int, error) {
	if len(src) < 4 {
		return 0, false, 0, ErrShortBuffer
	}
	bits := endian.Native.Uint32(src[:4])
	return math.Float32frombits(bits), bits == float32NoneBits, 4, nil
}

func (Float32Codec) Hash(v float32, isNone bool) uint64 {
	if isNone {
		return 0
	}
	fv := float64(v)
	if fv == math.Trunc(fv) && fv >= math.MinInt64 && fv <= math.MaxInt64 && !math.IsNaN(fv) {
		return hashInt64(int64(fv))
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], math.Float64bits(fv))
	return hash.Sum64(buf[:])
}
