package coltype

import (
	"math"

	"github.com/eBay/accelerator/endian"
	"github.com/eBay/accelerator/hash"
)

// Complex64Codec implements Codec[complex128] for the logical Complex64
// type. The naming is inverted from Go's own complex64/complex128: the
// reference C implementation's complex64 is two C doubles (Py_complex),
// so it maps to Go's complex128, not Go's complex64. See Complex32Codec
// for the matching inversion on the other side.
type Complex64Codec struct{}

func (Complex64Codec) TypeName() string     { return "Complex64" }
func (Complex64Codec) NoneAdmissible() bool { return true }
func (Complex64Codec) IsNaN(v complex128) bool {
	return math.IsNaN(real(v)) || math.IsNaN(imag(v))
}
func (Complex64Codec) Less(a, b complex128) bool {
	return real(a) < real(b) || (real(a) == real(b) && imag(a) < imag(b))
}

func (Complex64Codec) AppendEncode(dst []byte, v complex128) ([]byte, error) {
	var buf [16]byte
	endian.Native.PutUint64(buf[0:8], math.Float64bits(real(v)))
	endian.Native.PutUint64(buf[8:16], math.Float64bits(imag(v)))
	return append(dst, buf[:]...), nil
}

func (Complex64Codec) AppendNone(dst []byte) []byte {
	var buf [16]byte
	endian.Native.PutUint64(buf[0:8], float64NoneBits)
	endian.Native.PutUint64(buf[8:16], 0)
	return append(dst, buf[:]...)
}

func (Complex64Codec) Decode(src []byte) (complex128, bool, int, error) {
	if len(src) < 16 {
		return 0, false, 0, ErrShortBuffer
	}
	reBits := endian.Native.Uint64(src[0:8])
	imBits := endian.Native.Uint64(src[8:16])
	re := math.Float64frombits(reBits)
	im := math.Float64frombits(imBits)
	isNone := reBits == float64NoneBits && imBits == 0
	return complex(re, im), isNone, 16, nil
}

func (Complex64Codec) Hash(v complex128, isNone bool) uint64 {
	if isNone {
		return 0
	}
	if imag(v) == 0 {
		return Float64Codec{}.Hash(real(v), false)
	}
	var buf [16]byte
	endian.Native.PutUint64(buf[0:8], math.Float64bits(real(v)))
	endian.Native.PutUint64(buf[8:16], math.Float64bits(imag(v)))
	return hash.Sum64(buf[:])
}

// Complex32Codec implements Codec[complex64] for the logical Complex32
// type: two C floats (struct{float real,imag;}), mapping to Go's
// complex64, the inverse of the Complex64Codec naming.
type Complex32Codec struct{}

func (Complex32Codec) TypeName() string     { return "Complex32" }
func (Complex32Codec) NoneAdmissible() bool { return true }
func (Complex32Codec) IsNaN(v complex64) bool {
	return math.IsNaN(float64(real(v))) || math.IsNaN(float64(imag(v)))
}
func (Complex32Codec) Less(a, b complex64) bool {
	return real(a) < real(b) || (real(a) == real(b) && imag(a) < imag(b))
}

func (Complex32Codec) AppendEncode(dst []byte, v complex64) ([]byte, error) {
	var buf [8]byte
	endian.Native.PutUint32(buf[0:4], math.Float32bits(real(v)))
	endian.Native.PutUint32(buf[4:8], math.Float32bits(imag(v)))
	return append(dst, buf[:]...), nil
}

func (Complex32Codec) AppendNone(dst []byte) []byte {
	var buf [8]byte
	endian.Native.PutUint32(buf[0:4], float32NoneBits)
	endian.Native.PutUint32(buf[4:8], 0)
	return append(dst, buf[:]...)
}

func (Complex32Codec) Decode(src []byte) (complex64, bool, int, error) {
	if len(src) < 8 {
		return 0, false, 0, ErrShortBuffer
	}
	reBits := endian.Native.Uint32(src[0:4])
	imBits := endian.Native.Uint32(src[4:8])
	re := math.Float32frombits(reBits)
	im := math.Float32frombits(imBits)
	isNone := reBits == float32NoneBits && imBits == 0
	return complex(re, im), isNone, 8, nil
}

// Hash promotes to two float64s before hashing, matching the reference
// hash_complex32 (dsutil/dsutilmodule.c), which widens both components to
// C doubles rather than hashing the raw 8-byte float32 image.
func (Complex32Codec) Hash(v complex64, isNone bool) uint64 {
	if isNone {
		return 0
	}
	if imag(v) == 0 {
		return Float32Codec{}.Hash(real(v), false)
	}
	var buf [16]byte
	endian.Native.PutUint64(buf[0:8], math.Float64bits(float64(real(v))))
	endian.Native.PutUint64(buf[8:16], math.Float64bits(float64(imag(v))))
	return hash.Sum64(buf[:])
}
