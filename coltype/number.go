package coltype

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/hash"
)

// Number is the variable-length tagged numeric value: either an int64-
// range-or-bigger signed integer (represented here as *big.Int so values
// up to 126 bytes round-trip exactly) or a float64. IsInt distinguishes
// the two; a Number is never simultaneously both.
type Number struct {
	IsInt   bool
	Int     *big.Int
	Float   float64
}

// NumberCodec implements Codec[Number] for the Number logical type: the
// tag-byte dispatch described in §3.3/§4.5. Unlike the fixed-width
// numeric types, every multi-byte field here is little-endian regardless
// of host byte order, matching the explicit "little-endian" wording in
// the format (as opposed to the host-endian fixed-width encodings).
type NumberCodec struct{}

func (NumberCodec) TypeName() string     { return "Number" }
func (NumberCodec) NoneAdmissible() bool { return true }

func (NumberCodec) IsNaN(v Number) bool {
	return !v.IsInt && math.IsNaN(v.Float)
}

func (NumberCodec) Less(a, b Number) bool {
	af, bf := numberAsFloat(a), numberAsFloat(b)
	return af < bf
}

func numberAsFloat(v Number) float64 {
	if v.IsInt {
		f, _ := new(big.Float).SetInt(v.Int).Float64()
		return f
	}
	return v.Float
}

// inline small-int range, per §3.3.
const (
	inlineMin = -5
	inlineMax = 117
)

func (NumberCodec) AppendEncode(dst []byte, v Number) ([]byte, error) {
	if !v.IsInt {
		dst = append(dst, 0x01)
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.Float))
		return append(dst, buf[:]...), nil
	}

	n := v.Int
	if n.IsInt64() {
		iv := n.Int64()
		if iv >= inlineMin && iv <= inlineMax {
			return append(dst, byte(0x80|(iv-inlineMin))), nil
		}
		if iv >= math.MinInt16 && iv <= math.MaxInt16 {
			dst = append(dst, 0x02)
			var buf [2]byte
			binary.LittleEndian.PutUint16(buf[:], uint16(iv))
			return append(dst, buf[:]...), nil
		}
		if iv >= math.MinInt32 && iv <= math.MaxInt32 {
			dst = append(dst, 0x04)
			var buf [4]byte
			binary.LittleEndian.PutUint32(buf[:], uint32(iv))
			return append(dst, buf[:]...), nil
		}

		dst = append(dst, 0x08)
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(iv))
		return append(dst, buf[:]...), nil
	}

	return appendBigInt(dst, n)
}

// appendBigInt finds the smallest byte width in [9, 126] whose signed
// two's-complement range contains n, and appends the tag byte (the width
// itself) followed by that many little-endian bytes.
func appendBigInt(dst []byte, n *big.Int) ([]byte, error) {
	for width := 9; width <= 126; width++ {
		lo, hi := bigIntRange(width)
		if n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0 {
			dst = append(dst, byte(width))
			return append(dst, bigIntToLE(n, width)...), nil
		}
	}

	return nil, errs.NewOverflow("integer value %s exceeds the 126-byte Number encoding limit", n.String())
}

func bigIntRange(width int) (lo, hi *big.Int) {
	bits := uint(width * 8)
	hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits-1), big.NewInt(1))
	lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bits-1))
	return lo, hi
}

// bigIntToLE renders n (which must fit in width bytes per bigIntRange) as
// width bytes of little-endian two's complement.
func bigIntToLE(n *big.Int, width int) []byte {
	out := make([]byte, width)

	if n.Sign() >= 0 {
		b := n.Bytes() // big-endian, minimal length
		for i, bb := range b {
			out[len(b)-1-i] = bb
		}
		return out
	}

	// Two's complement of a negative number: (1<<bits) + n.
	bits := uint(width * 8)
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	twos := new(big.Int).Add(mod, n)
	b := twos.Bytes()
	// left-pad to width bytes (big-endian), then reverse to little-endian.
	padded := make([]byte, width)
	copy(padded[width-len(b):], b)
	for i := 0; i < width; i++ {
		out[i] = padded[width-1-i]
	}
	return out
}

// leToBigInt interprets width little-endian bytes as a signed two's
// complement integer.
func leToBigInt(data []byte) *big.Int {
	width := len(data)
	be := make([]byte, width)
	for i, b := range data {
		be[width-1-i] = b
	}

	u := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		bits := uint(width * 8)
		mod := new(big.Int).Lsh(big.NewInt(1), bits)
		u.Sub(u, mod)
	}
	return u
}

func (NumberCodec) AppendNone(dst []byte) []byte {
	return append(dst, 0x00)
}

func (NumberCodec) Decode(src []byte) (Number, bool, int, error) {
	if len(src) < 1 {
		return Number{}, false, 0, ErrShortBuffer
	}

	tag := src[0]
	switch {
	case tag == 0x00:
		return Number{}, true, 1, nil
	case tag == 0x01:
		if len(src) < 9 {
			return Number{}, false, 0, ErrShortBuffer
		}
		bits := binary.LittleEndian.Uint64(src[1:9])
		return Number{Float: math.Float64frombits(bits)}, false, 9, nil
	case tag >= 0x80 && tag <= 0xFA:
		iv := int64(tag&0x7F) + inlineMin
		return Number{IsInt: true, Int: big.NewInt(iv)}, false, 1, nil
	case tag == 0x02:
		if len(src) < 3 {
			return Number{}, false, 0, ErrShortBuffer
		}
		iv := int16(binary.LittleEndian.Uint16(src[1:3]))
		return Number{IsInt: true, Int: big.NewInt(int64(iv))}, false, 3, nil
	case tag == 0x04:
		if len(src) < 5 {
			return Number{}, false, 0, ErrShortBuffer
		}
		iv := int32(binary.LittleEndian.Uint32(src[1:5]))
		return Number{IsInt: true, Int: big.NewInt(int64(iv))}, false, 5, nil
	case tag == 0x08:
		if len(src) < 9 {
			return Number{}, false, 0, ErrShortBuffer
		}
		iv := int64(binary.LittleEndian.Uint64(src[1:9]))
		return Number{IsInt: true, Int: big.NewInt(iv)}, false, 9, nil
	case tag >= 9 && tag <= 126:
		width := int(tag)
		if len(src) < 1+width {
			return Number{}, false, 0, ErrShortBuffer
		}
		return Number{IsInt: true, Int: leToBigInt(src[1 : 1+width])}, false, 1 + width, nil
	default:
		return Number{}, false, 0, fmt.Errorf("invalid Number tag byte 0x%02x", tag)
	}
}

func (NumberCodec) Hash(v Number, isNone bool) uint64 {
	if isNone {
		return 0
	}

	// Canonicalize: an integral float or an int that fits int64 hashes
	// via the 8-byte little-endian two's-complement image; 0 short-
	// circuits to 0 regardless of representation (§4.1).
	if !v.IsInt {
		if v.Float == math.Trunc(v.Float) && v.Float >= math.MinInt64 && v.Float <= math.MaxInt64 {
			return hashInt64(int64(v.Float))
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.Float))
		return hash.Sum64(buf[:])
	}

	if v.Int.IsInt64() {
		return hashInt64(v.Int.Int64())
	}

	// Bigger than int64: hash its minimal little-endian two's-complement
	// image directly.
	return hash.Sum64(bigIntToLE(v.Int, bigIntMinWidth(v.Int)))
}

func hashInt64(iv int64) uint64 {
	if iv == 0 {
		return 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(iv))
	return hash.Sum64(buf[:])
}

func bigIntMinWidth(n *big.Int) int {
	for width := 9; width <= 126; width++ {
		lo, hi := bigIntRange(width)
		if n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0 {
			return width
		}
	}
	return 126
}
