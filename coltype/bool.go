package coltype

import (
	"fmt"

	"github.com/eBay/accelerator/endian"
	"github.com/eBay/accelerator/hash"
)

// BoolCodec implements Codec[bool]: single byte, 0 or 1, None sentinel
// 255.
type BoolCodec struct{}

func (BoolCodec) TypeName() string    { return "Bool" }
func (BoolCodec) NoneAdmissible() bool { return true }
func (BoolCodec) IsNaN(bool) bool      { return false }
func (BoolCodec) Less(a, b bool) bool  { return !a && b }

func (BoolCodec) AppendEncode(dst []byte, v bool) ([]byte, error) {
	if v {
		return append(dst, 1), nil
	}
	return append(dst, 0), nil
}

func (BoolCodec) AppendNone(dst []byte) []byte {
	return append(dst, 255)
}

func (BoolCodec) Decode(src []byte) (bool, bool, int, error) {
	if len(src) < 1 {
		return false, false, 0, ErrShortBuffer
	}
	switch src[0] {
	case 0:
		return false, false, 1, nil
	case 1:
		return true, false, 1, nil
	case 255:
		return false, true, 1, nil
	default:
		return false, false, 0, fmt.Errorf("invalid Bool byte 0x%02x", src[0])
	}
}

// Hash canonicalizes bool through the same integer rule every other
// integer-like type uses, so hash(true) == hash(1) == hash(1.0) (§4.1,
// testable property 5).
func (BoolCodec) Hash(v bool, isNone bool) uint64 {
	if isNone || !v {
		return 0
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], 1)
	return hash.Sum64(buf[:])
}
