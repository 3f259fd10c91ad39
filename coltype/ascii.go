package coltype

import (
	"fmt"

	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/hash"
)

// AsciiCodec implements Codec[[]byte] for the Ascii logical type: same
// blob framing as Bytes, but every byte must be in 0x01..0x7F.
type AsciiCodec struct{}

func (AsciiCodec) TypeName() string      { return "Ascii" }
func (AsciiCodec) NoneAdmissible() bool  { return true }
func (AsciiCodec) IsNaN(v []byte) bool   { return false }
func (AsciiCodec) Less(a, b []byte) bool { return string(a) < string(b) }

func (AsciiCodec) AppendEncode(dst []byte, v []byte) ([]byte, error) {
	for i, b := range v {
		if b == 0 || b > 0x7F {
			return nil, errs.NewType("ascii value contains byte 0x%02x at offset %d", b, i)
		}
	}
	return appendBlob(dst, v)
}

func (AsciiCodec) AppendNone(dst []byte) []byte {
	return appendBlobNone(dst)
}

func (AsciiCodec) Decode(src []byte) ([]byte, bool, int, error) {
	payload, isNone, n, err := decodeBlob(src)
	if err != nil || isNone {
		return nil, isNone, n, err
	}

	for i, b := range payload {
		if b == 0 || b > 0x7F {
			return nil, false, 0, fmt.Errorf("ascii value contains byte 0x%02x at offset %d", b, i)
		}
	}

	out := make([]byte, len(payload))
	copy(out, payload)
	return out, false, n, nil
}

func (AsciiCodec) Hash(v []byte, isNone bool) uint64 {
	if isNone {
		return 0
	}
	return hash.Sum64(trimTrailingNewline(v))
}
