package coltype

import (
	"fmt"
	"unicode/utf8"

	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/hash"
)

// UnicodeCodec implements Codec[string] for the Unicode logical type:
// UTF-8 text under the §3.2 blob framing.
type UnicodeCodec struct{}

func (UnicodeCodec) TypeName() string     { return "Unicode" }
func (UnicodeCodec) NoneAdmissible() bool { return true }
func (UnicodeCodec) IsNaN(v string) bool  { return false }
func (UnicodeCodec) Less(a, b string) bool { return a < b }

func (UnicodeCodec) AppendEncode(dst []byte, v string) ([]byte, error) {
	if !utf8.ValidString(v) {
		return nil, errs.NewType("value is not valid UTF-8")
	}
	return appendBlob(dst, []byte(v))
}

func (UnicodeCodec) AppendNone(dst []byte) []byte {
	return appendBlobNone(dst)
}

func (UnicodeCodec) Decode(src []byte) (string, bool, int, error) {
	payload, isNone, n, err := decodeBlob(src)
	if err != nil || isNone {
		return "", isNone, n, err
	}

	if !utf8.Valid(payload) {
		return "", false, 0, fmt.Errorf("value is not valid UTF-8")
	}

	return string(payload), false, n, nil
}

func (UnicodeCodec) Hash(v string, isNone bool) uint64 {
	if isNone {
		return 0
	}
	return hash.Sum64([]byte(trimTrailingNewlineString(v)))
}

func trimTrailingNewlineString(v string) string {
	for len(v) > 0 && (v[len(v)-1] == '\n' || v[len(v)-1] == '\r') {
		v = v[:len(v)-1]
	}
	return v
}
