package coltype

import "github.com/eBay/accelerator/hash"

// BytesCodec implements Codec[[]byte] for the Bytes logical type: an
// arbitrary byte string under the §3.2 blob framing, hashed over its raw
// payload with no length prefix.
type BytesCodec struct{}

func (BytesCodec) TypeName() string      { return "Bytes" }
func (BytesCodec) NoneAdmissible() bool  { return true }
func (BytesCodec) IsNaN(v []byte) bool   { return false }
func (BytesCodec) Less(a, b []byte) bool { return string(a) < string(b) }

func (BytesCodec) AppendEncode(dst []byte, v []byte) ([]byte, error) {
	return appendBlob(dst, v)
}

func (BytesCodec) AppendNone(dst []byte) []byte {
	return appendBlobNone(dst)
}

func (BytesCodec) Decode(src []byte) ([]byte, bool, int, error) {
	payload, isNone, n, err := decodeBlob(src)
	if err != nil || isNone {
		return nil, isNone, n, err
	}

	// Copy out: payload aliases the caller's read buffer, which is
	// reused/refilled after this call returns.
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, false, n, nil
}

func (BytesCodec) Hash(v []byte, isNone bool) uint64 {
	if isNone {
		return 0
	}
	return hash.Sum64(trimTrailingNewline(v))
}

// trimTrailingNewline strips every trailing \r and \n byte, per the hash
// canonicalization rule shared by Bytes/Ascii/Unicode (§4.1): values that
// differ only by a line terminator hash equal.
func trimTrailingNewline(v []byte) []byte {
	for len(v) > 0 && (v[len(v)-1] == '\n' || v[len(v)-1] == '\r') {
		v = v[:len(v)-1]
	}
	return v
}
