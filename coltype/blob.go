package coltype

import (
	"encoding/binary"
	"fmt"

	"github.com/eBay/accelerator/errs"
)

// maxBlobLength is the largest payload length representable in the long
// form's 32-bit length field, per the format's int32-range contract.
const maxBlobLength = 0x7FFFFFFF

// appendBlob appends the length-prefixed framing defined for Bytes/Ascii/
// Unicode: short form (one length byte) when payload is under 255 bytes
// and is not the single disallowed byte 0x00, long form (0xFF + 4-byte
// length) otherwise.
func appendBlob(dst []byte, payload []byte) ([]byte, error) {
	n := len(payload)
	if n > maxBlobLength {
		return nil, errs.NewOverflow("blob length %d exceeds maximum %d", n, maxBlobLength)
	}

	if n == 1 && payload[0] == 0x00 {
		return nil, errs.NewOverflow("blob payload {0x00} is not representable")
	}

	if n < 255 {
		dst = append(dst, byte(n))
		return append(dst, payload...), nil
	}

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(n)) //nolint:gosec
	dst = append(dst, 0xFF)
	dst = append(dst, lenBuf[:]...)
	return append(dst, payload...), nil
}

// appendBlobNone appends the None marker for the blob framing: long form
// with a zero-length field.
func appendBlobNone(dst []byte) []byte {
	return append(dst, 0xFF, 0, 0, 0, 0)
}

// decodeBlob reads one blob record from the front of src, returning the
// payload (a subslice of src — callers that retain it across a refill
// must copy), whether it was None, and the number of bytes consumed.
func decodeBlob(src []byte) (payload []byte, isNone bool, n int, err error) {
	if len(src) < 1 {
		return nil, false, 0, ErrShortBuffer
	}

	first := src[0]
	if first != 0xFF {
		length := int(first)
		if len(src) < 1+length {
			return nil, false, 0, ErrShortBuffer
		}
		return src[1 : 1+length], false, 1 + length, nil
	}

	if len(src) < 5 {
		return nil, false, 0, ErrShortBuffer
	}

	length := binary.LittleEndian.Uint32(src[1:5])

	switch {
	case length == 0:
		return nil, true, 5, nil
	case length < 255:
		return nil, false, 0, fmt.Errorf("long-form blob length %d is disallowed (must be 0 or >= 255)", length)
	}

	total := 5 + int(length)
	if len(src) < total {
		return nil, false, 0, ErrShortBuffer
	}

	return src[5:total], false, total, nil
}
