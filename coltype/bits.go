package coltype

import (
	"github.com/eBay/accelerator/endian"
	"github.com/eBay/accelerator/hash"
)

// Bits64Codec implements Codec[uint64]: fixed 8-byte unsigned host-endian
// word. Bits types deliberately do not admit None (§3.1); zero is an
// ordinary value, not a sentinel.
type Bits64Codec struct{}

func (Bits64Codec) TypeName() string     { return "Bits64" }
func (Bits64Codec) NoneAdmissible() bool { return false }
func (Bits64Codec) IsNaN(uint64) bool    { return false }
func (Bits64Codec) Less(a, b uint64) bool { return a < b }

func (Bits64Codec) AppendEncode(dst []byte, v uint64) ([]byte, error) {
	var buf [8]byte
	endian.Native.PutUint64(buf[:], v)
	return append(dst, buf[:]...), nil
}

// AppendNone is unreachable: column.Writer rejects none_support=true
// against a codec whose NoneAdmissible() is false at construction.
func (Bits64Codec) AppendNone(dst []byte) []byte {
	var buf [8]byte
	return append(dst, buf[:]...)
}

func (Bits64Codec) Decode(src []byte) (uint64, bool, int, error) {
	if len(src) < 8 {
		return 0, false, 0, ErrShortBuffer
	}
	return endian.Native.Uint64(src[:8]), false, 8, nil
}

func (Bits64Codec) Hash(v uint64, isNone bool) uint64 {
	if isNone || v == 0 {
		return 0
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], v)
	return hash.Sum64(buf[:])
}

// Bits32Codec implements Codec[uint32]: fixed 4-byte unsigned host-endian
// word, same None-inadmissibility as Bits64.
type Bits32Codec struct{}

func (Bits32Codec) TypeName() string     { return "Bits32" }
func (Bits32Codec) NoneAdmissible() bool { return false }
func (Bits32Codec) IsNaN(uint32) bool    { return false }
func (Bits32Codec) Less(a, b uint32) bool { return a < b }

func (Bits32Codec) AppendEncode(dst []byte, v uint32) ([]byte, error) {
	var buf [4]byte
	endian.Native.PutUint32(buf[:], v)
	return append(dst, buf[:]...), nil
}

func (Bits32Codec) AppendNone(dst []byte) []byte {
	var buf [4]byte
	return append(dst, buf[:]...)
}

func (Bits32Codec) Decode(src []byte) (uint32, bool, int, error) {
	if len(src) < 4 {
		return 0, false, 0, ErrShortBuffer
	}
	return endian.Native.Uint32(src[:4]), false, 4, nil
}

func (Bits32Codec) Hash(v uint32, isNone bool) uint64 {
	if isNone || v == 0 {
		return 0
	}
	var buf [8]byte
	endian.Native.PutUint64(buf[:], uint64(v))
	return hash.Sum64(buf[:])
}
