// Package endian detects the host byte order at startup.
//
// The on-disk format defined by the coltype package is host-endian by choice:
// fixed-width records are written with the runtime's native byte order and no
// byte-order tag, trading cross-endian portability for speed. This package
// exists so every other package can fail fast,
// instead of silently mis-decoding, if that assumption is ever violated.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Native is the byte order this binary was built to run under. The codec
// package uses it for every fixed-width encode/decode; there is no option to
// override it, because doing so would change the on-disk format.
var Native binary.ByteOrder = detect()

// detect uses a fixed integer value to determine the host's byte order.
func detect() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsLittle reports whether the host is little-endian.
func IsLittle() bool { return Native == binary.LittleEndian }

// IsBig reports whether the host is big-endian.
func IsBig() bool { return Native == binary.BigEndian }
