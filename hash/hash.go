// Package hash exposes the raw content-hash primitive used throughout the
// module for slice partitioning: SipHash-2-4 with a fixed 16-byte key burned
// into the library, plus a variant that accepts a caller-supplied key.
//
// Per-type canonicalization (the rules that make hash(1) == hash(1.0) ==
// hash(true)) lives in the coltype package next to each codec; this package
// only wraps the primitive.
package hash

import "github.com/eBay/accelerator/internal/siphash"

// DefaultKey is the fixed 128-bit SipHash key baked into the library. Every
// writer and reader in this module hashes with this key unless told otherwise
// via Sum64WithKey, so that a value placed in slice s by a writer is always
// recognized as belonging to slice s by a reader.
var DefaultKey = [16]byte{94, 70, 175, 255, 152, 30, 237, 97, 252, 125, 174, 76, 165, 112, 16, 9}

// Sum64 computes the canonical 64-bit content hash of data using DefaultKey.
func Sum64(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}

	return siphash.Sum64(DefaultKey, data)
}

// Sum64WithKey computes the 64-bit content hash of data using a caller-supplied
// key, for callers that need a hash family independent of the module default.
func Sum64WithKey(key [16]byte, data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}

	return siphash.Sum64(key, data)
}
