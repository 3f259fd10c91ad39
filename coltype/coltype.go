// Package coltype implements the per-logical-type binary codecs that the
// column package's generic read/write engine is parameterized over: one
// Codec[T] per supported logical type (Bytes, Ascii, Unicode, Number,
// Int64, Int32, Bits64, Bits32, Bool, Float64, Float32, Complex64,
// Complex32, DateTime, Date, Time).
//
// Every codec agrees on one calling convention: AppendEncode/AppendNone
// append to a caller-supplied slice and return the grown slice (the
// append-style idiom column.Writer uses to avoid a per-record
// allocation), and Decode takes a read-only byte slice that may not yet
// contain a full record, signalling that case with ErrShortBuffer rather
// than a truncation error so the read engine knows to refill and retry.
package coltype

import "errors"

// ErrShortBuffer is returned by Decode when src does not yet hold a
// complete record. It is not a format error; column.Reader treats it as
// a refill signal, never as a sticky failure.
var ErrShortBuffer = errors.New("coltype: short buffer")

// Codec is the strategy interface the column package's generic
// Reader[T]/Writer[T] engine drives. Implementations are stateless and
// safe for concurrent use by independent Reader/Writer instances (never
// by the same instance from two goroutines, per the module's
// single-threaded-per-instance contract).
type Codec[T any] interface {
	// TypeName identifies the logical type in error messages.
	TypeName() string

	// NoneAdmissible reports whether this type can represent an absent
	// value at all. Bits64 and Bits32 are the only types that answer
	// false; constructing a Writer with none support requested against
	// such a codec is a construction-time BadConfig error.
	NoneAdmissible() bool

	// AppendEncode appends the binary encoding of v to dst and returns
	// the result. It returns an error if v cannot be represented (out of
	// range, or coincides with the type's reserved None sentinel).
	AppendEncode(dst []byte, v T) ([]byte, error)

	// AppendNone appends the type's None encoding to dst. Codecs with
	// NoneAdmissible() == false never call this from the engine.
	AppendNone(dst []byte) []byte

	// Decode reads one record from the front of src. On success it
	// returns the decoded value (isNone set when the record was the
	// None sentinel), and n, the number of bytes consumed. If src does
	// not contain a full record, it returns ErrShortBuffer and n == 0.
	// Any other error is a format error and is sticky at the engine
	// level.
	Decode(src []byte) (v T, isNone bool, n int, err error)

	// Hash computes the canonical content hash of v, following this
	// type's canonicalization rule (implemented by each codec's Hash
	// method on top of the hash package's raw primitive). isNone
	// values always hash to 0 regardless of v.
	Hash(v T, isNone bool) uint64

	// Less reports whether a sorts before b by the type's natural order,
	// used by the min/max accumulator. Behavior is unspecified if either
	// value is the type's NaN-equivalent; callers must check IsNaN first.
	Less(a, b T) bool

	// IsNaN reports whether v is a NaN-equivalent for this type (only
	// Float64, Float32, Complex64 and Complex32 ever answer true).
	IsNaN(v T) bool
}
