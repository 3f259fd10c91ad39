// Package accelerator provides a typed, columnar, streaming binary codec:
// one compressed file per logical column type, read and written value by
// value, with a shared SipHash-based content hash used to partition rows
// across slices (hashfilter) and to detect which rows two files agree on.
//
// The package itself only re-exports the per-type Reader/Writer
// constructors from column and lines, and provides Hash/RawHash, the
// free-standing hash operations that do not require opening a file.
// Everything else lives in its own package: coltype (per-type codecs and
// wire encoding), column (the generic read/write engine), hashfilter
// (slice partitioning), minmax (accumulator), compress (the compressor
// v-table) and lines (newline-delimited text surfaces).
package accelerator

import (
	"fmt"

	"github.com/eBay/accelerator/coltype"
	"github.com/eBay/accelerator/column"
	"github.com/eBay/accelerator/format"
	"github.com/eBay/accelerator/hash"
	"github.com/eBay/accelerator/lines"
)

// Reader/Writer type aliases and constructors, re-exported from column and
// lines so a caller depending only on this package gets the whole module
// surface (mirrors the teacher's top-level mebo.go convenience surface).
type (
	BytesReader     = column.BytesReader
	BytesWriter     = column.BytesWriter
	AsciiReader     = column.AsciiReader
	AsciiWriter     = column.AsciiWriter
	UnicodeReader   = column.UnicodeReader
	UnicodeWriter   = column.UnicodeWriter
	NumberReader    = column.NumberReader
	NumberWriter    = column.NumberWriter
	Int64Reader     = column.Int64Reader
	Int64Writer     = column.Int64Writer
	Int32Reader     = column.Int32Reader
	Int32Writer     = column.Int32Writer
	Bits64Reader    = column.Bits64Reader
	Bits64Writer    = column.Bits64Writer
	Bits32Reader    = column.Bits32Reader
	Bits32Writer    = column.Bits32Writer
	BoolReader      = column.BoolReader
	BoolWriter      = column.BoolWriter
	Float64Reader   = column.Float64Reader
	Float64Writer   = column.Float64Writer
	Float32Reader   = column.Float32Reader
	Float32Writer   = column.Float32Writer
	Complex64Reader = column.Complex64Reader
	Complex64Writer = column.Complex64Writer
	Complex32Reader = column.Complex32Reader
	Complex32Writer = column.Complex32Writer
	DateTimeReader  = column.DateTimeReader
	DateTimeWriter  = column.DateTimeWriter
	DateReader      = column.DateReader
	DateWriter      = column.DateWriter
	TimeReader      = column.TimeReader
	TimeWriter      = column.TimeWriter

	UnicodeLinesReader = lines.UnicodeLinesReader
	UnicodeLinesWriter = lines.UnicodeLinesWriter
	AsciiLinesReader   = lines.AsciiLinesReader
	AsciiLinesWriter   = lines.AsciiLinesWriter
)

var (
	NewBytesReader     = column.NewBytesReader
	NewBytesWriter     = column.NewBytesWriter
	NewAsciiReader     = column.NewAsciiReader
	NewAsciiWriter     = column.NewAsciiWriter
	NewUnicodeReader   = column.NewUnicodeReader
	NewUnicodeWriter   = column.NewUnicodeWriter
	NewNumberReader    = column.NewNumberReader
	NewNumberWriter    = column.NewNumberWriter
	NewInt64Reader     = column.NewInt64Reader
	NewInt64Writer     = column.NewInt64Writer
	NewInt32Reader     = column.NewInt32Reader
	NewInt32Writer     = column.NewInt32Writer
	NewBits64Reader    = column.NewBits64Reader
	NewBits64Writer    = column.NewBits64Writer
	NewBits32Reader    = column.NewBits32Reader
	NewBits32Writer    = column.NewBits32Writer
	NewBoolReader      = column.NewBoolReader
	NewBoolWriter      = column.NewBoolWriter
	NewFloat64Reader   = column.NewFloat64Reader
	NewFloat64Writer   = column.NewFloat64Writer
	NewFloat32Reader   = column.NewFloat32Reader
	NewFloat32Writer   = column.NewFloat32Writer
	NewComplex64Reader = column.NewComplex64Reader
	NewComplex64Writer = column.NewComplex64Writer
	NewComplex32Reader = column.NewComplex32Reader
	NewComplex32Writer = column.NewComplex32Writer
	NewDateTimeReader  = column.NewDateTimeReader
	NewDateTimeWriter  = column.NewDateTimeWriter
	NewDateReader      = column.NewDateReader
	NewDateWriter      = column.NewDateWriter
	NewTimeReader      = column.NewTimeReader
	NewTimeWriter      = column.NewTimeWriter

	NewUnicodeLinesReader = lines.NewUnicodeLinesReader
	NewUnicodeLinesWriter = lines.NewUnicodeLinesWriter
	NewAsciiLinesReader   = lines.NewAsciiLinesReader
	NewAsciiLinesWriter   = lines.NewAsciiLinesWriter
)

// ReaderOption and WriterOption re-export column's option types, and
// WithName/WithWriterName its file-name options, so opening a named
// column file through this package's New* constructors needs no column
// import. The remaining option constructors live in column.
type (
	ReaderOption = column.ReaderOption
	// WriterOption is a defined type over column.WriterOption[T] rather
	// than an alias; its values are interchangeable with column's.
	WriterOption[T any] column.WriterOption[T]

	LineReaderOption = lines.ReaderOption
	LineWriterOption = lines.WriterOption
)

// WithName re-exports column.WithName.
var WithName = column.WithName

// WithWriterName re-exports column.WithWriterName.
func WithWriterName[T any](name string) column.WriterOption[T] {
	return column.WithWriterName[T](name)
}

// LogicalType re-exports format.LogicalType so callers need not import the
// format package directly.
type LogicalType = format.LogicalType

const (
	Bytes     = format.Bytes
	Ascii     = format.Ascii
	Unicode   = format.Unicode
	Number    = format.Number
	Int64     = format.Int64
	Int32     = format.Int32
	Bits64    = format.Bits64
	Bits32    = format.Bits32
	Bool      = format.Bool
	Float64   = format.Float64
	Float32   = format.Float32
	Complex64 = format.Complex64
	Complex32 = format.Complex32
	DateTime  = format.DateTime
	Date      = format.Date
	Time      = format.Time
)

// RawHash computes the module's canonical 64-bit content hash of the raw
// bytes data, with no per-type canonicalization. It is the primitive
// coltype's per-type Hash methods build on.
func RawHash(data []byte) uint64 { return hash.Sum64(data) }

// Hash computes the canonical content hash of v using the same
// per-type canonicalization rule the matching column type's codec applies,
// so that hash(int64(1)) == hash(float64(1.0)) == hash(true) (§4.1).
//
// v must be one of: nil, bool, int64, int32, uint64, uint32, float64,
// float32, complex128, complex64, []byte, string, coltype.Number,
// coltype.DateTime, coltype.Date or coltype.Time. Any other type panics.
func Hash(v any) uint64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		return coltype.BoolCodec{}.Hash(x, false)
	case int64:
		return coltype.Int64Codec{}.Hash(x, false)
	case int32:
		return coltype.Int32Codec{}.Hash(x, false)
	case uint64:
		return coltype.Bits64Codec{}.Hash(x, false)
	case uint32:
		return coltype.Bits32Codec{}.Hash(x, false)
	case float64:
		return coltype.Float64Codec{}.Hash(x, false)
	case float32:
		return coltype.Float32Codec{}.Hash(x, false)
	case complex128:
		return coltype.Complex64Codec{}.Hash(x, false)
	case complex64:
		return coltype.Complex32Codec{}.Hash(x, false)
	case []byte:
		return coltype.BytesCodec{}.Hash(x, false)
	case string:
		return coltype.UnicodeCodec{}.Hash(x, false)
	case coltype.Number:
		return coltype.NumberCodec{}.Hash(x, false)
	case coltype.DateTime:
		return coltype.DateTimeCodec{}.Hash(x, false)
	case coltype.Date:
		return coltype.DateCodec{}.Hash(x, false)
	case coltype.Time:
		return coltype.TimeCodec{}.Hash(x, false)
	default:
		panic(fmt.Sprintf("accelerator: Hash: unsupported type %T", v))
	}
}
