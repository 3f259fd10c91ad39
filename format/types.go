// Package format defines the logical type identifiers, re-exported by the
// root accelerator package. A file never carries its own type tag; which
// Reader/Writer constructor a program calls decides how a file is read.
package format

// LogicalType enumerates the supported column types. It is not written to any
// file, and no reader, writer, codec or the free Hash dispatcher consumes it:
// error messages use each codec's TypeName and Hash dispatches on the Go type
// of its argument.
type LogicalType uint8

const (
	Bytes LogicalType = iota + 1
	Ascii
	Unicode
	Number
	Int64
	Int32
	Bits64
	Bits32
	Bool
	Float64
	Float32
	Complex64
	Complex32
	DateTime
	Date
	Time
)

func (t LogicalType) String() string {
	switch t {
	case Bytes:
		return "Bytes"
	case Ascii:
		return "Ascii"
	case Unicode:
		return "Unicode"
	case Number:
		return "Number"
	case Int64:
		return "Int64"
	case Int32:
		return "Int32"
	case Bits64:
		return "Bits64"
	case Bits32:
		return "Bits32"
	case Bool:
		return "Bool"
	case Float64:
		return "Float64"
	case Float32:
		return "Float32"
	case Complex64:
		return "Complex64"
	case Complex32:
		return "Complex32"
	case DateTime:
		return "DateTime"
	case Date:
		return "Date"
	case Time:
		return "Time"
	default:
		return "Unknown"
	}
}
