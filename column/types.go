package column

import "github.com/eBay/accelerator/coltype"

// One Reader/Writer type alias pair and constructor pair per logical
// type (§2 "Module surface"), each instantiating the generic engine with
// the matching coltype.Codec.

type (
	BytesReader    = Reader[[]byte]
	BytesWriter    = Writer[[]byte]
	AsciiReader    = Reader[[]byte]
	AsciiWriter    = Writer[[]byte]
	UnicodeReader  = Reader[string]
	UnicodeWriter  = Writer[string]
	NumberReader   = Reader[coltype.Number]
	NumberWriter   = Writer[coltype.Number]
	Int64Reader    = Reader[int64]
	Int64Writer    = Writer[int64]
	Int32Reader    = Reader[int32]
	Int32Writer    = Writer[int32]
	Bits64Reader   = Reader[uint64]
	Bits64Writer   = Writer[uint64]
	Bits32Reader   = Reader[uint32]
	Bits32Writer   = Writer[uint32]
	BoolReader     = Reader[bool]
	BoolWriter     = Writer[bool]
	Float64Reader  = Reader[float64]
	Float64Writer  = Writer[float64]
	Float32Reader  = Reader[float32]
	Float32Writer  = Writer[float32]
	Complex64Reader = Reader[complex128]
	Complex64Writer = Writer[complex128]
	Complex32Reader = Reader[complex64]
	Complex32Writer = Writer[complex64]
	DateTimeReader  = Reader[coltype.DateTime]
	DateTimeWriter  = Writer[coltype.DateTime]
	DateReader      = Reader[coltype.Date]
	DateWriter      = Writer[coltype.Date]
	TimeReader      = Reader[coltype.Time]
	TimeWriter      = Writer[coltype.Time]
)

func NewBytesReader(opts ...ReaderOption) (*BytesReader, error) {
	return newReader[[]byte](coltype.BytesCodec{}, opts...)
}

func NewBytesWriter(opts ...WriterOption[[]byte]) (*BytesWriter, error) {
	return newWriter[[]byte](coltype.BytesCodec{}, opts...)
}

func NewAsciiReader(opts ...ReaderOption) (*AsciiReader, error) {
	return newReader[[]byte](coltype.AsciiCodec{}, opts...)
}

func NewAsciiWriter(opts ...WriterOption[[]byte]) (*AsciiWriter, error) {
	return newWriter[[]byte](coltype.AsciiCodec{}, opts...)
}

func NewUnicodeReader(opts ...ReaderOption) (*UnicodeReader, error) {
	return newReader[string](coltype.UnicodeCodec{}, opts...)
}

func NewUnicodeWriter(opts ...WriterOption[string]) (*UnicodeWriter, error) {
	return newWriter[string](coltype.UnicodeCodec{}, opts...)
}

func NewNumberReader(opts ...ReaderOption) (*NumberReader, error) {
	return newReader[coltype.Number](coltype.NumberCodec{}, opts...)
}

func NewNumberWriter(opts ...WriterOption[coltype.Number]) (*NumberWriter, error) {
	return newWriter[coltype.Number](coltype.NumberCodec{}, opts...)
}

func NewInt64Reader(opts ...ReaderOption) (*Int64Reader, error) {
	return newReader[int64](coltype.Int64Codec{}, opts...)
}

func NewInt64Writer(opts ...WriterOption[int64]) (*Int64Writer, error) {
	return newWriter[int64](coltype.Int64Codec{}, opts...)
}

func NewInt32Reader(opts ...ReaderOption) (*Int32Reader, error) {
	return newReader[int32](coltype.Int32Codec{}, opts...)
}

func NewInt32Writer(opts ...WriterOption[int32]) (*Int32Writer, error) {
	return newWriter[int32](coltype.Int32Codec{}, opts...)
}

func NewBits64Reader(opts ...ReaderOption) (*Bits64Reader, error) {
	return newReader[uint64](coltype.Bits64Codec{}, opts...)
}

func NewBits64Writer(opts ...WriterOption[uint64]) (*Bits64Writer, error) {
	return newWriter[uint64](coltype.Bits64Codec{}, opts...)
}

func NewBits32Reader(opts ...ReaderOption) (*Bits32Reader, error) {
	return newReader[uint32](coltype.Bits32Codec{}, opts...)
}

func NewBits32Writer(opts ...WriterOption[uint32]) (*Bits32Writer, error) {
	return newWriter[uint32](coltype.Bits32Codec{}, opts...)
}

func NewBoolReader(opts ...ReaderOption) (*BoolReader, error) {
	return newReader[bool](coltype.BoolCodec{}, opts...)
}

func NewBoolWriter(opts ...WriterOption[bool]) (*BoolWriter, error) {
	return newWriter[bool](coltype.BoolCodec{}, opts...)
}

func NewFloat64Reader(opts ...ReaderOption) (*Float64Reader, error) {
	return newReader[float64](coltype.Float64Codec{}, opts...)
}

func NewFloat64Writer(opts ...WriterOption[float64]) (*Float64Writer, error) {
	return newWriter[float64](coltype.Float64Codec{}, opts...)
}

func NewFloat32Reader(opts ...ReaderOption) (*Float32Reader, error) {
	return newReader[float32](coltype.Float32Codec{}, opts...)
}

func NewFloat32Writer(opts ...WriterOption[float32]) (*Float32Writer, error) {
	return newWriter[float32](coltype.Float32Codec{}, opts...)
}

func NewComplex64Reader(opts ...ReaderOption) (*Complex64Reader, error) {
	return newReader[complex128](coltype.Complex64Codec{}, opts...)
}

func NewComplex64Writer(opts ...WriterOption[complex128]) (*Complex64Writer, error) {
	return newWriter[complex128](coltype.Complex64Codec{}, opts...)
}

func NewComplex32Reader(opts ...ReaderOption) (*Complex32Reader, error) {
	return newReader[complex64](coltype.Complex32Codec{}, opts...)
}

func NewComplex32Writer(opts ...WriterOption[complex64]) (*Complex32Writer, error) {
	return newWriter[complex64](coltype.Complex32Codec{}, opts...)
}

func NewDateTimeReader(opts ...ReaderOption) (*DateTimeReader, error) {
	return newReader[coltype.DateTime](coltype.DateTimeCodec{}, opts...)
}

func NewDateTimeWriter(opts ...WriterOption[coltype.DateTime]) (*DateTimeWriter, error) {
	return newWriter[coltype.DateTime](coltype.DateTimeCodec{}, opts...)
}

func NewDateReader(opts ...ReaderOption) (*DateReader, error) {
	return newReader[coltype.Date](coltype.DateCodec{}, opts...)
}

func NewDateWriter(opts ...WriterOption[coltype.Date]) (*DateWriter, error) {
	return newWriter[coltype.Date](coltype.DateCodec{}, opts...)
}

func NewTimeReader(opts ...ReaderOption) (*TimeReader, error) {
	return newReader[coltype.Time](coltype.TimeCodec{}, opts...)
}

func NewTimeWriter(opts ...WriterOption[coltype.Time]) (*TimeWriter, error) {
	return newWriter[coltype.Time](coltype.TimeCodec{}, opts...)
}
