package coltype

import (
	"github.com/eBay/accelerator/endian"
	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/hash"
)

// DateTime, Date and Time are represented as plain structs rather than
// Go's standard time.Time because the format's fold bit (the IANA
// disambiguation bit for repeated wall-clock times across a DST
// transition) must be preserved on materialization and masked off for
// hashing, and time.Time exposes no public Fold accessor to do either.

// DateTime is a bit-packed wall-clock timestamp (§3.4).
type DateTime struct {
	Year        int // 0..8191
	Month       int // 1..15 (4 bits)
	Day         int // 0..31 (5 bits)
	Hour        int // 0..31 (5 bits)
	Minute      int // 0..63 (6 bits)
	Second      int // 0..63 (6 bits)
	Microsecond int // 0..999999 (20 bits)
	Fold        bool
}

// Date is a bit-packed calendar date (§3.4).
type Date struct {
	Year  int // 0..8388607 (23 bits)
	Month int // 0..15 (4 bits)
	Day   int // 0..31 (5 bits)
}

// Time is a bit-packed time-of-day, stored with a fixed "1970-01-01"
// date-part marker in i0 (§3.4). Unlike DateTime, the Time i0 formula
// (marker | hour) leaves no spare bit for fold, so a bare time-of-day
// carries no fold disambiguation.
type Time struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// timeMarker is the fixed i0 base for the Time type; its low 5 bits are
// zero, so ORing in the hour is lossless.
const timeMarker uint32 = 0x01ECFE20

func packDateTimeI0(fold bool, year, month, day, hour int) uint32 {
	var f uint32
	if fold {
		f = 1
	}
	return (f << 31) | (uint32(year) << 18) | (uint32(month) << 14) | (uint32(day) << 9) | (uint32(hour) << 4) //nolint:gosec
}

func unpackDateTimeI0(i0 uint32) (fold bool, year, month, day, hour int) {
	fold = (i0>>31)&0x1 != 0
	year = int((i0 >> 18) & 0x1FFF)
	month = int((i0 >> 14) & 0xF)
	day = int((i0 >> 9) & 0x1F)
	hour = int((i0 >> 4) & 0x1F)
	return
}

func packMinuteSecondMicros(minute, second, micro int) uint32 {
	return (uint32(minute) << 26) | (uint32(second) << 20) | uint32(micro) //nolint:gosec
}

func unpackMinuteSecondMicros(i1 uint32) (minute, second, micro int) {
	minute = int((i1 >> 26) & 0x3F)
	second = int((i1 >> 20) & 0x3F)
	micro = int(i1 & 0xFFFFF)
	return
}

// DateTimeCodec implements Codec[DateTime]: two 32-bit host-endian words,
// None sentinel i0 == 0.
type DateTimeCodec struct{}

func (DateTimeCodec) TypeName() string      { return "DateTime" }
func (DateTimeCodec) NoneAdmissible() bool  { return true }
func (DateTimeCodec) IsNaN(DateTime) bool   { return false }
func (DateTimeCodec) Less(a, b DateTime) bool {
	return dateTimeKey(a) < dateTimeKey(b)
}

func dateTimeKey(v DateTime) int64 {
	return int64(v.Year)*400*32*32*64*64*1000000 +
		int64(v.Month)*32*32*64*64*1000000 +
		int64(v.Day)*32*64*64*1000000 +
		int64(v.Hour)*64*64*1000000 +
		int64(v.Minute)*64*1000000 +
		int64(v.Second)*1000000 +
		int64(v.Microsecond)
}

func (DateTimeCodec) AppendEncode(dst []byte, v DateTime) ([]byte, error) {
	i0 := packDateTimeI0(v.Fold, v.Year, v.Month, v.Day, v.Hour)
	if i0 == 0 {
		return nil, errs.NewOverflow("DateTime value collides with the None sentinel (i0 == 0)")
	}
	i1 := packMinuteSecondMicros(v.Minute, v.Second, v.Microsecond)

	var buf [8]byte
	endian.Native.PutUint32(buf[0:4], i0)
	endian.Native.PutUint32(buf[4:8], i1)
	return append(dst, buf[:]...), nil
}

func (DateTimeCodec) AppendNone(dst []byte) []byte {
	var buf [8]byte
	return append(dst, buf[:]...)
}

func (DateTimeCodec) Decode(src []byte) (DateTime, bool, int, error) {
	if len(src) < 8 {
		return DateTime{}, false, 0, ErrShortBuffer
	}
	i0 := endian.Native.Uint32(src[0:4])
	if i0 == 0 {
		return DateTime{}, true, 8, nil
	}
	i1 := endian.Native.Uint32(src[4:8])

	fold, year, month, day, hour := unpackDateTimeI0(i0)
	minute, second, micro := unpackMinuteSecondMicros(i1)

	return DateTime{
		Year: year, Month: month, Day: day, Hour: hour,
		Minute: minute, Second: second, Microsecond: micro, Fold: fold,
	}, false, 8, nil
}

func (DateTimeCodec) Hash(v DateTime, isNone bool) uint64 {
	if isNone {
		return 0
	}
	i0 := packDateTimeI0(false, v.Year, v.Month, v.Day, v.Hour) // fold masked off
	i1 := packMinuteSecondMicros(v.Minute, v.Second, v.Microsecond)

	var buf [8]byte
	endian.Native.PutUint32(buf[0:4], i0)
	endian.Native.PutUint32(buf[4:8], i1)
	return hash.Sum64(buf[:])
}

// DateCodec implements Codec[Date]: one 32-bit host-endian word, None
// sentinel i0 == 0.
type DateCodec struct{}

func (DateCodec) TypeName() string     { return "Date" }
func (DateCodec) NoneAdmissible() bool { return true }
func (DateCodec) IsNaN(Date) bool      { return false }
func (DateCodec) Less(a, b Date) bool {
	ka := int64(a.Year)*32*32 + int64(a.Month)*32 + int64(a.Day)
	kb := int64(b.Year)*32*32 + int64(b.Month)*32 + int64(b.Day)
	return ka < kb
}

func packDate(year, month, day int) uint32 {
	return (uint32(year) << 9) | (uint32(month) << 5) | uint32(day) //nolint:gosec
}

func (DateCodec) AppendEncode(dst []byte, v Date) ([]byte, error) {
	i0 := packDate(v.Year, v.Month, v.Day)
	if i0 == 0 {
		return nil, errs.NewOverflow("Date value collides with the None sentinel (i0 == 0)")
	}
	var buf [4]byte
	endian.Native.PutUint32(buf[:], i0)
	return append(dst, buf[:]...), nil
}

func (DateCodec) AppendNone(dst []byte) []byte {
	var buf [4]byte
	return append(dst, buf[:]...)
}

func (DateCodec) Decode(src []byte) (Date, bool, int, error) {
	if len(src) < 4 {
		return Date{}, false, 0, ErrShortBuffer
	}
	i0 := endian.Native.Uint32(src[:4])
	if i0 == 0 {
		return Date{}, true, 4, nil
	}
	return Date{
		Year:  int((i0 >> 9) & 0x7FFFFF),
		Month: int((i0 >> 5) & 0xF),
		Day:   int(i0 & 0x1F),
	}, false, 4, nil
}

func (DateCodec) Hash(v Date, isNone bool) uint64 {
	if isNone {
		return 0
	}
	var buf [4]byte
	endian.Native.PutUint32(buf[:], packDate(v.Year, v.Month, v.Day))
	return hash.Sum64(buf[:])
}

// TimeCodec implements Codec[Time]: two 32-bit host-endian words, i0
// fixed to the timeMarker with the hour ORed in, None sentinel i0 == 0.
type TimeCodec struct{}

func (TimeCodec) TypeName() string    { return "Time" }
func (TimeCodec) NoneAdmissible() bool { return true }
func (TimeCodec) IsNaN(Time) bool      { return false }
func (TimeCodec) Less(a, b Time) bool {
	ka := int64(a.Hour)*64*64*1000000 + int64(a.Minute)*64*1000000 + int64(a.Second)*1000000 + int64(a.Microsecond)
	kb := int64(b.Hour)*64*64*1000000 + int64(b.Minute)*64*1000000 + int64(b.Second)*1000000 + int64(b.Microsecond)
	return ka < kb
}

func (TimeCodec) AppendEncode(dst []byte, v Time) ([]byte, error) {
	i0 := timeMarker | uint32(v.Hour) //nolint:gosec
	if i0 == 0 {
		return nil, errs.NewOverflow("Time value collides with the None sentinel (i0 == 0)")
	}
	i1 := packMinuteSecondMicros(v.Minute, v.Second, v.Microsecond)

	var buf [8]byte
	endian.Native.PutUint32(buf[0:4], i0)
	endian.Native.PutUint32(buf[4:8], i1)
	return append(dst, buf[:]...), nil
}

func (TimeCodec) AppendNone(dst []byte) []byte {
	var buf [8]byte
	return append(dst, buf[:]...)
}

func (TimeCodec) Decode(src []byte) (Time, bool, int, error) {
	if len(src) < 8 {
		return Time{}, false, 0, ErrShortBuffer
	}
	i0 := endian.Native.Uint32(src[0:4])
	if i0 == 0 {
		return Time{}, true, 8, nil
	}
	i1 := endian.Native.Uint32(src[4:8])

	hour := int(i0 & 0x1F)
	minute, second, micro := unpackMinuteSecondMicros(i1)

	return Time{Hour: hour, Minute: minute, Second: second, Microsecond: micro}, false, 8, nil
}

func (TimeCodec) Hash(v Time, isNone bool) uint64 {
	if isNone {
		return 0
	}
	i0 := timeMarker | uint32(v.Hour) //nolint:gosec
	i1 := packMinuteSecondMicros(v.Minute, v.Second, v.Microsecond)

	var buf [8]byte
	endian.Native.PutUint32(buf[0:4], i0)
	endian.Native.PutUint32(buf[4:8], i1)
	return hash.Sum64(buf[:])
}
