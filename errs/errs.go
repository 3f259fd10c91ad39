// Package errs defines the error taxonomy shared by the coltype, hashfilter,
// column and lines packages.
//
// Every error the column and lines readers and writers return is a *Error carrying a Kind so callers can
// classify failures with errors.Is against the Err* sentinels below, regardless of
// the file, record index or underlying cause folded into the message.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies the failure so callers can branch with errors.Is.
type Kind uint8

const (
	Closed Kind = iota
	IO
	CompressionInit
	Format
	TypeMismatch
	Overflow
	BadConfig
	Callback
)

func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case IO:
		return "io error"
	case CompressionInit:
		return "compression init error"
	case Format:
		return "format error"
	case TypeMismatch:
		return "type error"
	case Overflow:
		return "overflow"
	case BadConfig:
		return "bad config"
	case Callback:
		return "callback error"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by this module. Path and Index are
// optional context; zero values are omitted from the rendered message.
type Error struct {
	Kind  Kind
	Msg   string
	Path  string
	Index int64 // 1-based record index, 0 means "not applicable"
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Index > 0:
		return fmt.Sprintf("%s: record %d: %s: %s", e.Path, e.Index, e.Kind, e.Msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Msg)
	case e.Index > 0:
		return fmt.Sprintf("record %d: %s: %s", e.Index, e.Kind, e.Msg)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports Kind-equality so errors.Is(err, errs.ErrClosed) works regardless of
// the path/index/message carried by err.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == other.Kind
}

// Sentinel values for errors.Is comparisons. Their Msg/Path fields are irrelevant
// to Is(), only Kind is compared.
var (
	ErrClosed          = &Error{Kind: Closed, Msg: "instance is closed"}
	ErrIO              = &Error{Kind: IO}
	ErrCompressionInit = &Error{Kind: CompressionInit}
	ErrFormat          = &Error{Kind: Format}
	ErrTypeMismatch    = &Error{Kind: TypeMismatch}
	ErrOverflow        = &Error{Kind: Overflow}
	ErrBadConfig       = &Error{Kind: BadConfig}
	ErrCallback        = &Error{Kind: Callback}
)

// ErrStopIteration is the canonical signal a progress callback returns to end a
// read cleanly. Any other error from a callback is reported as Callback.
var ErrStopIteration = errors.New("accelerator: stop iteration")

func NewClosed() error { return &Error{Kind: Closed, Msg: "instance is closed"} }

func NewIO(path string, cause error) error {
	return &Error{Kind: IO, Path: path, Msg: cause.Error(), Err: cause}
}

func NewCompressionInit(name string, cause error) error {
	return &Error{Kind: CompressionInit, Msg: fmt.Sprintf("%q: %v", name, cause), Err: cause}
}

func NewFormat(path string, format string, args ...any) error {
	return &Error{Kind: Format, Path: path, Msg: fmt.Sprintf(format, args...)}
}

func NewFormatAt(path string, index int64, format string, args ...any) error {
	return &Error{Kind: Format, Path: path, Index: index, Msg: fmt.Sprintf(format, args...)}
}

func NewType(format string, args ...any) error {
	return &Error{Kind: TypeMismatch, Msg: fmt.Sprintf(format, args...)}
}

func NewOverflow(format string, args ...any) error {
	return &Error{Kind: Overflow, Msg: fmt.Sprintf(format, args...)}
}

func NewBadConfig(format string, args ...any) error {
	return &Error{Kind: BadConfig, Msg: fmt.Sprintf(format, args...)}
}

func NewCallback(cause error) error {
	return &Error{Kind: Callback, Msg: cause.Error(), Err: cause}
}

// WithContext re-wraps err, prefixing its message with a writer's error_extra
// string and the 1-based record index, if err is one of this package's errors.
// Other errors are returned unchanged.
func WithContext(err error, extra string, index int64) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	clone := *e
	if clone.Index == 0 {
		clone.Index = index
	}
	if extra != "" {
		clone.Msg = extra + ": " + clone.Msg
	}

	return &clone
}
