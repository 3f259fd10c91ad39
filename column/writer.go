package column

import (
	"errors"
	"os"

	"github.com/eBay/accelerator/compress"
	"github.com/eBay/accelerator/coltype"
	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/hashfilter"
	"github.com/eBay/accelerator/internal/options"
	"github.com/eBay/accelerator/internal/pool"
	"github.com/eBay/accelerator/minmax"
)

// Result is the outcome of a single Write or Hashcheck call.
type Result uint8

const (
	ResultWritten Result = iota
	ResultSkipped
)

// flushThreshold is the point at which Writer hands its accumulated
// buffer to the compressor; chosen as the same 128 KiB figure as the
// Reader's buffer (§4.3/§4.4 share one fixed-buffer-size design).
const flushThreshold = pool.ColumnBufferDefaultSize

// Writer is the generic streaming write engine parameterized by a
// per-type Codec[T] (§4.4).
type Writer[T any] struct {
	codec coltype.Codec[T]

	path        string
	compression string
	truncate    bool
	level       int

	filter      *hashfilter.Filter
	noneSupport bool
	errorExtra  string

	def      *T
	defBytes []byte
	haveDef  bool

	file   *os.File
	stream compress.Writer
	opened bool

	buf    *pool.ByteBuffer
	count  int64
	minmax minmax.Accumulator[T]
	closed bool
}

func newWriter[T any](codec coltype.Codec[T], opts ...WriterOption[T]) (*Writer[T], error) {
	cfg := newWriterConfig[T]()
	for _, opt := range opts {
		if err := options.Apply[*writerConfig[T]](cfg, opt); err != nil {
			return nil, err
		}
	}

	if cfg.path == "" {
		return nil, errs.NewBadConfig("column: writer requires a name")
	}
	if cfg.noneSupport && !codec.NoneAdmissible() {
		return nil, errs.NewBadConfig("column: %s does not admit None values", codec.TypeName())
	}

	var filter *hashfilter.Filter
	if cfg.hashfilterEnabled {
		f, err := hashfilter.New(cfg.sliceno, cfg.slices, cfg.spreadNone)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	w := &Writer[T]{
		codec:       codec,
		path:        cfg.path,
		compression: cfg.compression,
		truncate:    cfg.truncate,
		level:       cfg.level,
		filter:      filter,
		noneSupport: cfg.noneSupport,
		errorExtra:  cfg.errorExtra,
		buf:         pool.GetColumnBuffer(),
	}

	if cfg.haveDefault {
		def := cfg.def
		dst, err := codec.AppendEncode(nil, *def)
		if err != nil {
			return nil, errs.NewBadConfig("column: default value is not encodable: %v", err)
		}
		w.def = def
		w.defBytes = dst
		w.haveDef = true
	}

	return w, nil
}

// Hashfilter reports the writer's configured slice tuple, or (0, 0,
// false) if none was configured.
func (w *Writer[T]) Hashfilter() (sliceno, slices uint32, enabled bool) {
	if w.filter == nil {
		return 0, 0, false
	}
	return w.filter.Sliceno, w.filter.Slices, true
}

// Name is the writer's output path.
func (w *Writer[T]) Name() string { return w.path }

// Count is the number of successful (accepted) writes so far.
func (w *Writer[T]) Count() int64 { return w.count }

// MinMax returns the minimum/maximum of all accepted non-None values.
func (w *Writer[T]) MinMax() (min, max T, ok bool) { return w.minmax.MinMax() }

type decision[T any] struct {
	skip    bool
	isNone  bool
	v       T
	encoded []byte
	hash    uint64
}

// decide runs the shared None-admission, default-substitution and
// hash-filter logic used by both Write and Hashcheck (§4.4 steps 1-3).
func (w *Writer[T]) decide(vPtr *T) (decision[T], error) {
	if vPtr == nil {
		if !w.noneSupport {
			return decision[T]{}, errs.NewBadConfig("column: None written but none_support is false")
		}

		kept := true
		if w.filter != nil {
			kept = w.filter.AcceptNone()
		}
		if !kept {
			return decision[T]{skip: true}, nil
		}

		return decision[T]{isNone: true, hash: 0}, nil
	}

	v := *vPtr
	encoded, err := w.codec.AppendEncode(nil, v)
	if err != nil {
		// Overflow (sentinel collision, range exhaustion) is never
		// recovered by default substitution (§7).
		if errors.Is(err, errs.ErrOverflow) {
			return decision[T]{}, errs.WithContext(err, w.errorExtra, w.count+1)
		}
		if w.haveDef {
			v = *w.def
			encoded = w.defBytes
		} else {
			return decision[T]{}, errs.WithContext(asFormatErr(err), w.errorExtra, w.count+1)
		}
	}

	h := w.codec.Hash(v, false)
	if w.filter != nil && !w.filter.Accept(h) {
		return decision[T]{skip: true}, nil
	}

	return decision[T]{v: v, encoded: encoded, hash: h}, nil
}

// asFormatErr normalizes an encode failure to an *errs.Error: an already-
// typed error (e.g. errs.TypeMismatch) passes through with its Kind
// intact, anything else is wrapped as Format.
func asFormatErr(err error) error {
	var e *errs.Error
	if errors.As(err, &e) {
		return err
	}
	return errs.NewFormat("", "%v", err)
}

// Write encodes and appends v (nil means None), updating count and
// min/max for accepted, non-filtered values (§4.4 steps 1-5).
func (w *Writer[T]) Write(vPtr *T) (Result, error) {
	if w.closed {
		return ResultSkipped, errs.NewClosed()
	}

	d, err := w.decide(vPtr)
	if err != nil {
		return ResultSkipped, err
	}
	if d.skip {
		return ResultSkipped, nil
	}

	if !d.isNone {
		w.minmax.Observe(d.v, w.codec.IsNaN(d.v), w.codec.Less)
	}

	if d.isNone {
		w.buf.B = w.codec.AppendNone(w.buf.B)
	} else {
		w.buf.MustWrite(d.encoded)
	}
	w.count++

	if w.buf.Len() >= flushThreshold {
		if err := w.flush(); err != nil {
			return ResultSkipped, err
		}
	}

	return ResultWritten, nil
}

// Hashcheck runs the None-admission and hash-filter decision without
// writing, without advancing Count, and without touching min/max
// (§4.4's `hashcheck` operation). It requires a configured hashfilter.
func (w *Writer[T]) Hashcheck(vPtr *T) (Result, error) {
	if w.filter == nil {
		return ResultSkipped, errs.NewBadConfig("column: hashcheck requires a configured hashfilter (slices > 0)")
	}

	d, err := w.decide(vPtr)
	if err != nil {
		return ResultSkipped, err
	}
	if d.skip {
		return ResultSkipped, nil
	}
	return ResultWritten, nil
}

// Hash returns the canonical 64-bit content hash of v, using the same
// rule a Writer's own filtering decision would use, without any instance
// state (§4.4's `hash` static operation).
func Hash[T any](codec coltype.Codec[T], v T) uint64 {
	return codec.Hash(v, false)
}

func (w *Writer[T]) open() error {
	if w.opened {
		return nil
	}

	flag := os.O_WRONLY | os.O_CREATE
	if w.truncate {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}

	f, err := os.OpenFile(w.path, flag, 0o644)
	if err != nil {
		return errs.NewIO(w.path, err)
	}

	codecImpl, err := compress.Get(w.compression)
	if err != nil {
		f.Close()
		return errs.NewBadConfig("column: %v", err)
	}

	stream, err := codecImpl.OpenWriter(f, w.level)
	if err != nil {
		f.Close()
		return errs.NewCompressionInit(w.compression, err)
	}

	w.file = f
	w.stream = stream
	w.opened = true
	return nil
}

func (w *Writer[T]) flush() error {
	if w.buf.Len() == 0 {
		return nil
	}

	if err := w.open(); err != nil {
		return err
	}

	n, err := w.stream.Write(w.buf.Bytes())
	if err != nil {
		return errs.NewIO(w.path, err)
	}
	if n != w.buf.Len() {
		return errs.NewIO(w.path, errShortWrite)
	}

	w.buf.Reset()
	return nil
}

var errShortWrite = shortWriteError{}

type shortWriteError struct{}

func (shortWriteError) Error() string { return "short write" }

// Close flushes any buffered bytes and releases the compressor and file.
// A writer that never accepted any bytes never creates its output file
// (§3.6, §4.4, testable property 11). A second Close returns
// errs.ErrClosed.
func (w *Writer[T]) Close() error {
	if w.closed {
		return errs.NewClosed()
	}
	w.closed = true
	defer pool.PutColumnBuffer(w.buf)

	if err := w.flush(); err != nil {
		return err
	}

	if !w.opened {
		return nil
	}

	var firstErr error
	if err := w.stream.Close(); err != nil {
		firstErr = errs.NewIO(w.path, err)
	}
	if err := w.file.Close(); err != nil && firstErr == nil {
		firstErr = errs.NewIO(w.path, err)
	}
	return firstErr
}
