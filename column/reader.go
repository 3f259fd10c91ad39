package column

import (
	"bufio"
	"io"
	"math"
	"os"

	"github.com/eBay/accelerator/compress"
	"github.com/eBay/accelerator/coltype"
	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/hashfilter"
	"github.com/eBay/accelerator/internal/options"
	"github.com/eBay/accelerator/internal/pool"
)

// sizeHintThreshold/sizeHintSmallBufSize/sizeHintLargeBufSize implement the
// compressor buffer-size heuristic from §4.2: 16 KiB if the file-size
// hint is under 400000 bytes, else 64 KiB.
const (
	sizeHintThreshold    = 400000
	sizeHintSmallBufSize = 16 * 1024
	sizeHintLargeBufSize = 64 * 1024
)

// Value is one record pulled from a Reader.
type Value[T any] struct {
	V    T
	None bool
	Kept bool // false when hash-filtered out; V/None still valid
	EOF  bool
}

// Reader is the generic streaming read engine parameterized by a
// per-type Codec[T] (§4.3).
type Reader[T any] struct {
	codec coltype.Codec[T]

	path     string
	file     *os.File
	ownsFile bool
	stream   compress.Reader
	filter   *hashfilter.Filter

	wantCount   int64
	count       int64
	breakCount  int64
	callback    func(int64) error
	callbackInt int64
	callbackOff int64

	buf    *pool.ByteBuffer
	pos    int
	filled int

	err    error
	closed bool
}

// newReader constructs a Reader[T] for codec, applying opts.
func newReader[T any](codec coltype.Codec[T], opts ...ReaderOption) (*Reader[T], error) {
	cfg := newReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.path == "" && cfg.fd == nil {
		return nil, errs.NewBadConfig("column: reader requires a name or an fd")
	}
	if cfg.callback != nil && cfg.callbackInterval <= 0 {
		return nil, errs.NewBadConfig("column: callback_interval must be positive when a callback is given")
	}

	var filter *hashfilter.Filter
	if cfg.hashfilterEnabled {
		f, err := hashfilter.New(cfg.sliceno, cfg.slices, cfg.spreadNone)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	f := cfg.fd
	ownsFile := false
	if f == nil {
		var err error
		f, err = os.Open(cfg.path)
		if err != nil {
			return nil, errs.NewIO(cfg.path, err)
		}
		ownsFile = true
	}

	if cfg.haveSeek {
		if _, err := f.Seek(cfg.seek, io.SeekStart); err != nil {
			if ownsFile {
				f.Close()
			}
			return nil, errs.NewIO(displayPath(cfg), err)
		}
	}

	sizeHint := int64(0)
	if st, err := f.Stat(); err == nil {
		sizeHint = st.Size()
	}
	bufSize := sizeHintLargeBufSize
	if sizeHint < sizeHintThreshold {
		bufSize = sizeHintSmallBufSize
	}

	codecImpl, err := compress.Get(cfg.compression)
	if err != nil {
		if ownsFile {
			f.Close()
		}
		return nil, errs.NewBadConfig("column: %v", err)
	}

	bufr := bufio.NewReaderSize(f, bufSize)
	stream, err := codecImpl.OpenReader(bufr)
	if err != nil {
		if ownsFile {
			f.Close()
		}
		return nil, errs.NewCompressionInit(cfg.compression, err)
	}

	breakCount := minBreak(cfg.wantCount, cfg.callbackInterval)

	return &Reader[T]{
		codec:       codec,
		path:        displayPath(cfg),
		file:        f,
		ownsFile:    ownsFile,
		stream:      stream,
		filter:      filter,
		wantCount:   cfg.wantCount,
		breakCount:  breakCount,
		callback:    cfg.callback,
		callbackInt: cfg.callbackInterval,
		callbackOff: cfg.callbackOffset,
		buf:         pool.GetColumnBuffer(),
	}, nil
}

func displayPath(cfg *readerConfig) string {
	if cfg.path != "" {
		return cfg.path
	}
	return "<fd>"
}

func minBreak(wantCount, callbackInterval int64) int64 {
	result := int64(math.MaxInt64)
	if wantCount >= 0 {
		result = wantCount
	}
	if callbackInterval > 0 && callbackInterval < result {
		result = callbackInterval
	}
	return result
}

// Pull reads and returns the next value, applying hash filtering if
// configured. EOF is set on Value once want_count is satisfied or the
// stream is exhausted cleanly; Kept is false when the value was
// hash-filtered out (V/None are still populated).
func (r *Reader[T]) Pull() (Value[T], error) {
	if r.closed {
		return Value[T]{}, errs.ErrClosed
	}
	if r.err != nil {
		return Value[T]{}, r.err
	}

	for {
		if r.count == r.breakCount {
			if r.count == r.wantCount {
				return Value[T]{EOF: true}, nil
			}

			if r.callback != nil {
				if err := r.callback(r.count + r.callbackOff); err != nil {
					if err == errs.ErrStopIteration {
						return Value[T]{EOF: true}, nil
					}
					r.err = errs.NewCallback(err)
					return Value[T]{}, r.err
				}
			}

			r.breakCount += r.callbackInt
			if r.wantCount >= 0 && r.breakCount > r.wantCount {
				r.breakCount = r.wantCount
			}
		}

		v, isNone, n, err := r.codec.Decode(r.buf.B[r.pos:r.filled])
		if err == coltype.ErrShortBuffer {
			_, rerr := r.refill()
			if rerr != nil {
				if rerr == io.EOF {
					if r.wantCount >= 0 && r.count < r.wantCount {
						r.err = errs.NewFormatAt(r.path, r.count, "unexpected end of stream: wanted %d records, got %d", r.wantCount, r.count)
						return Value[T]{}, r.err
					}
					if r.filled > r.pos {
						r.err = errs.NewFormatAt(r.path, r.count, "trailing data shorter than a complete record")
						return Value[T]{}, r.err
					}
					return Value[T]{EOF: true}, nil
				}
				r.err = errs.NewIO(r.path, rerr)
				return Value[T]{}, r.err
			}
			continue
		}
		if err != nil {
			r.err = errs.NewFormatAt(r.path, r.count+1, "%v", err)
			return Value[T]{}, r.err
		}

		r.pos += n
		r.count++

		kept := true
		if r.filter != nil {
			h := r.codec.Hash(v, isNone)
			if isNone {
				kept = r.filter.AcceptNone()
			} else {
				kept = r.filter.Accept(h)
			}
		}

		return Value[T]{V: v, None: isNone, Kept: kept}, nil
	}
}

// refill compacts the unconsumed tail to the buffer front, grows the
// buffer if the tail already fills it (Bytes/Unicode blobs up to
// 0x7FFFFFFF bytes are valid per §3.2/§9, so the backing array must grow
// rather than truncate the tail), and reads more bytes from the
// compressor stream. It returns more == true if new bytes were read.
func (r *Reader[T]) refill() (more bool, err error) {
	tail := r.filled - r.pos
	if tail > 0 {
		copy(r.buf.B[0:tail], r.buf.B[r.pos:r.filled])
	}
	r.pos = 0
	r.filled = tail
	r.buf.SetLength(tail)

	if tail >= r.buf.Cap() {
		r.buf.Grow(r.buf.Cap())
	}

	n, err := r.stream.Read(r.buf.Slice(r.filled, r.buf.Cap()))
	r.filled += n
	r.buf.SetLength(r.filled)
	if n > 0 {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, io.EOF
}

// Close releases the compressor stream and, if this Reader opened the
// file itself, the file descriptor. A second Close call returns
// errs.ErrClosed.
func (r *Reader[T]) Close() error {
	if r.closed {
		return errs.NewClosed()
	}
	r.closed = true

	var firstErr error
	if err := r.stream.Close(); err != nil {
		firstErr = errs.NewIO(r.path, err)
	}
	if r.ownsFile {
		if err := r.file.Close(); err != nil && firstErr == nil {
			firstErr = errs.NewIO(r.path, err)
		}
	}
	pool.PutColumnBuffer(r.buf)
	return firstErr
}
