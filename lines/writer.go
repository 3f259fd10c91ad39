package lines

import (
	"os"

	"github.com/eBay/accelerator/compress"
	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/internal/options"
)

// writer is the shared engine behind UnicodeLinesWriter and
// AsciiLinesWriter: open the output file lazily on first Write, prepend
// the BOM once if configured, append line+"\n" per call.
type writer struct {
	path        string
	compression string
	truncate    bool
	level       int
	writeBOM    bool

	file   *os.File
	stream compress.Writer
	opened bool

	count  int64
	closed bool
}

func newWriter(cfg *writerConfig) (*writer, error) {
	if cfg.path == "" {
		return nil, errs.NewBadConfig("lines: writer requires a name")
	}
	return &writer{
		path:        cfg.path,
		compression: cfg.compression,
		truncate:    cfg.truncate,
		level:       cfg.level,
		writeBOM:    cfg.writeBOM,
	}, nil
}

func (w *writer) open() error {
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
		return errs.NewBadConfig("lines: %v", err)
	}

	stream, err := codecImpl.OpenWriter(f, w.level)
	if err != nil {
		f.Close()
		return errs.NewCompressionInit(w.compression, err)
	}

	w.file = f
	w.stream = stream
	w.opened = true

	if w.writeBOM {
		if _, err := w.stream.Write(bom); err != nil {
			return errs.NewIO(w.path, err)
		}
	}
	return nil
}

func (w *writer) writeLine(line []byte) error {
	if w.closed {
		return errs.NewClosed()
	}
	if err := w.open(); err != nil {
		return err
	}

	if _, err := w.stream.Write(line); err != nil {
		return errs.NewIO(w.path, err)
	}
	if _, err := w.stream.Write([]byte{'\n'}); err != nil {
		return errs.NewIO(w.path, err)
	}
	w.count++
	return nil
}

func (w *writer) close() error {
	if w.closed {
		return errs.NewClosed()
	}
	w.closed = true

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

// UnicodeLinesWriter appends UTF-8 lines to a newline-delimited text file.
type UnicodeLinesWriter struct{ w *writer }

// NewUnicodeLinesWriter constructs a UnicodeLinesWriter.
func NewUnicodeLinesWriter(opts ...WriterOption) (*UnicodeLinesWriter, error) {
	cfg := newWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	w, err := newWriter(cfg)
	if err != nil {
		return nil, err
	}
	return &UnicodeLinesWriter{w: w}, nil
}

// Write appends line, UTF-8 encoded, followed by '\n'.
func (u *UnicodeLinesWriter) Write(line string) error {
	return u.w.writeLine([]byte(line))
}

// Count is the number of lines written so far.
func (u *UnicodeLinesWriter) Count() int64 { return u.w.count }

// Close flushes and releases the writer's resources.
func (u *UnicodeLinesWriter) Close() error { return u.w.close() }

// AsciiLinesWriter appends 7-bit ASCII lines to a newline-delimited text
// file, rejecting any byte outside 0x01..0x7F.
type AsciiLinesWriter struct{ w *writer }

// NewAsciiLinesWriter constructs an AsciiLinesWriter.
func NewAsciiLinesWriter(opts ...WriterOption) (*AsciiLinesWriter, error) {
	cfg := newWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	w, err := newWriter(cfg)
	if err != nil {
		return nil, err
	}
	return &AsciiLinesWriter{w: w}, nil
}

// Write appends line followed by '\n', validating 7-bit ASCII range first.
func (a *AsciiLinesWriter) Write(line string) error {
	b := []byte(line)
	if off, ok := validAscii(b); !ok {
		return errs.NewFormatAt(a.w.path, a.w.count+1, "ascii line contains byte 0x%02x at offset %d", b[off], off)
	}
	return a.w.writeLine(b)
}

// Count is the number of lines written so far.
func (a *AsciiLinesWriter) Count() int64 { return a.w.count }

// Close flushes and releases the writer's resources.
func (a *AsciiLinesWriter) Close() error { return a.w.close() }
