package lines

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/eBay/accelerator/compress"
	"github.com/eBay/accelerator/errs"
	"github.com/eBay/accelerator/internal/options"
)

// readBufSize matches column's fixed-buffer figure; line files are read
// through a bufio.Reader wrapping the decompressor, not a custom lookahead
// buffer, since '\n' framing needs no multi-record decode loop.
const readBufSize = 128 * 1024

// Value is one line pulled from a Reader.
type Value struct {
	Line string
	EOF  bool
}

// reader is the shared engine behind UnicodeLinesReader and
// AsciiLinesReader; the two exported types differ only in per-line
// validation (§3.7).
type reader struct {
	path     string
	file     *os.File
	ownsFile bool
	stream   compress.Reader
	br       *bufio.Reader

	stripBOM    bool
	strippedBOM bool

	count  int64
	err    error
	closed bool
}

func newReader(cfg *readerConfig) (*reader, error) {
	if cfg.path == "" && cfg.fd == nil {
		return nil, errs.NewBadConfig("lines: reader requires a name or an fd")
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

	codecImpl, err := compress.Get(cfg.compression)
	if err != nil {
		if ownsFile {
			f.Close()
		}
		return nil, errs.NewBadConfig("lines: %v", err)
	}

	stream, err := codecImpl.OpenReader(f)
	if err != nil {
		if ownsFile {
			f.Close()
		}
		return nil, errs.NewCompressionInit(cfg.compression, err)
	}

	path := cfg.path
	if path == "" {
		path = "<fd>"
	}

	return &reader{
		path:     path,
		file:     f,
		ownsFile: ownsFile,
		stream:   stream,
		br:       bufio.NewReaderSize(stream, readBufSize),
		stripBOM: cfg.stripBOM,
	}, nil
}

// readLine reads one '\n'-delimited line, stripping the trailing
// terminator and any CR, and the leading BOM on the first line when
// configured.
func (r *reader) readLine() ([]byte, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}

	line, err := r.br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		r.err = errs.NewIO(r.path, err)
		return nil, false, r.err
	}
	if len(line) == 0 && err == io.EOF {
		return nil, true, nil
	}

	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	line = trimCR(line)

	if r.stripBOM && !r.strippedBOM {
		r.strippedBOM = true
		if len(line) >= len(bom) && line[0] == bom[0] && line[1] == bom[1] && line[2] == bom[2] {
			line = line[len(bom):]
		}
	}

	r.count++
	return line, false, nil
}

func (r *reader) close() error {
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
	return firstErr
}

// UnicodeLinesReader pulls UTF-8 lines from a newline-delimited text file.
type UnicodeLinesReader struct{ r *reader }

// NewUnicodeLinesReader constructs a UnicodeLinesReader.
func NewUnicodeLinesReader(opts ...ReaderOption) (*UnicodeLinesReader, error) {
	cfg := newReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	r, err := newReader(cfg)
	if err != nil {
		return nil, err
	}
	return &UnicodeLinesReader{r: r}, nil
}

// Pull returns the next line, decoded as UTF-8.
func (u *UnicodeLinesReader) Pull() (Value, error) {
	line, eof, err := u.r.readLine()
	if err != nil {
		return Value{}, err
	}
	if eof {
		return Value{EOF: true}, nil
	}
	if !utf8.Valid(line) {
		u.r.err = errs.NewFormatAt(u.r.path, u.r.count, "invalid UTF-8 in line")
		return Value{}, u.r.err
	}
	return Value{Line: string(line)}, nil
}

// Close releases the reader's resources.
func (u *UnicodeLinesReader) Close() error { return u.r.close() }

// AsciiLinesReader pulls 7-bit ASCII lines from a newline-delimited text
// file, rejecting any byte outside 0x01..0x7F (mirrors the Ascii column
// codec's validation, §3.1).
type AsciiLinesReader struct{ r *reader }

// NewAsciiLinesReader constructs an AsciiLinesReader.
func NewAsciiLinesReader(opts ...ReaderOption) (*AsciiLinesReader, error) {
	cfg := newReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	r, err := newReader(cfg)
	if err != nil {
		return nil, err
	}
	return &AsciiLinesReader{r: r}, nil
}

// Pull returns the next line, validated as 7-bit ASCII.
func (a *AsciiLinesReader) Pull() (Value, error) {
	line, eof, err := a.r.readLine()
	if err != nil {
		return Value{}, err
	}
	if eof {
		return Value{EOF: true}, nil
	}
	if off, ok := validAscii(line); !ok {
		a.r.err = errs.NewFormatAt(a.r.path, a.r.count, "ascii line contains byte 0x%02x at offset %d", line[off], off)
		return Value{}, a.r.err
	}
	return Value{Line: string(line)}, nil
}

// Close releases the reader's resources.
func (a *AsciiLinesReader) Close() error { return a.r.close() }
