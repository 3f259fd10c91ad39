package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipCodec is the only compression required for file compatibility
// (§2, §4.2). It is registered under "gzip", the default compression
// name for every reader/writer construction option.
type gzipCodec struct{}

func init() {
	Register("gzip", gzipCodec{})
}

func (gzipCodec) Name() string { return "gzip" }

func (gzipCodec) OpenReader(r io.Reader) (Reader, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip: not a recognizable gzip stream: %w", err)
	}
	return gr, nil
}

func (gzipCodec) OpenWriter(w io.Writer, level int) (Writer, error) {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	gw, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return nil, fmt.Errorf("gzip: invalid compression level %d: %w", level, err)
	}
	return gw, nil
}
