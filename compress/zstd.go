package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdCodec wires in klauspost/compress's pure-Go, streaming zstd
// implementation. This supersedes the teacher's cgo-bound
// github.com/valyala/gozstd, which exposes a whole-buffer Compress/
// Decompress API rather than the io.Reader/io.Writer streams this v-table
// needs (see DESIGN.md for the full justification).
type zstdCodec struct{}

func init() {
	Register("zstd", zstdCodec{})
}

func (zstdCodec) Name() string { return "zstd" }

type zstdReader struct {
	*zstd.Decoder
}

func (r zstdReader) Close() error {
	r.Decoder.Close()
	return nil
}

func (zstdCodec) OpenReader(r io.Reader) (Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd: not a recognizable zstd stream: %w", err)
	}
	return zstdReader{dec}, nil
}

func (zstdCodec) OpenWriter(w io.Writer, level int) (Writer, error) {
	opts := []zstd.EOption{}
	if level > 0 {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	}

	enc, err := zstd.NewWriter(w, opts...)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	return enc, nil
}
