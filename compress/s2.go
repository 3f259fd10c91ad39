package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// s2Codec wires in klauspost/compress/s2, a Snappy-compatible streaming
// codec the teacher also carries in its own compress package.
type s2Codec struct{}

func init() {
	Register("s2", s2Codec{})
}

func (s2Codec) Name() string { return "s2" }

func (s2Codec) OpenReader(r io.Reader) (Reader, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

func (s2Codec) OpenWriter(w io.Writer, level int) (Writer, error) {
	opts := []s2.WriterOption{}
	if level > 0 {
		opts = append(opts, s2.WriterBetterCompression())
	}
	return s2.NewWriter(w, opts...), nil
}
