package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec wires in the teacher's own lz4 dependency, carried forward
// unchanged.
type lz4Codec struct{}

func init() {
	Register("lz4", lz4Codec{})
}

func (lz4Codec) Name() string { return "lz4" }

func (lz4Codec) OpenReader(r io.Reader) (Reader, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (lz4Codec) OpenWriter(w io.Writer, level int) (Writer, error) {
	zw := lz4.NewWriter(w)
	if level > 0 {
		if err := zw.Apply(lz4.CompressionLevelOption(lz4.CompressionLevel(level))); err != nil {
			return nil, err
		}
	}
	return zw, nil
}
