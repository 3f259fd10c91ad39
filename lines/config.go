package lines

import (
	"os"

	"github.com/eBay/accelerator/internal/options"
)

type readerConfig struct {
	path        string
	fd          *os.File
	compression string
	stripBOM    bool
}

func newReaderConfig() *readerConfig {
	return &readerConfig{compression: "gzip"}
}

// ReaderOption configures a line Reader at construction.
type ReaderOption = options.Option[*readerConfig]

// WithName sets the file path to open.
func WithName(name string) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.path = name })
}

// WithFD uses a pre-opened file descriptor instead of opening path.
func WithFD(f *os.File) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.fd = f })
}

// WithCompression selects the compressor registry name. Default "gzip".
func WithCompression(name string) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.compression = name })
}

// WithStripBOM strips a leading UTF-8 byte-order mark from the first line.
func WithStripBOM(strip bool) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.stripBOM = strip })
}

type writerConfig struct {
	path        string
	compression string
	truncate    bool
	level       int
	writeBOM    bool
}

func newWriterConfig() *writerConfig {
	return &writerConfig{compression: "gzip", truncate: true}
}

// WriterOption configures a line Writer at construction.
type WriterOption = options.Option[*writerConfig]

// WithWriterName sets the output file path.
func WithWriterName(name string) WriterOption {
	return options.NoError[*writerConfig](func(c *writerConfig) { c.path = name })
}

// WithWriterCompression selects the compressor registry name.
func WithWriterCompression(name string) WriterOption {
	return options.NoError[*writerConfig](func(c *writerConfig) { c.compression = name })
}

// WithMode sets "w" (truncate, default) or "a" (append), same grammar as
// column.WithMode.
func WithMode(mode string) WriterOption {
	return options.New[*writerConfig](func(c *writerConfig) error {
		truncate, level, err := parseMode(mode)
		if err != nil {
			return err
		}
		c.truncate = truncate
		c.level = level
		return nil
	})
}

// WithWriteBOM writes a leading UTF-8 byte-order mark before the first line.
func WithWriteBOM(write bool) WriterOption {
	return options.NoError[*writerConfig](func(c *writerConfig) { c.writeBOM = write })
}
