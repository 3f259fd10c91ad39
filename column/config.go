package column

import (
	"os"

	"github.com/eBay/accelerator/internal/options"
)

// readerConfig holds construction-time options shared by every
// logical type's Reader, mirroring §6.2's reader parameter table.
type readerConfig struct {
	path        string
	fd          *os.File
	compression string
	seek        int64
	haveSeek    bool

	wantCount int64 // -1 means unknown

	hashfilterEnabled bool
	sliceno           uint32
	slices            uint32
	spreadNone        bool

	callback         func(int64) error
	callbackInterval int64
	callbackOffset   int64
}

func newReaderConfig() *readerConfig {
	return &readerConfig{
		compression: "gzip",
		wantCount:   -1,
	}
}

// ReaderOption configures a Reader at construction.
type ReaderOption = options.Option[*readerConfig]

// WithName sets the file path to open.
func WithName(name string) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.path = name })
}

// WithFD uses a pre-opened file descriptor instead of opening path; path,
// if also given via WithName, is used only for error messages.
func WithFD(f *os.File) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.fd = f })
}

// WithCompression selects the compressor registry name. Default "gzip".
func WithCompression(name string) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.compression = name })
}

// WithSeek seeks to the given byte offset before wrapping the file in the
// compressor.
func WithSeek(offset int64) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) {
		c.seek = offset
		c.haveSeek = true
	})
}

// WithWantCount sets the expected number of records; -1 (the default)
// means unbounded.
func WithWantCount(n int64) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) { c.wantCount = n })
}

// WithHashfilter configures slice partitioning on read.
func WithHashfilter(sliceno, slices uint32, spreadNone bool) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) {
		c.hashfilterEnabled = true
		c.sliceno = sliceno
		c.slices = slices
		c.spreadNone = spreadNone
	})
}

// WithCallback installs a progress callback, firing every interval
// records with argument count+offset.
func WithCallback(cb func(count int64) error, interval, offset int64) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) {
		c.callback = cb
		c.callbackInterval = interval
		c.callbackOffset = offset
	})
}

// writerConfig holds construction-time options shared by every logical
// type's Writer, mirroring §6.2's writer parameter table. It is generic
// over T purely to hold the (type-specific) default value alongside the
// plain fields, so WriterOption can reuse internal/options the same way
// ReaderOption does instead of a bespoke options mechanism.
type writerConfig[T any] struct {
	path        string
	compression string
	truncate    bool // mode starts with 'w' (true) or 'a' (false)
	level       int

	hashfilterEnabled bool
	sliceno           uint32
	slices            uint32
	spreadNone        bool

	noneSupport bool
	errorExtra  string

	haveDefault bool
	def         *T
}

func newWriterConfig[T any]() *writerConfig[T] {
	return &writerConfig[T]{
		compression: "gzip",
		truncate:    true,
	}
}

// WriterOption configures a Writer[T] at construction. It is a defined
// type over options.Option rather than an alias.
type WriterOption[T any] options.Option[*writerConfig[T]]

// WithWriterName sets the output file path.
func WithWriterName[T any](name string) WriterOption[T] {
	return options.NoError[*writerConfig[T]](func(c *writerConfig[T]) { c.path = name })
}

// WithWriterCompression selects the compressor registry name.
func WithWriterCompression[T any](name string) WriterOption[T] {
	return options.NoError[*writerConfig[T]](func(c *writerConfig[T]) { c.compression = name })
}

// WithMode sets the file mode: "w" (truncate-create, default) or "a"
// (append), optionally followed by "b" and a single compression-level
// digit, per §4.4's `[wa]b?(\d.?)?` grammar.
func WithMode[T any](mode string) WriterOption[T] {
	return options.New[*writerConfig[T]](func(c *writerConfig[T]) error {
		truncate, level, err := parseMode(mode)
		if err != nil {
			return err
		}
		c.truncate = truncate
		c.level = level
		return nil
	})
}

// WithWriterHashfilter configures slice partitioning on write.
func WithWriterHashfilter[T any](sliceno, slices uint32, spreadNone bool) WriterOption[T] {
	return options.NoError[*writerConfig[T]](func(c *writerConfig[T]) {
		c.hashfilterEnabled = true
		c.sliceno = sliceno
		c.slices = slices
		c.spreadNone = spreadNone
	})
}

// WithNoneSupport admits (true) or rejects (false, the default) writing
// None. Rejected at construction for codecs whose NoneAdmissible() is
// false (Bits64, Bits32).
func WithNoneSupport[T any](enabled bool) WriterOption[T] {
	return options.NoError[*writerConfig[T]](func(c *writerConfig[T]) { c.noneSupport = enabled })
}

// WithErrorExtra sets the free-form string appended to error messages.
func WithErrorExtra[T any](extra string) WriterOption[T] {
	return options.NoError[*writerConfig[T]](func(c *writerConfig[T]) { c.errorExtra = extra })
}

// WithDefault configures a fallback value substituted when encoding a
// caller-supplied value fails.
func WithDefault[T any](def T) WriterOption[T] {
	return options.NoError[*writerConfig[T]](func(c *writerConfig[T]) {
		c.haveDefault = true
		c.def = &def
	})
}
