package mtzip

import (
	"log/slog"

	"github.com/LK/mtzip/internal/extra"
	"github.com/LK/mtzip/internal/ziptype"
)

// Option configures an Archive.
type Option func(*archiveConfig)

type archiveConfig struct {
	workers int
	logger  *slog.Logger
	comment string
}

// WithWorkers sets the number of concurrent entry conversions during
// Write. Zero or negative uses one worker per CPU.
func WithWorkers(n int) Option {
	return func(c *archiveConfig) {
		c.workers = n
	}
}

// WithLogger sets the logger for archive operations. By default logs are
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *archiveConfig) {
		c.logger = logger
	}
}

// WithComment sets the archive-level comment.
func WithComment(comment string) Option {
	return func(c *archiveConfig) {
		c.comment = comment
	}
}

// EntryOption configures a single queued entry.
type EntryOption func(*entryConfig)

type entryConfig struct {
	method   ziptype.Method
	level    ziptype.Level
	comment  string
	extra    extra.Fields
	attrs    uint16
	attrsSet bool
}

func newEntryConfig(opts []EntryOption) entryConfig {
	cfg := entryConfig{
		method: ziptype.Deflated,
		level:  ziptype.LevelDefault,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c entryConfig) attributes(fallback uint16) uint16 {
	if c.attrsSet {
		return c.attrs
	}
	return fallback
}

// EntryWithMethod sets the compression method. Filesystem entries always
// deflate and ignore this.
func EntryWithMethod(method Method) EntryOption {
	return func(c *entryConfig) {
		c.method = method
	}
}

// EntryWithLevel sets the deflate compression level.
func EntryWithLevel(level Level) EntryOption {
	return func(c *entryConfig) {
		c.level = level
	}
}

// EntryWithComment sets the per-entry comment.
func EntryWithComment(comment string) EntryOption {
	return func(c *entryConfig) {
		c.comment = comment
	}
}

// EntryWithAttributes sets the external attribute word. Filesystem
// entries derive attributes from file metadata and ignore this.
func EntryWithAttributes(attrs uint16) EntryOption {
	return func(c *entryConfig) {
		c.attrs = attrs
		c.attrsSet = true
	}
}

// EntryWithExtraFields appends auxiliary records to the entry's headers.
// Filesystem entries place their metadata-derived records first.
func EntryWithExtraFields(fields ...ExtraField) EntryOption {
	return func(c *entryConfig) {
		c.extra = append(c.extra, fields...)
	}
}
