package kvconf

import (
	"io"
	"log/slog"
)

// Config is a flat, case-sensitive key to raw-value store filled from
// command-line arguments and configuration files. Values are kept verbatim;
// they are interpreted only when read through an accessor or grammar.
//
// A Config is not safe for concurrent mutation. Once initialization is done
// it can be shared freely between goroutines for reading.
type Config struct {
	values   map[string]string
	origins  map[string]Origin
	gate     gate
	filePath string
	fileName string
	log      *slog.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithLogHandler routes the Config's debug and info logs to h.
// By default nothing is logged.
func WithLogHandler(h slog.Handler) Option {
	return func(c *Config) {
		if h != nil {
			c.log = slog.New(h)
		}
	}
}

// New creates an empty Config with key checking disabled.
func New(opts ...Option) *Config {
	c := &Config{
		values:  make(map[string]string),
		origins: make(map[string]Origin),
		gate:    openGate{},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
