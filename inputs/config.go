// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package inputs

import (
	"io"
	"log/slog"
)

type Config struct {
	autoEOL bool
	stripCR bool
	logger  *slog.Logger
}

type Option func(c *Config) error

func WithAutoEOL(flag bool) Option {
	return func(c *Config) error {
		c.autoEOL = flag
		return nil
	}
}

func WithStripCR(flag bool) Option {
	return func(c *Config) error {
		c.stripCR = flag
		return nil
	}
}

// WithLogger sets the logger for debugging messages.
// A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		c.logger = logger
		return nil
	}
}
