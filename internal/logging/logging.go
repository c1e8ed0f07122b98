// Package logging builds the zerolog logger. The terminal belongs to the UI,
// so logs go to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options configure the logger.
type Options struct {
	Path  string
	Debug bool
}

// New opens (or creates) the log file and returns a logger writing to it
// together with a function that closes the file.
func New(opts Options) (zerolog.Logger, func() error, error) {
	if opts.Path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	return NewWithWriter(f, opts.Debug), f.Close, nil
}

// NewWithWriter returns a logger writing JSON lines to w.
func NewWithWriter(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(w).Level(level).With().Timestamp().Str("component", "lazytheme").Logger()
}
