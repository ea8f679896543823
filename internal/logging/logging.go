// Package logging builds the leveled charmbracelet logger used everywhere.
//
// The TUI owns the terminal, so interactive sessions log to a file. One-shot
// commands log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options configures a logger
type Options struct {
	Level  string
	Prefix string
	// ReportTimestamp adds a timestamp to every line; useful for files
	ReportTimestamp bool
}

// New returns a logger writing to w
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "actionary"
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: opts.ReportTimestamp,
		Formatter:       log.TextFormatter,
	}), nil
}

// File is a logger backed by an append-only log file
type File struct {
	*log.Logger
	file *os.File
}

// OpenFile opens (or creates) path for appending and returns a logger on it
func OpenFile(path string, opts Options) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	opts.ReportTimestamp = true
	logger, err := New(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{Logger: logger, file: f}, nil
}

// Close closes the underlying file
func (f *File) Close() error {
	if f == nil || f.file == nil {
		return nil
	}
	return f.file.Close()
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}
