// Package logging builds the charmbracelet/log loggers used across the
// command line tools, the SSH server and the games.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configure a logger.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	File   string // Log file path, "-" for stderr, empty to discard
	Prefix string
}

// New creates a logger writing to w.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Open creates a logger from options. The returned closer releases the log
// file, if one was opened, and is never nil.
//
// A terminal game owns the screen, so the default destination is nowhere;
// pass "-" to log to stderr (useful for the SSH server) or a path to append
// to a file.
func Open(opts Options) (*log.Logger, io.Closer, error) {
	var w io.Writer
	closer := io.Closer(nopCloser{})

	switch opts.File {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		path := expandHome(opts.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, closer, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		w = f
		closer = f
	}

	logger, err := New(w, opts.Prefix, opts.Level)
	if err != nil {
		closer.Close()
		return nil, nopCloser{}, err
	}
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
