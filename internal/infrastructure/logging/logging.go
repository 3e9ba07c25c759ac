// Package logging builds the leveled console logger shared by all commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"mtodo/internal/infrastructure/config"
)

const prefix = "mtodo"

// New creates a logger writing to w at the given level name
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          prefix,
	}), nil
}

// Open creates the logger described by cfg. Without a log file it
// writes to stderr. The returned cleanup closes the file, if any.
func Open(cfg config.LoggingConfig) (*log.Logger, func(), error) {
	if cfg.File == "" {
		logger, err := New(os.Stderr, cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		return logger, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(file, cfg.Level)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	logger.SetReportTimestamp(true)

	return logger, func() { file.Close() }, nil
}

// ParseLevel maps a config level name to a log.Level; empty means warn
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
