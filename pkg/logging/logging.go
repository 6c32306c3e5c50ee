// Package logging builds the slog loggers used across the CLI, the
// engine, and the configuration API.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level aliases slog.Level so callers configure logging without
// importing slog themselves.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format selects the output encoding.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config describes how a logger is built.
type Config struct {
	// Level is the minimum severity that gets emitted.
	Level Level

	// Format picks text or JSON encoding.
	Format Format

	// Output receives the log lines. Nil means os.Stderr.
	Output io.Writer

	// AddSource annotates records with file and line.
	AddSource bool
}

// DefaultConfig is what the binary uses when nothing is configured:
// info-level text on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// New builds a slog.Logger from cfg.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return slog.New(handler)
}

// Nop returns a logger that drops everything. Components default to it
// so logging stays optional.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to its Level. Unrecognized names fall
// back to info rather than failing startup.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// ParseFormat maps a format name to its Format, defaulting to text.
func ParseFormat(s string) Format {
	switch s {
	case "json", "JSON":
		return FormatJSON
	default:
		return FormatText
	}
}
