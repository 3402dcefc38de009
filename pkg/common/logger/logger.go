package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a grit logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Default is the process-wide logger used by the package-level helpers.
var Default *slog.Logger

func init() {
	Default = New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	})
}

// Config holds logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// New creates a logger for the given configuration. A nil Output discards.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// ParseFormat maps "text" and "json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown log format %q", s)
}

// Component returns a child of Default tagged with the component name.
func Component(name string) *slog.Logger {
	return Default.With("component", name)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs at debug level on Default.
func Debug(msg string, args ...any) {
	Default.Debug(msg, args...)
}

// Info logs at info level on Default.
func Info(msg string, args ...any) {
	Default.Info(msg, args...)
}

// Warn logs at warn level on Default.
func Warn(msg string, args ...any) {
	Default.Warn(msg, args...)
}

// Error logs at error level on Default.
func Error(msg string, args ...any) {
	Default.Error(msg, args...)
}

// With creates a child of Default with the given attributes.
func With(args ...any) *slog.Logger {
	return Default.With(args...)
}
