// Package logging wraps zerolog behind a small facade: a process-wide
// default logger configured from the environment, constructors for
// console and JSON output, and context helpers that scope a logger to
// an operation, an input source, or a file.
//
//	log := logging.Default()
//	log.Info().Str("source", "constituents").Msg("Loading input table")
//
//	ctx := logging.WithSource(ctx, "emails")
//	logging.FromContext(ctx).Debug().Int("rows", n).Msg("Indexed")
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// std is the process-wide default logger.
var std zerolog.Logger

func init() {
	// Environment overrides apply before any flag parsing runs, so that
	// early failures (config load, flag errors) are already logged right.
	cfg := DefaultConfig()
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Level = lvl
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	std = NewLoggerFromConfig(cfg)
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &std
}

// SetDefault replaces the default logger. zerolog's own global logger
// follows it, so log.Logger callers stay consistent.
func SetDefault(logger zerolog.Logger) {
	std = logger
	log.Logger = logger
}

// New returns a timestamped logger writing to w at the global level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable stderr logger.
func NewConsole() zerolog.Logger {
	return New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeLayout("kitchen"),
		NoColor:    os.Getenv("NO_COLOR") != "",
	})
}

// NewJSON returns a structured JSON logger. A nil writer means stderr.
func NewJSON(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(w)
}

// With opens a child context on the default logger.
func With() zerolog.Context {
	return std.With()
}

// Level returns a copy of the default logger capped at level.
func Level(level zerolog.Level) zerolog.Logger {
	return std.Level(level)
}

// Debug logs at debug level on the default logger.
func Debug() *zerolog.Event {
	return std.Debug()
}

// Info logs at info level on the default logger.
func Info() *zerolog.Event {
	return std.Info()
}

// Warn logs at warn level on the default logger.
func Warn() *zerolog.Event {
	return std.Warn()
}

// Error logs at error level on the default logger.
func Error() *zerolog.Event {
	return std.Error()
}

// WithLevel logs at a dynamically chosen level.
func WithLevel(level zerolog.Level) *zerolog.Event {
	return std.WithLevel(level)
}

// Err logs err at error level, or info when err is nil.
func Err(err error) *zerolog.Event {
	return std.Err(err)
}
