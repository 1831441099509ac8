package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cuebox/stagehand/pkg/logging"
)

// NewLogger builds the app logger from config. The effective level comes
// from, in order: --log-level, then --verbose or --quiet, then LOG_LEVEL
// (folded into config by LoadConfig), then info.
func NewLogger(config *Config) zerolog.Logger {
	level := resolveLevel(config)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		AddCaller: level == "debug" || level == "trace",
	})
}

// resolveLevel applies the level precedence to config.
func resolveLevel(config *Config) string {
	if config.LogLevel != "" {
		level := clampLevel(config.LogLevel)
		if level != config.LogLevel {
			fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, falling back to %q\n", config.LogLevel, level)
		}
		return level
	}

	if config.Verbose && config.Quiet {
		fmt.Fprintln(os.Stderr, "Warning: --verbose and --quiet both set, using --quiet")
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	// An empty level here means nothing was set anywhere, LOG_LEVEL included.
	return "info"
}

// clampLevel returns level when it names a known level, info otherwise.
func clampLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	return "info"
}
