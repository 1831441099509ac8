package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cuebox/stagehand/pkg/constants"
)

// Config controls how loggers built by this package behave.
type Config struct {
	// Level is the minimum level that gets written.
	Level string

	// Format selects the encoding: json, console, pretty, or auto.
	Format string

	// Output names the destination: stderr, stdout, discard, or a file path.
	Output string

	// TimeFormat names the console timestamp layout (kitchen, rfc3339, log).
	TimeFormat string

	// NoColor turns off ANSI colors in console output.
	NoColor bool

	// AddCaller appends file:line to every entry.
	AddCaller bool
}

// DefaultConfig returns the configuration used when nothing overrides it:
// info-level, auto-detected format, stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
		AddCaller:  false,
	}
}

// NewLoggerFromConfig builds a logger for cfg. A nil cfg gets defaults.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := toLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(newWriter(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Debug runs always get caller info.
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Configure rebuilds the default logger from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// ConfigureFromEnv rebuilds the default logger from LOG_LEVEL, LOG_FORMAT,
// LOG_OUTPUT, LOG_TIME_FORMAT, LOG_CALLER, and NO_COLOR.
func ConfigureFromEnv() {
	Configure(&Config{
		Level:      envOr("LOG_LEVEL", "info"),
		Format:     envOr("LOG_FORMAT", "auto"),
		Output:     envOr("LOG_OUTPUT", "stderr"),
		TimeFormat: envOr("LOG_TIME_FORMAT", "kitchen"),
		NoColor:    os.Getenv("NO_COLOR") != "",
		AddCaller:  os.Getenv("LOG_CALLER") == "true",
	})
}

// newWriter resolves cfg.Output to a destination and wraps it in a
// console writer unless the effective format is JSON.
func newWriter(cfg *Config) io.Writer {
	output := openOutput(cfg.Output)

	format := strings.ToLower(cfg.Format)
	if format == "auto" {
		if output == os.Stderr && isTerminal(output) {
			format = "console"
		} else {
			format = "json"
		}
	}

	switch format {
	case "console", "pretty":
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: timeLayout(cfg.TimeFormat),
			NoColor:    cfg.NoColor,
		}
	default:
		return output
	}
}

// openOutput maps an output name to a writer. Unknown names are opened
// as append-mode files; when that fails, logs land on stderr.
func openOutput(name string) io.Writer {
	switch strings.ToLower(name) {
	case "stdout":
		return os.Stdout
	case "stderr", "":
		return os.Stderr
	case "discard", "none":
		return io.Discard
	}
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return file
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

var levelNames = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
	"none":     zerolog.Disabled,
	"off":      zerolog.Disabled,
}

// toLevel maps a level name to a zerolog level, falling back to info.
func toLevel(name string) zerolog.Level {
	if level, ok := levelNames[strings.ToLower(name)]; ok {
		return level
	}
	if level, err := zerolog.ParseLevel(name); err == nil {
		return level
	}
	return zerolog.InfoLevel
}

// timeLayout maps a timestamp format name to its layout string. The "log"
// layout carries the full date for console output redirected to a file.
func timeLayout(name string) string {
	switch strings.ToLower(name) {
	case "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "rfc3339nano":
		return time.RFC3339Nano
	case "unix", "epoch":
		return "" // zerolog renders an epoch timestamp for the empty layout
	case "stamp":
		return time.Stamp
	case "log":
		return constants.TimeFormatLog
	}
	// Pass through anything that already looks like a reference layout.
	if strings.Contains(name, "2006") || strings.Contains(name, "15:04") {
		return name
	}
	return time.Kitchen
}

// envOr returns the named environment variable or fallback when unset.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
