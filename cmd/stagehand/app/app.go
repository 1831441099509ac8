// Package app wires the stagehand CLI together: configuration loading,
// logger construction, and the shared pipeline instance behind the
// cobra commands.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cuebox/stagehand"
	"github.com/cuebox/stagehand/pkg/errors"
)

// App carries what a command needs at run time: version metadata, the
// merged configuration, the logger, and a lazily built pipeline.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Pipeline instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	pipeline stagehand.Stagehand
}

// New builds an App for the given build metadata. Configuration loads
// before the options run, so an option can replace anything LoadConfig
// produced.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// ConstituentsOut returns the configured constituent import file path.
func (a *App) ConstituentsOut() string {
	return a.config.ConstituentsOut
}

// QAOut returns the configured QA report path.
func (a *App) QAOut() string {
	return a.config.QAOut
}

// TagsOut returns the configured tag report path.
func (a *App) TagsOut() string {
	return a.config.TagsOut
}

// Stagehand returns the pipeline instance. Called without options it
// returns the shared instance built from the app configuration, creating
// it lazily; this is thread-safe and ensures only one instance exists.
// Called with options it creates a new instance each time, layering the
// options on top of the configuration defaults. Commands use this to let
// flags override config file and environment settings.
func (a *App) Stagehand(opts ...stagehand.Option) (stagehand.Stagehand, error) {
	if len(opts) > 0 {
		merged := append(a.buildPipelineOptions(), opts...)
		return stagehand.New(merged...)
	}

	a.mu.RLock()
	if a.pipeline != nil {
		sh := a.pipeline
		a.mu.RUnlock()
		return sh, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.pipeline != nil {
		return a.pipeline, nil
	}

	sh, err := stagehand.New(a.buildPipelineOptions()...)
	if err != nil {
		return nil, err
	}

	a.pipeline = sh
	return sh, nil
}

// Shutdown performs graceful shutdown of the application.
// Pipeline runs are one-shot, so there are no background tasks to stop;
// this flushes nothing but keeps the lifecycle symmetric for main.go.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.pipeline != nil {
		a.logger.Debug().Msg("Shutting down pipeline")
	}

	return nil
}

// buildPipelineOptions constructs pipeline options from the app configuration.
func (a *App) buildPipelineOptions() []stagehand.Option {
	opts := []stagehand.Option{
		stagehand.WithLogger(a.logger),
	}

	if a.config.ConstituentsFile != "" {
		opts = append(opts, stagehand.WithConstituentsFile(a.config.ConstituentsFile))
	}
	if a.config.EmailsFile != "" {
		opts = append(opts, stagehand.WithEmailsFile(a.config.EmailsFile))
	}
	if a.config.DonationsFile != "" {
		opts = append(opts, stagehand.WithDonationsFile(a.config.DonationsFile))
	}

	if a.config.TagMappingURL != "" {
		opts = append(opts, stagehand.WithTagMappingURL(a.config.TagMappingURL))
	}
	if a.config.MappingCache != "" {
		opts = append(opts, stagehand.WithMappingCacheFile(a.config.MappingCache))
	}
	if a.config.ColumnAliases != "" {
		opts = append(opts, stagehand.WithColumnAliasesFile(a.config.ColumnAliases))
	}

	if a.config.Progress {
		opts = append(opts, stagehand.WithProgress(true))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStagehand sets a custom pipeline instance (useful for testing).
func WithStagehand(sh stagehand.Stagehand) Option {
	return func(a *App) error {
		a.pipeline = sh
		return nil
	}
}
