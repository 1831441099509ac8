package stagehand

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cuebox/stagehand/pkg/constants"
	"github.com/cuebox/stagehand/pkg/errors"
	"github.com/cuebox/stagehand/pkg/logging"
)

// options holds the configuration for one pipeline instance.
type options struct {
	constituentsPath string
	emailsPath       string
	donationsPath    string
	tagMappingURL    string
	mappingCachePath string
	aliasesPath      string
	httpClient       *http.Client
	logger           *zerolog.Logger
	progress         bool
}

// defaultOptions returns pipeline options with default values.
func defaultOptions() *options {
	return &options{
		mappingCachePath: constants.DefaultMappingCache,
		logger:           logging.Default(),
	}
}

// Option is a function that configures a Stagehand instance.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns pipeline options with default values applied.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithConstituentsFile sets the patron profile export to reconcile.
func WithConstituentsFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "constituents file",
				Message: "cannot be empty",
			}
		}
		o.constituentsPath = path
		return nil
	}
}

// WithEmailsFile sets the secondary email export.
func WithEmailsFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "emails file",
				Message: "cannot be empty",
			}
		}
		o.emailsPath = path
		return nil
	}
}

// WithDonationsFile sets the donation history export.
func WithDonationsFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "donations file",
				Message: "cannot be empty",
			}
		}
		o.donationsPath = path
		return nil
	}
}

// WithTagMappingURL sets the tag mapping endpoint. An empty URL keeps
// original tag names unless a cache is present.
func WithTagMappingURL(url string) Option {
	return func(o *options) error {
		o.tagMappingURL = url
		return nil
	}
}

// WithMappingCacheFile overrides where the tag mapping cache lives.
func WithMappingCacheFile(path string) Option {
	return func(o *options) error {
		o.mappingCachePath = path
		return nil
	}
}

// WithColumnAliasesFile sets an optional YAML file renaming customer
// column headers to the expected ones.
func WithColumnAliasesFile(path string) Option {
	return func(o *options) error {
		o.aliasesPath = path
		return nil
	}
}

// WithHTTPClient overrides the HTTP client used for the tag mapping
// endpoint.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		if client == nil {
			return &errors.ValidationError{
				Field:   "http client",
				Message: "cannot be nil",
			}
		}
		o.httpClient = client
		return nil
	}
}

// WithLogger overrides the pipeline logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}

// WithProgress enables a terminal progress bar while building records.
func WithProgress(enabled bool) Option {
	return func(o *options) error {
		o.progress = enabled
		return nil
	}
}

// requireInputs checks that the three reconciliation inputs are set.
func (o *options) requireInputs() error {
	switch {
	case o.constituentsPath == "":
		return errors.NewConfigError("onboard", "constituents file is required", nil)
	case o.emailsPath == "":
		return errors.NewConfigError("onboard", "emails file is required", nil)
	case o.donationsPath == "":
		return errors.NewConfigError("onboard", "donations file is required", nil)
	}
	return nil
}
