// Package application defines the dependency surface Stagehand commands
// receive from the app layer.
//
// Command constructors accept the Application interface, or a narrower
// use-site interface, instead of the concrete *app.App. Tests hand them
// a Mock with only the methods under test filled in:
//
//	cmd := validate.NewCommand(&application.Mock{
//	    StagehandFunc: func(opts ...stagehand.Option) (stagehand.Stagehand, error) {
//	        return pipeline, nil
//	    },
//	})
package application

import (
	"github.com/rs/zerolog"

	"github.com/cuebox/stagehand"
)

// Application is what a command may ask of the app layer. The concrete
// *app.App implements it. All methods must be safe for concurrent use.
type Application interface {
	// Stagehand returns the reconciliation pipeline. Without options the
	// cached default instance is returned; with options a fresh instance
	// is built on top of the configuration defaults.
	Stagehand(opts ...stagehand.Option) (stagehand.Stagehand, error)

	// Logger returns the configured logger.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json,
	// yaml, csv).
	OutputFormat() string

	// Version returns the build version string.
	Version() string
}
