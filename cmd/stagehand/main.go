// Package main is the stagehand CLI entry point.
package main

import (
	"context"
	"os"
	"time"

	"github.com/cuebox/stagehand/cmd/stagehand/app"
)

// Build metadata, stamped by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	app.ExitOnError(run())
}

func run() error {
	cli, err := app.New(version, commit, date, builtBy)
	if err != nil {
		return err
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		// The signal context may already be cancelled, so shutdown gets its
		// own deadline. A shutdown failure must not mask the original error.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if shutdownErr := cli.Shutdown(shutdownCtx); shutdownErr != nil {
			cli.Logger().Error().Err(shutdownErr).Msg("Shutdown error during error handling")
		}
		return err
	}

	return nil
}
