package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cuebox/stagehand/cmd/stagehand/cmd/constituents"
	"github.com/cuebox/stagehand/cmd/stagehand/cmd/tags"
	"github.com/cuebox/stagehand/cmd/stagehand/cmd/validate"
)

// CreateConstituentsCommand creates the constituents command with app dependencies.
func (a *App) CreateConstituentsCommand() *cobra.Command {
	return constituents.NewCommand(a)
}

// CreateTagsCommand creates the tags command with app dependencies.
func (a *App) CreateTagsCommand() *cobra.Command {
	return tags.NewCommand(a)
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("stagehand %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:     %s\n", a.commit)
				cmd.Printf("  built:      %s\n", a.date)
				cmd.Printf("  built by:   %s\n", a.builtBy)
				cmd.Printf("  go version: %s\n", runtime.Version())
				cmd.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
