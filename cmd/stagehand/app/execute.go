package app

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cuebox/stagehand/internal/cmd/constants"
)

// Execute parses args and runs the selected command. main.go calls this
// once with os.Args[1:].
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand assembles the root command, its global flags, and the
// subcommands. Global flags bind straight into a.config with the loaded
// configuration as defaults, so parsing applies flag precedence in place:
// a passed flag overwrites the loaded value, an omitted flag keeps it.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stagehand",
		Short:   "Patron data onboarding for CueBox",
		Version: a.version,
		Long: `Stagehand reconciles patron management exports into CueBox import files.

It merges the patron profile, email, and donation history exports into a
single constituents file, rewrites tags to their canonical names, reports
data quality issues, and summarizes tag usage across the patron base.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "management", Title: "Management Commands:"},
	)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", a.config.ConfigFile, "config file (default is $HOME/.stagehand.yaml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Output, "output", "o", a.config.Output, "output format: "+strings.Join(constants.Formats, ", "))
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	_ = rootCmd.RegisterFlagCompletionFunc("output",
		func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return constants.Formats, cobra.ShellCompDirectiveNoFileComp
		})

	// Keep `stagehand --version` consistent with the version subcommand.
	rootCmd.SetVersionTemplate("stagehand {{.Version}}\n")

	rootCmd.AddCommand(
		a.CreateConstituentsCommand(),
		a.CreateTagsCommand(),
		a.CreateValidateCommand(),
		a.CreateVersionCommand(),
	)

	return rootCmd
}

// setupCommand runs before every command. Flag parsing has already
// written into a.config; what remains is the explicit --config reload,
// validation, and rebuilding the logger at the effective level.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// An explicit --config beats the discovered file. Pipeline keys are
	// re-read from it; the flags parsed above still win for everything
	// they cover.
	if cmd.Flags().Changed("config") {
		viper.SetConfigFile(a.config.ConfigFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", a.config.ConfigFile, err)
		}
		a.config.applyFileKeys()
	}

	if a.config.Output != "" && !slices.Contains(constants.Formats, strings.ToLower(a.config.Output)) {
		return fmt.Errorf("invalid output format %q: must be one of %s",
			a.config.Output, strings.Join(constants.Formats, ", "))
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError prints err to stderr and exits 1. main.go uses it for
// top-level failures.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
