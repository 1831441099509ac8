// Package constituents provides the constituents command implementation.
package constituents

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cuebox/stagehand"
	"github.com/cuebox/stagehand/internal/cmd/alerts"
	"github.com/cuebox/stagehand/internal/cmd/globals"
	"github.com/cuebox/stagehand/internal/cmd/notify"
	"github.com/cuebox/stagehand/internal/cmd/output"
	"github.com/cuebox/stagehand/internal/sources/tables"
	"github.com/cuebox/stagehand/internal/tabular"
)

// AppContext is the slice of the app the constituents command consumes.
type AppContext interface {
	Stagehand(opts ...stagehand.Option) (stagehand.Stagehand, error)
	Logger() *zerolog.Logger
	ConstituentsOut() string
	QAOut() string
}

// Flags holds the constituents command flags.
type Flags struct {
	Constituents string
	Emails       string
	Donations    string
	Out          string
	QAOut        string
	MappingURL   string
	Cache        string
	Aliases      string
	Progress     bool
}

// NewCommand creates the constituents command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:     "constituents",
		GroupID: "core",
		Short:   "Build the CueBox constituent import file",
		Long: `Constituents merges the patron profile, email, and donation exports into
one canonical constituent file ready for CueBox import.

The command will:
1. Read the three CSV exports (profiles, emails, donations)
2. Drop duplicate patron IDs, keeping the first occurrence
3. Rewrite tags to canonical names using the tag mapping service
4. Pick up to two emails per constituent and summarize giving history
5. Write the import file and a QA report of data quality findings`,
		Example: `  stagehand constituents --constituents patrons.csv --emails emails.csv --donations gifts.csv
  stagehand constituents --constituents patrons.csv       # emails and donations from config
  stagehand constituents --progress                       # show a progress bar
  stagehand constituents --aliases aliases.yaml           # map renamed CSV headers`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, app, &flags)
		},
	}

	addFlags(cmd, app, &flags)

	return cmd
}

// addFlags wires the command flags. Report destinations default to the app
// configuration so the config file can relocate them.
func addFlags(cmd *cobra.Command, app AppContext, flags *Flags) {
	cmd.Flags().StringVar(&flags.Constituents, "constituents", "", "patron profile export (CSV)")
	cmd.Flags().StringVar(&flags.Emails, "emails", "", "secondary email export (CSV)")
	cmd.Flags().StringVar(&flags.Donations, "donations", "", "donation history export (CSV)")
	cmd.Flags().StringVar(&flags.Out, "out", app.ConstituentsOut(), "constituent import file to write")
	cmd.Flags().StringVar(&flags.QAOut, "qa", app.QAOut(), "QA report to write")
	cmd.Flags().StringVar(&flags.MappingURL, "tag-mapping-url", "", "tag mapping service URL")
	cmd.Flags().StringVar(&flags.Cache, "cache", "", "tag mapping cache file")
	cmd.Flags().StringVar(&flags.Aliases, "aliases", "", "column alias file (YAML)")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "show a progress bar while building records")
}

// pipelineOptions converts changed flags into pipeline options. Unset flags
// are omitted so the app configuration keeps supplying them.
func pipelineOptions(cmd *cobra.Command, flags *Flags) []stagehand.Option {
	var opts []stagehand.Option

	if flags.Constituents != "" {
		opts = append(opts, stagehand.WithConstituentsFile(flags.Constituents))
	}
	if flags.Emails != "" {
		opts = append(opts, stagehand.WithEmailsFile(flags.Emails))
	}
	if flags.Donations != "" {
		opts = append(opts, stagehand.WithDonationsFile(flags.Donations))
	}
	if flags.MappingURL != "" {
		opts = append(opts, stagehand.WithTagMappingURL(flags.MappingURL))
	}
	if flags.Cache != "" {
		opts = append(opts, stagehand.WithMappingCacheFile(flags.Cache))
	}
	if flags.Aliases != "" {
		opts = append(opts, stagehand.WithColumnAliasesFile(flags.Aliases))
	}
	if cmd.Flags().Changed("progress") {
		opts = append(opts, stagehand.WithProgress(flags.Progress))
	}

	return opts
}

// run executes the onboarding pipeline and writes both report files.
func run(ctx context.Context, cmd *cobra.Command, app AppContext, flags *Flags) error {
	notifier := notify.NewFromCommand(cmd)
	hintCtx := notify.NewContextBuilder().FromCommand(cmd)

	sh, err := app.Stagehand(pipelineOptions(cmd, flags)...)
	if err != nil {
		return err
	}

	result, err := sh.Onboard(ctx)
	if err != nil {
		_ = notifier.Error("Onboarding failed", hintCtx.WithError(err).Build())
		return err
	}

	if err := tabular.Write(flags.Out, tables.ConstituentColumns(), tables.EncodeConstituents(result.Constituents)); err != nil {
		return fmt.Errorf("writing %s: %w", flags.Out, err)
	}
	if err := tabular.Write(flags.QAOut, tables.QAColumns(), tables.EncodeIssues(result.Issues)); err != nil {
		return fmt.Errorf("writing %s: %w", flags.QAOut, err)
	}

	if err := notifier.Alert(alerts.NewWrote(flags.Out, len(result.Constituents), "constituents")); err != nil {
		return err
	}
	if err := notifier.Alert(alerts.NewQAReport(flags.QAOut, len(result.Issues))); err != nil {
		return err
	}

	// Show the QA findings inline so they are not buried in the report file.
	globalFlags := globals.Parse(cmd)
	if len(result.Issues) > 0 && !globalFlags.Quiet {
		if err := output.FormatIssues(result.Issues, globalFlags); err != nil {
			return err
		}
	}

	return notifier.Hints(hintCtx.
		WithSuccess(true).
		WithIssues(len(result.Issues)).
		WithTagMappings(result.TagMappings).
		WithOutputs(flags.Out, flags.QAOut).
		Build())
}
