// Package tags provides the tags command implementation.
package tags

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

// AppContext is the slice of the app the tags command consumes.
type AppContext interface {
	Stagehand(opts ...stagehand.Option) (stagehand.Stagehand, error)
	Logger() *zerolog.Logger
	TagsOut() string
}

// Flags holds the tags command flags.
type Flags struct {
	Constituents string
	Out          string
	MappingURL   string
	Cache        string
	Aliases      string
	Print        bool
}

// NewCommand creates the tags command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:     "tags",
		GroupID: "core",
		Short:   "Count constituents per canonical tag",
		Long: `Tags summarizes tag usage across the patron base.

Each canonical tag is counted once per constituent, no matter how many
times it appears on a patron row, and the summary is sorted by count
with ties broken alphabetically.`,
		Example: `  stagehand tags --constituents patrons.csv
  stagehand tags --out reports/tags.csv     # write somewhere else
  stagehand tags --print                    # also print the summary
  stagehand tags --print -o json            # print as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, app, &flags)
		},
	}

	addFlags(cmd, app, &flags)

	return cmd
}

func addFlags(cmd *cobra.Command, app AppContext, flags *Flags) {
	cmd.Flags().StringVar(&flags.Constituents, "constituents", "", "patron profile export (CSV)")
	cmd.Flags().StringVar(&flags.Out, "out", app.TagsOut(), "tag report to write")
	cmd.Flags().StringVar(&flags.MappingURL, "tag-mapping-url", "", "tag mapping service URL")
	cmd.Flags().StringVar(&flags.Cache, "cache", "", "tag mapping cache file")
	cmd.Flags().StringVar(&flags.Aliases, "aliases", "", "column alias file (YAML)")
	cmd.Flags().BoolVar(&flags.Print, "print", false, "print the summary after writing the report")
}

// pipelineOptions converts changed flags into pipeline options.
func pipelineOptions(flags *Flags) []stagehand.Option {
	var opts []stagehand.Option

	if flags.Constituents != "" {
		opts = append(opts, stagehand.WithConstituentsFile(flags.Constituents))
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

	return opts
}

// run builds the tag report and writes it as CSV.
func run(ctx context.Context, cmd *cobra.Command, app AppContext, flags *Flags) error {
	notifier := notify.NewFromCommand(cmd)
	hintCtx := notify.NewContextBuilder().FromCommand(cmd)

	sh, err := app.Stagehand(pipelineOptions(flags)...)
	if err != nil {
		return err
	}

	counts, err := sh.TagReport(ctx)
	if err != nil {
		_ = notifier.Error("Tag report failed", hintCtx.WithError(err).Build())
		return err
	}

	if err := tabular.Write(flags.Out, tables.TagColumns(), tables.EncodeTagCounts(counts)); err != nil {
		return fmt.Errorf("writing %s: %w", flags.Out, err)
	}

	if err := notifier.Alert(alerts.NewWrote(flags.Out, len(counts), "tags")); err != nil {
		return err
	}

	if flags.Print {
		if err := output.FormatTagCounts(counts, globals.Parse(cmd)); err != nil {
			return err
		}
	}

	return notifier.Hints(hintCtx.WithSuccess(true).Build())
}
