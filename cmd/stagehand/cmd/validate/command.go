// Package validate provides the validate command implementation.
package validate

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cuebox/stagehand/cmd/application"
	"github.com/cuebox/stagehand/internal/cmd/alerts"
	"github.com/cuebox/stagehand/internal/cmd/globals"
	"github.com/cuebox/stagehand/internal/cmd/notify"
	"github.com/cuebox/stagehand/internal/cmd/output"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "validate FILE",
		GroupID: "management",
		Short:   "Re-check a constituent import file",
		Args:    cobra.ExactArgs(1),
		Long: `Validate re-runs the QA checks against a constituent import file that
was written earlier, without rebuilding it.

Checks cover duplicate constituent IDs, missing created-at timestamps,
unexpected titles, and email ordering problems.`,
		Example: `  stagehand validate output/CueBox_Constituents.csv
  stagehand validate --strict edited.csv    # non-zero exit on findings
  stagehand validate -o json edited.csv     # findings as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, app, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when issues are found")

	return cmd
}

// run re-checks the given file and reports findings in the configured format.
func run(ctx context.Context, cmd *cobra.Command, app application.Application, path string, strict bool) error {
	notifier := notify.NewFromCommand(cmd)
	hintCtx := notify.NewContextBuilder().FromCommand(cmd)

	sh, err := app.Stagehand()
	if err != nil {
		return err
	}

	issues, err := sh.ValidateOutput(ctx, path)
	if err != nil {
		_ = notifier.Error("Validation failed", hintCtx.WithError(err).Build())
		return err
	}

	if len(issues) == 0 {
		return notifier.Success(fmt.Sprintf("%s passed all checks", path), hintCtx.WithSuccess(true).Build())
	}

	if err := output.FormatIssues(issues, globals.Parse(cmd)); err != nil {
		return err
	}

	// Summarize findings per QA code under the warning line.
	counts := make(map[string]int)
	for _, issue := range issues {
		counts[string(issue.Code)]++
	}
	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	breakdown := make([]string, 0, len(counts))
	for _, code := range codes {
		breakdown = append(breakdown, fmt.Sprintf("%s: %d", code, counts[code]))
	}

	warning := alerts.NewWarning(fmt.Sprintf("%d issues found in %s", len(issues), path)).
		WithDetails(breakdown...)
	if err := notifier.Alert(warning); err != nil {
		return err
	}

	if strict {
		return fmt.Errorf("%d issues found", len(issues))
	}

	return nil
}
