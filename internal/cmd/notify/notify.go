// Package notify joins alerts and hints behind one API for commands: an
// alert says what happened, hints say what to do next.
package notify

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cuebox/stagehand/internal/cmd/alerts"
	"github.com/cuebox/stagehand/internal/cmd/globals"
	"github.com/cuebox/stagehand/internal/cmd/hints"
	"github.com/cuebox/stagehand/internal/cmd/output"
)

// Notifier writes alerts and context hints for a command run.
type Notifier struct {
	alertWriter  alerts.Writer
	hintRegistry *hints.Registry
	config       Config
}

// Config controls what a Notifier shows and where it writes.
type Config struct {
	OutputFormat string
	ShowHints    bool
	ShowAlerts   bool
	MaxHints     int
	AlertWriter  io.Writer
	HintWriter   io.Writer
	UseColor     bool
}

// DefaultConfig shows alerts on stderr and at most one hint on stdout,
// in the format detected for the terminal.
func DefaultConfig() Config {
	return Config{
		OutputFormat: "auto",
		ShowHints:    true,
		ShowAlerts:   true,
		MaxHints:     1,
		AlertWriter:  os.Stderr,
		HintWriter:   os.Stdout,
		UseColor:     true,
	}
}

// New builds a Notifier from config.
func New(config Config) *Notifier {
	registry := hints.NewRegistry().WithConfig(hints.RegistryConfig{
		MaxHints: config.MaxHints,
		Enabled:  config.ShowHints,
	})
	hints.RegisterDefaults(registry)

	writer := alerts.NewFormatWriter(config.AlertWriter, resolveFormat(config.OutputFormat)).
		WithConfig(alerts.WriterConfig{
			ShowDetails: true,
			UseColor:    config.UseColor && isTerminal(config.AlertWriter),
		})

	return &Notifier{alertWriter: writer, hintRegistry: registry, config: config}
}

// NewFromCommand builds a Notifier from cmd's global flags. Hints are
// suppressed under --quiet and in CI.
func NewFromCommand(cmd *cobra.Command) *Notifier {
	config := DefaultConfig()

	flags := globals.Parse(cmd)
	config.OutputFormat = flags.Output
	config.ShowHints = !flags.Quiet && !inCI()
	config.UseColor = !flags.NoColor

	return New(config)
}

// Alert writes one alert, honoring ShowAlerts.
func (n *Notifier) Alert(alert *alerts.Alert) error {
	if !n.config.ShowAlerts {
		return nil
	}
	return n.alertWriter.WriteAlert(alert)
}

// Success writes a success alert followed by hints for ctx.
func (n *Notifier) Success(message string, ctx hints.Context) error {
	return n.AlertWithHints(alerts.NewSuccess(message), ctx)
}

// Error writes an error alert followed by hints for ctx.
func (n *Notifier) Error(message string, ctx hints.Context) error {
	return n.AlertWithHints(alerts.NewError(message), ctx)
}

// AlertWithHints writes alert, then whatever hints apply to ctx.
func (n *Notifier) AlertWithHints(alert *alerts.Alert, ctx hints.Context) error {
	if err := n.Alert(alert); err != nil {
		return fmt.Errorf("failed to write alert: %w", err)
	}
	return n.Hints(ctx)
}

// Hints writes the hints for ctx, without an alert.
func (n *Notifier) Hints(ctx hints.Context) error {
	if !n.config.ShowHints {
		return nil
	}
	hintList := n.hintRegistry.GetHints(ctx)
	return hints.Display(n.config.HintWriter, resolveFormat(n.config.OutputFormat), hintList)
}

// resolveFormat maps a configured format name to an output.Format,
// detecting one when the name is empty or "auto".
func resolveFormat(name string) output.Format {
	if name == "" || name == "auto" {
		return output.DetectFormat("")
	}
	return output.Format(strings.ToLower(name))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ciEnv lists variables the common CI systems set.
var ciEnv = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
	"TRAVIS",
	"CIRCLECI",
}

// inCI reports whether any CI marker variable is set.
func inCI() bool {
	return slices.ContainsFunc(ciEnv, func(v string) bool {
		return os.Getenv(v) != ""
	})
}
