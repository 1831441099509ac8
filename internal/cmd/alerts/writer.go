package alerts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/cuebox/stagehand/internal/cmd/output"
)

// FormatWriter renders alerts to a destination in one output format.
type FormatWriter struct {
	writer io.Writer
	format output.Format
	config WriterConfig
}

// WriterConfig adjusts how text alerts render.
type WriterConfig struct {
	ShowDetails bool
	UseColor    bool
}

// NewFormatWriter returns a writer for the given format. Color starts
// enabled only when the destination is a terminal.
func NewFormatWriter(w io.Writer, format output.Format) *FormatWriter {
	return &FormatWriter{
		writer: w,
		format: format,
		config: WriterConfig{
			ShowDetails: true,
			UseColor:    isTerminal(w),
		},
	}
}

// WithConfig replaces the writer configuration.
func (fw *FormatWriter) WithConfig(config WriterConfig) *FormatWriter {
	fw.config = config
	return fw
}

// alertDoc is the structured form of an alert.
type alertDoc struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
}

// WriteAlert renders one alert in the configured format.
func (fw *FormatWriter) WriteAlert(alert *Alert) error {
	doc := alertDoc{
		Level:   alert.Level.String(),
		Message: alert.Message,
		Details: alert.Details,
	}

	switch fw.format {
	case output.FormatJSON:
		enc := json.NewEncoder(fw.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	case output.FormatYAML:
		enc := yaml.NewEncoder(fw.writer, yaml.Indent(2))
		defer func() { _ = enc.Close() }()
		return enc.Encode(doc)

	default:
		return fw.writeText(alert)
	}
}

// writeText renders the alert as a single status line, in the style of gh
// and other modern CLIs, with indented detail lines underneath.
func (fw *FormatWriter) writeText(alert *Alert) error {
	line := alert.String()
	if fw.config.UseColor {
		line = alert.Level.Color() + line + colorReset
	}

	fmt.Fprintln(fw.writer, line)

	if fw.config.ShowDetails {
		for _, d := range alert.Details {
			fmt.Fprintf(fw.writer, "   %s\n", d)
		}
	}

	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
