package hints

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/cuebox/stagehand/internal/cmd/output"
)

// document wraps hints for structured output.
type document struct {
	Hints []*Hint `json:"hints" yaml:"hints"`
}

// Display writes hints to w in the given format. Plain text gets a blank
// line of padding on each side, the way gh prints its hints; JSON and
// YAML emit a document with a single hints key. No hints, no output.
func Display(w io.Writer, format output.Format, hints []*Hint) error {
	if len(hints) == 0 {
		return nil
	}

	switch format {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Hints: hints})

	case output.FormatYAML:
		data, err := yaml.MarshalWithOptions(document{Hints: hints},
			yaml.Indent(2),
			yaml.IndentSequence(false),
		)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		_, _ = fmt.Fprintln(w)
		for _, hint := range hints {
			_, _ = fmt.Fprintln(w, hint.String())
		}
		_, _ = fmt.Fprintln(w)
		return nil
	}
}
