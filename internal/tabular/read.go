package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/cuebox/stagehand/pkg/errors"
	"github.com/cuebox/stagehand/pkg/logging"
)

// ReadOption configures Read.
type ReadOption func(*readOptions)

type readOptions struct {
	aliases map[string]string
}

// WithAliases renames raw headers to canonical ones at read time, so the
// rest of the pipeline only ever sees canonical column names.
func WithAliases(aliases map[string]string) ReadOption {
	return func(o *readOptions) {
		o.aliases = aliases
	}
}

// Read parses a delimited file into a Table. A file without a header row
// is an error; a header with zero data rows is a valid empty table. Rows
// shorter than the header are padded with empty cells, longer rows are
// truncated, and rows the csv reader cannot parse at all are skipped with
// a warning.
func Read(ctx context.Context, path string, opts ...ReadOption) (*Table, error) {
	var options readOptions
	for _, opt := range opts {
		opt(&options)
	}

	log := logging.Ctx(logging.WithPath(ctx, path))

	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	// Ragged rows are padded or truncated below instead of erroring.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkgerrors.NewParseError("csv", path, "empty file: no header row", err)
		}
		return nil, pkgerrors.WrapParse("csv", path, err)
	}
	for i, h := range headers {
		headers[i] = cleanHeader(h, options.aliases)
	}

	table := &Table{Columns: headers}
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn().
				Err(err).
				Int("row", len(table.Rows)+1).
				Msg("Skipping unparsable row")
			continue
		}

		if len(cells) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, cells)
			cells = padded
		} else if len(cells) > len(headers) {
			cells = cells[:len(headers)]
		}

		values := make(map[string]string, len(headers))
		for i, h := range headers {
			values[h] = cells[i]
		}
		table.Rows = append(table.Rows, Row{index: len(table.Rows), values: values})
	}

	return table, nil
}

// cleanHeader trims whitespace and any UTF-8 BOM from a raw header cell,
// then applies the alias rename when one exists.
func cleanHeader(h string, aliases map[string]string) string {
	h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	if canonical, ok := aliases[h]; ok {
		return canonical
	}
	return h
}
