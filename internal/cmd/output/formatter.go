// Package output renders command results as tables, JSON, or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format names an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter renders a value to a writer.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format, defaulting to tables.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &jsonFormatter{indent: "  "}
	case FormatYAML:
		return &yamlFormatter{}
	default:
		return &tableFormatter{}
	}
}

// DetectFormat resolves the effective format: an explicit name wins,
// otherwise terminals get tables and pipes get JSON.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

type jsonFormatter struct {
	indent string
}

func (f *jsonFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	if f.indent != "" {
		enc.SetIndent("", f.indent)
	}
	return enc.Encode(data)
}

type yamlFormatter struct{}

func (f *yamlFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Data is a pre-shaped table: headers plus string rows.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []tw.Align // optional per-column alignment
}

// tableFormatter renders Data values with tablewriter. Values of other
// types are shaped through reflection, falling back to JSON when no
// table shape can be derived.
type tableFormatter struct{}

func (f *tableFormatter) Format(w io.Writer, data any) error {
	if d, ok := data.(Data); ok {
		return f.render(w, d)
	}
	if d := tableShape(data); d != nil {
		return f.render(w, *d)
	}
	return (&jsonFormatter{indent: "  "}).Format(w, data)
}

func (f *tableFormatter) render(w io.Writer, data Data) error {
	var opts []tablewriter.Option
	if len(data.ColumnAlignment) > 0 {
		config := tablewriter.Config{}
		config.Header.Alignment = tw.CellAlignment{PerColumn: data.ColumnAlignment}
		config.Row.Alignment = tw.CellAlignment{PerColumn: data.ColumnAlignment}
		opts = append(opts, tablewriter.WithConfig(config))
	}

	table := tablewriter.NewTable(w, opts...)

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}

	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}

// titleCaser renders json tag names as readable column headers.
var titleCaser = cases.Title(language.English)

// tableShape derives a table from struct slices and single structs.
// Returns nil for anything else.
func tableShape(data any) *Data {
	v := reflect.ValueOf(data)

	if v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct {
		return rowsFromStructs(v)
	}
	if v.Kind() == reflect.Struct {
		return propertiesFromStruct(v)
	}
	return nil
}

// rowsFromStructs renders one row per element with field names as headers.
func rowsFromStructs(v reflect.Value) *Data {
	elemType := v.Index(0).Type()

	headers := make([]string, elemType.NumField())
	for i := range headers {
		headers[i] = fieldHeader(elemType.Field(i))
	}

	rows := make([][]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		row := make([]string, elem.NumField())
		for j := range row {
			row[j] = fmt.Sprintf("%v", elem.Field(j).Interface())
		}
		rows[i] = row
	}

	return &Data{Headers: headers, Rows: rows}
}

// propertiesFromStruct renders a single struct as a two-column table.
func propertiesFromStruct(v reflect.Value) *Data {
	elemType := v.Type()

	rows := make([][]string, elemType.NumField())
	for i := range rows {
		rows[i] = []string{
			fieldHeader(elemType.Field(i)),
			fmt.Sprintf("%v", v.Field(i).Interface()),
		}
	}

	return &Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// fieldHeader derives a column header from the json tag, falling back to
// the Go field name.
func fieldHeader(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return field.Name
	}
	// Strip options like ,omitempty
	if idx := strings.Index(jsonTag, ","); idx > 0 {
		jsonTag = jsonTag[:idx]
	}
	return titleCaser.String(strings.ReplaceAll(jsonTag, "_", " "))
}
