// Package constants defines values shared by the CLI commands.
package constants

// Names accepted by the --output flag.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists them in the order help text shows.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}
