// Package emoji defines the status symbols used in terminal output.
package emoji

const (
	Success = "✅" // written output files, completed runs
	Error   = "✗"  // unreadable inputs, unwritable outputs
	Warning = "⚠️" // skipped rows, degraded tag mapping
	Info    = "ℹ️" // general information
	QA      = "🧪" // data quality findings
	Unknown = "?"
)
