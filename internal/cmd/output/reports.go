package output

import (
	"os"

	"github.com/olekukonko/tablewriter/tw"

	"github.com/cuebox/stagehand/internal/cmd/globals"
	"github.com/cuebox/stagehand/internal/sources/tables"
	"github.com/cuebox/stagehand/pkg/tagreport"
	"github.com/cuebox/stagehand/pkg/validate"
)

// IssuesToTableData prepares QA issues for table rendering with the same
// headers the QA report file uses.
func IssuesToTableData(issues []validate.Issue) Data {
	return Data{
		Headers: tables.QAColumns(),
		Rows:    tables.EncodeIssues(issues),
	}
}

// TagCountsToTableData prepares tag counts for table rendering with the
// same headers the tag report file uses. Counts are right-aligned.
func TagCountsToTableData(counts []tagreport.Count) Data {
	return Data{
		Headers:         tables.TagColumns(),
		Rows:            tables.EncodeTagCounts(counts),
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignRight},
	}
}

// FormatIssues handles the common pattern of formatting QA issues for output.
func FormatIssues(issues []validate.Issue, globalFlags *globals.Flags) error {
	format := DetectFormat(globalFlags.Output)
	formatter := NewFormatter(format)

	// Transform to output format
	var outputData any = issues
	if format == FormatTable {
		outputData = IssuesToTableData(issues)
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatTagCounts handles the common pattern of formatting tag counts for output.
func FormatTagCounts(counts []tagreport.Count, globalFlags *globals.Flags) error {
	format := DetectFormat(globalFlags.Output)
	formatter := NewFormatter(format)

	// Transform to output format
	var outputData any = counts
	if format == FormatTable {
		outputData = TagCountsToTableData(counts)
	}

	return formatter.Format(os.Stdout, outputData)
}
