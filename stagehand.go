// Package stagehand reconciles raw patron exports into the canonical
// CueBox import files.
//
// A reconciliation run joins three customer exports: the patron profile
// table, a secondary email table, and the donation history. Profile rows
// are deduplicated by patron ID, names and timestamps normalized, email
// addresses standardized and paired, donations aggregated into lifetime
// and most-recent figures, and tags canonicalized through the customer's
// tag mapping service. The run yields the canonical constituent records
// plus a QA issue list describing rows that need human attention.
//
// Parsing is deliberately forgiving: ragged rows, absent optional
// columns, and unparsable cells degrade to empty output fields rather
// than failing the run. Only structural problems (unreadable files, a
// missing patron ID column) abort.
//
// Example usage:
//
//	sh, err := stagehand.New(
//	    stagehand.WithConstituentsFile("input/patrons.csv"),
//	    stagehand.WithEmailsFile("input/emails.csv"),
//	    stagehand.WithDonationsFile("input/donations.csv"),
//	    stagehand.WithTagMappingURL("https://tags.example.com/mapping"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sh.Onboard(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("constituents: %d, issues: %d\n",
//	    len(result.Constituents), len(result.Issues))
package stagehand

import (
	"context"

	"github.com/cuebox/stagehand/internal/sources/tagapi"
	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/tagreport"
	"github.com/cuebox/stagehand/pkg/validate"
)

var _ Stagehand = (*pipeline)(nil)

// Stagehand reconciles patron exports into canonical CueBox records.
type Stagehand interface {
	// Onboard runs the full reconciliation over the configured inputs.
	Onboard(ctx context.Context) (*Result, error)

	// TagReport counts distinct constituents per canonical tag over the
	// configured constituents file.
	TagReport(ctx context.Context) ([]tagreport.Count, error)

	// ValidateOutput re-checks a previously written constituents file
	// without rebuilding it.
	ValidateOutput(ctx context.Context, path string) ([]validate.Issue, error)
}

// Result is the outcome of one reconciliation run.
type Result struct {
	// Constituents holds the canonical records in input order after
	// deduplication by patron ID.
	Constituents []constituents.Canonical

	// Issues holds the QA findings for the canonical records.
	Issues []validate.Issue

	// DuplicatesDropped counts profile rows removed by patron ID dedupe.
	DuplicatesDropped int

	// TagMappings counts the canonical tag mappings in effect for the run,
	// zero when no mapping source was reachable.
	TagMappings int
}

// pipeline implements Stagehand over a validated option set.
type pipeline struct {
	options *options
}

// New builds a pipeline from the given options. It fails when a
// required input path is missing or an option value is invalid.
func New(opts ...Option) (Stagehand, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &pipeline{options: options}, nil
}

// tagClient builds the mapping client for this run, honoring an injected
// HTTP client.
func (p *pipeline) tagClient() *tagapi.Client {
	client := tagapi.NewClient(p.options.tagMappingURL, p.options.mappingCachePath)
	if p.options.httpClient != nil {
		client.HTTPClient = p.options.httpClient
	}
	return client
}
