// Package tagreport counts distinct constituents per canonical tag. It is
// an independent pass over the raw constituent table: rows are not
// deduplicated by patron ID, so the counts reflect the customer's file as
// shipped, with each (patron, tag) pair counted once.
package tagreport

import (
	"sort"

	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/normalize"
	"github.com/cuebox/stagehand/pkg/tagmap"
)

// Count is one row of the tag usage report.
type Count struct {
	Tag          string `json:"tag" yaml:"tag"`
	Constituents int    `json:"constituents" yaml:"constituents"`
}

// Build tallies how many distinct patrons reference each canonical tag.
// Mapped names are trimmed and blanks dropped before counting. Two raw
// tags mapping to the same canonical name count a patron once. The result
// is sorted by count descending, then tag name ascending; empty input
// yields an empty report.
func Build(rows []constituents.Source, resolver *tagmap.Resolver) []Count {
	type pair struct {
		patronID string
		tag      string
	}

	seen := make(map[pair]struct{})
	counts := make(map[string]int)

	for _, row := range rows {
		id := normalize.String(row.PatronID)

		var mapped []string
		for _, raw := range normalize.SplitTags(row.Tags) {
			tag := normalize.String(resolver.Resolve(raw))
			if tag == "" {
				continue
			}
			mapped = append(mapped, tag)
		}

		for _, tag := range normalize.DedupeKeepOrder(mapped) {
			p := pair{patronID: id, tag: tag}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			counts[tag]++
		}
	}

	report := make([]Count, 0, len(counts))
	for tag, n := range counts {
		report = append(report, Count{Tag: tag, Constituents: n})
	}
	sort.Slice(report, func(i, j int) bool {
		if report[i].Constituents != report[j].Constituents {
			return report[i].Constituents > report[j].Constituents
		}
		return report[i].Tag < report[j].Tag
	})
	return report
}
