package tables

import (
	"strconv"

	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/tagreport"
	"github.com/cuebox/stagehand/pkg/validate"
)

// EncodeConstituent renders one canonical record as a CSV row matching
// ConstituentColumns.
func EncodeConstituent(rec constituents.Canonical) []string {
	return []string{
		rec.ConstituentID,
		string(rec.Type),
		rec.FirstName,
		rec.LastName,
		rec.CompanyName,
		rec.CreatedAt,
		rec.Email1,
		rec.Email2,
		rec.Title,
		rec.Tags,
		rec.Background,
		rec.LifetimeAmount,
		rec.MostRecentDate,
		rec.MostRecentAmount,
	}
}

// EncodeConstituents renders canonical records as CSV rows.
func EncodeConstituents(recs []constituents.Canonical) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, EncodeConstituent(rec))
	}
	return rows
}

// EncodeIssue renders one QA issue as a CSV row matching QAColumns.
func EncodeIssue(issue validate.Issue) []string {
	return []string{issue.ConstituentID, string(issue.Code), issue.Message}
}

// EncodeIssues renders QA issues as CSV rows.
func EncodeIssues(issues []validate.Issue) [][]string {
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, EncodeIssue(issue))
	}
	return rows
}

// EncodeTagCount renders one tag count as a CSV row matching TagColumns.
func EncodeTagCount(count tagreport.Count) []string {
	return []string{count.Tag, strconv.Itoa(count.Constituents)}
}

// EncodeTagCounts renders tag counts as CSV rows.
func EncodeTagCounts(counts []tagreport.Count) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, count := range counts {
		rows = append(rows, EncodeTagCount(count))
	}
	return rows
}
