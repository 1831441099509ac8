// Package validate scans the canonical constituent set for structural
// defects. Findings are QA report rows for a human to act on, never
// errors: the pipeline ships the records and the issue list side by side.
package validate

import (
	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/normalize"
)

// Code identifies one class of structural defect.
type Code string

const (
	// CodeDuplicateID flags a constituent ID appearing on more than one
	// output row.
	CodeDuplicateID Code = "DUPLICATE_ID"

	// CodeMissingCreatedAt flags a record whose created timestamp is
	// empty or never parsed.
	CodeMissingCreatedAt Code = "MISSING_CREATED_AT"

	// CodeBadTitle flags a title outside the allowed set.
	CodeBadTitle Code = "BAD_TITLE"

	// CodeEmail2WithoutEmail1 flags a second email without a first.
	CodeEmail2WithoutEmail1 Code = "EMAIL2_WITHOUT_EMAIL1"

	// CodeEmailDup flags a second email equal to the first.
	CodeEmailDup Code = "EMAIL_DUP"
)

// AllowedTitles is the closed set of titles accepted on output records.
// The empty string is allowed: most patrons carry no salutation.
var AllowedTitles = map[string]struct{}{
	"Mr.":  {},
	"Mrs.": {},
	"Ms.":  {},
	"Dr.":  {},
	"":     {},
}

// Issue is one QA finding tied to a constituent ID. A single ID may
// accumulate several issues across checks.
type Issue struct {
	ConstituentID string `json:"constituent_id" yaml:"constituent_id"`
	Code          Code   `json:"code" yaml:"code"`
	Message       string `json:"message" yaml:"message"`
}

// Constituents checks the full output set and returns the issues found.
// Issues come out grouped by check in the order the checks are declared
// above, and in row order within each check. A duplicated ID produces one
// issue no matter how many extra rows carry it.
func Constituents(rows []constituents.Canonical) []Issue {
	var issues []Issue

	occurrences := make(map[string]int, len(rows))
	for _, row := range rows {
		occurrences[row.ConstituentID]++
		if occurrences[row.ConstituentID] == 2 {
			issues = append(issues, Issue{
				ConstituentID: row.ConstituentID,
				Code:          CodeDuplicateID,
				Message:       "Duplicate CB Constituent ID in output.",
			})
		}
	}

	for _, row := range rows {
		if normalize.String(row.CreatedAt) == "" {
			issues = append(issues, Issue{
				ConstituentID: row.ConstituentID,
				Code:          CodeMissingCreatedAt,
				Message:       "CB Created At missing/unparseable.",
			})
		}
	}

	for _, row := range rows {
		if _, ok := AllowedTitles[row.Title]; !ok {
			issues = append(issues, Issue{
				ConstituentID: row.ConstituentID,
				Code:          CodeBadTitle,
				Message:       "Invalid CB Title: " + row.Title,
			})
		}
	}

	for _, row := range rows {
		if normalize.String(row.Email1) == "" && normalize.String(row.Email2) != "" {
			issues = append(issues, Issue{
				ConstituentID: row.ConstituentID,
				Code:          CodeEmail2WithoutEmail1,
				Message:       "Email 2 present but Email 1 missing.",
			})
		}
	}

	for _, row := range rows {
		if normalize.String(row.Email1) != "" && row.Email1 == row.Email2 {
			issues = append(issues, Issue{
				ConstituentID: row.ConstituentID,
				Code:          CodeEmailDup,
				Message:       "Email 2 equals Email 1.",
			})
		}
	}

	return issues
}
