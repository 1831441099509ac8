// Package constituents defines the source and canonical constituent
// records and the builder that reconciles one patron across the three
// input tables.
package constituents

import (
	"github.com/cuebox/stagehand/pkg/normalize"
)

// Source is one raw row of the constituent profile table. Every field is
// the untouched cell value; normalization happens in the builder.
type Source struct {
	PatronID     string
	FirstName    string
	LastName     string
	Company      string
	DateEntered  string
	Salutation   string
	PrimaryEmail string
	JobTitle     string
	Tags         string
}

// Dedupe drops rows whose trimmed patron ID was already seen, keeping the
// first occurrence in table order. Rows with empty IDs collapse into one
// like any other value.
func Dedupe(rows []Source) []Source {
	seen := make(map[string]struct{}, len(rows))
	out := make([]Source, 0, len(rows))
	for _, row := range rows {
		id := normalize.String(row.PatronID)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, row)
	}
	return out
}

// Type classifies a constituent as an individual or an organization.
type Type string

const (
	// TypePerson marks an individual patron.
	TypePerson Type = "Person"

	// TypeCompany marks an organization-level record.
	TypeCompany Type = "Company"
)

// InferType classifies a constituent from its cleaned name fields: a
// record is a company only when the company name is filled and no person
// name is present. This is a heuristic carried over from the onboarding
// worksheet, not a validated business rule; it lives here so it can be
// swapped without touching the builder.
func InferType(firstName, lastName, company string) Type {
	if company != "" && firstName == "" && lastName == "" {
		return TypeCompany
	}
	return TypePerson
}
