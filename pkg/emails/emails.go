// Package emails builds the per-patron email index and picks the pair of
// standardized addresses carried on a canonical constituent record.
package emails

import (
	"sort"

	"github.com/cuebox/stagehand/pkg/normalize"
)

// Record is one row of the patron email table.
type Record struct {
	PatronID string
	Email    string
}

// Index maps a patron ID to its known addresses, distinct and in ascending
// lexical order. It is built once per run and read-only afterwards.
type Index struct {
	byPatron map[string][]string
}

// BuildIndex groups syntactically valid addresses by patron. Addresses
// that fail normalization are dropped here, never later.
func BuildIndex(records []Record) *Index {
	sets := make(map[string]map[string]struct{})
	for _, rec := range records {
		email := normalize.Email(rec.Email)
		if email == "" {
			continue
		}
		id := normalize.String(rec.PatronID)
		if sets[id] == nil {
			sets[id] = make(map[string]struct{})
		}
		sets[id][email] = struct{}{}
	}

	byPatron := make(map[string][]string, len(sets))
	for id, set := range sets {
		list := make([]string, 0, len(set))
		for email := range set {
			list = append(list, email)
		}
		sort.Strings(list)
		byPatron[id] = list
	}
	return &Index{byPatron: byPatron}
}

// Addresses returns the sorted distinct addresses known for a patron, or
// nil when the patron has none.
func (idx *Index) Addresses(patronID string) []string {
	return idx.byPatron[patronID]
}

// PickPair selects the two output addresses for a patron. The normalized
// primary email wins the first slot when valid; otherwise the lexically
// first indexed address does. The second slot takes the first indexed
// address that differs from the first. A patron with no usable first
// address gets neither: email2 is never populated alone, and email1 never
// equals email2.
func (idx *Index) PickPair(patronID, rawPrimary string) (email1, email2 string) {
	candidates := idx.byPatron[patronID]

	email1 = normalize.Email(rawPrimary)
	if email1 == "" && len(candidates) > 0 {
		email1 = candidates[0]
	}
	if email1 == "" {
		return "", ""
	}

	for _, candidate := range candidates {
		if candidate != email1 {
			return email1, candidate
		}
	}
	return email1, ""
}
