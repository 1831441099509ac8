package constituents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuebox/stagehand/pkg/constituents"
)

func TestDedupe(t *testing.T) {
	rows := []constituents.Source{
		{PatronID: "P1", FirstName: "Ann"},
		{PatronID: "P2", FirstName: "Bob"},
		{PatronID: "P1", FirstName: "Different Ann"},
		{PatronID: " P2 ", FirstName: "Padded Bob"},
		{PatronID: "P3", FirstName: "Cal"},
	}

	deduped := constituents.Dedupe(rows)

	assert.Len(t, deduped, 3)
	assert.Equal(t, "P1", deduped[0].PatronID)
	assert.Equal(t, "Ann", deduped[0].FirstName, "first occurrence wins")
	assert.Equal(t, "P2", deduped[1].PatronID)
	assert.Equal(t, "Bob", deduped[1].FirstName)
	assert.Equal(t, "P3", deduped[2].PatronID)
}

func TestDedupeEmptyIDs(t *testing.T) {
	rows := []constituents.Source{
		{PatronID: "", FirstName: "First Blank"},
		{PatronID: "  ", FirstName: "Second Blank"},
		{PatronID: "P1"},
	}

	deduped := constituents.Dedupe(rows)

	// Blank IDs collapse into a single row like any other value.
	assert.Len(t, deduped, 2)
	assert.Equal(t, "First Blank", deduped[0].FirstName)
}

func TestInferType(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		last    string
		company string
		want    constituents.Type
	}{
		{"company only", "", "", "Acme Theater Co", constituents.TypeCompany},
		{"full person", "Ann", "Rice", "", constituents.TypePerson},
		{"first name beats company", "Ann", "", "Acme", constituents.TypePerson},
		{"last name beats company", "", "Rice", "Acme", constituents.TypePerson},
		{"nothing at all", "", "", "", constituents.TypePerson},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constituents.InferType(tt.first, tt.last, tt.company))
		})
	}
}
