package constituents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/donations"
	"github.com/cuebox/stagehand/pkg/emails"
	"github.com/cuebox/stagehand/pkg/tagmap"
)

func newTestBuilder(t *testing.T) *constituents.Builder {
	t.Helper()

	index := emails.BuildIndex([]emails.Record{
		{PatronID: "P1", Email: "ann.alt@example.com"},
		{PatronID: "P1", Email: "ann@example.com"},
	})
	aggregates := donations.Aggregate([]donations.Record{
		{PatronID: "P1", Amount: "$1,000.00", Date: "2022-11-05", Status: "paid"},
		{PatronID: "P1", Amount: "234.50", Date: "2023-06-15 14:30:00", Status: "paid"},
		{PatronID: "P1", Amount: "999", Date: "2023-01-01", Status: "pledged"},
	}, true)
	resolver := tagmap.NewResolver(tagmap.Mapping{"vip": "VIP-Tier"})

	return constituents.NewBuilder(index, aggregates, resolver)
}

func TestBuildPerson(t *testing.T) {
	builder := newTestBuilder(t)

	rec := builder.Build(constituents.Source{
		PatronID:     " P1 ",
		FirstName:    "Ann",
		LastName:     "Rice",
		Company:      "",
		DateEntered:  "3/5/2021 14:22:00",
		Salutation:   "ms.",
		PrimaryEmail: "Ann@Example.com",
		JobTitle:     "Director of Development",
		Tags:         "vip, vip, donor",
	})

	assert.Equal(t, "P1", rec.ConstituentID)
	assert.Equal(t, constituents.TypePerson, rec.Type)
	assert.Equal(t, "Ann", rec.FirstName)
	assert.Equal(t, "Rice", rec.LastName)
	assert.Empty(t, rec.CompanyName)
	assert.Equal(t, "2021-03-05 00:00:00", rec.CreatedAt, "created-at truncates to midnight")
	assert.Equal(t, "ann@example.com", rec.Email1)
	assert.Equal(t, "ann.alt@example.com", rec.Email2)
	assert.Equal(t, "Ms.", rec.Title)
	assert.Equal(t, "VIP-Tier, donor", rec.Tags)
	assert.Equal(t, "Job Title: Director of Development", rec.Background)
	assert.Equal(t, "$1,234.50", rec.LifetimeAmount)
	assert.Equal(t, "2023-06-15 14:30:00", rec.MostRecentDate, "donation dates keep time-of-day")
	assert.Equal(t, "$234.50", rec.MostRecentAmount)
}

func TestBuildCompany(t *testing.T) {
	builder := newTestBuilder(t)

	rec := builder.Build(constituents.Source{
		PatronID: "P2",
		Company:  "Acme",
		Tags:     "vip, vip, donor",
	})

	assert.Equal(t, constituents.TypeCompany, rec.Type)
	assert.Empty(t, rec.FirstName)
	assert.Empty(t, rec.LastName)
	assert.Equal(t, "Acme", rec.CompanyName)
	assert.Equal(t, "VIP-Tier, donor", rec.Tags)
}

func TestBuildPersonNameSuppressesCompany(t *testing.T) {
	builder := newTestBuilder(t)

	// A person name forces Person type, and the company cell is dropped
	// because exactly one side of the name fields may be populated.
	rec := builder.Build(constituents.Source{
		PatronID:  "P3",
		FirstName: "Ann",
		Company:   "Acme",
	})

	assert.Equal(t, constituents.TypePerson, rec.Type)
	assert.Equal(t, "Ann", rec.FirstName)
	assert.Empty(t, rec.CompanyName)
}

func TestBuildDegradesMalformedCells(t *testing.T) {
	builder := newTestBuilder(t)

	rec := builder.Build(constituents.Source{
		PatronID:     "P9",
		FirstName:    "Solo",
		DateEntered:  "not a date",
		Salutation:   "Prof.",
		PrimaryEmail: "not-an-email",
		Tags:         "",
	})

	assert.Empty(t, rec.CreatedAt)
	assert.Empty(t, rec.Title)
	assert.Empty(t, rec.Email1)
	assert.Empty(t, rec.Email2)
	assert.Empty(t, rec.Tags)
	assert.Empty(t, rec.Background)
	assert.Empty(t, rec.LifetimeAmount)
	assert.Empty(t, rec.MostRecentDate)
	assert.Empty(t, rec.MostRecentAmount)
}

func TestBuildMostRecentAmountUnparsable(t *testing.T) {
	index := emails.BuildIndex(nil)
	aggregates := donations.Aggregate([]donations.Record{
		{PatronID: "P1", Amount: "check enclosed", Date: "2023-06-15"},
	}, false)
	builder := constituents.NewBuilder(index, aggregates, tagmap.NewResolver(nil))

	rec := builder.Build(constituents.Source{PatronID: "P1", FirstName: "Ann"})

	// The date renders even though the amount cannot.
	assert.Equal(t, "2023-06-15 00:00:00", rec.MostRecentDate)
	assert.Empty(t, rec.MostRecentAmount)
	assert.Empty(t, rec.LifetimeAmount)
}

func TestBuildEmailPairInvariants(t *testing.T) {
	builder := newTestBuilder(t)

	for _, src := range []constituents.Source{
		{PatronID: "P1", PrimaryEmail: "ann@example.com"},
		{PatronID: "P1", PrimaryEmail: ""},
		{PatronID: "unknown", PrimaryEmail: ""},
		{PatronID: "unknown", PrimaryEmail: "solo@example.org"},
	} {
		rec := builder.Build(src)
		if rec.Email1 == "" {
			require.Empty(t, rec.Email2, "email2 must never appear without email1")
		}
		if rec.Email1 != "" && rec.Email2 != "" {
			require.NotEqual(t, rec.Email1, rec.Email2)
		}
	}
}
