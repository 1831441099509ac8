package tagreport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/tagmap"
	"github.com/cuebox/stagehand/pkg/tagreport"
)

func TestBuildCountsDistinctPatrons(t *testing.T) {
	resolver := tagmap.NewResolver(tagmap.Mapping{"vip": "VIP-Tier"})

	report := tagreport.Build([]constituents.Source{
		{PatronID: "P1", Tags: "vip, donor"},
		{PatronID: "P2", Tags: "vip"},
	}, resolver)

	assert.Equal(t, []tagreport.Count{
		{Tag: "VIP-Tier", Constituents: 2},
		{Tag: "donor", Constituents: 1},
	}, report)
}

func TestBuildSameTagTwiceCountsOnce(t *testing.T) {
	resolver := tagmap.NewResolver(nil)

	report := tagreport.Build([]constituents.Source{
		{PatronID: "P1", Tags: "donor, donor, donor"},
	}, resolver)

	assert.Equal(t, []tagreport.Count{{Tag: "donor", Constituents: 1}}, report)
}

func TestBuildTwoRawsOneCanonical(t *testing.T) {
	// Two raw spellings map to the same canonical name; the patron still
	// counts once for it.
	resolver := tagmap.NewResolver(tagmap.Mapping{"vip": "VIP-Tier", "V.I.P.": "VIP-Tier"})

	report := tagreport.Build([]constituents.Source{
		{PatronID: "P1", Tags: "vip, V.I.P."},
	}, resolver)

	assert.Equal(t, []tagreport.Count{{Tag: "VIP-Tier", Constituents: 1}}, report)
}

func TestBuildDuplicateRowsCountOnce(t *testing.T) {
	// The report pass never deduplicates rows by patron ID; the pair-level
	// dedupe is what keeps a repeated row from double counting.
	resolver := tagmap.NewResolver(nil)

	report := tagreport.Build([]constituents.Source{
		{PatronID: "P1", Tags: "donor"},
		{PatronID: "P1", Tags: "donor, vip"},
	}, resolver)

	assert.Equal(t, []tagreport.Count{
		{Tag: "donor", Constituents: 1},
		{Tag: "vip", Constituents: 1},
	}, report)
}

func TestBuildTrimsMappedNames(t *testing.T) {
	// Mapped values from a hand-edited cache may carry padding; the report
	// trims before counting and drops names that trim to nothing.
	resolver := tagmap.NewResolver(tagmap.Mapping{
		"vip":     " VIP-Tier ",
		"retired": "   ",
	})

	report := tagreport.Build([]constituents.Source{
		{PatronID: "P1", Tags: "vip, retired"},
	}, resolver)

	assert.Equal(t, []tagreport.Count{{Tag: "VIP-Tier", Constituents: 1}}, report)
}

func TestBuildOrdering(t *testing.T) {
	resolver := tagmap.NewResolver(nil)

	report := tagreport.Build([]constituents.Source{
		{PatronID: "P1", Tags: "zebra, alpha"},
		{PatronID: "P2", Tags: "zebra, alpha"},
		{PatronID: "P3", Tags: "beta"},
	}, resolver)

	// Count descending, then name ascending.
	assert.Equal(t, []tagreport.Count{
		{Tag: "alpha", Constituents: 2},
		{Tag: "zebra", Constituents: 2},
		{Tag: "beta", Constituents: 1},
	}, report)
}

func TestBuildEmptyInput(t *testing.T) {
	resolver := tagmap.NewResolver(nil)

	assert.Empty(t, tagreport.Build(nil, resolver))
	assert.Empty(t, tagreport.Build([]constituents.Source{
		{PatronID: "P1", Tags: ""},
	}, resolver))
}
