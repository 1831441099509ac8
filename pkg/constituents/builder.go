package constituents

import (
	"strings"

	"github.com/cuebox/stagehand/pkg/donations"
	"github.com/cuebox/stagehand/pkg/emails"
	"github.com/cuebox/stagehand/pkg/normalize"
	"github.com/cuebox/stagehand/pkg/tagmap"
)

// Builder joins one constituent row with the email, donation, and tag
// lookups to produce canonical output records. The lookups are immutable;
// a Builder is safe to reuse across rows.
type Builder struct {
	emails    *emails.Index
	donations *donations.Aggregates
	tags      *tagmap.Resolver
}

// NewBuilder assembles a builder from the three per-run lookups.
func NewBuilder(index *emails.Index, aggregates *donations.Aggregates, resolver *tagmap.Resolver) *Builder {
	return &Builder{
		emails:    index,
		donations: aggregates,
		tags:      resolver,
	}
}

// Build produces the canonical record for one deduplicated source row.
// It never fails: malformed cells degrade to empty fields per the
// normalizers, and absent donation facts render as empty strings.
func (b *Builder) Build(src Source) Canonical {
	id := normalize.String(src.PatronID)
	first := normalize.String(src.FirstName)
	last := normalize.String(src.LastName)
	company := normalize.String(src.Company)

	ctype := InferType(first, last, company)

	rec := Canonical{
		ConstituentID: id,
		Type:          ctype,
		CreatedAt:     normalize.Timestamp(src.DateEntered),
		Title:         normalize.Title(src.Salutation),
		Tags:          strings.Join(b.tags.Canonical(src.Tags), ", "),
	}

	if ctype == TypeCompany {
		rec.CompanyName = company
	} else {
		rec.FirstName = first
		rec.LastName = last
	}

	rec.Email1, rec.Email2 = b.emails.PickPair(id, src.PrimaryEmail)

	// Background information carries the job title and nothing else.
	if job := normalize.String(src.JobTitle); job != "" {
		rec.Background = "Job Title: " + job
	}

	if total, ok := b.donations.Lifetime(id); ok {
		rec.LifetimeAmount = normalize.Currency(total)
	}
	if recent, ok := b.donations.MostRecent(id); ok {
		rec.MostRecentDate = normalize.FormatTimestamp(recent.Date)
		if recent.HasAmount {
			rec.MostRecentAmount = normalize.Currency(recent.Amount)
		}
	}

	return rec
}
