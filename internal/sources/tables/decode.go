package tables

import (
	"github.com/cuebox/stagehand/internal/tabular"
	"github.com/cuebox/stagehand/pkg/constituents"
	"github.com/cuebox/stagehand/pkg/donations"
	"github.com/cuebox/stagehand/pkg/emails"
	pkgerrors "github.com/cuebox/stagehand/pkg/errors"
)

// Constituents decodes the patron export into raw source records.
// Only the Patron ID column is required. Absent columns decode as empty
// strings so partial exports still flow through the pipeline.
func Constituents(t *tabular.Table) ([]constituents.Source, error) {
	if !t.HasColumn(ColPatronID) {
		return nil, pkgerrors.NewColumnError("constituents", ColPatronID)
	}
	records := make([]constituents.Source, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, constituents.Source{
			PatronID:     row.Get(ColPatronID),
			FirstName:    row.Get(ColFirstName),
			LastName:     row.Get(ColLastName),
			Company:      row.Get(ColCompany),
			DateEntered:  row.Get(ColDateEntered),
			Salutation:   row.Get(ColSalutation),
			PrimaryEmail: row.Get(ColPrimaryEmail),
			JobTitle:     row.Get(ColJobTitle),
			Tags:         row.Get(ColTags),
		})
	}
	return records, nil
}

// Emails decodes the secondary email export. Only the Patron ID column is
// required.
func Emails(t *tabular.Table) ([]emails.Record, error) {
	if !t.HasColumn(ColPatronID) {
		return nil, pkgerrors.NewColumnError("emails", ColPatronID)
	}
	records := make([]emails.Record, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, emails.Record{
			PatronID: row.Get(ColPatronID),
			Email:    row.Get(ColEmail),
		})
	}
	return records, nil
}

// Donations decodes the donation export. Only the Patron ID column is
// required. The second return reports whether the Status column exists;
// when it does not, every donation counts.
func Donations(t *tabular.Table) ([]donations.Record, bool, error) {
	if !t.HasColumn(ColPatronID) {
		return nil, false, pkgerrors.NewColumnError("donations", ColPatronID)
	}
	statusPresent := t.HasColumn(ColStatus)
	records := make([]donations.Record, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, donations.Record{
			PatronID: row.Get(ColPatronID),
			Amount:   row.Get(ColDonationAmount),
			Date:     row.Get(ColDonationDate),
			Status:   row.Get(ColStatus),
		})
	}
	return records, statusPresent, nil
}

// Canonical decodes a previously written constituent file back into
// canonical records so it can be re-checked without rebuilding.
func Canonical(t *tabular.Table) ([]constituents.Canonical, error) {
	if !t.HasColumn(ColCBConstituentID) {
		return nil, pkgerrors.NewColumnError("output", ColCBConstituentID)
	}
	records := make([]constituents.Canonical, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, constituents.Canonical{
			ConstituentID:    row.Get(ColCBConstituentID),
			Type:             constituents.Type(row.Get(ColCBConstituentType)),
			FirstName:        row.Get(ColCBFirstName),
			LastName:         row.Get(ColCBLastName),
			CompanyName:      row.Get(ColCBCompanyName),
			CreatedAt:        row.Get(ColCBCreatedAt),
			Email1:           row.Get(ColCBEmail1),
			Email2:           row.Get(ColCBEmail2),
			Title:            row.Get(ColCBTitle),
			Tags:             row.Get(ColCBTags),
			Background:       row.Get(ColCBBackground),
			LifetimeAmount:   row.Get(ColCBLifetimeAmount),
			MostRecentDate:   row.Get(ColCBMostRecentDate),
			MostRecentAmount: row.Get(ColCBMostRecentAmount),
		})
	}
	return records, nil
}
