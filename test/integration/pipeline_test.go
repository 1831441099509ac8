// Package integration exercises the reconciliation pipeline through the
// public API, end to end over real files and a live mapping endpoint.
package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/cuebox/stagehand"
	"github.com/cuebox/stagehand/internal/sources/tables"
	"github.com/cuebox/stagehand/internal/tabular"
)

const (
	patronsCSV = `Patron ID,First Name,Last Name,Company,Date Entered,Salutation,Primary Email,Title,Tags
p1, Ada ,Lovelace,,3/14/2021,mrs,Ada@Example.COM,Engineer,"vip, gala 2021"
p2,,,Acme Trust,2020-01-15,,office@acme.org,,sponsor
p1,Ada,Lovelace,,3/14/2021,mrs,Ada@Example.COM,Engineer,"vip, gala 2021"
p4,Grace,Hopper,,never,,,,
`
	emailsCSV = `Patron ID,Email
p1,ada.l@gmail.com
p1,Ada@Example.COM
p4,not-an-email
`
	donationsCSV = `Patron ID,Donation Amount,Donation Date,Status
p1,$100.00,1/5/2020,Paid
p1,150,2021-06-30,paid
p1,$25.00,3/1/2019,Refunded
p2,"$1,000.00",12/25/2020,Paid
`
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestReconciliationEndToEnd(t *testing.T) {
	dir := t.TempDir()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`[
			{"name": "vip", "mapped_name": "VIP"},
			{"name": "gala 2021", "mapped_name": "Gala"}
		]`))
	}))
	defer server.Close()

	cachePath := filepath.Join(dir, "cache", "tag_mapping.json")
	sh, err := stagehand.New(
		stagehand.WithConstituentsFile(writeFixture(t, dir, "patrons.csv", patronsCSV)),
		stagehand.WithEmailsFile(writeFixture(t, dir, "emails.csv", emailsCSV)),
		stagehand.WithDonationsFile(writeFixture(t, dir, "donations.csv", donationsCSV)),
		stagehand.WithTagMappingURL(server.URL),
		stagehand.WithMappingCacheFile(cachePath),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	result, err := sh.Onboard(context.Background())
	if err != nil {
		t.Fatalf("Onboard failed: %v", err)
	}

	if len(result.Constituents) != 3 {
		t.Fatalf("Expected 3 constituents, got %d", len(result.Constituents))
	}
	if result.DuplicatesDropped != 1 {
		t.Errorf("Expected 1 duplicate dropped, got %d", result.DuplicatesDropped)
	}
	if result.TagMappings != 2 {
		t.Errorf("Expected 2 tag mappings, got %d", result.TagMappings)
	}

	ada := result.Constituents[0]
	if ada.ConstituentID != "p1" || ada.FirstName != "Ada" || ada.LastName != "Lovelace" {
		t.Errorf("Unexpected first record: %+v", ada)
	}
	if ada.Type != "Person" {
		t.Errorf("Expected Person type, got %s", ada.Type)
	}
	if ada.CreatedAt != "2021-03-14 00:00:00" {
		t.Errorf("Unexpected created at: %s", ada.CreatedAt)
	}
	if ada.Title != "Mrs." {
		t.Errorf("Unexpected title: %s", ada.Title)
	}
	if ada.Email1 != "ada@example.com" || ada.Email2 != "ada.l@gmail.com" {
		t.Errorf("Unexpected email pair: %q / %q", ada.Email1, ada.Email2)
	}
	if ada.Tags != "VIP, Gala" {
		t.Errorf("Unexpected tags: %s", ada.Tags)
	}
	if ada.Background != "Job Title: Engineer" {
		t.Errorf("Unexpected background: %s", ada.Background)
	}
	if ada.LifetimeAmount != "$250.00" {
		t.Errorf("Unexpected lifetime amount: %s", ada.LifetimeAmount)
	}
	if ada.MostRecentDate != "2021-06-30 00:00:00" || ada.MostRecentAmount != "$150.00" {
		t.Errorf("Unexpected most recent gift: %s / %s", ada.MostRecentDate, ada.MostRecentAmount)
	}

	acme := result.Constituents[1]
	if acme.Type != "Company" || acme.CompanyName != "Acme Trust" {
		t.Errorf("Unexpected company record: %+v", acme)
	}
	if acme.FirstName != "" || acme.LastName != "" {
		t.Errorf("Company record should carry no person name: %+v", acme)
	}
	if acme.LifetimeAmount != "$1,000.00" {
		t.Errorf("Unexpected company lifetime amount: %s", acme.LifetimeAmount)
	}

	// The refunded row stays out of the aggregation, and the unparsable
	// "never" date surfaces as the only QA issue.
	if len(result.Issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d: %+v", len(result.Issues), result.Issues)
	}
	issue := result.Issues[0]
	if issue.ConstituentID != "p4" || string(issue.Code) != "MISSING_CREATED_AT" {
		t.Errorf("Unexpected issue: %+v", issue)
	}

	if _, err := os.Stat(cachePath); err != nil {
		t.Errorf("Expected mapping cache on disk: %v", err)
	}

	// Write the canonical output and re-check it without rebuilding.
	outPath := filepath.Join(dir, "output", "CueBox_Constituents.csv")
	if err := tabular.Write(outPath, tables.ConstituentColumns(), tables.EncodeConstituents(result.Constituents)); err != nil {
		t.Fatalf("Failed to write output: %v", err)
	}

	issues, err := sh.ValidateOutput(context.Background(), outPath)
	if err != nil {
		t.Fatalf("ValidateOutput failed: %v", err)
	}
	if len(issues) != 1 || string(issues[0].Code) != "MISSING_CREATED_AT" {
		t.Errorf("Re-check should reproduce the QA findings, got %+v", issues)
	}

	// The tag report runs from the cache without touching the server again.
	counts, err := sh.TagReport(context.Background())
	if err != nil {
		t.Fatalf("TagReport failed: %v", err)
	}

	want := map[string]int{"VIP": 1, "Gala": 1, "sponsor": 1}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d tags, got %d: %+v", len(want), len(counts), counts)
	}
	for _, count := range counts {
		if want[count.Tag] != count.Constituents {
			t.Errorf("Tag %s: expected %d constituents, got %d", count.Tag, want[count.Tag], count.Constituents)
		}
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("Expected a single mapping fetch, got %d", got)
	}
}

func TestReconciliationWithoutMappingService(t *testing.T) {
	dir := t.TempDir()

	sh, err := stagehand.New(
		stagehand.WithConstituentsFile(writeFixture(t, dir, "patrons.csv", patronsCSV)),
		stagehand.WithEmailsFile(writeFixture(t, dir, "emails.csv", emailsCSV)),
		stagehand.WithDonationsFile(writeFixture(t, dir, "donations.csv", donationsCSV)),
		stagehand.WithMappingCacheFile(filepath.Join(dir, "cache", "tag_mapping.json")),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	result, err := sh.Onboard(context.Background())
	if err != nil {
		t.Fatalf("Onboard failed: %v", err)
	}

	// Without a mapping source, tags ship exactly as the customer sent them.
	if result.TagMappings != 0 {
		t.Errorf("Expected no tag mappings, got %d", result.TagMappings)
	}
	if result.Constituents[0].Tags != "vip, gala 2021" {
		t.Errorf("Expected verbatim tags, got %s", result.Constituents[0].Tags)
	}
}

func TestReconciliationWithColumnAliases(t *testing.T) {
	dir := t.TempDir()

	// The same export with the customer's own header names.
	renamed := `Constituent Number,First Name,Last Name,Company,Date Entered,Salutation,Primary Email,Title,Tags
p1,Ada,Lovelace,,3/14/2021,mrs,ada@example.com,,vip
`
	aliases := "Constituent Number: Patron ID\n"

	sh, err := stagehand.New(
		stagehand.WithConstituentsFile(writeFixture(t, dir, "patrons.csv", renamed)),
		stagehand.WithEmailsFile(writeFixture(t, dir, "emails.csv", "Patron ID,Email\n")),
		stagehand.WithDonationsFile(writeFixture(t, dir, "donations.csv", "Patron ID,Donation Amount,Donation Date\n")),
		stagehand.WithColumnAliasesFile(writeFixture(t, dir, "aliases.yaml", aliases)),
		stagehand.WithMappingCacheFile(filepath.Join(dir, "cache", "tag_mapping.json")),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	result, err := sh.Onboard(context.Background())
	if err != nil {
		t.Fatalf("Onboard failed: %v", err)
	}

	if len(result.Constituents) != 1 {
		t.Fatalf("Expected 1 constituent, got %d", len(result.Constituents))
	}
	if result.Constituents[0].ConstituentID != "p1" {
		t.Errorf("Alias should map the ID column, got %+v", result.Constituents[0])
	}
}

func TestReconciliationMissingIDColumn(t *testing.T) {
	dir := t.TempDir()

	sh, err := stagehand.New(
		stagehand.WithConstituentsFile(writeFixture(t, dir, "patrons.csv", "Name,Email\nAda,ada@example.com\n")),
		stagehand.WithEmailsFile(writeFixture(t, dir, "emails.csv", "Patron ID,Email\n")),
		stagehand.WithDonationsFile(writeFixture(t, dir, "donations.csv", "Patron ID,Donation Amount,Donation Date\n")),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	_, err = sh.Onboard(context.Background())
	if err == nil {
		t.Fatal("Expected structural error for missing Patron ID column")
	}
}
