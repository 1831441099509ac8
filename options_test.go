package stagehand

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/cuebox/stagehand/pkg/constants"
	"github.com/cuebox/stagehand/pkg/errors"
)

func TestDefaultOptions(t *testing.T) {
	o, err := newOptions()
	if err != nil {
		t.Fatalf("Failed to build default options: %v", err)
	}

	if o.mappingCachePath != constants.DefaultMappingCache {
		t.Errorf("Expected default mapping cache %s, got %s",
			constants.DefaultMappingCache, o.mappingCachePath)
	}
	if o.logger == nil {
		t.Error("Expected a default logger")
	}
	if o.progress {
		t.Error("Progress should be off by default")
	}
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty constituents file", WithConstituentsFile("")},
		{"empty emails file", WithEmailsFile("")},
		{"empty donations file", WithDonationsFile("")},
		{"nil http client", WithHTTPClient(nil)},
		{"nil logger", WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			if err == nil {
				t.Fatal("Expected option error")
			}
			if !errors.IsValidationError(err) {
				t.Errorf("Expected validation error, got: %v", err)
			}
		})
	}
}

func TestOptionsPlumbing(t *testing.T) {
	logger := zerolog.Nop()
	o, err := newOptions(
		WithConstituentsFile("input/patrons.csv"),
		WithEmailsFile("input/emails.csv"),
		WithDonationsFile("input/donations.csv"),
		WithTagMappingURL("https://tags.example.com/mapping"),
		WithMappingCacheFile("tmp/mapping.json"),
		WithColumnAliasesFile("aliases.yaml"),
		WithLogger(&logger),
		WithProgress(true),
	)
	if err != nil {
		t.Fatalf("Failed to build options: %v", err)
	}

	if o.constituentsPath != "input/patrons.csv" {
		t.Errorf("Unexpected constituents path: %s", o.constituentsPath)
	}
	if o.emailsPath != "input/emails.csv" {
		t.Errorf("Unexpected emails path: %s", o.emailsPath)
	}
	if o.donationsPath != "input/donations.csv" {
		t.Errorf("Unexpected donations path: %s", o.donationsPath)
	}
	if o.tagMappingURL != "https://tags.example.com/mapping" {
		t.Errorf("Unexpected mapping URL: %s", o.tagMappingURL)
	}
	if o.mappingCachePath != "tmp/mapping.json" {
		t.Errorf("Unexpected cache path: %s", o.mappingCachePath)
	}
	if o.aliasesPath != "aliases.yaml" {
		t.Errorf("Unexpected aliases path: %s", o.aliasesPath)
	}
	if o.logger != &logger {
		t.Error("Expected the injected logger")
	}
	if !o.progress {
		t.Error("Expected progress enabled")
	}
}

func TestRequireInputs(t *testing.T) {
	o, err := newOptions(
		WithConstituentsFile("a.csv"),
		WithEmailsFile("b.csv"),
		WithDonationsFile("c.csv"),
	)
	if err != nil {
		t.Fatalf("Failed to build options: %v", err)
	}
	if err := o.requireInputs(); err != nil {
		t.Errorf("Expected complete inputs to pass, got: %v", err)
	}
}
