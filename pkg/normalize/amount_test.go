package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuebox/stagehand/pkg/normalize"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"plain number", "100", 100, true},
		{"decimal", "1234.5", 1234.5, true},
		{"dollar sign stripped", "$250.00", 250, true},
		{"thousands separators stripped", "$1,234,567.89", 1234567.89, true},
		{"whitespace trimmed", "  $50  ", 50, true},
		{"negative", "-$25.50", -25.5, true},
		{"zero is a real amount", "0", 0, true},
		{"empty", "", 0, false},
		{"symbols only", "$,", 0, false},
		{"words", "pledge", 0, false},
		{"two decimal points", "1.2.3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalize.ParseAmount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"pads to two decimals", 1234.5, "$1,234.50"},
		{"zero", 0, "$0.00"},
		{"small amount", 5, "$5.00"},
		{"millions grouped", 1000000, "$1,000,000.00"},
		{"cents kept", 99.99, "$99.99"},
		{"negative", -1234.5, "$-1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Currency(tt.input))
		})
	}
}

func TestParseAmountCurrencyRoundTrip(t *testing.T) {
	// A formatted amount parses back to its numeric value.
	v, ok := normalize.ParseAmount(normalize.Currency(98765.43))
	assert.True(t, ok)
	assert.InDelta(t, 98765.43, v, 1e-9)
}
