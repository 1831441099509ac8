package normalize

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyPrinter renders amounts with en-US digit grouping.
var currencyPrinter = message.NewPrinter(language.English)

// ParseAmount converts a money string to its numeric value. Currency symbols
// and digit grouping are stripped before parsing, so "$1,234.50" and
// "1234.5" both yield 1234.5. The boolean reports whether the value was
// parseable; blank and malformed amounts return false rather than zero,
// because a zero donation and a missing amount are different facts.
func ParseAmount(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(String(s), "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Currency formats an amount as a dollar string with thousands separators
// and exactly two decimal places, e.g. 1234.5 renders as "$1,234.50".
func Currency(v float64) string {
	return currencyPrinter.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}
