package normalize

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/cuebox/stagehand/pkg/constants"
)

// timestampLayouts are tried in order when parsing free-form dates from
// legacy exports. Numeric month and day components are unpadded so both
// "2024-03-05" and "2024-3-5" parse.
var timestampLayouts = []string{
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	time.RFC3339,
	"2006-1-2 15:04",
	"2006-1-2",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006",
	"2006/1/2 15:04:05",
	"2006/1/2",
	"January 2, 2006",
	"Jan 2, 2006",
	"2-Jan-2006",
}

// ParseTimestamp parses a date or datetime string from a legacy export.
// The boolean reports whether any supported layout matched.
func ParseTimestamp(s string) (utc.Time, bool) {
	raw := String(s)
	if raw == "" {
		return utc.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return utc.Time{Time: t}, true
		}
	}
	return utc.Time{}, false
}

// Midnight truncates a timestamp to the start of its day.
func Midnight(t utc.Time) utc.Time {
	y, m, d := t.Time.Date()
	return utc.Time{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Time.Location())}
}

// FormatTimestamp renders a timestamp in the canonical output layout,
// e.g. "2021-03-05 00:00:00".
func FormatTimestamp(t utc.Time) string {
	return t.Time.Format(constants.TimestampLayout)
}

// Timestamp parses a record creation date and renders it at midnight in the
// canonical layout. Unparseable input renders as the empty string.
func Timestamp(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		return ""
	}
	return FormatTimestamp(Midnight(t))
}
