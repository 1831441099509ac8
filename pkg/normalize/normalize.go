// Package normalize provides field-level cleaning rules for patron records.
// Every transformation is pure and total: malformed input never produces an
// error, it produces the empty value so downstream reconciliation can treat
// "absent" and "unusable" uniformly.
package normalize

import (
	"regexp"
	"strings"
)

// emailRE matches a standardized email address. Anything that fails this
// check is treated as no email at all.
var emailRE = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// titles maps lowercased, period-free salutations to their canonical form.
var titles = map[string]string{
	"mr":  "Mr.",
	"mrs": "Mrs.",
	"ms":  "Ms.",
	"dr":  "Dr.",
}

// String trims surrounding whitespace. All raw field access goes through
// this so the rest of the pipeline never sees padded values.
func String(s string) string {
	return strings.TrimSpace(s)
}

// Email lowercases and validates an email address. Returns the empty string
// when the value does not look like a deliverable address.
func Email(s string) string {
	e := strings.ToLower(String(s))
	if e == "" {
		return ""
	}
	if !emailRE.MatchString(e) {
		return ""
	}
	return e
}

// Title canonicalizes a salutation to one of Mr., Mrs., Ms., or Dr.
// Periods are stripped before matching, so "MR", "mr." and "Mr" all
// canonicalize to "Mr.". Unrecognized salutations map to the empty string.
func Title(s string) string {
	key := strings.ToLower(strings.ReplaceAll(String(s), ".", ""))
	return titles[key]
}

// SplitTags splits a comma separated tag list into trimmed, non-empty tags.
func SplitTags(s string) []string {
	raw := String(s)
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// DedupeKeepOrder removes duplicate strings, keeping the first occurrence
// of each value in its original position.
func DedupeKeepOrder(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
