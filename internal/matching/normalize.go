package matching

import (
	"strings"
	"time"
)

// Finnish legal-entity suffixes stripped from party names before comparison.
// Checked in this order; the first match wins.
var legalSuffixes = []string{" oyj", " oy", " ab", " tmi"}

// Accepted ISO-8601 layouts, date-only first since that is what both feeds
// normally carry.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeRef normalizes a payment reference for comparison. Spaces and
// leading zeros are removed and an optional RF prefix is stripped so that
// different creditor-reference formats compare equal ("RF 00123", "rf123"
// and "123" all normalize to "123"). The second return value is false when
// the input is empty or reduces to nothing.
func NormalizeRef(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	ref := strings.ToUpper(raw)
	ref = strings.TrimPrefix(ref, "RF")
	ref = strings.ReplaceAll(ref, " ", "")
	ref = strings.TrimLeft(ref, "0")
	ref = strings.ToLower(ref)
	if ref == "" {
		return "", false
	}
	return ref, true
}

// NormalizeName normalizes a party name for comparison: trim, lowercase and
// remove a single trailing legal suffix. Banks and documents disagree on
// whether the suffix is part of the counterparty name, so it is noise for
// identity comparison.
func NormalizeName(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, suffix := range legalSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// ParseDate parses an ISO-8601 date or datetime string. Malformed or empty
// input yields ok=false, never an error.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
