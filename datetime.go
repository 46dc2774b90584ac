package pagemeta

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	timeOnlyRe = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?(\.\d+)?(Z|[+-]\d{2}:?\d{2})?$`)
	dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	durationRe = regexp.MustCompile(`^P(T?)[\dYMWDHS.]+$`)
)

// NormalizeDatetime converts a datetime string found in markup to a
// canonical form: RFC 3339 for values carrying a time component,
// YYYY-MM-DD for date-only values. Time-only values and ISO 8601
// durations pass through unchanged, as does anything that cannot be
// parsed — normalization degrades, it never drops the original text.
func NormalizeDatetime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || timeOnlyRe.MatchString(s) || durationRe.MatchString(s) {
		return s
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return s
	}
	// Date-only only when the parsed clock is empty too: values like
	// "2024-01-15 3pm" or compact timestamps carry a time without any
	// colon in the source text.
	if !strings.ContainsRune(s, ':') && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

// IsTimeOnly reports whether s is a bare time of day (optionally with
// a zone offset) with no date component.
func IsTimeOnly(s string) bool {
	return timeOnlyRe.MatchString(strings.TrimSpace(s))
}

// IsDateOnly reports whether s is a bare YYYY-MM-DD date.
func IsDateOnly(s string) bool {
	return dateOnlyRe.MatchString(strings.TrimSpace(s))
}

// CombineDateTime joins a date-only value with a time-only value into
// a single datetime string, implementing the microformats2 date
// completion rule where a dt property supplies only the time and
// inherits the date from an earlier sibling.
func CombineDateTime(datePart, timePart string) string {
	return strings.TrimSpace(datePart) + "T" + strings.TrimSpace(timePart)
}
