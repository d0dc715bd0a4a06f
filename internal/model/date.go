package model

import (
	"fmt"
	"strings"
	"time"
)

// DateFallback is shown instead of a date when the release date is unknown.
const DateFallback = "TBD"

// dateLayouts are tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 MST",
	time.RFC1123,
}

// ParseReleaseDate parses a catalog date string.
//
// Returns false for empty or unrecognised strings.
func ParseReleaseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// FormatDisplayDate renders a date the way the site shows it:
// day with ordinal suffix, full month name, year.
//
//	FormatDisplayDate(time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)) // "22nd March 2024"
func FormatDisplayDate(t time.Time) string {
	day := t.Day()
	return fmt.Sprintf("%d%s %s %d", day, ordinalSuffix(day), t.Month(), t.Year())
}

// ordinalSuffix returns "st", "nd", "rd" or "th" for a day of month.
func ordinalSuffix(day int) string {
	switch {
	case day%10 == 1 && day%100 != 11:
		return "st"
	case day%10 == 2 && day%100 != 12:
		return "nd"
	case day%10 == 3 && day%100 != 13:
		return "rd"
	default:
		return "th"
	}
}
