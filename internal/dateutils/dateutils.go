// Package dateutils provides the date parsing and period-bucketing helpers
// used by the query engine.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/finquery/internal/models"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutEuropean = "02.01.2006"

	// Bucket layouts: two dates belong to the same period when they format
	// identically at the period's granularity.
	BucketLayoutYear  = "2006"
	BucketLayoutMonth = "2006-01"
)

// CommonFormats is the list of layouts tried when parsing transaction dates.
var CommonFormats = []string{
	DateLayoutFull,
	DateLayoutISO,
	DateLayoutEuropean,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate attempts to parse a date string using the common layouts.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// TruncateToYear returns January 1st of the date's year, midnight.
func TruncateToYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// TruncateToMonth returns the first day of the date's month, midnight.
func TruncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BucketLayout returns the format layout for a period granularity.
// PeriodNone has no bucket layout and returns an empty string.
func BucketLayout(kind models.PeriodKind) string {
	switch kind {
	case models.PeriodYear:
		return BucketLayoutYear
	case models.PeriodMonth:
		return BucketLayoutMonth
	default:
		return ""
	}
}

// SameBucket reports whether two instants fall in the same period bucket
// at the given granularity.
func SameBucket(kind models.PeriodKind, a, b time.Time) bool {
	layout := BucketLayout(kind)
	if layout == "" {
		return false
	}
	return a.Format(layout) == b.Format(layout)
}
