package models

import "time"

// PeriodKind identifies the granularity of a period filter.
type PeriodKind int

const (
	// PeriodNone means no period filter is active.
	PeriodNone PeriodKind = iota
	// PeriodYear buckets transactions by calendar year.
	PeriodYear
	// PeriodMonth buckets transactions by calendar year and month.
	PeriodMonth
)

// String returns the kind name for logging.
func (k PeriodKind) String() string {
	switch k {
	case PeriodYear:
		return "year"
	case PeriodMonth:
		return "month"
	default:
		return "none"
	}
}

// Period is a year- or month-granularity time bucket. Anchor may be any
// instant falling within the bucket; bucket equality is decided by
// formatting, not by exact instant comparison.
type Period struct {
	Kind   PeriodKind
	Anchor time.Time
}
