package query

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/finquery/internal/dateutils"
	"fjacquet/finquery/internal/models"
)

// DistinctYears returns the distinct years present across all transactions,
// as year-anchors (January 1st, midnight), ascending. The index is
// recomputed from the snapshot on every call; dataset sizes are small enough
// that incremental maintenance is not worth its complexity.
func DistinctYears(ds *models.Dataset) []time.Time {
	return distinctPeriods(ds, dateutils.TruncateToYear)
}

// DistinctMonths returns the distinct months present across all
// transactions, as month-anchors (first of the month, midnight), ascending.
func DistinctMonths(ds *models.Dataset) []time.Time {
	return distinctPeriods(ds, dateutils.TruncateToMonth)
}

func distinctPeriods(ds *models.Dataset, truncate func(time.Time) time.Time) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, tx := range ds.AllTransactions() {
		date, err := dateutils.ParseDate(tx.Date)
		if err != nil {
			continue
		}
		seen[truncate(date)] = struct{}{}
	}

	anchors := make([]time.Time, 0, len(seen))
	for anchor := range seen {
		anchors = append(anchors, anchor)
	}
	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].Before(anchors[j])
	})
	return anchors
}

// Navigate moves an active period filter by step positions through the
// dataset's distinct-period sequence and returns the resulting period.
//
// It fails with ErrNoActivePeriod when no period filter is set, with
// ErrPeriodNotInData when the current anchor is absent from the recomputed
// sequence, and with ErrNoMorePeriods when the step lands outside the
// sequence. None of these failures alter any state.
func Navigate(ds *models.Dataset, p models.Period, step int) (models.Period, error) {
	var anchors []time.Time
	switch p.Kind {
	case models.PeriodNone:
		return models.Period{}, ErrNoActivePeriod
	case models.PeriodYear:
		anchors = DistinctYears(ds)
	case models.PeriodMonth:
		anchors = DistinctMonths(ds)
	default:
		return models.Period{}, fmt.Errorf("%w: %d", ErrUnknownPeriodKind, p.Kind)
	}

	current := -1
	for i, anchor := range anchors {
		if dateutils.SameBucket(p.Kind, p.Anchor, anchor) {
			current = i
			break
		}
	}
	if current == -1 {
		return models.Period{}, ErrPeriodNotInData
	}

	target := current + step
	if target < 0 || target >= len(anchors) {
		return models.Period{}, ErrNoMorePeriods
	}
	return models.Period{Kind: p.Kind, Anchor: anchors[target]}, nil
}
