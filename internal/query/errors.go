package query

import "errors"

var (
	// ErrUnknownPeriodKind reports a period kind that is neither none, year,
	// nor month. This is a caller error, never silently ignored.
	ErrUnknownPeriodKind = errors.New("unknown period kind")

	// ErrNoActivePeriod reports a navigation request without an active
	// period filter.
	ErrNoActivePeriod = errors.New("no active period filter")

	// ErrNoMorePeriods reports a navigation step that falls outside the
	// range of periods present in the data.
	ErrNoMorePeriods = errors.New("no more periods")

	// ErrPeriodNotInData reports a navigation anchor that is absent from
	// the recomputed distinct-period sequence, e.g. after the dataset
	// changed underneath an active filter.
	ErrPeriodNotInData = errors.New("current period not present in data")
)
