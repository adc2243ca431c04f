package query

import (
	"testing"
	"time"

	"fjacquet/finquery/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datasetWithDates(dates ...string) *models.Dataset {
	txs := make([]models.Transaction, len(dates))
	for i, d := range dates {
		txs[i] = models.Transaction{Date: d, Amount: "1.00"}
	}
	return &models.Dataset{
		Accounts:     []models.Account{{ID: "a", Label: "A"}},
		Transactions: map[string][]models.Transaction{"a": txs},
	}
}

func TestDistinctMonths(t *testing.T) {
	// Two January transactions collapse into one bucket; order is ascending.
	ds := datasetWithDates("2023-01-15", "2023-03-02", "2023-01-30")

	months := DistinctMonths(ds)
	require.Len(t, months, 2)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), months[0])
	assert.Equal(t, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), months[1])
}

func TestDistinctYears(t *testing.T) {
	ds := datasetWithDates("2024-06-01", "2022-01-15", "2022-12-31", "2023-03-02")

	years := DistinctYears(ds)
	require.Len(t, years, 3)
	assert.Equal(t, 2022, years[0].Year())
	assert.Equal(t, 2023, years[1].Year())
	assert.Equal(t, 2024, years[2].Year())
}

func TestDistinctPeriodsStrictlyAscending(t *testing.T) {
	ds := datasetWithDates("2023-05-01", "2021-02-03", "2023-05-20", "2022-11-11")

	months := DistinctMonths(ds)
	for i := 1; i < len(months); i++ {
		assert.True(t, months[i-1].Before(months[i]),
			"months[%d]=%v not before months[%d]=%v", i-1, months[i-1], i, months[i])
	}
}

func TestDistinctPeriodsEmptyDataset(t *testing.T) {
	ds := &models.Dataset{Transactions: map[string][]models.Transaction{}}
	assert.Empty(t, DistinctYears(ds))
	assert.Empty(t, DistinctMonths(ds))
}

func TestDistinctPeriodsSkipsUnparseableDates(t *testing.T) {
	ds := datasetWithDates("2023-01-15", "garbage")
	assert.Len(t, DistinctMonths(ds), 1)
}

func TestNavigateForward(t *testing.T) {
	ds := datasetWithDates("2023-01-15", "2023-03-02", "2023-01-30")

	next, err := Navigate(ds, monthPeriod(2023, time.January), 1)
	require.NoError(t, err)
	assert.Equal(t, models.PeriodMonth, next.Kind)
	assert.Equal(t, time.March, next.Anchor.Month())
}

func TestNavigateBackward(t *testing.T) {
	ds := datasetWithDates("2023-01-15", "2023-03-02")

	prev, err := Navigate(ds, monthPeriod(2023, time.March), -1)
	require.NoError(t, err)
	assert.Equal(t, time.January, prev.Anchor.Month())
}

// Forward then backward by the same step returns to the original bucket.
func TestNavigateRoundTrip(t *testing.T) {
	ds := datasetWithDates("2021-04-01", "2022-08-15", "2023-12-31")

	start := yearPeriod(2021)
	forward, err := Navigate(ds, start, 2)
	require.NoError(t, err)
	back, err := Navigate(ds, forward, -2)
	require.NoError(t, err)
	assert.Equal(t, start.Anchor.Year(), back.Anchor.Year())
}

func TestNavigateSparseData(t *testing.T) {
	// January to March is one step: the index skips months with no data.
	ds := datasetWithDates("2023-01-15", "2023-03-02", "2023-07-01")

	next, err := Navigate(ds, monthPeriod(2023, time.January), 1)
	require.NoError(t, err)
	assert.Equal(t, time.March, next.Anchor.Month())

	next, err = Navigate(ds, next, 1)
	require.NoError(t, err)
	assert.Equal(t, time.July, next.Anchor.Month())
}

func TestNavigateOutOfRange(t *testing.T) {
	ds := datasetWithDates("2023-01-15", "2023-03-02")

	_, err := Navigate(ds, monthPeriod(2023, time.March), 1)
	assert.ErrorIs(t, err, ErrNoMorePeriods)

	_, err = Navigate(ds, monthPeriod(2023, time.January), -1)
	assert.ErrorIs(t, err, ErrNoMorePeriods)
}

func TestNavigateNoActivePeriod(t *testing.T) {
	ds := datasetWithDates("2023-01-15")

	_, err := Navigate(ds, models.Period{Kind: models.PeriodNone}, 1)
	assert.ErrorIs(t, err, ErrNoActivePeriod)
}

func TestNavigateAnchorNotInData(t *testing.T) {
	ds := datasetWithDates("2023-01-15")

	_, err := Navigate(ds, monthPeriod(2020, time.June), 1)
	assert.ErrorIs(t, err, ErrPeriodNotInData)
}

func TestNavigateUnknownKind(t *testing.T) {
	ds := datasetWithDates("2023-01-15")

	_, err := Navigate(ds, models.Period{Kind: models.PeriodKind(42)}, 1)
	assert.ErrorIs(t, err, ErrUnknownPeriodKind)
}
