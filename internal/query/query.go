// Package query implements the transaction query engine: filtering by
// account, category, and period, summing filtered sets, and indexing the
// distinct periods present in a dataset for chronological navigation.
//
// Every function is a pure computation over an immutable dataset snapshot;
// nothing here mutates the dataset.
package query

import (
	"fmt"

	"fjacquet/finquery/internal/classify"
	"fjacquet/finquery/internal/dateutils"
	"fjacquet/finquery/internal/logging"
	"fjacquet/finquery/internal/models"

	"github.com/shopspring/decimal"
)

// Options holds the filter criteria for a query. Zero values mean the
// corresponding filter is skipped.
type Options struct {
	AccountID string
	Category  string
	Period    models.Period
}

// Result is the outcome of a report query: the matching transactions and
// their sum. Amounts are assumed to share one currency.
type Result struct {
	Transactions []models.Transaction
	Total        decimal.Decimal
}

// Engine runs queries against dataset snapshots using a compiled category
// classifier. It is stateless apart from the classifier and safe for
// concurrent use.
type Engine struct {
	classifier *classify.Classifier
	logger     logging.Logger
}

// NewEngine creates a query engine around the given classifier.
func NewEngine(classifier *classify.Classifier, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		classifier: classifier,
		logger:     logger,
	}
}

// Filter returns the transactions matching every supplied criterion. A
// transaction survives only if it passes the account, category, and period
// filters together; each filter is skipped when its criterion is absent.
func (e *Engine) Filter(ds *models.Dataset, opts Options) ([]models.Transaction, error) {
	switch opts.Period.Kind {
	case models.PeriodNone, models.PeriodYear, models.PeriodMonth:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPeriodKind, opts.Period.Kind)
	}

	var source []models.Transaction
	if opts.AccountID != "" {
		source = ds.Transactions[opts.AccountID]
	} else {
		source = ds.AllTransactions()
	}

	var matched []models.Transaction
	for _, tx := range source {
		if opts.Category != "" && !e.classifier.InCategory(tx, opts.Category) {
			continue
		}
		if opts.Period.Kind != models.PeriodNone {
			date, err := dateutils.ParseDate(tx.Date)
			if err != nil {
				e.logger.WithError(err).WithField(logging.FieldDate, tx.Date).
					Warn("Skipping transaction with unparseable date")
				continue
			}
			if !dateutils.SameBucket(opts.Period.Kind, opts.Period.Anchor, date) {
				continue
			}
		}
		matched = append(matched, tx)
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldAccount, Value: opts.AccountID},
		logging.Field{Key: logging.FieldCategory, Value: opts.Category},
		logging.Field{Key: logging.FieldPeriod, Value: FormatPeriod(opts.Period)},
		logging.Field{Key: logging.FieldCount, Value: len(matched)},
	).Debug("Filtered transactions")

	return matched, nil
}

// Report runs a filtered query and returns the matching transactions
// together with their sum.
func (e *Engine) Report(ds *models.Dataset, opts Options) (*Result, error) {
	txs, err := e.Filter(ds, opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		Transactions: txs,
		Total:        Sum(txs),
	}, nil
}

// Sum adds up the amounts of a transaction sequence, starting from zero.
// All amounts are assumed to share a currency.
func Sum(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.AmountDecimal())
	}
	return total
}

// FormatPeriod renders a period as a human-readable label: "Year 2023",
// "January 2023", or an empty string when no period is set.
func FormatPeriod(p models.Period) string {
	switch p.Kind {
	case models.PeriodYear:
		return fmt.Sprintf("Year %d", p.Anchor.Year())
	case models.PeriodMonth:
		return p.Anchor.Format("January 2006")
	default:
		return ""
	}
}
