// Package export writes query results out as CSV files for use in
// spreadsheets and downstream tooling.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finquery/internal/logging"
	"fjacquet/finquery/internal/models"
	"fjacquet/finquery/internal/query"

	"github.com/gocarina/gocsv"
)

// csvRow is the flat CSV representation of a transaction plus its
// resolved category.
type csvRow struct {
	Date     string `csv:"Date"`
	Label    string `csv:"Label"`
	Raw      string `csv:"Raw"`
	Category string `csv:"Category"`
	Amount   string `csv:"Amount"`
}

// Exporter writes query results to CSV.
type Exporter struct {
	classify func(models.Transaction) string
	logger   logging.Logger
}

// NewExporter creates an exporter. classify resolves a transaction's
// category for the Category column; it may be nil when categories are not
// wanted in the output.
func NewExporter(classify func(models.Transaction) string, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Exporter{classify: classify, logger: logger}
}

// WriteResult writes a query result to the given CSV file, creating any
// missing parent directory first.
func (e *Exporter) WriteResult(result *query.Result, csvFile string) error {
	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	rows := make([]csvRow, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		row := csvRow{
			Date:   tx.Date,
			Label:  tx.Label,
			Raw:    tx.Raw,
			Amount: tx.Amount,
		}
		if e.classify != nil {
			row.Category = e.classify(tx)
		}
		rows = append(rows, row)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Exported transactions to CSV")
	return nil
}
