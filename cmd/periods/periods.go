// Package periods implements the periods command: list the distinct years
// or months present in the dataset, and step through them.
package periods

import (
	"fjacquet/finquery/cmd/root"
	"fjacquet/finquery/internal/models"
	"fjacquet/finquery/internal/query"

	"github.com/spf13/cobra"
)

var (
	byMonth bool
	step    int
)

// Cmd represents the periods command.
var Cmd = &cobra.Command{
	Use:   "periods",
	Short: "List distinct years or months present in the data",
	Long: `Periods lists every distinct year (or month, with --months) that
has at least one transaction, in chronological order. With --step and an
active --year or --month filter it instead prints the period reached by
moving that many positions through the sequence.`,
	RunE: periodsFunc,
}

func init() {
	Cmd.Flags().BoolVar(&byMonth, "months", false, "List months instead of years")
	Cmd.Flags().IntVar(&step, "step", 0, "Navigate from the current --year/--month filter by this many periods")
}

func periodsFunc(cmd *cobra.Command, args []string) error {
	ds := root.App.Holder().Current()

	if step != 0 {
		period, err := root.PeriodFromFlags()
		if err != nil {
			return err
		}
		next, err := query.Navigate(ds, period, step)
		if err != nil {
			return err
		}
		cmd.Printf("%s\n", query.FormatPeriod(next))
		return nil
	}

	kind := models.PeriodYear
	anchors := query.DistinctYears(ds)
	if byMonth {
		kind = models.PeriodMonth
		anchors = query.DistinctMonths(ds)
	}
	for _, anchor := range anchors {
		cmd.Printf("%s\n", query.FormatPeriod(models.Period{Kind: kind, Anchor: anchor}))
	}
	return nil
}
