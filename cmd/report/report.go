// Package report implements the report command: run a filtered query and
// print the matching transactions with their sum.
package report

import (
	"fjacquet/finquery/cmd/root"
	"fjacquet/finquery/internal/query"

	"github.com/spf13/cobra"
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "List matching transactions and their sum",
	Long: `Report runs a query against the dataset using the --account,
--category, --year and --month filters and prints each matching transaction
followed by the total.`,
	RunE: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) error {
	opts, err := root.OptionsFromFlags()
	if err != nil {
		return err
	}

	ds := root.App.Holder().Current()
	result, err := root.App.Engine().Report(ds, opts)
	if err != nil {
		return err
	}

	if label := query.FormatPeriod(opts.Period); label != "" {
		cmd.Printf("Period: %s\n", label)
	}
	for _, tx := range result.Transactions {
		category := root.App.Classifier().Classify(tx)
		cmd.Printf("%s  %-40s  %-30s  %s\n", tx.Date, tx.Label, category, tx.Amount)
	}
	cmd.Printf("Total: %s (%d transactions)\n",
		result.Total.StringFixed(2), len(result.Transactions))
	return nil
}
