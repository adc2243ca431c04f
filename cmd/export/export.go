// Package export implements the export command: write a filtered query
// result to a CSV file.
package export

import (
	"fjacquet/finquery/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export matching transactions to a CSV file",
	Long: `Export runs a query using the --account, --category, --year and
--month filters and writes the matching transactions, with their resolved
categories, to a CSV file.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "", "Output CSV file path")
	if err := Cmd.MarkFlagRequired("output"); err != nil {
		root.Log.Warnf("Failed to mark output flag as required: %v", err)
	}
}

func exportFunc(cmd *cobra.Command, args []string) error {
	opts, err := root.OptionsFromFlags()
	if err != nil {
		return err
	}

	ds := root.App.Holder().Current()
	result, err := root.App.Engine().Report(ds, opts)
	if err != nil {
		return err
	}

	if err := root.App.Exporter().WriteResult(result, root.Output); err != nil {
		return err
	}

	cmd.Printf("Wrote %d transactions to %s\n", len(result.Transactions), root.Output)
	return nil
}
