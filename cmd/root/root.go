// Package root contains the root command and the flags shared by the query
// subcommands.
package root

import (
	"fmt"
	"time"

	"fjacquet/finquery/internal/config"
	"fjacquet/finquery/internal/container"
	"fjacquet/finquery/internal/dateutils"
	"fjacquet/finquery/internal/models"
	"fjacquet/finquery/internal/query"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Filter flags shared by the report and export commands.
var (
	AccountID string
	Category  string
	Year      string
	Month     string
	Output    string
)

// Log is the shared logger instance for commands.
var Log = logrus.New()

// App is the dependency container, wired in PersistentPreRun.
var App *container.Container

// Cmd is the root command.
var Cmd = &cobra.Command{
	Use:   "finquery",
	Short: "Query, categorize and aggregate personal-finance transactions.",
	Long: `finquery is a query engine over a dataset of bank accounts and
transactions. It classifies transactions into hierarchical categories using
an ordered rule table, filters by account, category and period, and sums the
results.`,
	Run: func(cmd *cobra.Command, args []string) {
		Log.Info("Welcome to finquery!")
		Log.Info("Use --help to see available commands")
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()
		Log = config.ConfigureLogging()

		cfg, err := config.InitializeConfig()
		if err != nil {
			return err
		}

		App, err = container.NewContainer(cfg)
		if err != nil {
			return err
		}
		return nil
	},
}

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&AccountID, "account", "a", "", "Restrict to a single account ID")
	Cmd.PersistentFlags().StringVarP(&Category, "category", "c", "", "Restrict to a category path (prefix match, e.g. Expenses)")
	Cmd.PersistentFlags().StringVarP(&Year, "year", "y", "", "Restrict to a calendar year (YYYY)")
	Cmd.PersistentFlags().StringVarP(&Month, "month", "m", "", "Restrict to a calendar month (YYYY-MM)")
}

// PeriodFromFlags builds a period filter from the --year/--month flags.
// Both flags set at once is a usage error; neither set means no period
// filter.
func PeriodFromFlags() (models.Period, error) {
	if Year != "" && Month != "" {
		return models.Period{}, fmt.Errorf("--year and --month are mutually exclusive")
	}
	if Year != "" {
		anchor, err := time.Parse(dateutils.BucketLayoutYear, Year)
		if err != nil {
			return models.Period{}, fmt.Errorf("invalid --year value %q: %w", Year, err)
		}
		return models.Period{Kind: models.PeriodYear, Anchor: anchor}, nil
	}
	if Month != "" {
		anchor, err := time.Parse(dateutils.BucketLayoutMonth, Month)
		if err != nil {
			return models.Period{}, fmt.Errorf("invalid --month value %q: %w", Month, err)
		}
		return models.Period{Kind: models.PeriodMonth, Anchor: anchor}, nil
	}
	return models.Period{Kind: models.PeriodNone}, nil
}

// OptionsFromFlags assembles the query options from the shared flags.
func OptionsFromFlags() (query.Options, error) {
	period, err := PeriodFromFlags()
	if err != nil {
		return query.Options{}, err
	}
	return query.Options{
		AccountID: AccountID,
		Category:  Category,
		Period:    period,
	}, nil
}
