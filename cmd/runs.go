package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epiroc/epiroc/roc/report"
)

var (
	runsDBPath string
	runsRecipe string
)

// printRuns writes one line per stored report.
func printRuns(w io.Writer, reports []*report.Report) error {
	if _, err := fmt.Fprintf(w, "%-36s  %-22s  %8s  %6s  %6s  %6s  %6s  %s\n",
		"RUN", "RECIPE", "INSTANCE", "TIME", "EVENTS", "POS", "NEG", "AUC"); err != nil {
		return err
	}
	for _, r := range reports {
		auc := "undefined"
		if r.Defined() {
			auc = fmt.Sprintf("%.4f", r.AUC)
		}
		if _, err := fmt.Fprintf(w, "%-36s  %-22s  %8d  %6d  %6d  %6d  %6d  %s\n",
			r.RunID, r.Recipe, r.Instance, r.Time, r.Events, r.Positives, r.Negatives, auc); err != nil {
			return err
		}
	}
	return nil
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List evaluation runs recorded in a SQLite store",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := report.NewStore(runsDBPath)
		if err != nil {
			logrus.Fatalf("Opening run store failed: %v", err)
		}
		defer func() { _ = store.Close() }()

		reports, err := store.ListReports(runsRecipe)
		if err != nil {
			logrus.Fatalf("Listing runs failed: %v", err)
		}
		if err := printRuns(os.Stdout, reports); err != nil {
			logrus.Fatalf("Printing runs failed: %v", err)
		}
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsDBPath, "db", "", "Path to the SQLite run store")
	runsCmd.Flags().StringVar(&runsRecipe, "recipe", "", "Only list runs of this recipe")
	_ = runsCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(runsCmd)
}
