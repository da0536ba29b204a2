package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/epiroc/epiroc/roc"
	"github.com/epiroc/epiroc/roc/dataset"
	"github.com/epiroc/epiroc/roc/report"
)

var sweepConfigPath string

// curveFileName names the CSV of one recipe at one time inside curve_dir.
func curveFileName(recipe string, t int) string {
	return fmt.Sprintf("%s_t%d.csv", recipe, t)
}

// runSweep evaluates every configured recipe at every configured time.
// Undefined AUCs are reported as such; any other failure aborts the sweep.
func runSweep(cfg *SweepConfig) ([]*report.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return nil, err
	}
	obs, truth, err := ds.Instance(cfg.Instance)
	if err != nil {
		return nil, err
	}
	src, err := dataset.LoadPosterior(cfg.Posterior)
	if err != nil {
		return nil, err
	}

	var store *report.Store
	if cfg.DB != "" {
		if store, err = report.NewStore(cfg.DB); err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()
	}

	summaries := make([]*report.Summary, 0, len(cfg.Recipes))
	for _, name := range cfg.Recipes {
		recipe, err := roc.NewRecipe(name)
		if err != nil {
			return nil, err
		}
		points, err := roc.Sweep(recipe, cfg.Times, obs, truth, src)
		if err != nil {
			return nil, err
		}
		reports := report.FromSweep(recipe.Name, cfg.Instance, points)
		for _, r := range reports {
			if !r.Defined() {
				logrus.Warnf("%s: AUC undefined at t=%d", r.Recipe, r.Time)
			}
			if cfg.CurveDir != "" && r.Curve != nil {
				if err := report.SaveCurveCSV(filepath.Join(cfg.CurveDir, curveFileName(r.Recipe, r.Time)), r.Curve); err != nil {
					return nil, err
				}
			}
			if store != nil {
				if err := store.SaveReport(r); err != nil {
					return nil, err
				}
			}
		}
		s := report.Summarize(recipe.Name, reports)
		logrus.Infof("%s: %d times, %d undefined, mean AUC %.4f", s.Recipe, s.Reports, s.Undefined, s.MeanAUC)
		summaries = append(summaries, s)
	}
	return summaries, nil
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate recipes over a list of times and summarize the AUCs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadSweepConfig(sweepConfigPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		summaries, err := runSweep(cfg)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		data, err := yaml.Marshal(summaries)
		if err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
		fmt.Print(string(data))
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepConfigPath, "config", "", "Path to the sweep YAML configuration")
	_ = sweepCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(sweepCmd)
}
