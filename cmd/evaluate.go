package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/epiroc/epiroc/roc"
	"github.com/epiroc/epiroc/roc/dataset"
	"github.com/epiroc/epiroc/roc/report"
)

var (
	datasetDir    string // Benchmark directory with parameters, observations and epidemies
	posteriorPath string // Posterior marginals exported by the inference engine
	instance      int    // Epidemic instance inside the dataset
	evalTime      int    // Evaluation time
	recipeName    string // Label policy and ranker pairing
	curveOut      string // Optional CSV path for the ROC curve
	dbPath        string // Optional SQLite run store
)

// evaluationResult is the YAML document printed by evaluate.
type evaluationResult struct {
	RunID     string  `yaml:"run_id,omitempty"`
	Recipe    string  `yaml:"recipe"`
	Instance  int     `yaml:"instance"`
	Time      int     `yaml:"time"`
	Events    int     `yaml:"events"`
	Positives int     `yaml:"positives"`
	Negatives int     `yaml:"negatives"`
	AUC       float64 `yaml:"auc"`
}

// evaluate loads the inputs, evaluates one recipe at one time and returns the report.
// It returns roc.ErrUndefinedAUC (wrapped) when the event set is one-sided.
func evaluate(dir, posterior string, inst, t int, recipeName string) (*report.Report, error) {
	recipe, err := roc.NewRecipe(recipeName)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(dir)
	if err != nil {
		return nil, err
	}
	obs, truth, err := ds.Instance(inst)
	if err != nil {
		return nil, err
	}
	src, err := dataset.LoadPosterior(posterior)
	if err != nil {
		return nil, err
	}
	curve, err := roc.EvaluateRecipe(recipe, t, obs, truth, src)
	if err != nil {
		return nil, fmt.Errorf("%s at t=%d: %w", recipe.Name, t, err)
	}
	return report.New(recipe.Name, inst, t, curve), nil
}

// saveReport writes the optional curve CSV and persists the report when a store path is set.
func saveReport(r *report.Report, curvePath, storePath string) error {
	if curvePath != "" && r.Curve != nil {
		if err := report.SaveCurveCSV(curvePath, r.Curve); err != nil {
			return err
		}
		logrus.Infof("Wrote ROC curve to %s", curvePath)
	}
	if storePath == "" {
		return nil
	}
	store, err := report.NewStore(storePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return store.SaveReport(r)
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compute the ROC curve and AUC of one recipe at one time",
	Run: func(cmd *cobra.Command, args []string) {
		r, err := evaluate(datasetDir, posteriorPath, instance, evalTime, recipeName)
		if errors.Is(err, roc.ErrUndefinedAUC) {
			logrus.Fatalf("AUC undefined for %s at t=%d: %v", recipeName, evalTime, err)
		}
		if err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}
		if err := saveReport(r, curveOut, dbPath); err != nil {
			logrus.Fatalf("Saving results failed: %v", err)
		}

		data, err := yaml.Marshal(evaluationResult{
			RunID: r.RunID, Recipe: r.Recipe, Instance: r.Instance, Time: r.Time,
			Events: r.Events, Positives: r.Positives, Negatives: r.Negatives, AUC: r.AUC,
		})
		if err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
		fmt.Print(string(data))
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&datasetDir, "dataset", "", "Path to the dataset directory")
	evaluateCmd.Flags().StringVar(&posteriorPath, "posterior", "", "Path to the posterior marginals JSON (optionally .bz2)")
	evaluateCmd.Flags().IntVar(&instance, "instance", 0, "Epidemic instance index")
	evaluateCmd.Flags().IntVar(&evalTime, "time", 0, "Evaluation time")
	evaluateCmd.Flags().StringVar(&recipeName, "recipe", roc.RecipeInfected, "Recipe: infected or infected-or-recovered")
	evaluateCmd.Flags().StringVar(&curveOut, "curve-out", "", "Write the ROC curve as CSV to this path")
	evaluateCmd.Flags().StringVar(&dbPath, "db", "", "Record the run in this SQLite database")
	_ = evaluateCmd.MarkFlagRequired("dataset")
	_ = evaluateCmd.MarkFlagRequired("posterior")
	_ = evaluateCmd.MarkFlagRequired("time")

	rootCmd.AddCommand(evaluateCmd)
}
