package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the AUCs of a set of reports.
// AUC statistics cover defined reports only and are NaN when there are none.
type Summary struct {
	Recipe    string  `yaml:"recipe"`
	Reports   int     `yaml:"reports"`
	Undefined int     `yaml:"undefined"`
	MeanAUC   float64 `yaml:"mean_auc"`
	StdDevAUC float64 `yaml:"stddev_auc"`
	MinAUC    float64 `yaml:"min_auc"`
	MaxAUC    float64 `yaml:"max_auc"`
}

// Summarize computes aggregate AUC statistics. Safe for an empty slice.
func Summarize(recipe string, reports []*Report) *Summary {
	s := &Summary{Recipe: recipe, Reports: len(reports)}
	aucs := make([]float64, 0, len(reports))
	for _, r := range reports {
		if !r.Defined() {
			s.Undefined++
			continue
		}
		aucs = append(aucs, r.AUC)
	}

	if len(aucs) == 0 {
		s.MeanAUC, s.StdDevAUC, s.MinAUC, s.MaxAUC = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.MeanAUC, s.StdDevAUC = stat.MeanStdDev(aucs, nil)
	if len(aucs) == 1 {
		s.StdDevAUC = 0
	}
	s.MinAUC = floats.Min(aucs)
	s.MaxAUC = floats.Max(aucs)
	return s
}
