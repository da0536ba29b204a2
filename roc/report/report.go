// Package report turns ROC curves into evaluation reports: per-time records,
// sweep summaries, curve exports for plotting and a SQLite run store.
// It stores pure data; evaluation itself lives in package roc.
package report

import (
	"math"

	"github.com/epiroc/epiroc/roc"
)

// Report is the outcome of evaluating one recipe at one time of one instance.
// AUC is NaN and Curve is nil when the AUC was undefined. Reports read back
// from a Store carry no Curve; see Store.CurvePoints.
type Report struct {
	RunID     string
	Recipe    string
	Instance  int
	Time      int
	Events    int
	Positives int
	Negatives int
	AUC       float64
	Curve     *roc.Curve
}

// Defined reports whether the AUC exists for this report.
func (r *Report) Defined() bool {
	return !math.IsNaN(r.AUC)
}

// New builds a report from an evaluated curve.
func New(recipe string, instance, t int, curve *roc.Curve) *Report {
	return &Report{
		Recipe:    recipe,
		Instance:  instance,
		Time:      t,
		Events:    len(curve.Ranked),
		Positives: curve.Positives(),
		Negatives: curve.Negatives(),
		AUC:       curve.AUC,
		Curve:     curve,
	}
}

// NewUndefined builds a report for a time where the AUC did not exist.
func NewUndefined(recipe string, instance, t int) *Report {
	return &Report{
		Recipe:   recipe,
		Instance: instance,
		Time:     t,
		AUC:      math.NaN(),
	}
}

// FromSweep converts sweep points into reports, in sweep order.
func FromSweep(recipe string, instance int, points []roc.SweepPoint) []*Report {
	out := make([]*Report, 0, len(points))
	for _, p := range points {
		if p.Undefined() {
			out = append(out, NewUndefined(recipe, instance, p.Time))
			continue
		}
		out = append(out, New(recipe, instance, p.Time, p.Curve))
	}
	return out
}
