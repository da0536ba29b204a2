package roc

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// RankedEntry is one scored event.
type RankedEntry struct {
	Score float64
	Label bool
}

// Curve is a step ROC curve over a ranked event list.
// X counts false positives and Y true positives after each entry;
// both start at 0 and have len(Ranked)+1 points.
type Curve struct {
	X      []int
	Y      []int
	AUC    float64
	Ranked []RankedEntry
}

// Positives returns the number of true-labeled entries.
func (c *Curve) Positives() int {
	return c.Y[len(c.Y)-1]
}

// Negatives returns the number of false-labeled entries.
func (c *Curve) Negatives() int {
	return c.X[len(c.X)-1]
}

// RankEvents scores every event with ranker and sorts the entries by
// descending score. Equal scores keep the event order; there is no
// secondary key, so callers needing randomized tie-breaks must shuffle
// events beforehand.
func RankEvents(marginals MarginalRecord, events []Event, ranker Ranker) ([]RankedEntry, error) {
	ranked := make([]RankedEntry, 0, len(events))
	for _, e := range events {
		m, ok := marginals[e.Node]
		if !ok {
			return nil, fmt.Errorf("marginal for node %d: %w", e.Node, ErrNodeNotFound)
		}
		ranked = append(ranked, RankedEntry{Score: ranker.Score(m), Label: e.Label})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// CurveFromRanked scans an already sorted list once. A true entry is a
// vertical step; a false entry adds the current height to the area and
// steps right. The area is normalized by positives*negatives, which is the
// Mann-Whitney U form of the AUC. With no positives or no negatives the AUC
// does not exist and ErrUndefinedAUC is returned with a nil curve.
func CurveFromRanked(ranked []RankedEntry) (*Curve, error) {
	x := make([]int, 1, len(ranked)+1)
	y := make([]int, 1, len(ranked)+1)
	area := 0
	for _, r := range ranked {
		fp, tp := x[len(x)-1], y[len(y)-1]
		if r.Label {
			tp++
		} else {
			area += tp
			fp++
		}
		x = append(x, fp)
		y = append(y, tp)
	}

	pos, neg := y[len(y)-1], x[len(x)-1]
	if pos == 0 || neg == 0 {
		logrus.Debugf("AUC undefined: %d positives, %d negatives", pos, neg)
		return nil, fmt.Errorf("%d positives, %d negatives: %w", pos, neg, ErrUndefinedAUC)
	}

	return &Curve{
		X:      x,
		Y:      y,
		AUC:    float64(area) / (float64(pos) * float64(neg)),
		Ranked: ranked,
	}, nil
}

// ComputeROC ranks events by their marginals and builds the ROC curve.
func ComputeROC(marginals MarginalRecord, events []Event, ranker Ranker) (*Curve, error) {
	ranked, err := RankEvents(marginals, events, ranker)
	if err != nil {
		return nil, err
	}
	return CurveFromRanked(ranked)
}
