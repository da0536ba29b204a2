package roc

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Evaluate extracts the marginals of the given events from src and builds their ROC curve.
func Evaluate(src PosteriorSource, events []Event, ranker Ranker) (*Curve, error) {
	marginals, err := MarginalsForEvents(src, events)
	if err != nil {
		return nil, err
	}
	return ComputeROC(marginals, events, ranker)
}

// EvaluateRecipe selects the hidden events at t under the recipe's label
// policy and scores them with the recipe's ranker.
func EvaluateRecipe(recipe Recipe, t int, observations []Observation, truth TrueConfiguration, src PosteriorSource) (*Curve, error) {
	events, err := SelectEvents(t, observations, truth, recipe.Label)
	if err != nil {
		return nil, err
	}
	return Evaluate(src, events, recipe.Ranker)
}

// EvaluateInfected evaluates detection of infected nodes ranked by P(I).
func EvaluateInfected(t int, observations []Observation, truth TrueConfiguration, src PosteriorSource) (*Curve, error) {
	recipe, _ := NewRecipe(RecipeInfected)
	return EvaluateRecipe(recipe, t, observations, truth, src)
}

// EvaluateInfectedOrRecovered evaluates detection of infected or recovered
// nodes ranked by P(I)+P(R).
func EvaluateInfectedOrRecovered(t int, observations []Observation, truth TrueConfiguration, src PosteriorSource) (*Curve, error) {
	recipe, _ := NewRecipe(RecipeInfectedOrRecovered)
	return EvaluateRecipe(recipe, t, observations, truth, src)
}

// SweepPoint is the outcome of one time in a sweep.
// Curve is nil when the AUC was undefined at that time.
type SweepPoint struct {
	Time  int
	Curve *Curve
}

// Undefined reports whether the AUC did not exist at this time.
func (p SweepPoint) Undefined() bool {
	return p.Curve == nil
}

// Sweep evaluates recipe at each time in order. Times where the AUC is
// undefined are kept as points with a nil curve; any other error aborts
// the sweep and no points are returned.
func Sweep(recipe Recipe, times []int, observations []Observation, truth TrueConfiguration, src PosteriorSource) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(times))
	for _, t := range times {
		curve, err := EvaluateRecipe(recipe, t, observations, truth, src)
		if errors.Is(err, ErrUndefinedAUC) {
			logrus.Debugf("%s: skipping t=%d: %v", recipe.Name, t, err)
			points = append(points, SweepPoint{Time: t})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s at t=%d: %w", recipe.Name, t, err)
		}
		points = append(points, SweepPoint{Time: t, Curve: curve})
	}
	return points, nil
}
