package roc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioPosterior holds marginals for times 1..3; the entry at index 2 is t=3.
func scenarioPosterior() *MemoryPosterior {
	src := NewMemoryPosterior()
	times := []int{0, 1, 2, 3}
	src.Add(0, NewTrajectory(times, []Marginal{{1, 0, 0}, {0.5, 0.5, 0}, {0, 0.6, 0.4}}))
	src.Add(1, NewTrajectory(times, []Marginal{{1, 0, 0}, {0.5, 0.5, 0}, {0.1, 0.9, 0.0}}))
	src.Add(2, NewTrajectory(times, []Marginal{{1, 0, 0}, {0.9, 0.1, 0}, {0.8, 0.2, 0.0}}))
	return src
}

func TestEvaluateInfected_Scenario(t *testing.T) {
	obs := []Observation{{Node: 0, State: Infected, Time: 2}}

	c, err := EvaluateInfected(3, obs, scenarioTruth(), scenarioPosterior())

	require.NoError(t, err)
	assert.Equal(t, []RankedEntry{{0.9, true}, {0.2, false}}, c.Ranked)
	assert.Equal(t, []int{0, 0, 1}, c.X)
	assert.Equal(t, []int{0, 1, 1}, c.Y)
	assert.Equal(t, 1.0, c.AUC)
}

func TestEvaluateInfectedOrRecovered_UsesPairedRanker(t *testing.T) {
	// GIVEN truth where node 0 recovered and node 2 stayed susceptible
	truth := TrueConfiguration{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {2, 0, 0}}
	src := scenarioPosterior()
	// node 0 scores 1.0 under P(I)+P(R), nodes 1 and 2 score 0.9 and 0.2

	c, err := EvaluateInfectedOrRecovered(3, nil, truth, src)

	require.NoError(t, err)
	require.Len(t, c.Ranked, 3)
	assert.InDelta(t, 1.0, c.Ranked[0].Score, 1e-12)
	assert.True(t, c.Ranked[0].Label)
	assert.Equal(t, 1.0, c.AUC)
}

func TestEvaluateInfected_UndefinedWhenAllHiddenArePositive(t *testing.T) {
	// GIVEN every hidden node infected at t=3
	truth := TrueConfiguration{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {1, 1, 1}}

	c, err := EvaluateInfected(3, nil, truth, scenarioPosterior())

	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrUndefinedAUC), "got %v", err)
}

func TestEvaluate_PropagatesLookupFailure(t *testing.T) {
	src := NewMemoryPosterior()
	src.Add(1, NewTrajectory([]int{0, 1}, []Marginal{{1, 0, 0}}))

	c, err := Evaluate(src, []Event{{Node: 1, Time: 1, Label: true}, {Node: 2, Time: 1}}, RankInfected{})

	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrNodeNotFound), "got %v", err)
}

func TestEvaluateRecipe_CustomRanker(t *testing.T) {
	// GIVEN a ranker that inverts P(I)
	recipe := Recipe{
		Name:   "inverted",
		Label:  LabelInfected,
		Ranker: RankerFunc(func(m Marginal) float64 { return -m[Infected] }),
	}

	c, err := EvaluateRecipe(recipe, 3, []Observation{{Node: 0, State: Infected, Time: 2}}, scenarioTruth(), scenarioPosterior())

	require.NoError(t, err)
	assert.Equal(t, 0.0, c.AUC)
}

func TestSweep_SkipsUndefinedTimes(t *testing.T) {
	// GIVEN truth with no cases at t=1 and a mixed state at t=3
	recipe, err := NewRecipe(RecipeInfected)
	require.NoError(t, err)

	points, err := Sweep(recipe, []int{1, 3}, nil, scenarioTruth(), scenarioPosterior())

	require.NoError(t, err)
	require.Len(t, points, 2)
	// truth[1] = {1,0,0} is mixed, truth[3] = {1,1,0} is mixed
	assert.False(t, points[0].Undefined())
	assert.False(t, points[1].Undefined())

	points, err = Sweep(recipe, []int{3}, nil, TrueConfiguration{{0}, {0}, {0}, {0, 0, 0}}, scenarioPosterior())
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.True(t, points[0].Undefined())
	assert.Equal(t, 3, points[0].Time)
}

func TestSweep_AbortsOnLookupFailure(t *testing.T) {
	recipe, err := NewRecipe(RecipeInfected)
	require.NoError(t, err)

	// t=0 is the initial condition and has no marginal
	points, err := Sweep(recipe, []int{3, 0}, nil, TrueConfiguration{{1, 0, 0}, {}, {}, {1, 0, 0}}, scenarioPosterior())

	assert.Nil(t, points)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange), "got %v", err)
}
