package roc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/epiroc/epiroc/roc/internal/testutil"
)

func TestComputeROC_ConcreteScenario(t *testing.T) {
	// GIVEN the events left after excluding node 0
	events := []Event{{Node: 1, Time: 3, Label: true}, {Node: 2, Time: 3, Label: false}}
	marginals := MarginalRecord{1: {0.1, 0.9, 0.0}, 2: {0.8, 0.2, 0.0}}

	// WHEN ranked by P(I)
	c, err := ComputeROC(marginals, events, RankInfected{})

	// THEN the curve rises first and the AUC is perfect
	require.NoError(t, err)
	assert.Equal(t, []RankedEntry{{0.9, true}, {0.2, false}}, c.Ranked)
	assert.Equal(t, []int{0, 0, 1}, c.X)
	assert.Equal(t, []int{0, 1, 1}, c.Y)
	assert.Equal(t, 1.0, c.AUC)
}

func TestCurveFromRanked_PerfectSeparation(t *testing.T) {
	ranked := []RankedEntry{{0.9, true}, {0.8, true}, {0.7, true}, {0.3, false}, {0.1, false}}
	c, err := CurveFromRanked(ranked)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2}, c.X)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 3}, c.Y)
	assert.Equal(t, 1.0, c.AUC)
}

func TestCurveFromRanked_InverseSeparation(t *testing.T) {
	ranked := []RankedEntry{{0.9, false}, {0.8, false}, {0.3, true}, {0.1, true}}
	c, err := CurveFromRanked(ranked)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.AUC)
	assert.Equal(t, 2, c.Positives())
	assert.Equal(t, 2, c.Negatives())
}

func TestCurveFromRanked_MixedOrder(t *testing.T) {
	// T F T F: area = 1 + 2 over 2*2
	ranked := []RankedEntry{{4, true}, {3, false}, {2, true}, {1, false}}
	c, err := CurveFromRanked(ranked)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 2}, c.X)
	assert.Equal(t, []int{0, 1, 1, 2, 2}, c.Y)
	assert.Equal(t, 0.75, c.AUC)
}

func TestCurveFromRanked_UndefinedAUC(t *testing.T) {
	tests := []struct {
		name   string
		ranked []RankedEntry
	}{
		{"all positive", []RankedEntry{{0.9, true}, {0.1, true}}},
		{"all negative", []RankedEntry{{0.9, false}, {0.1, false}}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CurveFromRanked(tt.ranked)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrUndefinedAUC), "got %v", err)
		})
	}
}

func TestRankEvents_StableTies(t *testing.T) {
	// GIVEN equal scores on a negative then a positive event
	events := []Event{{Node: 0, Label: false}, {Node: 1, Label: true}, {Node: 2, Label: false}}
	marginals := MarginalRecord{0: {0.5, 0.5, 0}, 1: {0.5, 0.5, 0}, 2: {0.9, 0.1, 0}}

	ranked, err := RankEvents(marginals, events, RankInfected{})

	// THEN the tied entries keep event order
	require.NoError(t, err)
	assert.Equal(t, []RankedEntry{{0.5, false}, {0.5, true}, {0.1, false}}, ranked)

	// AND the AUC reflects that order rather than averaging the tie
	c, err := CurveFromRanked(ranked)
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.AUC)
}

func TestRankEvents_MissingMarginal(t *testing.T) {
	_, err := RankEvents(MarginalRecord{}, []Event{{Node: 4}}, RankInfected{})
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

// randomRanked draws n positives and n negatives with uniform scores.
func randomRanked(rng *rand.Rand, n int) ([]Event, MarginalRecord) {
	events := make([]Event, 2*n)
	marginals := make(MarginalRecord, 2*n)
	for i := range events {
		events[i] = Event{Node: i, Label: i < n}
		p := rng.Float64()
		marginals[i] = Marginal{1 - p, p, 0}
	}
	rng.Shuffle(len(events), func(i, j int) { events[i], events[j] = events[j], events[i] })
	return events, marginals
}

func TestComputeROC_CurveInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	events, marginals := randomRanked(rng, 60)

	c, err := ComputeROC(marginals, events, RankInfected{})
	require.NoError(t, err)

	require.Len(t, c.X, len(events)+1)
	require.Len(t, c.Y, len(events)+1)
	assert.Equal(t, 0, c.X[0])
	assert.Equal(t, 0, c.Y[0])
	testutil.AssertNonDecreasing(t, "x", c.X)
	testutil.AssertNonDecreasing(t, "y", c.Y)
	assert.Equal(t, 60, c.Negatives())
	assert.Equal(t, 60, c.Positives())
	for i := 1; i < len(c.Ranked); i++ {
		assert.GreaterOrEqual(t, c.Ranked[i-1].Score, c.Ranked[i].Score)
	}
}

func TestComputeROC_RandomRankingNearHalf(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	events, marginals := randomRanked(rng, 500)

	c, err := ComputeROC(marginals, events, RankInfected{})
	require.NoError(t, err)

	// standard error is about 0.018 for 500/500
	assert.InDelta(t, 0.5, c.AUC, 0.06)
}

func TestComputeROC_MatchesTrapezoidalROC(t *testing.T) {
	// With distinct scores the step-curve AUC equals the trapezoidal area
	// under a threshold-swept ROC.
	rng := rand.New(rand.NewSource(5))
	events := make([]Event, 200)
	marginals := make(MarginalRecord, len(events))
	scores := make([]float64, len(events))
	classes := make([]bool, len(events))
	for i := range events {
		p := rng.Float64()
		label := rng.Float64() < p // informative but noisy
		events[i] = Event{Node: i, Label: label}
		marginals[i] = Marginal{1 - p, p, 0}
		scores[i] = p
		classes[i] = label
	}

	c, err := ComputeROC(marginals, events, RankInfected{})
	require.NoError(t, err)

	stat.SortWeightedLabeled(scores, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	want := integrate.Trapezoidal(fpr, tpr)

	testutil.AssertFloat64Equal(t, "auc", c.AUC, want, 1e-9)
	assert.Greater(t, c.AUC, 0.5)
}
