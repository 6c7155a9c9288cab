package score

import (
	"sleuth/internal/evidence"
	"sleuth/internal/rule"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(weights Weights) *ConfidenceCalculator {
	rules := []rule.Rule{
		{Name: "r", Conditions: []evidence.Kind{"a", "b", "c"}, Conclusion: "guilty of x"},
		{Name: "weightless", Conditions: []evidence.Kind{"z"}, Conclusion: "guilty of zero"},
	}
	return NewConfidenceCalculator(rule.NewResolver(rules, []string{"x", "zero"}), weights)
}

func TestConfidenceCalculator_Score_NoRule(t *testing.T) {
	calc := newTestCalculator(nil)
	assert.Equal(t, 0.0, calc.Score([]evidence.Kind{"a"}, "unknown"))
}

func TestConfidenceCalculator_Score_DefaultWeightForUnlistedKinds(t *testing.T) {
	calc := newTestCalculator(nil)
	// a, b, c are all unlisted and weigh DefaultWeight each.
	assert.InDelta(t, 2.0/3.0, calc.Score([]evidence.Kind{"a", "b"}, "x"), 1e-9)
}

func TestConfidenceCalculator_Score_Weighted(t *testing.T) {
	calc := newTestCalculator(Weights{"a": 0.5, "b": 0.4, "c": 0.1})
	assert.InDelta(t, 0.9, calc.Score([]evidence.Kind{"a", "b"}, "x"), 1e-9)
	assert.InDelta(t, 0.1, calc.Score([]evidence.Kind{"c"}, "x"), 1e-9)
}

func TestConfidenceCalculator_Score_FullAndEmpty(t *testing.T) {
	calc := newTestCalculator(nil)
	assert.InDelta(t, 1.0, calc.Score([]evidence.Kind{"a", "b", "c"}, "x"), 1e-9)
	assert.Equal(t, 0.0, calc.Score(nil, "x"))
}

func TestConfidenceCalculator_Score_IgnoresForeignEvidence(t *testing.T) {
	calc := newTestCalculator(nil)
	assert.Equal(t, 0.0, calc.Score([]evidence.Kind{"q", "w"}, "x"))
}

func TestConfidenceCalculator_Score_DuplicateEvidenceNotCountedTwice(t *testing.T) {
	calc := newTestCalculator(nil)
	score := calc.Score([]evidence.Kind{"a", "b", "c", "c"}, "x")
	assert.LessOrEqual(t, score, 1.0)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestConfidenceCalculator_Score_ZeroDenominator(t *testing.T) {
	calc := newTestCalculator(Weights{"z": 0})
	assert.Equal(t, 0.0, calc.Score([]evidence.Kind{"z"}, "zero"))
}

func TestConfidenceCalculator_Score_Range(t *testing.T) {
	calc := newTestCalculator(DefaultWeights())
	subsets := [][]evidence.Kind{nil, {"a"}, {"a", "b"}, {"b", "c"}, {"a", "b", "c"}}
	for _, ev := range subsets {
		score := calc.Score(ev, "x")
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestWeights_Weight(t *testing.T) {
	w := DefaultWeights()
	assert.Greater(t, w.Weight(evidence.WasNearCrimeScene), w.Weight(evidence.HasMotive))
	assert.Equal(t, DefaultWeight, w.Weight("unlisted"))
}

func TestWeights_With(t *testing.T) {
	base := DefaultWeights()

	overridden, err := base.With(map[string]float64{"has_motive": 0.9, "custom": 0.2})
	require.NoError(t, err)
	assert.Equal(t, 0.9, overridden.Weight(evidence.HasMotive))
	assert.Equal(t, 0.2, overridden.Weight("custom"))
	assert.Equal(t, 0.3, base.Weight(evidence.HasMotive), "base table must stay untouched")
}

func TestWeights_With_OutOfRange(t *testing.T) {
	_, err := DefaultWeights().With(map[string]float64{"has_motive": 1.5})
	assert.Error(t, err)
}
