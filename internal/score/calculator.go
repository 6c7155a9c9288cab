package score

import (
	"sleuth/internal/evidence"
	"sleuth/internal/rule"
)

// ConfidenceCalculator computes how much of a rule's weighted conditions are covered by evidence.
// The score is advisory: it never decides guilt on its own, only the override and the ranking.
type ConfidenceCalculator struct {
	// resolver: finds the rule applicable to a crime.
	resolver *rule.Resolver
	// weights: importance of each evidence kind.
	weights Weights
}

// Score returns the weighted share of the applicable rule's conditions present in ev.
// The denominator sums the weights of every rule condition, the numerator only those found in ev.
// Returns 0 when the crime has no rule or the rule weighs nothing. The result is clamped to [0.0, 1.0].
func (cc *ConfidenceCalculator) Score(ev []evidence.Kind, crime string) float64 {
	applicable, found := cc.resolver.Resolve(crime)
	if !found {
		return 0
	}
	return cc.ScoreRule(ev, applicable)
}

// ScoreRule is Score for an already resolved rule.
func (cc *ConfidenceCalculator) ScoreRule(ev []evidence.Kind, r *rule.Rule) float64 {
	var total, matched float64
	for _, condition := range r.Conditions {
		weight := cc.weights.Weight(condition)
		total += weight
		if evidence.Contains(ev, condition) {
			matched += weight
		}
	}
	if total <= 0 {
		return 0
	}

	score := matched / total
	switch {
	case score < 0.0:
		return 0.0
	case score > 1.0:
		return 1.0
	default:
		return score
	}
}

// NewConfidenceCalculator creates a calculator over resolver using weights.
// A nil weights table falls back to DefaultWeights.
func NewConfidenceCalculator(resolver *rule.Resolver, weights Weights) *ConfidenceCalculator {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &ConfidenceCalculator{
		resolver: resolver,
		weights:  weights,
	}
}
