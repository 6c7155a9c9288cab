package engine

import (
	"fmt"
	"sleuth/internal/evidence"
	"sleuth/internal/rule"
)

// Override thresholds: a result with incomplete conditions is still found guilty when the
// confidence exceeds OverrideConfidence and at least OverrideCoverage of the conditions matched.
const (
	OverrideConfidence = 0.8
	OverrideCoverage   = 0.8
)

// Reasoning lines that callers may want to recognise.
const (
	NoRuleLine   = "No applicable rule found for this crime."
	CacheHitLine = "Result retrieved from cache"
)

// evaluate runs the rule applicable to crime against the facts about suspect.
// Every condition is checked and traced, even after one has failed.
func (e *Engine) evaluate(suspect, crime string) QueryResult {
	result := QueryResult{
		Suspect:   suspect,
		Crime:     crime,
		Evidence:  []evidence.Kind{},
		Reasoning: []string{},
	}

	applicable, found := e.resolver.Resolve(crime)
	if !found {
		result.Reasoning = append(result.Reasoning, NoRuleLine)
		return result
	}

	result.Rule = applicable.Name
	result.Reasoning = append(result.Reasoning,
		"Rule applied: "+applicable.Name,
		"Required conditions: "+evidence.Join(applicable.Conditions),
	)

	satisfied := true
	for _, condition := range applicable.Conditions {
		if e.facts.Has(condition, suspect, crime) {
			result.Evidence = append(result.Evidence, condition)
			result.Reasoning = append(result.Reasoning, fmt.Sprintf("✓ %s: confirmed", condition))
		} else {
			result.Reasoning = append(result.Reasoning, fmt.Sprintf("✗ %s: not confirmed", condition))
			satisfied = false
		}
	}
	matched := len(result.Evidence)

	if satisfied && applicable.Special != nil {
		satisfied = e.checkSpecial(applicable, &result)
	}

	result.Confidence = e.confidence.ScoreRule(result.Evidence, applicable)
	result.Guilty = satisfied

	coverage := float64(matched) / float64(len(applicable.Conditions))
	if !satisfied && result.Confidence > OverrideConfidence && coverage >= OverrideCoverage {
		result.Guilty = true
		result.Overridden = true
		result.Reasoning = append(result.Reasoning, fmt.Sprintf(
			"⚠ Override: substantial evidence (confidence %.2f, %d/%d conditions) despite incomplete conditions",
			result.Confidence, matched, len(applicable.Conditions),
		))
	}

	e.logger.Debug("evaluated",
		"suspect", suspect,
		"crime", crime,
		"rule", applicable.Name,
		"guilty", result.Guilty,
		"confidence", result.Confidence,
	)
	return result
}

// checkSpecial evaluates the rule's special evidence and records the outcome on result.
func (e *Engine) checkSpecial(applicable *rule.Rule, result *QueryResult) bool {
	special := applicable.Special
	confirmed, err := special.Eval(rule.Bindings{
		Suspect:  result.Suspect,
		Crime:    result.Crime,
		Evidence: result.Evidence,
	})
	if err != nil {
		e.logger.Error("special evidence eval", "error", err, "rule", applicable.Name, "suspect", result.Suspect)
		confirmed = false
	}

	if !confirmed {
		result.Reasoning = append(result.Reasoning, fmt.Sprintf("✗ %s: not confirmed", special.Kind))
		return false
	}

	result.Evidence = append(result.Evidence, special.Kind)
	result.Reasoning = append(result.Reasoning, fmt.Sprintf("✓ %s: confirmed (special evidence)", special.Kind))
	return true
}
