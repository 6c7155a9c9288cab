package engine

import (
	"sleuth/internal/evidence"
	"time"
)

// QueryResult is the outcome of evaluating one suspect against one crime.
type QueryResult struct {
	Suspect string `json:"suspect"`
	Crime   string `json:"crime"`
	// Rule: name of the applied rule, empty when no rule governs the crime.
	Rule   string `json:"rule,omitempty"`
	Guilty bool   `json:"guilty"`
	// Overridden: guilt was granted by the substantial evidence override.
	Overridden bool `json:"overridden"`
	// Confidence: weighted share of the rule's conditions backed by evidence, in [0, 1].
	Confidence float64 `json:"confidence"`
	// Evidence: matched rule conditions in rule order, plus at most one special evidence kind.
	Evidence []evidence.Kind `json:"evidence"`
	// Reasoning: human readable evaluation trace.
	Reasoning []string `json:"reasoning"`
}

// clone returns a deep copy so cached results are never shared with callers.
func (r QueryResult) clone() QueryResult {
	c := r
	c.Evidence = append(make([]evidence.Kind, 0, len(r.Evidence)), r.Evidence...)
	c.Reasoning = append(make([]string, 0, len(r.Reasoning)), r.Reasoning...)
	return c
}

// Statistics summarise an investigation.
type Statistics struct {
	// Retained: pairs with at least one evidence item.
	Retained int `json:"retained"`
	// Guilty: retained pairs found guilty.
	Guilty int `json:"guilty"`
	// TotalEvidence: evidence items over all retained pairs.
	TotalEvidence int `json:"totalEvidence"`
	// PossiblePairs: suspects x crimes.
	PossiblePairs int `json:"possiblePairs"`
	// ResolutionRate: Guilty / PossiblePairs.
	ResolutionRate float64 `json:"resolutionRate"`
}

// InvestigationReport is the ranked result of evaluating every suspect against every crime.
type InvestigationReport struct {
	ID          string        `json:"id"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Results     []QueryResult `json:"results"`
	Statistics  Statistics    `json:"statistics"`
}

// SystemStats describe the engine state.
type SystemStats struct {
	TotalFacts int `json:"totalFacts"`
	TotalRules int `json:"totalRules"`
	CacheSize  int `json:"cacheSize"`
	// ActiveCallDepth: evaluations currently in flight.
	ActiveCallDepth int64 `json:"activeCallDepth"`
}
