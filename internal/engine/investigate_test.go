package engine

import (
	"fmt"
	"sleuth/internal/evidence"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_InvestigateAll_DefaultCorpus(t *testing.T) {
	e := defaultEngine(t, WithWorkers(3))

	report := e.InvestigateAll()

	pairs := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		pairs = append(pairs, r.Suspect+"/"+r.Crime)
	}
	expected := []string{
		"marie/assassinat",
		"jean/vol",
		"paul/trafic",
		"alice/escroquerie",
		"bruno/cybercrime",
		"sophie/corruption",
		"julie/fraude",
		"marc/blanchiment",
		"paul/vol",
	}
	if diff := cmp.Diff(expected, pairs); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, report.Results, 9)
	last := report.Results[len(report.Results)-1]
	assert.False(t, last.Guilty)
	assert.Equal(t, []evidence.Kind{evidence.WasNearCrimeScene}, last.Evidence)

	assert.Equal(t, Statistics{
		Retained:       9,
		Guilty:         8,
		TotalEvidence:  30,
		PossiblePairs:  64,
		ResolutionRate: 0.125,
	}, report.Statistics)

	_, err := uuid.Parse(report.ID)
	assert.NoError(t, err)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestEngine_InvestigateAll_DropsPairsWithoutEvidence(t *testing.T) {
	e := defaultEngine(t)

	for _, r := range e.InvestigateAll().Results {
		assert.NotEmpty(t, r.Evidence, "%s/%s", r.Suspect, r.Crime)
	}
}

func TestEngine_InvestigateAll_AlibiOnlyPairsDropped(t *testing.T) {
	e := defaultEngine(t)

	// bruno's only fact about vol is an alibi, which the vol rule does not ask for.
	for _, r := range e.InvestigateAll().Results {
		assert.NotEqual(t, "bruno/vol", r.Suspect+"/"+r.Crime)
		assert.NotEqual(t, "sophie/assassinat", r.Suspect+"/"+r.Crime)
	}
}

func TestEngine_InvestigateAll_ResultsCarryNoCacheLine(t *testing.T) {
	e := defaultEngine(t)

	_, err := e.IsGuilty("jean", "vol")
	require.NoError(t, err)

	for _, r := range e.InvestigateAll().Results {
		assert.NotContains(t, r.Reasoning, CacheHitLine)
	}
}

func TestEngine_InvestigateAll_Deterministic(t *testing.T) {
	e := defaultEngine(t)

	first := e.InvestigateAll()
	e.ClearCache()
	second := e.InvestigateAll()

	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, first.Statistics, second.Statistics)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEngine_InvestigateAll_EmptyCorpus(t *testing.T) {
	e := New(loadCorpus(t, ""))

	report := e.InvestigateAll()
	assert.Empty(t, report.Results)
	assert.Equal(t, Statistics{}, report.Statistics)
}

func TestRank(t *testing.T) {
	result := func(name string, guilty bool, evidenceCount int, confidence float64) QueryResult {
		ev := make([]evidence.Kind, evidenceCount)
		for i := range ev {
			ev[i] = evidence.Kind(fmt.Sprintf("e%d", i))
		}
		return QueryResult{Suspect: name, Guilty: guilty, Evidence: ev, Confidence: confidence}
	}

	tests := []struct {
		name     string
		input    []QueryResult
		expected []string
	}{
		{
			name: "guilty first",
			input: []QueryResult{
				result("a", false, 5, 0.9),
				result("b", true, 1, 0.1),
			},
			expected: []string{"b", "a"},
		},
		{
			name: "more evidence first",
			input: []QueryResult{
				result("a", true, 2, 0.9),
				result("b", true, 3, 0.1),
			},
			expected: []string{"b", "a"},
		},
		{
			name: "higher confidence first",
			input: []QueryResult{
				result("a", false, 2, 0.3),
				result("b", false, 2, 0.6),
			},
			expected: []string{"b", "a"},
		},
		{
			name: "ties keep input order",
			input: []QueryResult{
				result("a", true, 2, 0.5),
				result("b", true, 2, 0.5),
				result("c", true, 2, 0.5),
			},
			expected: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Rank(tt.input)
			names := make([]string, 0, len(tt.input))
			for _, r := range tt.input {
				names = append(names, r.Suspect)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
