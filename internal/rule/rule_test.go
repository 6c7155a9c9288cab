package rule

import (
	"sleuth/internal/evidence"
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecial_Init_Success(t *testing.T) {
	env, err := NewSpecialEnv()
	require.NoError(t, err)

	special := &Special{Kind: evidence.EyewitnessID, When: `suspect == "marie"`}

	err = special.Init(env)
	assert.NoError(t, err)
	assert.NotNil(t, special.program, "program should be compiled and assigned")
}

func TestSpecial_Init_ParseError(t *testing.T) {
	env, err := NewSpecialEnv()
	require.NoError(t, err)

	special := &Special{Kind: evidence.EyewitnessID, When: `suspect == `}

	err = special.Init(env)
	assert.Error(t, err, "expected parse error for invalid expression")
}

func TestSpecial_Init_CheckError(t *testing.T) {
	env, err := NewSpecialEnv()
	require.NoError(t, err)

	special := &Special{Kind: evidence.EyewitnessID, When: `witness == "marie"`}

	err = special.Init(env)
	assert.Error(t, err, "expected check error for undeclared variable")
}

func TestSpecial_Init_NonBoolean(t *testing.T) {
	env, err := NewSpecialEnv()
	require.NoError(t, err)

	special := &Special{Kind: evidence.EyewitnessID, When: `suspect + crime`}

	err = special.Init(env)
	assert.ErrorContains(t, err, "must return bool")
}

func TestSpecial_Eval_TrueCondition(t *testing.T) {
	env, err := NewSpecialEnv()
	require.NoError(t, err)

	special := &Special{Kind: evidence.EyewitnessID, When: `suspect == "marie" && crime == "assassinat"`}
	require.NoError(t, special.Init(env))

	matched, err := special.Eval(Bindings{Suspect: "marie", Crime: "assassinat"})
	assert.NoError(t, err)
	assert.True(t, matched)
}

func TestSpecial_Eval_FalseCondition(t *testing.T) {
	env, err := NewSpecialEnv()
	require.NoError(t, err)

	special := &Special{Kind: evidence.EyewitnessID, When: `suspect == "marie"`}
	require.NoError(t, special.Init(env))

	matched, err := special.Eval(Bindings{Suspect: "jean", Crime: "assassinat"})
	assert.NoError(t, err)
	assert.False(t, matched)
}

func TestSpecial_Eval_EvidenceList(t *testing.T) {
	env, err := NewSpecialEnv()
	require.NoError(t, err)

	special := &Special{Kind: evidence.EyewitnessID, When: `"has_dna_evidence" in evidence && size(evidence) >= 2`}
	require.NoError(t, special.Init(env))

	matched, err := special.Eval(Bindings{
		Suspect:  "marie",
		Crime:    "assassinat",
		Evidence: []evidence.Kind{evidence.HasMotive, evidence.HasDNAEvidence},
	})
	assert.NoError(t, err)
	assert.True(t, matched)

	matched, err = special.Eval(Bindings{Suspect: "marie", Crime: "assassinat", Evidence: nil})
	assert.NoError(t, err)
	assert.False(t, matched)
}

func TestSpecial_Eval_NotInitialized(t *testing.T) {
	special := &Special{Kind: evidence.EyewitnessID, When: `true`}

	_, err := special.Eval(Bindings{})
	assert.Error(t, err)
}

func TestRule_Governs(t *testing.T) {
	implicit := Rule{Name: "is_guilty_assassination", Conclusion: "guilty of assassination"}
	explicit := Rule{Name: "is_guilty_vol", Conclusion: "guilty of armed robbery", Crime: "vol"}

	assert.True(t, implicit.Governs("assassinat"), "conclusion containment should match")
	assert.False(t, implicit.Governs("vol"))
	assert.False(t, implicit.Governs(""), "empty crime id must never match")

	assert.True(t, explicit.Governs("vol"))
	assert.False(t, explicit.Governs("armed"), "explicit crime disables containment")
}

func TestCompile_SkipsRulesWithoutSpecial(t *testing.T) {
	calls := 0
	provider := func() (*cel.Env, error) {
		calls++
		return NewSpecialEnv()
	}
	rules := []Rule{
		{Name: "plain", Conditions: []evidence.Kind{evidence.HasMotive}, Conclusion: "guilty of vol"},
		{
			Name:       "special",
			Conditions: []evidence.Kind{evidence.HasMotive},
			Conclusion: "guilty of assassination",
			Special:    &Special{Kind: evidence.EyewitnessID, When: `true`},
		},
	}

	err := Compile(rules, provider)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NotNil(t, rules[1].Special.program)
}

func TestCompile_WrapsRuleName(t *testing.T) {
	rules := []Rule{{
		Name:       "broken",
		Conditions: []evidence.Kind{evidence.HasMotive},
		Conclusion: "guilty of vol",
		Special:    &Special{Kind: evidence.EyewitnessID, When: `(`},
	}}

	err := Compile(rules, NewSpecialEnv)
	assert.ErrorContains(t, err, "rule broken")
}
