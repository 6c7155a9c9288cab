package rule

import (
	"errors"
	"fmt"
	"sleuth/internal/evidence"
	"strings"

	"github.com/google/cel-go/cel"
)

// Rule is a named list of evidence kinds that must all be observed for a suspect regarding a crime
// before the suspect is considered guilty of it.
type Rule struct {
	// Name: rule identifier shown in reasoning traces, e.g. "is_guilty_vol".
	Name string `yaml:"name" json:"name" validate:"required"`
	// Conditions: required evidence kinds. Evaluated and traced in listed order.
	Conditions []evidence.Kind `yaml:"conditions" json:"conditions" validate:"min=1,dive,required"`
	// Conclusion: human readable conclusion label, e.g. "guilty of vol".
	// Rules without an explicit Crime are matched by crime id containment in this label.
	Conclusion string `yaml:"conclusion" json:"conclusion" validate:"required"`
	// Crime: explicit id of the crime governed by the rule. Optional.
	Crime string `yaml:"crime,omitempty" json:"crime,omitempty"`
	// Special: extra condition checked only after all ordinary conditions hold. Optional.
	Special *Special `yaml:"special,omitempty" json:"special,omitempty" validate:"omitempty"`
}

// Governs reports whether the rule applies to the crime with the given id.
func (r *Rule) Governs(crime string) bool {
	if crime == "" {
		return false
	}
	if r.Crime != "" {
		return r.Crime == crime
	}
	return strings.Contains(r.Conclusion, crime)
}

// Special is a declarative piece of evidence that does not live in the fact table.
// When evaluates to true the evidence of Kind is considered confirmed.
type Special struct {
	// Kind: evidence kind appended to the result when the expression holds.
	Kind evidence.Kind `yaml:"kind" json:"kind" validate:"required"`
	// When: CEL expression over suspect, crime and evidence. Must return a boolean.
	When string `yaml:"when" json:"when" validate:"required"`

	program cel.Program
}

// Bindings are the values visible to a Special expression.
type Bindings struct {
	Suspect  string
	Crime    string
	Evidence []evidence.Kind
}

func (b Bindings) activation() map[string]any {
	return map[string]any{
		"suspect":  b.Suspect,
		"crime":    b.Crime,
		"evidence": evidence.Strings(b.Evidence),
	}
}

// Init compiles the When expression into an executable CEL program using env.
// Expressions that do not type check to bool are rejected.
func (s *Special) Init(env *cel.Env) error {
	ast, iss := env.Parse(s.When)
	if iss.Err() != nil {
		return iss.Err()
	}

	checked, iss := env.Check(ast)
	if iss.Err() != nil {
		return iss.Err()
	}
	if !checked.OutputType().IsExactType(cel.BoolType) {
		return fmt.Errorf("special %s: expression must return bool, got %s", s.Kind, checked.OutputType())
	}

	var err error
	s.program, err = env.Program(checked)
	if err != nil {
		return err
	}

	return nil
}

// Eval runs the compiled expression against b.
func (s *Special) Eval(b Bindings) (bool, error) {
	if s.program == nil {
		return false, errors.New("special " + string(s.Kind) + ": not initialized")
	}

	result, _, err := s.program.Eval(b.activation())
	if err != nil {
		return false, err
	}

	matched, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("special %s: non-boolean result %v", s.Kind, result.Value())
	}

	return matched, nil
}
