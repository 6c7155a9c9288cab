package rule

import "github.com/google/cel-go/cel"

// NewSpecialEnv declares the variables available to special evidence expressions.
func NewSpecialEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("suspect", cel.StringType),
		cel.Variable("crime", cel.StringType),
		cel.Variable("evidence", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, err
	}
	return env, nil
}
