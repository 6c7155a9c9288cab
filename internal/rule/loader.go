package rule

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Compile initializes the special evidence programs of every rule.
// A fresh environment is requested from envProvider for each program.
func Compile(rules []Rule, envProvider func() (*cel.Env, error)) error {
	for i := range rules {
		if rules[i].Special == nil {
			continue
		}

		env, err := envProvider()
		if err != nil {
			return err
		}

		err = rules[i].Special.Init(env)
		if err != nil {
			return fmt.Errorf("rule %s: %w", rules[i].Name, err)
		}
	}
	return nil
}
