package corpus

import (
	_ "embed"
	"fmt"
	"os"
	"sleuth/internal/rule"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCorpus []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load parses a YAML corpus, validates it and compiles the special evidence expressions of its rules.
//
// The document has four top-level lists:
//
//	suspects: [{id: jean, name: Jean Dupont}]
//	crimes:   [{id: vol, label: Armed robbery}]
//	facts:    [{kind: has_motive, suspect: jean, crime: vol}]
//	rules:    [{name: is_guilty_vol, conditions: [has_motive], conclusion: guilty of vol}]
func Load(content []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("error unmarshaling corpus: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid corpus: %w", err)
	}

	if err := rule.Compile(c.Rules, rule.NewSpecialEnv); err != nil {
		return nil, fmt.Errorf("error compiling rules: %w", err)
	}

	return &c, nil
}

// LoadFile reads and loads the corpus stored at path.
func LoadFile(path string) (*Corpus, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading corpus file: %w", err)
	}
	return Load(content)
}

// Default returns the built-in corpus: eight suspects, eight crimes and their rules.
func Default() (*Corpus, error) {
	return Load(defaultCorpus)
}

// Open loads the corpus stored at path, or the built-in corpus when path is empty.
func Open(path string) (*Corpus, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Validate checks required fields and identifier uniqueness.
// Facts may reference suspects or crimes absent from the corpus; such facts are simply never queried
// by an investigation.
func (c *Corpus) Validate() error {
	return validate.Struct(c)
}
