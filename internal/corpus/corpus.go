package corpus

import (
	"sleuth/internal/evidence"
	"sleuth/internal/rule"
)

// Suspect is a person under investigation.
type Suspect struct {
	ID   string `yaml:"id" json:"id" validate:"required"`
	Name string `yaml:"name" json:"name" validate:"required"`
}

// Crime is a category of offence a suspect can be evaluated against.
type Crime struct {
	ID    string `yaml:"id" json:"id" validate:"required"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

// Fact states that evidence of Kind was observed for Suspect regarding Crime.
type Fact struct {
	Kind    evidence.Kind `yaml:"kind" json:"kind" validate:"required"`
	Suspect string        `yaml:"suspect" json:"suspect" validate:"required"`
	Crime   string        `yaml:"crime" json:"crime" validate:"required"`
}

// Corpus is the immutable knowledge base the engine is built from.
type Corpus struct {
	Suspects []Suspect  `yaml:"suspects" json:"suspects" validate:"unique=ID,dive"`
	Crimes   []Crime    `yaml:"crimes" json:"crimes" validate:"unique=ID,dive"`
	Facts    []Fact     `yaml:"facts" json:"facts" validate:"dive"`
	Rules    []rule.Rule `yaml:"rules" json:"rules" validate:"unique=Name,dive"`
}

// SuspectIDs returns suspect ids in corpus order.
func (c *Corpus) SuspectIDs() []string {
	ids := make([]string, len(c.Suspects))
	for i, s := range c.Suspects {
		ids[i] = s.ID
	}
	return ids
}

// CrimeIDs returns crime ids in corpus order.
func (c *Corpus) CrimeIDs() []string {
	ids := make([]string, len(c.Crimes))
	for i, cr := range c.Crimes {
		ids[i] = cr.ID
	}
	return ids
}

// HasSuspect reports whether a suspect with id exists.
func (c *Corpus) HasSuspect(id string) bool {
	for _, s := range c.Suspects {
		if s.ID == id {
			return true
		}
	}
	return false
}

// HasCrime reports whether a crime with id exists.
func (c *Corpus) HasCrime(id string) bool {
	for _, cr := range c.Crimes {
		if cr.ID == id {
			return true
		}
	}
	return false
}
