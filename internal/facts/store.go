package facts

import (
	"sleuth/internal/corpus"
	"sleuth/internal/evidence"
)

// Store is a read-only index over the corpus facts.
// It is built once and never modified, so it is safe for concurrent use without locking.
type Store struct {
	facts     []corpus.Fact
	bySuspect map[string][]corpus.Fact
}

// ForSuspect returns every fact about suspect in corpus order.
// An unknown suspect yields an empty slice.
func (s *Store) ForSuspect(suspect string) []corpus.Fact {
	found := s.bySuspect[suspect]
	result := make([]corpus.Fact, len(found))
	copy(result, found)
	return result
}

// Has reports whether evidence of kind was observed for suspect regarding crime.
func (s *Store) Has(kind evidence.Kind, suspect, crime string) bool {
	for _, f := range s.bySuspect[suspect] {
		if f.Kind == kind && f.Crime == crime {
			return true
		}
	}
	return false
}

// Len returns the total number of facts, duplicates included.
func (s *Store) Len() int {
	return len(s.facts)
}

// NewStore indexes facts by suspect, preserving corpus order within each suspect.
func NewStore(facts []corpus.Fact) *Store {
	store := Store{
		facts:     facts,
		bySuspect: make(map[string][]corpus.Fact),
	}
	for _, f := range facts {
		store.bySuspect[f.Suspect] = append(store.bySuspect[f.Suspect], f)
	}
	return &store
}
