package score

import (
	"fmt"
	"sleuth/internal/evidence"
)

// DefaultWeight is the importance of evidence kinds missing from the weights table.
const DefaultWeight = 0.1

// Weights maps evidence kinds to their importance in [0, 1].
type Weights map[evidence.Kind]float64

// DefaultWeights returns the built-in importance table.
// Physical and forensic evidence outweighs motive alone.
func DefaultWeights() Weights {
	return Weights{
		evidence.HasMotive:              0.3,
		evidence.WasNearCrimeScene:      0.5,
		evidence.HasFingerprintOnWeapon: 0.8,
		evidence.HasDNAEvidence:         0.9,
		evidence.EyewitnessID:           0.7,
		evidence.HasCameraEvidence:      0.7,
		evidence.HasBankTransaction:     0.6,
		evidence.OwnsFakeIdentity:       0.7,
		evidence.HasComputerEvidence:    0.7,
		evidence.HasNetworkLogs:         0.6,
		evidence.HasPhoneRecords:        0.5,
		evidence.HasDocumentEvidence:    0.6,
		evidence.HasPropertyEvidence:    0.5,
		evidence.HasAlibi:               0.9,
	}
}

// Weight returns the importance of kind, falling back to DefaultWeight.
func (w Weights) Weight(kind evidence.Kind) float64 {
	if weight, found := w[kind]; found {
		return weight
	}
	return DefaultWeight
}

// With returns a copy of w with overrides applied on top.
func (w Weights) With(overrides map[string]float64) (Weights, error) {
	result := make(Weights, len(w)+len(overrides))
	for k, v := range w {
		result[k] = v
	}
	for k, v := range overrides {
		if v < 0.0 || v > 1.0 {
			return nil, fmt.Errorf("weight %s: %v is outside [0, 1]", k, v)
		}
		result[evidence.Kind(k)] = v
	}
	return result, nil
}
