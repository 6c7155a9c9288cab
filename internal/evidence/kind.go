package evidence

import "strings"

// Kind identifies a type of evidence that can be observed for a suspect regarding a crime.
// Rule conditions and facts both refer to evidence by Kind.
type Kind string

const (
	HasMotive              Kind = "has_motive"
	WasNearCrimeScene      Kind = "was_near_crime_scene"
	HasFingerprintOnWeapon Kind = "has_fingerprint_on_weapon"
	HasBankTransaction     Kind = "has_bank_transaction"
	OwnsFakeIdentity       Kind = "owns_fake_identity"
	EyewitnessID           Kind = "eyewitness_identification"
	HasDNAEvidence         Kind = "has_dna_evidence"
	HasCameraEvidence      Kind = "has_camera_evidence"
	HasComputerEvidence    Kind = "has_computer_evidence"
	HasNetworkLogs         Kind = "has_network_logs"
	HasPhoneRecords        Kind = "has_phone_records"
	HasDocumentEvidence    Kind = "has_document_evidence"
	HasPropertyEvidence    Kind = "has_property_evidence"
	HasAlibi               Kind = "has_alibi"
)

// Join renders kinds as a comma separated list, preserving order.
func Join(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

// Strings converts kinds to plain strings, e.g. for CEL bindings.
func Strings(kinds []Kind) []string {
	result := make([]string, len(kinds))
	for i, k := range kinds {
		result[i] = string(k)
	}
	return result
}

// Contains reports whether kind is present in kinds.
func Contains(kinds []Kind, kind Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
