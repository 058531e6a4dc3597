package dispute

import "fmt"

// ValidationResult is the structured outcome of evidence validation.
// Callers branch on IsValid; validation itself never fails.
type ValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	BlockingReasons []string `json:"blocking_reasons"`
	CanOverride     bool     `json:"can_override"`
}

// ValidateEvidence checks a dispute request against the evidence rules.
// Invalid iff at least one high-risk code is present with no evidence
// attached; an administrator may still override. Medium-risk codes with
// no evidence stay valid but warn.
func ValidateEvidence(codes []string, evidenceDocumentIDs []string) ValidationResult {
	result := ValidationResult{
		IsValid:         true,
		Errors:          []string{},
		Warnings:        []string{},
		BlockingReasons: []string{},
	}

	req := RequiredEvidence(codes)
	hasEvidence := len(evidenceDocumentIDs) > 0

	if len(req.BlockingRequired) > 0 && !hasEvidence {
		result.IsValid = false
		result.CanOverride = true
		for _, c := range codes {
			if IsHighRiskCode(c) {
				result.BlockingReasons = append(result.BlockingReasons,
					fmt.Sprintf("reason code %q requires supporting evidence", canonical(c)))
			}
		}
		result.Errors = append(result.Errors, req.Summary)
		return result
	}

	if !hasEvidence {
		for _, c := range codes {
			if IsMediumRiskCode(c) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("reason code %q is stronger with supporting evidence", canonical(c)))
			}
		}
	}

	return result
}
