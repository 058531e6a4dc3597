// Package dispute holds the compliance rules gating dispute creation:
// reason-code risk tiers, evidence requirements, and request validation.
package dispute

import "strings"

// RiskTier ranks a set of dispute reason codes.
type RiskTier string

const (
	RiskHigh   RiskTier = "high"
	RiskMedium RiskTier = "medium"
	RiskLow    RiskTier = "low"
)

// highRiskCodes are reason codes that legally obligate supporting
// evidence before a dispute goes out. Disjoint from mediumRiskCodes.
var highRiskCodes = map[string]bool{
	"identity_theft":     true,
	"not_mine":           true,
	"mixed_file":         true,
	"fraud":              true,
	"unauthorized_hard_inquiry": true,
}

// mediumRiskCodes benefit from evidence but do not block.
var mediumRiskCodes = map[string]bool{
	"paid_collection":    true,
	"never_late":         true,
	"incorrect_balance":  true,
	"settled_in_full":    true,
	"duplicate_account":  true,
}

// blockingEvidence maps each high-risk code to the documents that must be
// attached before the dispute can be created without an override.
var blockingEvidence = map[string][]string{
	"identity_theft":     {"Police Report", "FTC Identity Theft Affidavit"},
	"not_mine":           {"Government ID", "Proof of Address"},
	"mixed_file":         {"Government ID", "Social Security Card"},
	"fraud":              {"Police Report", "Fraud Affidavit"},
	"unauthorized_hard_inquiry": {"Signed Statement of Non-Authorization"},
}

// recommendedEvidence maps medium-risk codes to documents that strengthen
// the dispute without blocking it.
var recommendedEvidence = map[string][]string{
	"paid_collection":   {"Proof of Payment", "Settlement Letter"},
	"never_late":        {"Bank Statements", "Payment History"},
	"incorrect_balance": {"Recent Account Statement"},
	"settled_in_full":   {"Settlement Letter"},
	"duplicate_account": {"Account Statements for Both Entries"},
}

// IsHighRiskCode reports whether a reason code requires blocking evidence.
func IsHighRiskCode(code string) bool { return highRiskCodes[canonical(code)] }

// IsMediumRiskCode reports whether a reason code carries recommended
// evidence. A code in neither set is implicitly low risk.
func IsMediumRiskCode(code string) bool { return mediumRiskCodes[canonical(code)] }

// RiskLevelForCodes ranks a code set: high dominates medium dominates
// low, regardless of input order.
func RiskLevelForCodes(codes []string) RiskTier {
	tier := RiskLow
	for _, c := range codes {
		if IsHighRiskCode(c) {
			return RiskHigh
		}
		if IsMediumRiskCode(c) {
			tier = RiskMedium
		}
	}
	return tier
}

// EvidenceRequirements describes what a code set demands.
type EvidenceRequirements struct {
	BlockingRequired    []string `json:"blocking_required"`
	StronglyRecommended []string `json:"strongly_recommended"`
	Summary             string   `json:"summary"`
}

// RequiredEvidence maps a code set to its blocking and recommended
// documents. The summary contains the literal token "BLOCKING" whenever
// any blocking document is required; callers display it verbatim.
func RequiredEvidence(codes []string) EvidenceRequirements {
	var req EvidenceRequirements
	seen := make(map[string]bool)

	add := func(dst *[]string, docs []string) {
		for _, d := range docs {
			if !seen[d] {
				seen[d] = true
				*dst = append(*dst, d)
			}
		}
	}

	for _, c := range codes {
		c = canonical(c)
		if docs, ok := blockingEvidence[c]; ok {
			add(&req.BlockingRequired, docs)
		}
	}
	for _, c := range codes {
		c = canonical(c)
		if docs, ok := recommendedEvidence[c]; ok {
			add(&req.StronglyRecommended, docs)
		}
	}

	switch {
	case len(req.BlockingRequired) > 0:
		req.Summary = "BLOCKING: this dispute cannot be submitted until the following evidence is attached: " +
			strings.Join(req.BlockingRequired, ", ")
	case len(req.StronglyRecommended) > 0:
		req.Summary = "Recommended evidence: " + strings.Join(req.StronglyRecommended, ", ")
	default:
		req.Summary = "No supporting evidence required."
	}
	return req
}

func canonical(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
