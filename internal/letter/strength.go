// Package letter scores drafted dispute letters. The score is
// informational: it never blocks letter creation, it feeds the drafting
// UI with a 0-10 strength and improvement suggestions.
package letter

import "math"

// Analysis is one account-level analysis feeding a letter: how many
// Metro 2 violations and regulatory citations it documents, and the
// analyzer's confidence in them.
type Analysis struct {
	Violations int     `json:"violations"`
	Citations  int     `json:"citations"`
	Confidence float64 `json:"confidence"` // 0..1
}

// Methodology names the dispute approach used for the letter.
const (
	MethodologyConsumerLaw = "consumer_law"
	MethodologyMetro2      = "metro2_compliance"
	MethodologyHybrid      = "hybrid"
	MethodologyFactual     = "factual"
)

// StrengthScore is the composite letter evaluation: six independently
// bounded sub-scores, their clamped sum, and deduplicated suggestions.
type StrengthScore struct {
	OverallScore     float64  `json:"overall_score"` // 0-10, one decimal
	ViolationScore   float64  `json:"violation_score"`
	CitationScore    float64  `json:"citation_score"`
	EvidenceScore    float64  `json:"evidence_score"`
	ConfidenceScore  float64  `json:"confidence_score"`
	EscalationScore  float64  `json:"escalation_score"`
	MethodologyScore float64  `json:"methodology_score"`
	Suggestions      []string `json:"suggestions"`
}

// CalculateStrength scores a drafted letter. Out-of-range inputs are
// clamped rather than rejected: a negative evidence count scores as zero
// and a round below 1 as round 1. Empty analyses are fine.
func CalculateStrength(analyses []Analysis, hasEvidence bool, evidenceCount, round int, methodology string) StrengthScore {
	if evidenceCount < 0 {
		evidenceCount = 0
	}
	if !hasEvidence {
		evidenceCount = 0
	}
	if round < 1 {
		round = 1
	}

	var violations, citations int
	var confidenceSum float64
	for _, a := range analyses {
		violations += a.Violations
		citations += a.Citations
		confidenceSum += a.Confidence
	}
	avgConfidence := confidenceSum / float64(max(len(analyses), 1))

	s := StrengthScore{
		ViolationScore:   violationScore(violations),
		CitationScore:    citationScore(citations),
		EvidenceScore:    evidenceScore(evidenceCount),
		ConfidenceScore:  confidenceScore(avgConfidence),
		EscalationScore:  escalationScore(round),
		MethodologyScore: methodologyScore(methodology),
	}

	sum := s.ViolationScore + s.CitationScore + s.EvidenceScore +
		s.ConfidenceScore + s.EscalationScore + s.MethodologyScore
	s.OverallScore = math.Round(math.Min(sum, 10)*10) / 10

	s.Suggestions = suggestions(s, violations, citations, evidenceCount, avgConfidence, round, methodology)
	return s
}

// violationScore: 0-3 by total Metro 2 violations.
func violationScore(n int) float64 {
	switch {
	case n >= 6:
		return 3
	case n >= 4:
		return 2.5
	case n >= 2:
		return 2
	case n == 1:
		return 1
	}
	return 0
}

// citationScore: 0-2 by regulatory citations, with a base credit for
// letters that cite nothing.
func citationScore(n int) float64 {
	switch {
	case n >= 4:
		return 2
	case n >= 2:
		return 1.5
	case n == 1:
		return 1
	}
	return 0.5
}

// evidenceScore: 0-1.5 by attached document count.
func evidenceScore(n int) float64 {
	switch {
	case n >= 4:
		return 1.5
	case n >= 2:
		return 1
	case n == 1:
		return 0.75
	}
	return 0
}

// confidenceScore: 0-1.5 by average analysis confidence, tiered at
// 0.4 / 0.6 / 0.75 / 0.9.
func confidenceScore(avg float64) float64 {
	switch {
	case avg >= 0.9:
		return 1.5
	case avg >= 0.75:
		return 1
	case avg >= 0.6:
		return 0.75
	case avg >= 0.4:
		return 0.5
	}
	return 0
}

// escalationScore: 0-1 by dispute round.
func escalationScore(round int) float64 {
	switch {
	case round >= 3:
		return 1
	case round == 2:
		return 0.5
	}
	return 0
}

// methodologyScore: fixed lookup, consumer-law letters highest, plain
// factual disputes the floor.
func methodologyScore(m string) float64 {
	switch m {
	case MethodologyConsumerLaw:
		return 1
	case MethodologyMetro2:
		return 0.9
	case MethodologyHybrid:
		return 0.75
	default:
		return 0.5
	}
}

// suggestions emits one improvement hint per under-performing tier, in a
// fixed order, deduplicated.
func suggestions(s StrengthScore, violations, citations, evidenceCount int, avgConfidence float64, round int, methodology string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	}

	if s.ViolationScore < 3 {
		if violations == 0 {
			add("Run a Metro 2 compliance analysis to identify reporting violations before sending.")
		} else {
			add("Document additional Metro 2 violations to strengthen the factual basis.")
		}
	}
	if s.CitationScore < 2 {
		add("Cite the specific FCRA or FDCPA sections each disputed item violates.")
	}
	if s.EvidenceScore < 1.5 {
		if evidenceCount == 0 {
			add("Attach supporting evidence documents; letters with no exhibits are routinely discounted.")
		} else {
			add("Attach additional supporting documents to reach a full evidence package.")
		}
	}
	if s.ConfidenceScore < 1.5 && avgConfidence < 0.9 {
		add("Review low-confidence account analyses and corroborate them before relying on them.")
	}
	if round < 3 && s.EscalationScore < 1 {
		add("Later rounds can reference the bureau's prior inadequate investigation for added weight.")
	}
	if methodology != MethodologyConsumerLaw && s.MethodologyScore < 1 {
		add("A consumer-law based methodology scores stronger than a purely factual dispute.")
	}
	return out
}
