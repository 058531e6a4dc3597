package model

import "time"

// Vendor identifies which report parser produced a result.
type Vendor string

const (
	VendorTransUnion   Vendor = "transunion"
	VendorSmartCredit  Vendor = "smartcredit"
	VendorPrivacyGuard Vendor = "privacyguard"
	VendorMyScoreIQ    Vendor = "myscoreiq"
	VendorGeneric      Vendor = "generic"
)

// ReportRecord is a persisted parse result.
type ReportRecord struct {
	ID        string            `json:"id"`
	Vendor    Vendor            `json:"vendor"`
	Source    string            `json:"source,omitempty"` // original file name or URL
	Data      *ParsedCreditData `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
}

// DisputeStatus tracks a dispute through its lifecycle.
type DisputeStatus string

const (
	DisputeStatusDraft     DisputeStatus = "draft"
	DisputeStatusSubmitted DisputeStatus = "submitted"
	DisputeStatusResolved  DisputeStatus = "resolved"
)

// DisputeRecord is a persisted dispute request that passed (or overrode)
// evidence validation.
type DisputeRecord struct {
	ID          string        `json:"id"`
	ReportID    string        `json:"report_id,omitempty"`
	Creditor    string        `json:"creditor"`
	ReasonCodes []string      `json:"reason_codes"`
	EvidenceIDs []string      `json:"evidence_ids"`
	RiskLevel   string        `json:"risk_level"`
	Overridden  bool          `json:"overridden"`
	Status      DisputeStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// LetterScoreRecord is a persisted letter-strength evaluation.
type LetterScoreRecord struct {
	ID          string    `json:"id"`
	DisputeID   string    `json:"dispute_id,omitempty"`
	Round       int       `json:"round"`
	Methodology string    `json:"methodology"`
	Overall     float64   `json:"overall"`
	Suggestions []string  `json:"suggestions"`
	CreatedAt   time.Time `json:"created_at"`
}
