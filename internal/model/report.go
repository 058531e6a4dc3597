package model

import "time"

// NegativeItemType classifies a derogatory entry.
type NegativeItemType string

const (
	NegativeCollection  NegativeItemType = "collection"
	NegativeChargeOff   NegativeItemType = "charge_off"
	NegativeLatePayment NegativeItemType = "late_payment"
	NegativeDerogatory  NegativeItemType = "derogatory"
)

// NegativeItem is a derogatory entry derived from a tradeline or from a
// dedicated collections section of a report.
type NegativeItem struct {
	ItemType     NegativeItemType `json:"item_type"`
	CreditorName string           `json:"creditor_name"`
	Amount       *int64           `json:"amount,omitempty"` // cents
	DateReported *time.Time       `json:"date_reported,omitempty"`
	Bureau       Bureau           `json:"bureau,omitempty"`
	RiskSeverity RiskLevel        `json:"risk_severity"`
}

// Inquiry is a hard-pull record from a report's inquiries section.
type Inquiry struct {
	CreditorName string     `json:"creditor_name"`
	InquiryDate  *time.Time `json:"inquiry_date,omitempty"`
	Bureau       Bureau     `json:"bureau,omitempty"`
}

// PersonName is one name variant a bureau has on file.
type PersonName struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Bureau     Bureau `json:"bureau,omitempty"`
}

// Address is one address a bureau has on file.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"` // 2-letter
	ZipCode string `json:"zip_code"`
	Bureau  Bureau `json:"bureau,omitempty"`
}

// ConsumerProfile holds identity data extracted from a report.
type ConsumerProfile struct {
	Names       []PersonName `json:"names"`
	Addresses   []Address    `json:"addresses"`
	Employers   []string     `json:"employers"`
	SSNLast4    string       `json:"ssn_last4,omitempty"` // exactly 4 digits when set
	DateOfBirth *time.Time   `json:"date_of_birth,omitempty"`
}

// Summary aggregates the final account list. Always recomputed from the
// post-dedup accounts, never accumulated during extraction.
type Summary struct {
	TotalAccounts      int   `json:"total_accounts"`
	OpenAccounts       int   `json:"open_accounts"`
	ClosedAccounts     int   `json:"closed_accounts"`
	TotalDebt          int64 `json:"total_debt"`         // cents
	TotalCreditLimit   int64 `json:"total_credit_limit"` // cents
	UtilizationPercent int   `json:"utilization_percent"`
}

// ParsedCreditData is the root output of every vendor extractor. Scores
// map bureau name to a value in [300, 850]; absent entries mean not found.
// The structure is immutable after construction.
type ParsedCreditData struct {
	Scores          map[Bureau]int  `json:"scores"`
	ConsumerProfile ConsumerProfile `json:"consumer_profile"`
	Accounts        []Account       `json:"accounts"`
	NegativeItems   []NegativeItem  `json:"negative_items"`
	Inquiries       []Inquiry       `json:"inquiries"`
	Summary         Summary         `json:"summary"`
	RawText         string          `json:"raw_text"`
}

// NewParsedCreditData returns a well-formed empty result with all
// collections allocated, suitable for the empty-document case.
func NewParsedCreditData(rawText string) *ParsedCreditData {
	return &ParsedCreditData{
		Scores: make(map[Bureau]int),
		ConsumerProfile: ConsumerProfile{
			Names:     []PersonName{},
			Addresses: []Address{},
			Employers: []string{},
		},
		Accounts:      []Account{},
		NegativeItems: []NegativeItem{},
		Inquiries:     []Inquiry{},
		RawText:       rawText,
	}
}
