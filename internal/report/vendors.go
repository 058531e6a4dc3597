package report

import "github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"

// Vendor configurations. These encode the markup each report source
// actually ships; the selector sets are heuristic and the engine's text
// fallbacks cover documents that drift from them.

// TransUnionConfig covers reports pulled directly from TransUnion.
// Single-bureau source, so untagged records default to transunion.
var TransUnionConfig = Config{
	Vendor:        model.VendorTransUnion,
	Markers:       []string{"transunion", "trans union", "tuc.com", "true identity"},
	DefaultBureau: model.BureauTransUnion,

	ScoreContainerSelector: ".score-container, .credit-score, [data-bureau]",
	ScoreBureauAttr:        "data-bureau",
	ScoreValueSelector:     ".score-value, .score",
	PreferredScorePattern:  `(?i)vantagescore(?:\s*3\.0|\s*4\.0)?\D{0,40}?\b(\d{3})\b`,

	AccountEntrySelector:  ".tradeline, .account-entry, .account-item, [data-account]",
	CreditorFieldSelector: ".creditor-name, .account-name, .subscriber-name",
	EntryBureauAttr:       "data-bureau",

	NegativeSectionSelector: ".negative-items, .derogatory, .collections-section",
	InquiryEntrySelector:    ".inquiry, .inquiry-entry, .inquiry-item",
	InquiriesHeading:        "inquiries",

	NameSelector:    ".consumer-name, .personal-info .name",
	AddressSelector: ".consumer-address, .personal-info .address",
}

// SmartCreditConfig covers SmartCredit tri-bureau reports.
var SmartCreditConfig = Config{
	Vendor:  model.VendorSmartCredit,
	Markers: []string{"smartcredit", "smart credit", "consumerdirect"},

	ScoreContainerSelector: ".score-card, .bureau-score, [data-bureau-score]",
	ScoreBureauAttr:        "data-bureau",
	ScoreValueSelector:     ".score-number, .score-value",
	PreferredScorePattern:  `(?i)vantagescore\D{0,40}?\b(\d{3})\b`,

	AccountEntrySelector:  ".account-card, .tradeline-row, .account-detail",
	CreditorFieldSelector: ".creditor, .account-title",
	EntryBureauAttr:       "data-bureau",

	NegativeSectionSelector: ".negative-accounts, .derogatory-section",
	InquiryEntrySelector:    ".inquiry-row, .inquiry-card",
	InquiriesHeading:        "inquiries",

	NameSelector:    ".profile-name, .member-name",
	AddressSelector: ".profile-address, .member-address",
}

// PrivacyGuardConfig covers PrivacyGuard tri-bureau reports.
var PrivacyGuardConfig = Config{
	Vendor:  model.VendorPrivacyGuard,
	Markers: []string{"privacyguard", "privacy guard", "privacyguard.com"},

	ScoreContainerSelector: ".pg-score, .bureau-box, .score-panel",
	ScoreBureauAttr:        "data-bureau",
	ScoreValueSelector:     ".score-num, .score-value",
	PreferredScorePattern:  `(?i)(?:credit\s+score|vantagescore)\D{0,40}?\b(\d{3})\b`,

	AccountEntrySelector:  ".pg-account, .trade-item, .account-block",
	CreditorFieldSelector: ".creditor-title, .company-name",
	EntryBureauAttr:       "data-bureau",

	NegativeSectionSelector: ".pg-negative, .adverse-accounts",
	InquiryEntrySelector:    ".pg-inquiry, .inquiry-line",
	InquiriesHeading:        "inquiries",

	NameSelector:    ".pg-name, .report-name",
	AddressSelector: ".pg-address, .report-address",
}

// MyScoreIQConfig covers MyScoreIQ tri-bureau reports.
var MyScoreIQConfig = Config{
	Vendor:  model.VendorMyScoreIQ,
	Markers: []string{"myscoreiq", "my score iq", "scoreiq", "identityiq"},

	ScoreContainerSelector: ".siq-score, .score-widget, .bureau-score-box",
	ScoreBureauAttr:        "data-bureau",
	ScoreValueSelector:     ".score-digits, .score-value",
	PreferredScorePattern:  `(?i)fico\D{0,8}score\D{0,40}?\b(\d{3})\b`,

	AccountEntrySelector:  ".siq-account, .account-row, .tradeline-card",
	CreditorFieldSelector: ".furnisher-name, .creditor-label",
	EntryBureauAttr:       "data-bureau",

	NegativeSectionSelector: ".siq-negative, .negative-list",
	InquiryEntrySelector:    ".siq-inquiry, .inquiry-record",
	InquiriesHeading:        "inquiries",

	NameSelector:    ".siq-name, .holder-name",
	AddressSelector: ".siq-address, .holder-address",
}

// GenericConfig handles PDF-extracted or otherwise unbranded plain text.
// No selectors: the table and free-text strategies do all the work.
var GenericConfig = Config{
	Vendor:                model.VendorGeneric,
	Markers:               []string{},
	PreferredScorePattern: `(?i)(?:vantagescore|fico\D{0,8}score|credit\s+score)\D{0,40}?\b(\d{3})\b`,
	InquiriesHeading:      "inquiries",
}

// DefaultRegistry returns a registry with all five vendor parsers.
// The tri-bureau aggregators are registered before TransUnion: their
// reports name TransUnion in the score section, so TransUnion's bureau
// markers would otherwise claim every aggregator document. Generic is
// last so Detect falls through to it.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, cfg := range []Config{
		SmartCreditConfig,
		PrivacyGuardConfig,
		MyScoreIQConfig,
		TransUnionConfig,
		GenericConfig,
	} {
		r.Register(NewParser(cfg))
	}
	return r
}
