package report

import (
	"regexp"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// Config parameterizes the cascade engine for one report vendor: which
// markers identify the vendor, which selectors locate structured data,
// and which regex patterns drive the free-text fallbacks. All five
// vendor parsers are this one engine with different Configs.
type Config struct {
	Vendor  model.Vendor `yaml:"vendor"`
	Markers []string     `yaml:"markers"` // autodetect substrings, case-insensitive

	// Bureau applied to extracted records when the markup carries no
	// per-record bureau tag. Empty for tri-bureau vendors.
	DefaultBureau model.Bureau `yaml:"default_bureau"`

	// Score extraction.
	ScoreContainerSelector string `yaml:"score_container_selector"`
	ScoreBureauAttr        string `yaml:"score_bureau_attr"`
	ScoreValueSelector     string `yaml:"score_value_selector"`
	// Named preferred score pattern tried before the bare bureau-adjacent
	// regex, e.g. a VantageScore composite.
	PreferredScorePattern string `yaml:"preferred_score_pattern"`

	// Account extraction.
	AccountEntrySelector  string `yaml:"account_entry_selector"`
	CreditorFieldSelector string `yaml:"creditor_field_selector"`
	EntryBureauAttr       string `yaml:"entry_bureau_attr"`
	TableSelector         string `yaml:"table_selector"`
	// Line pattern that starts a new account chunk in the free-text
	// fallback. Must have one capture group: the creditor name.
	AccountStartPattern string `yaml:"account_start_pattern"`

	// Section extraction.
	NegativeSectionSelector string `yaml:"negative_section_selector"`
	InquiryEntrySelector    string `yaml:"inquiry_entry_selector"`
	InquiriesHeading        string `yaml:"inquiries_heading"`

	// Profile extraction.
	NameSelector    string `yaml:"name_selector"`
	AddressSelector string `yaml:"address_selector"`
}

// compiled holds the regexes a Config implies. Built once at registration
// and immutable afterwards, so concurrent Parse calls share it safely.
type compiled struct {
	cfg            Config
	preferredScore *regexp.Regexp
	accountStart   *regexp.Regexp
}

func (c Config) compile() *compiled {
	cc := &compiled{cfg: c}
	if c.PreferredScorePattern != "" {
		// Patterns can come from operator override files; a bad one
		// disables the strategy instead of panicking.
		if re, err := regexp.Compile(c.PreferredScorePattern); err == nil {
			cc.preferredScore = re
		}
	}
	cc.accountStart = regexp.MustCompile(defaultAccountStartPattern)
	if c.AccountStartPattern != "" {
		if re, err := regexp.Compile(c.AccountStartPattern); err == nil {
			cc.accountStart = re
		}
	}
	return cc
}

// defaultAccountStartPattern matches an all-caps creditor heading line.
const defaultAccountStartPattern = `(?m)^[ \t]*([A-Z][A-Z0-9&.,'/\- ]{2,60})[ \t]*$`

// columnField identifies what a table column holds, inferred from its
// header text.
type columnField int

const (
	colUnknown columnField = iota
	colCreditor
	colAccountNumber
	colAccountType
	colBalance
	colCreditLimit
	colStatus
	colPaymentStatus
	colDateOpened
	colDateReported
)

// headerKeywords maps substrings of a lowercased header cell to the field
// that column holds. Evaluated in order; first hit wins, so the specific
// entries must stay ahead of the broad ones ("account number" before
// "account").
var headerKeywords = []struct {
	needles []string
	field   columnField
}{
	{[]string{"account number", "account #", "acct"}, colAccountNumber},
	{[]string{"creditor", "account name", "company", "furnisher", "name"}, colCreditor},
	{[]string{"credit limit", "limit", "high credit"}, colCreditLimit},
	{[]string{"balance", "amount owed", "owed"}, colBalance},
	{[]string{"payment status", "pay status", "payment"}, colPaymentStatus},
	{[]string{"status"}, colStatus},
	{[]string{"opened", "open date"}, colDateOpened},
	{[]string{"reported", "updated", "last activity"}, colDateReported},
	{[]string{"type"}, colAccountType},
	{[]string{"account"}, colAccountNumber},
}
