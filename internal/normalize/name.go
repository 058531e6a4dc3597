package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser   = cases.Title(language.AmericanEnglish)
	wsRe         = regexp.MustCompile(`\s+`)
	acctMaskRe   = regexp.MustCompile(`[^A-Za-z0-9*Xx]`)
	nonLetterRe  = regexp.MustCompile(`[^A-Za-z&.\- ]`)
	ssnLast4Re   = regexp.MustCompile(`(?i)(?:[X*]{3}[-\s]?[X*]{2}[-\s]?|\d{3}[-\s]\d{2}[-\s])(\d{4})\b`)
	stateZipRe   = regexp.MustCompile(`\b([A-Z]{2})\s+(\d{5})(?:-\d{4})?\b`)
)

// CreditorName trims, collapses whitespace, strips markup junk and caps
// the name at 100 characters. Returns "" for names that are unusable,
// which callers treat as "drop the record".
func CreditorName(s string) string {
	s = wsRe.ReplaceAllString(strings.TrimSpace(s), " ")
	s = strings.Trim(s, " -:*")
	if s == "" || len(s) > 100 {
		return ""
	}
	return s
}

// CreditorDisplay renders an all-caps creditor name in title case for UI
// and export surfaces. All-caps is how bureaus report; mixed case is
// left alone.
func CreditorDisplay(s string) string {
	if s == strings.ToUpper(s) {
		return titleCaser.String(strings.ToLower(s))
	}
	return s
}

// DedupKey builds the dedup identity for an account: lowercase trimmed
// creditor name plus the account number (empty string when absent).
// First occurrence wins across extraction strategies within a document.
func DedupKey(creditor, accountNumber string) string {
	return strings.ToLower(strings.TrimSpace(creditor)) + "|" + strings.ToLower(strings.TrimSpace(accountNumber))
}

// AccountNumber keeps digits, letters and mask characters from a raw
// account-number fragment.
func AccountNumber(s string) string {
	return acctMaskRe.ReplaceAllString(strings.TrimSpace(s), "")
}

// SSNLast4 extracts the last four SSN digits from a masked fragment like
// "***-**-1234" or "XXX-XX-1234". Returns "" when not found.
func SSNLast4(s string) string {
	m := ssnLast4Re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// StateZip pulls a 2-letter state and 5-digit zip from an address line.
func StateZip(s string) (state, zip string) {
	state, zip, _ = StateZipIndex(s)
	return state, zip
}

// StateZipIndex is StateZip plus the offset of the match, -1 when absent.
// The offset lets callers split the street/city head off an address line.
func StateZipIndex(s string) (state, zip string, start int) {
	m := stateZipRe.FindStringSubmatchIndex(s)
	if m == nil {
		return "", "", -1
	}
	return s[m[2]:m[3]], s[m[4]:m[5]], m[0]
}

// CleanText strips non-letter noise from a heading fragment.
func CleanText(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(nonLetterRe.ReplaceAllString(s, " "), " "))
}
