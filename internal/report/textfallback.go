package report

import (
	"strings"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/normalize"
)

// sectionHeadings are report section titles the text fallback must not
// mistake for creditor names.
var sectionHeadings = map[string]bool{
	"personal information":  true,
	"consumer information":  true,
	"account information":   true,
	"accounts":              true,
	"tradelines":            true,
	"credit accounts":       true,
	"negative items":        true,
	"derogatory items":      true,
	"collections":           true,
	"public records":        true,
	"inquiries":             true,
	"credit inquiries":      true,
	"hard inquiries":        true,
	"credit score":          true,
	"credit scores":         true,
	"summary":               true,
	"account summary":       true,
	"creditor contacts":     true,
}

// extractAccountText runs the free-text fallback: split the raw corpus on
// lines that look like a new creditor marker and pull labeled fields out
// of each chunk. A chunk with no recognizable account fields is ignored,
// which keeps bare section headings out of the account list.
func extractAccountText(text string, cc *compiled, seen seenSet) []model.Account {
	if text == "" {
		return nil
	}

	matches := cc.accountStart.FindAllStringSubmatchIndex(text, -1)
	var accounts []model.Account
	for i, m := range matches {
		creditor := normalize.CreditorName(text[m[2]:m[3]])
		if creditor == "" || sectionHeadings[strings.ToLower(creditor)] {
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		chunk := text[m[1]:end]

		if !chunkHasAccountFields(chunk) {
			continue
		}

		a := accountFromChunk(creditor, chunk, cc.cfg.DefaultBureau)
		if !seen.claim(a.CreditorName, a.AccountNumber) {
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts
}

// chunkHasAccountFields requires at least one labeled tradeline field
// before a text chunk is treated as an account.
func chunkHasAccountFields(chunk string) bool {
	return labelAccountNumberRe.MatchString(chunk) ||
		labelBalanceRe.MatchString(chunk) ||
		labelStatusRe.MatchString(chunk) ||
		labelOpenedRe.MatchString(chunk)
}
