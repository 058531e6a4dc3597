package report

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/metro2"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/normalize"
)

// Labeled-field patterns shared by the entry and free-text strategies.
// Each captures the remainder of the line after the label.
var (
	labelAccountNumberRe = regexp.MustCompile(`(?im)^[^\S\n]*(?:account\s*(?:number|#|no\.?)|acct\s*(?:number|#|no\.?)?)[:\s]+(.+)$`)
	labelBalanceRe       = regexp.MustCompile(`(?im)^[^\S\n]*(?:current\s+)?balance(?:\s+owed)?[:\s]+(.+)$`)
	labelLimitRe         = regexp.MustCompile(`(?im)^[^\S\n]*(?:credit\s+limit|high\s+credit|limit)[:\s]+(.+)$`)
	labelOpenedRe        = regexp.MustCompile(`(?im)^[^\S\n]*(?:date\s+opened|opened|open\s+date)[:\s]+(.+)$`)
	labelReportedRe      = regexp.MustCompile(`(?im)^[^\S\n]*(?:date\s+reported|last\s+reported|reported|date\s+updated|last\s+updated)[:\s]+(.+)$`)
	labelStatusRe        = regexp.MustCompile(`(?im)^[^\S\n]*(?:account\s+status|status)[:\s]+(.+)$`)
	labelPaymentRe       = regexp.MustCompile(`(?im)^[^\S\n]*(?:payment\s+status|pay\s+status|payment\s+history)[:\s]+(.+)$`)
	labelTypeRe          = regexp.MustCompile(`(?im)^[^\S\n]*(?:account\s+type|loan\s+type|type)[:\s]+(.+)$`)
)

func labeled(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractAccountEntries runs the structured strategy: semantic tradeline
// entries located by the vendor's entry selector. The creditor comes from
// the dedicated field when present, else the first heading-like text in
// the entry. Entries without a usable creditor are dropped silently.
func extractAccountEntries(doc *goquery.Document, cc *compiled, seen seenSet) []model.Account {
	if doc == nil || cc.cfg.AccountEntrySelector == "" {
		return nil
	}

	var accounts []model.Account
	findSafe(doc.Selection, cc.cfg.AccountEntrySelector).Each(func(_ int, s *goquery.Selection) {
		creditor := entryCreditor(s, cc.cfg.CreditorFieldSelector)
		if creditor == "" {
			return
		}

		bureau := cc.cfg.DefaultBureau
		if cc.cfg.EntryBureauAttr != "" {
			if b := bureauFromAttr(s, cc.cfg.EntryBureauAttr); b != "" {
				bureau = b
			}
		}

		a := accountFromChunk(creditor, blockText(s), bureau)
		if !seen.claim(a.CreditorName, a.AccountNumber) {
			return
		}
		accounts = append(accounts, a)
	})
	return accounts
}

// entryCreditor pulls the creditor name from the dedicated field, else
// the first bold/heading-like text within the entry.
func entryCreditor(s *goquery.Selection, fieldSelector string) string {
	if fieldSelector != "" {
		if f := findSafe(s, fieldSelector); f.Length() > 0 {
			if name := normalize.CreditorName(f.First().Text()); name != "" {
				return name
			}
		}
	}
	for _, sel := range []string{"h1, h2, h3, h4", "strong, b", "th", ".name, .title"} {
		if f := s.Find(sel); f.Length() > 0 {
			if name := normalize.CreditorName(f.First().Text()); name != "" {
				return name
			}
		}
	}
	return ""
}

// accountFromChunk builds an account from a creditor name plus the
// line-oriented text of its entry or chunk. Derived fields are graded by
// metro2 at the end, never set from the markup.
func accountFromChunk(creditor, chunk string, bureau model.Bureau) model.Account {
	statusText := labeled(labelStatusRe, chunk)
	payText := labeled(labelPaymentRe, chunk)

	a := model.Account{
		CreditorName:  creditor,
		AccountNumber: normalize.AccountNumber(labeled(labelAccountNumberRe, chunk)),
		AccountType:   normalize.AccountType(labeled(labelTypeRe, chunk), creditor),
		AccountStatus: normalize.AccountStatus(statusText),
		PaymentStatus: normalize.PaymentStatus(payText),
		Balance:       normalize.Money(labeled(labelBalanceRe, chunk)),
		CreditLimit:   normalize.Money(labeled(labelLimitRe, chunk)),
		DateOpened:    normalize.Date(labeled(labelOpenedRe, chunk)),
		DateReported:  normalize.Date(labeled(labelReportedRe, chunk)),
		Bureau:        bureau,
	}
	metro2.Grade(&a)
	return a
}
