package report

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/metro2"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/normalize"
)

var capitalizedRunRe = regexp.MustCompile(`[A-Z][A-Za-z0-9&.,'/\-]*(?:[ ][A-Z0-9][A-Za-z0-9&.,'/\-]*)*`)

// extractNegatives derives one negative item per negative account, then
// adds entries from any dedicated collections/derogatory markup section,
// keyed case-insensitively by creditor and skipped when already present.
func extractNegatives(doc *goquery.Document, accounts []model.Account, cc *compiled) []model.NegativeItem {
	items := []model.NegativeItem{}
	have := make(map[string]bool)

	for _, a := range accounts {
		if !a.IsNegative {
			continue
		}
		items = append(items, model.NegativeItem{
			ItemType:     negativeTypeForAccount(a),
			CreditorName: a.CreditorName,
			Amount:       a.Balance,
			DateReported: a.DateReported,
			Bureau:       a.Bureau,
			RiskSeverity: a.RiskLevel,
		})
		have[strings.ToLower(a.CreditorName)] = true
	}

	if doc == nil || cc.cfg.NegativeSectionSelector == "" {
		return items
	}

	findSafe(doc.Selection, cc.cfg.NegativeSectionSelector).Each(func(_ int, section *goquery.Selection) {
		entries := section.Find("li, tr, .item, .entry")
		if entries.Length() == 0 {
			entries = section.Children()
		}
		entries.Each(func(_ int, e *goquery.Selection) {
			text := strings.TrimSpace(e.Text())
			creditor := normalize.CreditorName(capitalizedRunRe.FindString(text))
			if creditor == "" || have[strings.ToLower(creditor)] {
				return
			}
			have[strings.ToLower(creditor)] = true

			itemType := normalize.NegativeItemType(text)
			items = append(items, model.NegativeItem{
				ItemType:     itemType,
				CreditorName: creditor,
				Amount:       normalize.Money(text),
				DateReported: normalize.Date(text),
				Bureau:       cc.cfg.DefaultBureau,
				RiskSeverity: metro2.NegativeItemSeverity(itemType),
			})
		})
	})

	return items
}

// negativeTypeForAccount maps a negative tradeline to its item type.
func negativeTypeForAccount(a model.Account) model.NegativeItemType {
	switch {
	case a.AccountStatus == model.AccountStatusChargeOff || a.PaymentStatus == model.PaymentStatusChargeOff:
		return model.NegativeChargeOff
	case a.AccountStatus == model.AccountStatusCollection || a.PaymentStatus == model.PaymentStatusCollection:
		return model.NegativeCollection
	default:
		return model.NegativeLatePayment
	}
}
