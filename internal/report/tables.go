package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/metro2"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/normalize"
)

// extractAccountTables runs the table strategy: infer column meaning from
// header text, then read body rows positionally. Tables without a
// recognizable creditor column are skipped entirely.
func extractAccountTables(doc *goquery.Document, cc *compiled, seen seenSet) []model.Account {
	if doc == nil {
		return nil
	}
	selector := cc.cfg.TableSelector
	if selector == "" {
		selector = "table"
	}

	var accounts []model.Account
	findSafe(doc.Selection, selector).Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return
		}

		columns := inferColumns(rows.First())
		if !hasField(columns, colCreditor) || countKnown(columns) < 2 {
			return
		}

		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			a, ok := accountFromRow(row, columns, cc.cfg.DefaultBureau)
			if !ok {
				return
			}
			if !seen.claim(a.CreditorName, a.AccountNumber) {
				return
			}
			accounts = append(accounts, a)
		})
	})
	return accounts
}

// inferColumns maps each header cell to a field by substring match.
func inferColumns(headerRow *goquery.Selection) []columnField {
	var columns []columnField
	headerRow.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		columns = append(columns, fieldForHeader(cell.Text()))
	})
	return columns
}

func fieldForHeader(header string) columnField {
	lower := strings.ToLower(strings.TrimSpace(header))
	for _, hk := range headerKeywords {
		for _, n := range hk.needles {
			if strings.Contains(lower, n) {
				return hk.field
			}
		}
	}
	return colUnknown
}

func countKnown(columns []columnField) int {
	n := 0
	for _, c := range columns {
		if c != colUnknown {
			n++
		}
	}
	return n
}

func hasField(columns []columnField, f columnField) bool {
	for _, c := range columns {
		if c == f {
			return true
		}
	}
	return false
}

// accountFromRow reads one body row positionally against the inferred
// columns. Rows without a usable creditor name are dropped.
func accountFromRow(row *goquery.Selection, columns []columnField, bureau model.Bureau) (model.Account, bool) {
	cells := row.Find("td, th")
	if cells.Length() == 0 {
		return model.Account{}, false
	}

	var creditor, acctNum, typeText, statusText, payText string
	var balance, limit *int64
	a := model.Account{Bureau: bureau}

	cells.Each(func(i int, cell *goquery.Selection) {
		if i >= len(columns) {
			return
		}
		v := strings.TrimSpace(cell.Text())
		switch columns[i] {
		case colCreditor:
			creditor = normalize.CreditorName(v)
		case colAccountNumber:
			acctNum = normalize.AccountNumber(v)
		case colAccountType:
			typeText = v
		case colBalance:
			balance = normalize.Money(v)
		case colCreditLimit:
			limit = normalize.Money(v)
		case colStatus:
			statusText = v
		case colPaymentStatus:
			payText = v
		case colDateOpened:
			a.DateOpened = normalize.Date(v)
		case colDateReported:
			a.DateReported = normalize.Date(v)
		}
	})

	if creditor == "" {
		return model.Account{}, false
	}

	a.CreditorName = creditor
	a.AccountNumber = acctNum
	a.AccountType = normalize.AccountType(typeText, creditor)
	a.AccountStatus = normalize.AccountStatus(statusText)
	a.PaymentStatus = normalize.PaymentStatus(payText)
	a.Balance = balance
	a.CreditLimit = limit
	metro2.Grade(&a)
	return a, true
}
