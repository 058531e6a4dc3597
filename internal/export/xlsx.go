// Package export writes parsed report data to spreadsheet files for
// review outside the tool.
package export

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

const dateLayout = "2006-01-02"

// WriteXLSX writes a workbook with Accounts, Negative Items, Inquiries
// and Summary sheets for the given parse result.
func WriteXLSX(data *model.ParsedCreditData, path string) error {
	if data == nil {
		return eris.New("export: nil data")
	}

	f := xlsx.NewFile()

	if err := addAccountsSheet(f, data.Accounts); err != nil {
		return err
	}
	if err := addNegativesSheet(f, data.NegativeItems); err != nil {
		return err
	}
	if err := addInquiriesSheet(f, data.Inquiries); err != nil {
		return err
	}
	if err := addSummarySheet(f, data); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

func addAccountsSheet(f *xlsx.File, accounts []model.Account) error {
	sheet, err := f.AddSheet("Accounts")
	if err != nil {
		return eris.Wrap(err, "export: add accounts sheet")
	}
	addRow(sheet, "Creditor", "Account Number", "Type", "Status", "Payment Status",
		"Balance", "Credit Limit", "Opened", "Reported", "Bureau", "Negative", "Risk")
	for _, a := range accounts {
		addRow(sheet,
			a.CreditorName,
			a.AccountNumber,
			string(a.AccountType),
			string(a.AccountStatus),
			string(a.PaymentStatus),
			money(a.Balance),
			money(a.CreditLimit),
			date(a.DateOpened),
			date(a.DateReported),
			string(a.Bureau),
			boolCell(a.IsNegative),
			string(a.RiskLevel),
		)
	}
	return nil
}

func addNegativesSheet(f *xlsx.File, items []model.NegativeItem) error {
	sheet, err := f.AddSheet("Negative Items")
	if err != nil {
		return eris.Wrap(err, "export: add negatives sheet")
	}
	addRow(sheet, "Type", "Creditor", "Amount", "Reported", "Bureau", "Severity")
	for _, n := range items {
		addRow(sheet,
			string(n.ItemType),
			n.CreditorName,
			money(n.Amount),
			date(n.DateReported),
			string(n.Bureau),
			string(n.RiskSeverity),
		)
	}
	return nil
}

func addInquiriesSheet(f *xlsx.File, inquiries []model.Inquiry) error {
	sheet, err := f.AddSheet("Inquiries")
	if err != nil {
		return eris.Wrap(err, "export: add inquiries sheet")
	}
	addRow(sheet, "Creditor", "Date", "Bureau")
	for _, inq := range inquiries {
		addRow(sheet, inq.CreditorName, date(inq.InquiryDate), string(inq.Bureau))
	}
	return nil
}

func addSummarySheet(f *xlsx.File, data *model.ParsedCreditData) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}
	s := data.Summary
	addRow(sheet, "Total Accounts", fmt.Sprintf("%d", s.TotalAccounts))
	addRow(sheet, "Open Accounts", fmt.Sprintf("%d", s.OpenAccounts))
	addRow(sheet, "Closed Accounts", fmt.Sprintf("%d", s.ClosedAccounts))
	addRow(sheet, "Total Debt", money(&s.TotalDebt))
	addRow(sheet, "Total Credit Limit", money(&s.TotalCreditLimit))
	addRow(sheet, "Utilization %", fmt.Sprintf("%d", s.UtilizationPercent))
	for _, bureau := range model.Bureaus {
		if score, ok := data.Scores[bureau]; ok {
			addRow(sheet, "Score ("+titleBureau(bureau)+")", fmt.Sprintf("%d", score))
		}
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells ...string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().SetString(c)
	}
}

func money(cents *int64) string {
	if cents == nil {
		return ""
	}
	v := *cents
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func titleBureau(b model.Bureau) string {
	switch b {
	case model.BureauTransUnion:
		return "TransUnion"
	case model.BureauExperian:
		return "Experian"
	case model.BureauEquifax:
		return "Equifax"
	}
	return string(b)
}
