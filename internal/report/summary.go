package report

import (
	"math"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// Summarize reduces the final post-dedup account list into totals. It is
// always recomputed from the list, never accumulated during extraction.
// Utilization is round(debt/limit*100), 0 when no limit is known.
func Summarize(accounts []model.Account) model.Summary {
	s := model.Summary{TotalAccounts: len(accounts)}

	for _, a := range accounts {
		switch a.AccountStatus {
		case model.AccountStatusOpen:
			s.OpenAccounts++
		case model.AccountStatusClosed:
			s.ClosedAccounts++
		}
		if a.Balance != nil && *a.Balance > 0 {
			s.TotalDebt += *a.Balance
		}
		if a.CreditLimit != nil && *a.CreditLimit > 0 {
			s.TotalCreditLimit += *a.CreditLimit
		}
	}

	if s.TotalCreditLimit > 0 {
		s.UtilizationPercent = int(math.Round(float64(s.TotalDebt) / float64(s.TotalCreditLimit) * 100))
	}
	return s
}
