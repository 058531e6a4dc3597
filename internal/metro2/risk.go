// Package metro2 holds the negativity and risk tiering applied to every
// parsed tradeline. One implementation, shared by all vendor extractors,
// so the derived fields can never drift between report sources.
package metro2

import "github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"

// IsAccountNegative reports whether a tradeline is derogatory. True iff
// the account status is collection/charge-off, or the payment status is
// any days-late tier, collection, or charge-off. Pure function of the two
// status fields only.
func IsAccountNegative(status model.AccountStatus, pay model.PaymentStatus) bool {
	switch status {
	case model.AccountStatusCollection, model.AccountStatusChargeOff:
		return true
	}
	switch pay {
	case model.PaymentStatusCollection, model.PaymentStatusChargeOff:
		return true
	}
	return lateTier(pay) > 0
}

// RiskLevel grades a tradeline, monotonic in delinquency severity:
// current/paid → low, 30-60 days late → medium, 90-120 days late or
// collection → high, 150+ days late or charge-off → severe.
func RiskLevel(status model.AccountStatus, pay model.PaymentStatus) model.RiskLevel {
	if status == model.AccountStatusChargeOff || pay == model.PaymentStatusChargeOff {
		return model.RiskSevere
	}
	if status == model.AccountStatusCollection || pay == model.PaymentStatusCollection {
		return model.RiskHigh
	}
	switch tier := lateTier(pay); {
	case tier >= 150:
		return model.RiskSevere
	case tier >= 90:
		return model.RiskHigh
	case tier >= 30:
		return model.RiskMedium
	}
	return model.RiskLow
}

// Grade applies the derived fields to an account in place.
func Grade(a *model.Account) {
	a.IsNegative = IsAccountNegative(a.AccountStatus, a.PaymentStatus)
	a.RiskLevel = RiskLevel(a.AccountStatus, a.PaymentStatus)
}

// NegativeItemSeverity grades a standalone derogatory entry by type.
func NegativeItemSeverity(t model.NegativeItemType) model.RiskLevel {
	switch t {
	case model.NegativeChargeOff:
		return model.RiskSevere
	case model.NegativeCollection:
		return model.RiskHigh
	case model.NegativeLatePayment:
		return model.RiskMedium
	}
	return model.RiskHigh
}

func lateTier(pay model.PaymentStatus) int {
	switch pay {
	case model.PaymentStatusLate30:
		return 30
	case model.PaymentStatusLate60:
		return 60
	case model.PaymentStatusLate90:
		return 90
	case model.PaymentStatusLate120:
		return 120
	case model.PaymentStatusLate150:
		return 150
	case model.PaymentStatusLate180:
		return 180
	}
	return 0
}
