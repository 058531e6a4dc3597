package normalize

import (
	"strings"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

// Rule maps a set of case-insensitive substrings to a canonical value.
// Rules are evaluated in table order and the first hit wins, so the
// ordering below is part of the contract: more specific markers must
// stay ahead of broader ones.
type Rule[T any] struct {
	Needles []string
	Value   T
}

func matchRules[T any](rules []Rule[T], text string, fallback T) T {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, n := range r.Needles {
			if strings.Contains(lower, n) {
				return r.Value
			}
		}
	}
	return fallback
}

// AccountStatusRules classifies free-text status fragments.
var AccountStatusRules = []Rule[model.AccountStatus]{
	{Needles: []string{"charge off", "charge-off", "charged off", "chargeoff"}, Value: model.AccountStatusChargeOff},
	{Needles: []string{"collection"}, Value: model.AccountStatusCollection},
	{Needles: []string{"transferred", "sold"}, Value: model.AccountStatusTransferred},
	{Needles: []string{"paid, closed", "paid in full", "paid"}, Value: model.AccountStatusPaid},
	{Needles: []string{"closed"}, Value: model.AccountStatusClosed},
	{Needles: []string{"open", "current", "active"}, Value: model.AccountStatusOpen},
}

// AccountStatus maps a free-text status to the canonical enum.
// Unrecognized text defaults to open, matching how report vendors label
// in-good-standing tradelines with arbitrary phrasing.
func AccountStatus(text string) model.AccountStatus {
	return matchRules(AccountStatusRules, text, model.AccountStatusOpen)
}

// PaymentStatusRules classifies free-text payment-history fragments.
// Deeper delinquencies come first so "120 days" is not caught by "20 days".
var PaymentStatusRules = []Rule[model.PaymentStatus]{
	{Needles: []string{"charge off", "charge-off", "charged off", "chargeoff"}, Value: model.PaymentStatusChargeOff},
	{Needles: []string{"collection"}, Value: model.PaymentStatusCollection},
	{Needles: []string{"180 day", "180+"}, Value: model.PaymentStatusLate180},
	{Needles: []string{"150 day"}, Value: model.PaymentStatusLate150},
	{Needles: []string{"120 day"}, Value: model.PaymentStatusLate120},
	{Needles: []string{"90 day"}, Value: model.PaymentStatusLate90},
	{Needles: []string{"60 day"}, Value: model.PaymentStatusLate60},
	{Needles: []string{"30 day", "late"}, Value: model.PaymentStatusLate30},
	{Needles: []string{"current", "pays as agreed", "paid as agreed", "ok"}, Value: model.PaymentStatusCurrent},
}

// PaymentStatus maps free-text payment history to the canonical enum.
func PaymentStatus(text string) model.PaymentStatus {
	return matchRules(PaymentStatusRules, text, model.PaymentStatusCurrent)
}

// AccountTypeRules infers the product type from creditor or type text.
var AccountTypeRules = []Rule[model.AccountType]{
	{Needles: []string{"collection", "recovery", "portfolio recov", "midland", "receivable"}, Value: model.AccountTypeCollection},
	{Needles: []string{"student", "sallie", "navient", "dept of ed", "department of education", "mohela"}, Value: model.AccountTypeStudentLoan},
	{Needles: []string{"mortgage", "home loan", "heloc"}, Value: model.AccountTypeMortgage},
	{Needles: []string{"auto", "vehicle", "car loan", "motors"}, Value: model.AccountTypeAutoLoan},
	{Needles: []string{"credit card", "card", "visa", "mastercard", "amex", "american express", "discover", "revolving"}, Value: model.AccountTypeCreditCard},
	{Needles: []string{"installment", "personal loan", "loan"}, Value: model.AccountTypeInstallment},
}

// AccountType infers the product type from free text. creditorText and
// typeText are both consulted; the type column wins when it matches.
func AccountType(typeText, creditorText string) model.AccountType {
	if t := matchRules(AccountTypeRules, typeText, model.AccountType("")); t != "" {
		return t
	}
	if t := matchRules(AccountTypeRules, creditorText, model.AccountType("")); t != "" {
		return t
	}
	return model.AccountTypeOther
}

// NegativeItemTypeRules classifies derogatory-section entries.
var NegativeItemTypeRules = []Rule[model.NegativeItemType]{
	{Needles: []string{"charge off", "charge-off", "charged off", "chargeoff"}, Value: model.NegativeChargeOff},
	{Needles: []string{"collection"}, Value: model.NegativeCollection},
	{Needles: []string{"late", "delinquen", "past due"}, Value: model.NegativeLatePayment},
}

// NegativeItemType classifies a derogatory-section fragment, defaulting
// to the generic derogatory bucket.
func NegativeItemType(text string) model.NegativeItemType {
	return matchRules(NegativeItemTypeRules, text, model.NegativeDerogatory)
}
