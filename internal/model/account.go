package model

import "time"

// Bureau identifies a credit bureau.
type Bureau string

const (
	BureauTransUnion Bureau = "transunion"
	BureauExperian   Bureau = "experian"
	BureauEquifax    Bureau = "equifax"
)

// Bureaus lists the known bureaus in canonical order.
var Bureaus = []Bureau{BureauTransUnion, BureauExperian, BureauEquifax}

// AccountType classifies a tradeline by product.
type AccountType string

const (
	AccountTypeCreditCard  AccountType = "credit_card"
	AccountTypeAutoLoan    AccountType = "auto_loan"
	AccountTypeMortgage    AccountType = "mortgage"
	AccountTypeStudentLoan AccountType = "student_loan"
	AccountTypeCollection  AccountType = "collection"
	AccountTypeInstallment AccountType = "installment"
	AccountTypeOther       AccountType = "other"
)

// AccountStatus describes the reported state of a tradeline.
type AccountStatus string

const (
	AccountStatusOpen        AccountStatus = "open"
	AccountStatusClosed      AccountStatus = "closed"
	AccountStatusCollection  AccountStatus = "collection"
	AccountStatusChargeOff   AccountStatus = "charge_off"
	AccountStatusPaid        AccountStatus = "paid"
	AccountStatusTransferred AccountStatus = "transferred"
)

// PaymentStatus describes the reported payment state of a tradeline.
type PaymentStatus string

const (
	PaymentStatusCurrent     PaymentStatus = "current"
	PaymentStatusLate30      PaymentStatus = "30_days_late"
	PaymentStatusLate60      PaymentStatus = "60_days_late"
	PaymentStatusLate90      PaymentStatus = "90_days_late"
	PaymentStatusLate120     PaymentStatus = "120_days_late"
	PaymentStatusLate150     PaymentStatus = "150_days_late"
	PaymentStatusLate180     PaymentStatus = "180_days_late"
	PaymentStatusCollection  PaymentStatus = "collection"
	PaymentStatusChargeOff   PaymentStatus = "charge_off"
)

// RiskLevel grades how damaging a tradeline is to a consumer's file.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
	RiskSevere RiskLevel = "severe"
)

// Account is a single tradeline extracted from a credit report.
// IsNegative and RiskLevel are derived from AccountStatus and PaymentStatus
// alone; extractors must never set them independently.
type Account struct {
	CreditorName  string        `json:"creditor_name"`
	AccountNumber string        `json:"account_number,omitempty"`
	AccountType   AccountType   `json:"account_type"`
	AccountStatus AccountStatus `json:"account_status"`
	Balance       *int64        `json:"balance,omitempty"`      // cents
	CreditLimit   *int64        `json:"credit_limit,omitempty"` // cents
	PaymentStatus PaymentStatus `json:"payment_status"`
	DateOpened    *time.Time    `json:"date_opened,omitempty"`
	DateReported  *time.Time    `json:"date_reported,omitempty"`
	Bureau        Bureau        `json:"bureau,omitempty"`
	IsNegative    bool          `json:"is_negative"`
	RiskLevel     RiskLevel     `json:"risk_level"`
}

// Cents returns a pointer to the given cent amount. Convenience for
// optional money fields.
func Cents(v int64) *int64 { return &v }
