package metro2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fchery87/top-tier-financial-solutions-sub004/internal/model"
)

func TestIsAccountNegative(t *testing.T) {
	tests := []struct {
		name   string
		status model.AccountStatus
		pay    model.PaymentStatus
		want   bool
	}{
		{"open current", model.AccountStatusOpen, model.PaymentStatusCurrent, false},
		{"closed current", model.AccountStatusClosed, model.PaymentStatusCurrent, false},
		{"paid current", model.AccountStatusPaid, model.PaymentStatusCurrent, false},
		{"collection status", model.AccountStatusCollection, model.PaymentStatusCurrent, true},
		{"charge off status", model.AccountStatusChargeOff, model.PaymentStatusCurrent, true},
		{"collection payment", model.AccountStatusOpen, model.PaymentStatusCollection, true},
		{"charge off payment", model.AccountStatusOpen, model.PaymentStatusChargeOff, true},
		{"30 days late", model.AccountStatusOpen, model.PaymentStatusLate30, true},
		{"180 days late", model.AccountStatusClosed, model.PaymentStatusLate180, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAccountNegative(tt.status, tt.pay))
		})
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		name   string
		status model.AccountStatus
		pay    model.PaymentStatus
		want   model.RiskLevel
	}{
		{"charge off is severe", model.AccountStatusChargeOff, model.PaymentStatusCurrent, model.RiskSevere},
		{"charge off payment is severe", model.AccountStatusOpen, model.PaymentStatusChargeOff, model.RiskSevere},
		{"180 days is severe", model.AccountStatusOpen, model.PaymentStatusLate180, model.RiskSevere},
		{"150 days is severe", model.AccountStatusOpen, model.PaymentStatusLate150, model.RiskSevere},
		{"collection is high", model.AccountStatusCollection, model.PaymentStatusCurrent, model.RiskHigh},
		{"120 days is high", model.AccountStatusOpen, model.PaymentStatusLate120, model.RiskHigh},
		{"90 days is high", model.AccountStatusOpen, model.PaymentStatusLate90, model.RiskHigh},
		{"60 days is medium", model.AccountStatusOpen, model.PaymentStatusLate60, model.RiskMedium},
		{"30 days is medium", model.AccountStatusOpen, model.PaymentStatusLate30, model.RiskMedium},
		{"current is low", model.AccountStatusOpen, model.PaymentStatusCurrent, model.RiskLow},
		{"closed clean is low", model.AccountStatusClosed, model.PaymentStatusCurrent, model.RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RiskLevel(tt.status, tt.pay))
		})
	}
}

func TestGrade_SetsDerivedFields(t *testing.T) {
	a := &model.Account{
		CreditorName:  "MIDLAND FUNDING",
		AccountStatus: model.AccountStatusCollection,
		PaymentStatus: model.PaymentStatusCollection,
	}
	Grade(a)
	assert.True(t, a.IsNegative)
	assert.Equal(t, model.RiskHigh, a.RiskLevel)
}

func TestGrade_CleanAccount(t *testing.T) {
	a := &model.Account{
		CreditorName:  "CHASE",
		AccountStatus: model.AccountStatusOpen,
		PaymentStatus: model.PaymentStatusCurrent,
	}
	Grade(a)
	assert.False(t, a.IsNegative)
	assert.Equal(t, model.RiskLow, a.RiskLevel)
}

func TestNegativeItemSeverity(t *testing.T) {
	assert.Equal(t, model.RiskSevere, NegativeItemSeverity(model.NegativeChargeOff))
	assert.Equal(t, model.RiskHigh, NegativeItemSeverity(model.NegativeCollection))
	assert.Equal(t, model.RiskMedium, NegativeItemSeverity(model.NegativeLatePayment))
	assert.Equal(t, model.RiskHigh, NegativeItemSeverity(model.NegativeDerogatory))
}
