package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

func TestSplitChargeTenantAndLandlord(t *testing.T) {
	tenant, landlord := SplitCharge(1.5, entity.PayerTenant, 0, nil)
	assert.Equal(t, 1.5, tenant)
	assert.Equal(t, 0.0, landlord)

	tenant, landlord = SplitCharge(1.5, entity.PayerLandlord, 0, nil)
	assert.Equal(t, 0.0, tenant)
	assert.Equal(t, 1.5, landlord)

	// Empty mode falls through to tenant-paid.
	tenant, _ = SplitCharge(1.5, "", 0, nil)
	assert.Equal(t, 1.5, tenant)
}

func TestSplitChargeStop(t *testing.T) {
	// Annualized 15.00 against a 12.00 stop: tenant reimburses the excess.
	tenant, landlord := SplitCharge(1.25, entity.PayerStop, 12, nil)
	assert.InDelta(t, 0.25, tenant, 1e-12)
	assert.InDelta(t, 1.00, landlord, 1e-12)
	assert.InDelta(t, 1.25, tenant+landlord, 1e-12)
}

func TestSplitChargeStopFloorsAtZero(t *testing.T) {
	tenant, landlord := SplitCharge(0.9, entity.PayerStop, 12, nil)
	assert.Equal(t, 0.0, tenant)
	assert.Equal(t, 0.9, landlord)
}

func TestSplitChargeUnknownModeWarns(t *testing.T) {
	var warnings []string
	tenant, landlord := SplitCharge(2.0, "escrow", 0, func(msg string) { warnings = append(warnings, msg) })
	assert.Equal(t, 2.0, tenant)
	assert.Equal(t, 0.0, landlord)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "escrow")
}

func TestBaseYearRateExplicitWins(t *testing.T) {
	explicit := 11.2
	cat := entity.ExpenseCategory{
		AnnualRatePSF:     10,
		Escalation:        entity.EscalationRule{Mode: entity.EscalationPercent, Percent: 0.05},
		BaseYearAnnualPSF: &explicit,
	}
	got := BaseYearRate(cat, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), nil)
	assert.Equal(t, 11.2, got)
}

func TestBaseYearRateProjectsForward(t *testing.T) {
	cat := entity.ExpenseCategory{
		AnnualRatePSF: 10,
		Escalation:    entity.EscalationRule{Mode: entity.EscalationPercent, Percent: 0.05},
	}

	// The first full calendar year of a March lease is next year.
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 10.5, BaseYearRate(cat, march, nil), 1e-9)

	// A January lease's first year is already full.
	january := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 10.0, BaseYearRate(cat, january, nil))
}

func TestCategoryModePerRegime(t *testing.T) {
	cat := entity.ExpenseCategory{Payer: entity.PayerLandlord}

	assert.Equal(t, entity.PayerTenant, categoryMode(entity.RegimeNet, cat, nil))
	assert.Equal(t, entity.PayerLandlord, categoryMode(entity.RegimeGross, cat, nil))
	assert.Equal(t, entity.PayerStop, categoryMode(entity.RegimeBaseYearStop, cat, nil))
	assert.Equal(t, entity.PayerLandlord, categoryMode(entity.RegimeCustom, cat, nil))
}

func TestCategoryModeUnknownRegimeWarns(t *testing.T) {
	var warnings []string
	mode := categoryMode("triple_secret", entity.ExpenseCategory{}, func(msg string) { warnings = append(warnings, msg) })
	assert.Equal(t, entity.PayerTenant, mode)
	assert.Len(t, warnings, 1)
}
