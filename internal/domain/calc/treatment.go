package calc

import (
	"fmt"
	"time"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

// SplitCharge allocates a monthly per-area charge between tenant and
// landlord under the given payer mode. The shares always sum to the full
// charge: in stop mode the tenant reimburses only the amount by which the
// annualized charge exceeds the base-year annual rate, floored at zero, and
// the landlord bears the remainder.
func SplitCharge(monthlyPSF float64, mode entity.PayerMode, baseYearAnnualPSF float64, warn func(string)) (tenant, landlord float64) {
	switch mode {
	case entity.PayerTenant, "":
		return monthlyPSF, 0
	case entity.PayerLandlord:
		return 0, monthlyPSF
	case entity.PayerStop:
		excess := (monthlyPSF*12 - baseYearAnnualPSF) / 12
		if excess < 0 {
			excess = 0
		}
		return excess, monthlyPSF - excess
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown payer mode %q, treating as tenant", mode))
		}
		return monthlyPSF, 0
	}
}

// BaseYearRate resolves the base-year annual rate for a stop category. An
// explicit rate wins. Otherwise the base year is the first full calendar
// year: a lease commencing in any month but January projects the entered
// rate one escalation step forward, while a January commencement uses the
// rate as entered.
func BaseYearRate(cat entity.ExpenseCategory, commencement time.Time, warn func(string)) float64 {
	if cat.BaseYearAnnualPSF != nil {
		return *cat.BaseYearAnnualPSF
	}
	return autoBaseYear(cat.AnnualRatePSF, cat.Escalation, commencement, warn)
}

func autoBaseYear(rate float64, rule entity.EscalationRule, commencement time.Time, warn func(string)) float64 {
	step := 0
	if commencement.Month() != time.January {
		step = 1
	}
	return EscalatedRate(rate, rule, step, warn)
}

// categoryMode maps the service regime onto a payer mode for one category.
func categoryMode(regime entity.ServiceRegime, cat entity.ExpenseCategory, warn func(string)) entity.PayerMode {
	switch regime {
	case entity.RegimeNet:
		return entity.PayerTenant
	case entity.RegimeGross:
		return entity.PayerLandlord
	case entity.RegimeBaseYearStop:
		return entity.PayerStop
	case entity.RegimeCustom:
		return cat.Payer
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown service regime %q, treating categories as tenant-paid", regime))
		}
		return entity.PayerTenant
	}
}
