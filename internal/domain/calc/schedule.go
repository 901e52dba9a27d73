package calc

import (
	"math"
	"time"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
	"github.com/leaseworks/lease-economics-go/internal/shared/types"
)

// BuildModel runs one full calculation: schedule, KPIs, meta. It is the
// engine's single entry point and the only place that can fail; every other
// irregularity degrades to a warning on the returned model.
func BuildModel(in *entity.LeaseInput) (*entity.LeaseModel, error) {
	if in.AreaSF <= 0 {
		return nil, types.ErrInvalidArea
	}
	if in.TermMonths <= 0 {
		return nil, types.ErrInvalidTerm
	}

	// Bad enums surface once per message, not once per row.
	var warnings []string
	seen := map[string]bool{}
	warn := func(msg string) {
		if seen[msg] {
			return
		}
		seen[msg] = true
		warnings = append(warnings, msg)
	}

	plan := planAbatement(in.Abatement, in.TermMonths, warn)
	schedule := buildSchedule(in, plan, warn)
	ti := ResolveTIFunding(in, warn)
	kpis := computeKPIs(in, schedule, ti, warn)

	return &entity.LeaseModel{
		Name:     in.Name,
		Schedule: schedule,
		KPIs:     kpis,
		Meta: entity.ScheduleMeta{
			AreaSF:           in.AreaSF,
			TermMonths:       in.TermMonths,
			SchedulePeriods:  plan.periods,
			LeaseStartPeriod: plan.termStart,
			LeaseEndPeriod:   plan.termEnd,
		},
		Warnings: warnings,
	}, nil
}

// buildSchedule produces the ordered monthly charge rows. All dollar math
// stays exact; rows carry both pre- and post-abatement figures because the
// KPI layer needs the forgone amounts, not just the net result.
func buildSchedule(in *entity.LeaseInput, plan abatementPlan, warn func(string)) []entity.MonthlyCharge {
	area := in.AreaSF
	monthlyDisc := in.DiscountRate / 12

	// Anchor calendar months at the first of the commencement month; the
	// commencement day only drives the first-period proration.
	anchor := time.Date(in.Commencement.Year(), in.Commencement.Month(), 1, 0, 0, 0, 0, time.UTC)
	firstProration := firstMonthProration(in.Commencement)

	rows := make([]entity.MonthlyCharge, 0, plan.periods)

	for p := 1; p <= plan.periods; p++ {
		date := anchor.AddDate(0, p-1, 0)

		proration := 1.0
		if p == 1 {
			proration = firstProration
		}

		baseStep := (p - 1) / 12
		opexStep := date.Year() - anchor.Year()

		baseAnnual := EscalatedRate(in.BaseRentAnnualPSF, in.BaseRentEscalation, baseStep, warn)
		baseMonthly := baseAnnual / 12

		abated := plan.abated[p]
		grossAbated := abated && plan.gross

		row := entity.MonthlyCharge{
			Period:         p,
			Year:           date.Year(),
			MonthLabel:     date.Format("Jan 2006"),
			InTerm:         p >= plan.termStart && p <= plan.termEnd,
			Abated:         abated,
			GrossAbated:    grossAbated,
			Proration:      proration,
			BaseAnnualPSF:  baseAnnual,
			BaseMonthlyPSF: baseMonthly,
		}

		// Expense categories under the active regime.
		catMonthlyTotal := 0.0
		row.Categories = make([]entity.CategoryCharge, 0, len(in.Categories))
		for _, cat := range in.Categories {
			annual := EscalatedRate(cat.AnnualRatePSF, cat.Escalation, opexStep, warn)
			monthly := annual / 12
			catMonthlyTotal += monthly

			mode := categoryMode(in.Regime, cat, warn)
			baseYear := 0.0
			if mode == entity.PayerStop {
				baseYear = BaseYearRate(cat, in.Commencement, warn)
			}
			tenantPSF, landlordPSF := SplitCharge(monthly, mode, baseYear, warn)

			cc := entity.CategoryCharge{
				Name:               cat.Name,
				AnnualPSF:          annual,
				MonthlyPSF:         monthly,
				TenantMonthlyPSF:   tenantPSF,
				LandlordMonthlyPSF: landlordPSF,
				TenantAmountFull:   tenantPSF * area * proration,
				LandlordAmount:     landlordPSF * area * proration,
			}
			cc.TenantAmount = cc.TenantAmountFull
			if grossAbated {
				cc.TenantAmount = 0
			}
			row.Categories = append(row.Categories, cc)
		}

		// Management fee on net or gross rent, split and abated like any
		// other pass-through.
		row.ManagementFee = managementFeeCharge(in, baseMonthly, catMonthlyTotal, area, proration, grossAbated, warn)

		// Per-area aggregates (pre-abatement rates).
		tenantOpExPSF := row.ManagementFee.TenantMonthlyPSF
		landlordOpExPSF := row.ManagementFee.LandlordMonthlyPSF
		for _, cc := range row.Categories {
			tenantOpExPSF += cc.TenantMonthlyPSF
			landlordOpExPSF += cc.LandlordMonthlyPSF
		}
		row.TenantOpExMonthlyPSF = tenantOpExPSF
		row.LandlordOpExMonthlyPSF = landlordOpExPSF

		// Dollar columns.
		row.BaseAmountFull = baseMonthly * area * proration
		row.TenantOpExAmountFull = tenantOpExPSF * area * proration
		row.LandlordOpExAmount = landlordOpExPSF * area * proration
		row.GrossAmountFull = row.BaseAmountFull + row.TenantOpExAmountFull

		// Per-area rate columns zero only under their own scope: a net
		// abatement leaves the gross rate untouched even though the gross
		// dollar amount drops by the forgiven base rent.
		row.NetAmount = row.BaseAmountFull
		row.TenantOpExAmount = row.TenantOpExAmountFull
		row.NetMonthlyPSF = baseMonthly
		row.GrossMonthlyPSF = baseMonthly + tenantOpExPSF
		if abated {
			row.NetAmount = 0
			row.NetMonthlyPSF = 0
			if grossAbated {
				row.TenantOpExAmount = 0
				row.GrossMonthlyPSF = 0
			}
		}
		row.GrossAmount = row.NetAmount + row.TenantOpExAmount
		row.ForgoneAmount = row.GrossAmountFull - row.GrossAmount

		row.DiscountFactor = discountFactor(p, firstProration, monthlyDisc)

		rows = append(rows, row)
	}

	return rows
}

// managementFeeCharge computes the fee as a percentage of the pre-abatement
// net or gross rent and resolves its tenant/landlord split. Under the
// base-year-stop regime the fee stops against the fee rate applied to the
// base-year basis.
func managementFeeCharge(in *entity.LeaseInput, baseMonthlyPSF, catMonthlyTotalPSF, area, proration float64, grossAbated bool, warn func(string)) entity.CategoryCharge {
	fee := in.ManagementFee
	if fee.Rate == 0 {
		return entity.CategoryCharge{Name: "Management Fee"}
	}

	basisPSF := baseMonthlyPSF
	if resolveBasis(fee.Basis, warn) == entity.BasisGross {
		basisPSF += catMonthlyTotalPSF
	}
	monthly := fee.Rate * basisPSF

	mode := fee.Payer
	if mode == "" {
		switch in.Regime {
		case entity.RegimeGross:
			mode = entity.PayerLandlord
		case entity.RegimeBaseYearStop:
			mode = entity.PayerStop
		default:
			mode = entity.PayerTenant
		}
	}

	baseYear := 0.0
	if mode == entity.PayerStop {
		baseYear = fee.Rate * managementFeeBaseYearBasis(in, warn)
	}
	tenantPSF, landlordPSF := SplitCharge(monthly, mode, baseYear, warn)

	cc := entity.CategoryCharge{
		Name:               "Management Fee",
		AnnualPSF:          monthly * 12,
		MonthlyPSF:         monthly,
		TenantMonthlyPSF:   tenantPSF,
		LandlordMonthlyPSF: landlordPSF,
		TenantAmountFull:   tenantPSF * area * proration,
		LandlordAmount:     landlordPSF * area * proration,
	}
	cc.TenantAmount = cc.TenantAmountFull
	if grossAbated {
		cc.TenantAmount = 0
	}
	return cc
}

// managementFeeBaseYearBasis projects the fee's rent basis into the base
// year with the same step-0/step-1 rule used for expense categories.
func managementFeeBaseYearBasis(in *entity.LeaseInput, warn func(string)) float64 {
	basis := autoBaseYear(in.BaseRentAnnualPSF, in.BaseRentEscalation, in.Commencement, warn)
	if resolveBasis(in.ManagementFee.Basis, warn) == entity.BasisGross {
		for _, cat := range in.Categories {
			basis += BaseYearRate(cat, in.Commencement, warn)
		}
	}
	return basis
}

func resolveBasis(basis entity.RentBasis, warn func(string)) entity.RentBasis {
	switch basis {
	case entity.BasisNet, "":
		return entity.BasisNet
	case entity.BasisGross:
		return entity.BasisGross
	default:
		if warn != nil {
			warn("unknown rent basis \"" + string(basis) + "\", treating as net")
		}
		return entity.BasisNet
	}
}

// firstMonthProration is the fraction of the commencement month remaining,
// based on the day of month.
func firstMonthProration(commencement time.Time) float64 {
	days := daysInMonth(commencement.Year(), commencement.Month())
	remaining := days - commencement.Day() + 1
	if remaining < 1 {
		remaining = 1
	}
	return float64(remaining) / float64(days)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// discountFactor treats period 1 as paid at time zero; later periods are
// offset by the prorated fraction of the first month, so a mid-month
// commencement shifts the whole stream.
func discountFactor(period int, firstProration, monthlyRate float64) float64 {
	if monthlyRate == 0 || period == 1 {
		return 1
	}
	elapsed := firstProration + float64(period-2)
	return math.Pow(1+monthlyRate, -elapsed)
}
