package calc

import (
	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

// computeKPIs reduces the completed schedule into the summary metric set.
// Pure reduction in slice order; identical inputs reproduce bit-for-bit.
func computeKPIs(in *entity.LeaseInput, schedule []entity.MonthlyCharge, ti TIFunding, warn func(string)) entity.KPISet {
	var (
		totalNet, totalGross      float64
		pvNet, pvGross            float64
		forgoneNominal, forgonePV float64
		tenantOpEx, landlordOpEx  float64
		abatedMonths              int
	)

	for _, row := range schedule {
		totalNet += row.NetAmount
		totalGross += row.GrossAmount
		pvNet += row.NetAmount * row.DiscountFactor
		pvGross += row.GrossAmount * row.DiscountFactor
		forgoneNominal += row.ForgoneAmount
		forgonePV += row.ForgoneAmount * row.DiscountFactor
		tenantOpEx += row.TenantOpExAmount
		landlordOpEx += row.LandlordOpExAmount
		if row.Abated {
			abatedMonths++
		}
	}

	area := in.AreaSF
	months := float64(in.TermMonths)
	years := months / 12

	k := entity.KPISet{
		TotalNet:       totalNet,
		TotalGross:     totalGross,
		GrossNetSpread: totalGross - totalNet,
		PVNetRent:      pvNet,
		PVGrossRent:    pvGross,

		ForgoneRentNominal: forgoneNominal,
		ForgoneRentPV:      forgonePV,

		TIBudget:             ti.Budget,
		TIAllowanceApplied:   ti.AllowanceApplied,
		TenantTIContribution: ti.TenantContribution,
		TIOfferedPV:          ti.PVOffered,
		TIAppliedPV:          ti.PVApplied,
	}

	// Validation guarantees area and term are positive; the guards below
	// keep every KPI a displayable number regardless.
	if months > 0 {
		k.AvgMonthlyNet = totalNet / months
		k.AvgMonthlyGross = totalGross / months
		k.PctTermAbated = float64(abatedMonths) / months
		if area > 0 {
			k.OccupancyCostPSFMonthly = totalGross / (area * months)
		}
	}
	if area > 0 && years > 0 {
		k.PVNetEffectiveRentPSF = (pvNet - ti.PVApplied) / area / years
		k.NominalNetEffectiveRentPSF = (totalNet - ti.NominalApplied) / area / years
	}

	if opExTotal := tenantOpEx + landlordOpEx; opExTotal > 0 {
		k.RecoveryRatio = tenantOpEx / opExTotal
		k.RecoveryRatioDefined = true
	}

	commissionBase := totalNet
	if resolveBasis(in.Commission.Basis, warn) == entity.BasisGross {
		commissionBase = totalGross
	}
	k.CommissionAmount = in.Commission.Rate * commissionBase
	// Paid at commencement, so present value equals the nominal amount.
	k.CommissionPV = k.CommissionAmount

	k.LandlordCostPV = ti.PVOffered + k.CommissionPV
	k.TotalIncentivePV = forgonePV + ti.PVOffered

	return k
}
