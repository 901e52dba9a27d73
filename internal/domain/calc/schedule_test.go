package calc

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
	"github.com/leaseworks/lease-economics-go/internal/shared/types"
)

// netLeaseInput is the baseline scenario the scenario tests perturb: a two
// year net lease on 1,200 SF at $24/SF with 3% bumps and flat pass-throughs
// totalling $12/SF.
func netLeaseInput() *entity.LeaseInput {
	return &entity.LeaseInput{
		Name:              "standard-net",
		AreaSF:            1200,
		Commencement:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		TermMonths:        24,
		BaseRentAnnualPSF: 24,
		BaseRentEscalation: entity.EscalationRule{
			Mode:    entity.EscalationPercent,
			Percent: 0.03,
		},
		Regime: entity.RegimeNet,
		Categories: []entity.ExpenseCategory{
			{Name: "Taxes", AnnualRatePSF: 4.50},
			{Name: "CAM", AnnualRatePSF: 6.00},
			{Name: "Insurance", AnnualRatePSF: 1.50},
		},
		DiscountRate: 0.06,
	}
}

func TestBuildModelStandardNetLease(t *testing.T) {
	model, err := BuildModel(netLeaseInput())
	require.NoError(t, err)
	require.Len(t, model.Schedule, 24)
	assert.Empty(t, model.Warnings)

	assert.Equal(t, 1200.0, model.Meta.AreaSF)
	assert.Equal(t, 24, model.Meta.TermMonths)
	assert.Equal(t, 24, model.Meta.SchedulePeriods)
	assert.Equal(t, 1, model.Meta.LeaseStartPeriod)
	assert.Equal(t, 24, model.Meta.LeaseEndPeriod)

	first := model.Schedule[0]
	assert.Equal(t, 1, first.Period)
	assert.Equal(t, "Jan 2026", first.MonthLabel)
	assert.True(t, first.InTerm)
	assert.False(t, first.Abated)
	assert.Equal(t, 1.0, first.Proration)
	assert.InDelta(t, 2.00, first.BaseMonthlyPSF, 1e-12)
	assert.InDelta(t, 2.00, first.NetMonthlyPSF, 1e-12)
	assert.InDelta(t, 1.00, first.TenantOpExMonthlyPSF, 1e-12)
	assert.Equal(t, 0.0, first.LandlordOpExMonthlyPSF)
	assert.InDelta(t, 3.00, first.GrossMonthlyPSF, 1e-12)
	assert.InDelta(t, 2400, first.NetAmount, 1e-9)
	assert.InDelta(t, 3600, first.GrossAmount, 1e-9)
	assert.Equal(t, 1.0, first.DiscountFactor)

	// Monthly discounting starts at the second period.
	assert.InDelta(t, 1/1.005, model.Schedule[1].DiscountFactor, 1e-12)

	// The base rent steps on the lease anniversary, not the calendar year.
	thirteenth := model.Schedule[12]
	assert.Equal(t, "Jan 2027", thirteenth.MonthLabel)
	assert.InDelta(t, 24.72, thirteenth.BaseAnnualPSF, 1e-9)
	assert.InDelta(t, 24.00, model.Schedule[11].BaseAnnualPSF, 1e-9)
}

func TestBuildModelStandardKPIs(t *testing.T) {
	model, err := BuildModel(netLeaseInput())
	require.NoError(t, err)
	k := model.KPIs

	// 12 months at $24/SF plus 12 at $24.72/SF on 1,200 SF.
	assert.InDelta(t, 58464, k.TotalNet, 1e-6)
	assert.InDelta(t, 2436, k.AvgMonthlyNet, 1e-6)
	assert.InDelta(t, 87264, k.TotalGross, 1e-6)
	assert.InDelta(t, 28800, k.GrossNetSpread, 1e-6)
	assert.InDelta(t, 3.03, k.OccupancyCostPSFMonthly, 1e-9)

	assert.InDelta(t, 24.36, k.NominalNetEffectiveRentPSF, 1e-9)
	assert.Less(t, k.PVNetEffectiveRentPSF, k.NominalNetEffectiveRentPSF)
	assert.Less(t, k.PVNetRent, k.TotalNet)
	assert.Less(t, k.PVGrossRent, k.TotalGross)

	// Net lease: the tenant carries every pass-through dollar.
	assert.True(t, k.RecoveryRatioDefined)
	assert.InDelta(t, 1.0, k.RecoveryRatio, 1e-12)

	assert.Equal(t, 0.0, k.PctTermAbated)
	assert.Equal(t, 0.0, k.ForgoneRentNominal)
	assert.Equal(t, 0.0, k.CommissionAmount)
}

func TestBuildModelTIAndCommissionKPIs(t *testing.T) {
	in := netLeaseInput()
	in.CapExItems = []entity.CapExItem{{Label: "Buildout", Amount: 80000, Unit: entity.UnitTotal}}
	in.Allowance = entity.AllowanceTerms{Amount: 48000, Unit: entity.UnitTotal, Treatment: entity.FundingCash}
	in.Commission = entity.CommissionTerms{Rate: 0.05, Basis: entity.BasisGross}

	model, err := BuildModel(in)
	require.NoError(t, err)
	k := model.KPIs

	assert.InDelta(t, 80000, k.TIBudget, 1e-9)
	assert.InDelta(t, 48000, k.TIAllowanceApplied, 1e-9)
	assert.InDelta(t, 32000, k.TenantTIContribution, 1e-9)

	// Cash allowance nets straight out of the nominal effective rent.
	assert.InDelta(t, (58464-48000)/1200.0/2.0, k.NominalNetEffectiveRentPSF, 1e-9)

	assert.InDelta(t, 0.05*87264, k.CommissionAmount, 1e-6)
	assert.Equal(t, k.CommissionAmount, k.CommissionPV)
	assert.InDelta(t, 48000+k.CommissionAmount, k.LandlordCostPV, 1e-6)
}

func TestBuildModelInvalidInputs(t *testing.T) {
	in := netLeaseInput()
	in.AreaSF = 0
	model, err := BuildModel(in)
	assert.Nil(t, model)
	assert.True(t, errors.Is(err, types.ErrInvalidArea))

	in = netLeaseInput()
	in.TermMonths = 0
	model, err = BuildModel(in)
	assert.Nil(t, model)
	assert.True(t, errors.Is(err, types.ErrInvalidTerm))
}

func TestBuildModelDeterministic(t *testing.T) {
	a, err := BuildModel(netLeaseInput())
	require.NoError(t, err)
	b, err := BuildModel(netLeaseInput())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBuildModelMidMonthProration(t *testing.T) {
	in := netLeaseInput()
	in.Commencement = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	model, err := BuildModel(in)
	require.NoError(t, err)

	fraction := 17.0 / 31.0
	first := model.Schedule[0]
	assert.InDelta(t, fraction, first.Proration, 1e-12)
	assert.InDelta(t, 2.0*1200*fraction, first.NetAmount, 1e-9)
	assert.Equal(t, 1.0, first.DiscountFactor)

	// The stub month shifts the whole discounting timeline.
	assert.InDelta(t, math.Pow(1.005, -fraction), model.Schedule[1].DiscountFactor, 1e-12)
	assert.Equal(t, 1.0, model.Schedule[1].Proration)
}

func TestBuildModelNetAbatement(t *testing.T) {
	in := netLeaseInput()
	in.Abatement = entity.AbatementConfig{FreeMonths: 2, Scope: entity.ScopeNet}
	model, err := BuildModel(in)
	require.NoError(t, err)
	require.Len(t, model.Schedule, 24)

	for _, row := range model.Schedule[:2] {
		assert.True(t, row.Abated)
		assert.False(t, row.GrossAbated)
		assert.Equal(t, 0.0, row.NetMonthlyPSF)
		assert.Equal(t, 0.0, row.NetAmount)

		// A net abatement forgives base rent only: pass-throughs keep
		// billing and the gross rate column stays whole.
		assert.InDelta(t, 3.00, row.GrossMonthlyPSF, 1e-12)
		assert.InDelta(t, 1200, row.TenantOpExAmount, 1e-9)
		assert.InDelta(t, 1200, row.GrossAmount, 1e-9)
		assert.InDelta(t, 2400, row.ForgoneAmount, 1e-9)
	}
	third := model.Schedule[2]
	assert.False(t, third.Abated)
	assert.InDelta(t, 2400, third.NetAmount, 1e-9)

	k := model.KPIs
	assert.InDelta(t, 2.0/24.0, k.PctTermAbated, 1e-12)
	assert.InDelta(t, 4800, k.ForgoneRentNominal, 1e-9)
	assert.InDelta(t, 2400+2400/1.005, k.ForgoneRentPV, 1e-9)
	assert.Equal(t, k.ForgoneRentPV, k.TotalIncentivePV)
}

func TestBuildModelGrossAbatementCustomRegime(t *testing.T) {
	in := netLeaseInput()
	in.Regime = entity.RegimeCustom
	in.Categories = []entity.ExpenseCategory{
		{Name: "Taxes", AnnualRatePSF: 4.50, Payer: entity.PayerTenant},
		{Name: "CAM", AnnualRatePSF: 6.00, Payer: entity.PayerLandlord},
	}
	in.Abatement = entity.AbatementConfig{FreeMonths: 1, Scope: entity.ScopeGross}
	model, err := BuildModel(in)
	require.NoError(t, err)

	first := model.Schedule[0]
	assert.True(t, first.GrossAbated)
	assert.Equal(t, 0.0, first.NetAmount)
	assert.Equal(t, 0.0, first.TenantOpExAmount)
	assert.Equal(t, 0.0, first.GrossAmount)
	assert.Equal(t, 0.0, first.GrossMonthlyPSF)

	// The landlord's own expense load is not a concession.
	assert.InDelta(t, 600, first.LandlordOpExAmount, 1e-9)

	require.Len(t, first.Categories, 2)
	taxes, cam := first.Categories[0], first.Categories[1]
	assert.InDelta(t, 450, taxes.TenantAmountFull, 1e-9)
	assert.Equal(t, 0.0, taxes.TenantAmount)
	assert.InDelta(t, 600, cam.LandlordAmount, 1e-9)

	// Forgone covers base rent plus the waived tenant pass-throughs.
	assert.InDelta(t, 2850, first.ForgoneAmount, 1e-9)
}

func TestBuildModelOutsideAbatementExtendsSchedule(t *testing.T) {
	in := netLeaseInput()
	in.Abatement = entity.AbatementConfig{FreeMonths: 2, Placement: entity.PlacementOutside}
	model, err := BuildModel(in)
	require.NoError(t, err)

	require.Len(t, model.Schedule, 26)
	assert.Equal(t, 26, model.Meta.SchedulePeriods)
	assert.Equal(t, 3, model.Meta.LeaseStartPeriod)
	assert.Equal(t, 26, model.Meta.LeaseEndPeriod)

	assert.True(t, model.Schedule[0].Abated)
	assert.False(t, model.Schedule[0].InTerm)
	assert.True(t, model.Schedule[1].Abated)
	assert.False(t, model.Schedule[2].Abated)
	assert.True(t, model.Schedule[2].InTerm)

	assert.InDelta(t, 2.0/24.0, model.KPIs.PctTermAbated, 1e-12)
}

func TestBuildModelExplicitAbatementPeriods(t *testing.T) {
	in := netLeaseInput()
	in.Abatement = entity.AbatementConfig{ExplicitPeriods: []int{5, 7, 99}}
	model, err := BuildModel(in)
	require.NoError(t, err)
	require.Len(t, model.Schedule, 24)

	abated := 0
	for _, row := range model.Schedule {
		if row.Abated {
			abated++
		}
	}
	assert.Equal(t, 2, abated)
	assert.True(t, model.Schedule[4].Abated)
	assert.True(t, model.Schedule[6].Abated)
}

func TestBuildModelManagementFee(t *testing.T) {
	in := netLeaseInput()
	in.ManagementFee = entity.ManagementFee{Rate: 0.03, Basis: entity.BasisNet}
	model, err := BuildModel(in)
	require.NoError(t, err)

	first := model.Schedule[0]
	assert.InDelta(t, 0.06, first.ManagementFee.MonthlyPSF, 1e-12)
	assert.InDelta(t, 0.06, first.ManagementFee.TenantMonthlyPSF, 1e-12, "net regime defaults the fee to the tenant")
	assert.InDelta(t, 1.06, first.TenantOpExMonthlyPSF, 1e-12)

	in.ManagementFee.Basis = entity.BasisGross
	model, err = BuildModel(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.09, model.Schedule[0].ManagementFee.MonthlyPSF, 1e-12)
}

func TestBuildModelBaseYearStop(t *testing.T) {
	in := &entity.LeaseInput{
		Name:              "stop",
		AreaSF:            1000,
		Commencement:      time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		TermMonths:        36,
		BaseRentAnnualPSF: 30,
		Regime:            entity.RegimeBaseYearStop,
		Categories: []entity.ExpenseCategory{
			{
				Name:          "Taxes",
				AnnualRatePSF: 4.50,
				Escalation:    entity.EscalationRule{Mode: entity.EscalationPercent, Percent: 0.05},
			},
		},
		DiscountRate: 0.06,
	}
	model, err := BuildModel(in)
	require.NoError(t, err)

	// Base year projects one step forward for a March lease: 4.725/SF.
	// In the stub year the charge sits below the stop, so the landlord
	// carries all of it.
	first := model.Schedule[0]
	assert.Equal(t, "Mar 2026", first.MonthLabel)
	assert.Equal(t, 0.0, first.TenantOpExMonthlyPSF)
	assert.InDelta(t, 4.50/12, first.LandlordOpExMonthlyPSF, 1e-12)

	// By 2028 the escalated charge clears the stop and the tenant pays
	// only the excess.
	jan2028 := model.Schedule[22]
	require.Equal(t, "Jan 2028", jan2028.MonthLabel)
	monthly := 4.50 * 1.05 * 1.05 / 12
	assert.InDelta(t, (4.50*1.05*1.05-4.725)/12, jan2028.TenantOpExMonthlyPSF, 1e-9)
	assert.InDelta(t, monthly, jan2028.TenantOpExMonthlyPSF+jan2028.LandlordOpExMonthlyPSF, 1e-9)
}

func TestBuildModelAllocationConservation(t *testing.T) {
	// Every payer mode in one lease: tenant + landlord shares must rebuild
	// the full charge for each category in each period.
	stop := 6.0
	in := netLeaseInput()
	in.Regime = entity.RegimeCustom
	in.Categories = []entity.ExpenseCategory{
		{Name: "Taxes", AnnualRatePSF: 4.50, Payer: entity.PayerTenant},
		{Name: "CAM", AnnualRatePSF: 6.00, Payer: entity.PayerLandlord},
		{
			Name:              "Insurance",
			AnnualRatePSF:     5.00,
			Payer:             entity.PayerStop,
			Escalation:        entity.EscalationRule{Mode: entity.EscalationPercent, Percent: 0.04},
			BaseYearAnnualPSF: &stop,
		},
	}
	model, err := BuildModel(in)
	require.NoError(t, err)

	for _, row := range model.Schedule {
		for _, cc := range row.Categories {
			assert.InDelta(t, cc.MonthlyPSF, cc.TenantMonthlyPSF+cc.LandlordMonthlyPSF, 1e-12,
				"period %d category %s", row.Period, cc.Name)
			assert.GreaterOrEqual(t, cc.TenantMonthlyPSF, 0.0)
		}
	}
}

func TestBuildModelAbatementConservation(t *testing.T) {
	for _, scope := range []entity.AbatementScope{entity.ScopeNet, entity.ScopeGross} {
		in := netLeaseInput()
		in.Abatement = entity.AbatementConfig{FreeMonths: 3, Scope: scope}
		model, err := BuildModel(in)
		require.NoError(t, err)

		var forgone float64
		for _, row := range model.Schedule {
			forgone += row.GrossAmountFull - row.GrossAmount
		}
		assert.InDelta(t, forgone, model.KPIs.ForgoneRentNominal, 1e-9, "scope %s", scope)
	}
}

func TestBuildModelUnknownRegimeWarnsAndDegrades(t *testing.T) {
	in := netLeaseInput()
	in.Regime = "industrial"
	model, err := BuildModel(in)
	require.NoError(t, err)

	require.Len(t, model.Warnings, 1, "the same message is not repeated per row")
	assert.Contains(t, model.Warnings[0], "unknown service regime")

	// Degraded to tenant-paid, the schedule still computes in full.
	assert.InDelta(t, 1.00, model.Schedule[0].TenantOpExMonthlyPSF, 1e-12)
}
