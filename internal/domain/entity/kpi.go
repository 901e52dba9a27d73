package entity

// KPISet holds the scalar summary metrics reduced from the monthly schedule.
// Every figure is recomputed in full on each run; nothing is incremental.
type KPISet struct {
	// Net effective rent, $/SF/yr, net of TI applied.
	PVNetEffectiveRentPSF      float64 `json:"pv_net_effective_rent_psf"`
	NominalNetEffectiveRentPSF float64 `json:"nominal_net_effective_rent_psf"`

	AvgMonthlyNet   float64 `json:"avg_monthly_net"`
	AvgMonthlyGross float64 `json:"avg_monthly_gross"`

	TotalNet       float64 `json:"total_net"`
	TotalGross     float64 `json:"total_gross"`
	GrossNetSpread float64 `json:"gross_net_spread"`

	PVNetRent   float64 `json:"pv_net_rent"`
	PVGrossRent float64 `json:"pv_gross_rent"`

	// RecoveryRatio is tenant-paid OpEx over total OpEx. Defined is false
	// when no OpEx exists at all, in which case the ratio is zero.
	RecoveryRatio        float64 `json:"recovery_ratio"`
	RecoveryRatioDefined bool    `json:"recovery_ratio_defined"`

	ForgoneRentPV      float64 `json:"forgone_rent_pv"`
	ForgoneRentNominal float64 `json:"forgone_rent_nominal"`
	PctTermAbated      float64 `json:"pct_term_abated"`

	TIBudget             float64 `json:"ti_budget"`
	TIAllowanceApplied   float64 `json:"ti_allowance_applied"`
	TenantTIContribution float64 `json:"tenant_ti_contribution"`
	TIOfferedPV          float64 `json:"ti_offered_pv"`
	TIAppliedPV          float64 `json:"ti_applied_pv"`

	CommissionAmount float64 `json:"commission_amount"`
	CommissionPV     float64 `json:"commission_pv"`

	// LandlordCostPV is TI offered plus commission, in PV terms.
	LandlordCostPV float64 `json:"landlord_cost_pv"`
	// TotalIncentivePV is forgone rent plus TI offered, in PV terms.
	TotalIncentivePV float64 `json:"total_incentive_pv"`

	OccupancyCostPSFMonthly float64 `json:"occupancy_cost_psf_monthly"`
}
