package entity

// CategoryCharge is the resolved tenant/landlord split of one expense
// category (or the management fee) for one period. Per-area rates are kept
// unrounded; presentation rounding happens at the export/display boundary.
type CategoryCharge struct {
	Name string `json:"name"`

	AnnualPSF  float64 `json:"annual_psf"`
	MonthlyPSF float64 `json:"monthly_psf"`

	TenantMonthlyPSF   float64 `json:"tenant_monthly_psf"`
	LandlordMonthlyPSF float64 `json:"landlord_monthly_psf"`

	// TenantAmountFull is the pre-abatement tenant dollar amount for the
	// period (prorated). TenantAmount is the post-abatement figure and is
	// zero in a gross-abated period. Landlord amounts are never abated.
	TenantAmountFull float64 `json:"tenant_amount_full"`
	TenantAmount     float64 `json:"tenant_amount"`
	LandlordAmount   float64 `json:"landlord_amount"`
}

// MonthlyCharge is one row of the schedule, created once by the builder and
// never mutated afterward.
type MonthlyCharge struct {
	Period     int    `json:"period"`
	Year       int    `json:"year"`
	MonthLabel string `json:"month_label"`

	// InTerm is false only for abatement extension periods placed outside
	// the stated term.
	InTerm bool `json:"in_term"`
	Abated bool `json:"abated"`
	// GrossAbated marks a period abated under gross scope, where tenant-paid
	// operating costs are zeroed along with base rent.
	GrossAbated bool `json:"gross_abated"`
	// Proration is the fraction of the calendar month covered; 1.0 except
	// for a first partial month.
	Proration float64 `json:"proration"`

	BaseAnnualPSF  float64 `json:"base_annual_psf"`
	BaseMonthlyPSF float64 `json:"base_monthly_psf"`

	Categories    []CategoryCharge `json:"categories"`
	ManagementFee CategoryCharge   `json:"management_fee"`

	TenantOpExMonthlyPSF   float64 `json:"tenant_opex_monthly_psf"`
	LandlordOpExMonthlyPSF float64 `json:"landlord_opex_monthly_psf"`

	// NetMonthlyPSF is the post-abatement tenant base rent per area;
	// GrossMonthlyPSF adds tenant-paid OpEx and management fee.
	NetMonthlyPSF   float64 `json:"net_monthly_psf"`
	GrossMonthlyPSF float64 `json:"gross_monthly_psf"`

	// Dollar amounts, prorated, exact. *Full fields are pre-abatement
	// ("what would have been billed"); the bare fields are post-abatement.
	BaseAmountFull       float64 `json:"base_amount_full"`
	NetAmount            float64 `json:"net_amount"`
	TenantOpExAmountFull float64 `json:"tenant_opex_amount_full"`
	TenantOpExAmount     float64 `json:"tenant_opex_amount"`
	LandlordOpExAmount   float64 `json:"landlord_opex_amount"`
	GrossAmountFull      float64 `json:"gross_amount_full"`
	GrossAmount          float64 `json:"gross_amount"`
	// ForgoneAmount is the tenant-side dollar value forgiven this period.
	ForgoneAmount float64 `json:"forgone_amount"`

	// DiscountFactor applied to this period's cash in PV aggregates.
	DiscountFactor float64 `json:"discount_factor"`
}

// ScheduleMeta locates the stated term inside the (possibly extended)
// schedule.
type ScheduleMeta struct {
	AreaSF           float64 `json:"area_sf"`
	TermMonths       int     `json:"term_months"`
	SchedulePeriods  int     `json:"schedule_periods"`
	LeaseStartPeriod int     `json:"lease_start_period"`
	LeaseEndPeriod   int     `json:"lease_end_period"`
}

// LeaseModel is the complete output of one calculation run.
type LeaseModel struct {
	Name     string          `json:"name,omitempty"`
	Schedule []MonthlyCharge `json:"monthly_schedule"`
	KPIs     KPISet          `json:"kpis"`
	Meta     ScheduleMeta    `json:"meta"`
	// Warnings records unrecognized enum values the engine degraded on
	// instead of failing.
	Warnings []string `json:"warnings,omitempty"`
}
