package entity

// RollupPerspective selects which side's per-area rates a segment carries.
type RollupPerspective string

const (
	PerspectiveTenant   RollupPerspective = "tenant"
	PerspectiveLandlord RollupPerspective = "landlord"
)

// RollupBasis selects the grouping key: calendar year or lease year.
type RollupBasis string

const (
	BasisCalendarYear RollupBasis = "calendar"
	BasisLeaseYear    RollupBasis = "lease_year"
)

// Segment is a contiguous run of schedule rows sharing a grouping key, an
// abatement status and a per-area rate set. Escalation steps and concession
// boundaries therefore start a new segment.
type Segment struct {
	Key   int    `json:"key"`
	Label string `json:"label"`
	// PeriodRange reads "3-12", or a bare number for a one-month segment.
	PeriodRange string `json:"period_range"`
	FirstPeriod int    `json:"first_period"`
	LastPeriod  int    `json:"last_period"`

	Abated bool `json:"abated"`
	InTerm bool `json:"in_term"`

	// Months is the proration-weighted month count of the segment.
	Months float64 `json:"months"`

	// Per-area rates are proration-weighted averages across the segment.
	AvgBaseAnnualPSF   float64 `json:"avg_base_annual_psf"`
	AvgNetMonthlyPSF   float64 `json:"avg_net_monthly_psf"`
	AvgOpExMonthlyPSF  float64 `json:"avg_opex_monthly_psf"`
	AvgGrossMonthlyPSF float64 `json:"avg_gross_monthly_psf"`

	// Dollar columns are exact sums of the underlying rows.
	NetTotal     float64 `json:"net_total"`
	OpExTotal    float64 `json:"opex_total"`
	GrossTotal   float64 `json:"gross_total"`
	ForgoneTotal float64 `json:"forgone_total"`
}
