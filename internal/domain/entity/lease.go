package entity

import "time"

// ServiceRegime determines who pays operating expenses under the lease.
type ServiceRegime string

const (
	RegimeNet          ServiceRegime = "net"
	RegimeGross        ServiceRegime = "gross"
	RegimeBaseYearStop ServiceRegime = "base_year_stop"
	RegimeCustom       ServiceRegime = "custom"
)

// PayerMode determines who bears a single expense category.
type PayerMode string

const (
	PayerTenant   PayerMode = "tenant"
	PayerLandlord PayerMode = "landlord"
	PayerStop     PayerMode = "stop"
)

// EscalationMode selects the growth rule for a rate.
type EscalationMode string

const (
	EscalationPercent     EscalationMode = "percent"
	EscalationFlat        EscalationMode = "flat"
	EscalationPercentList EscalationMode = "percent_list"
	EscalationFlatList    EscalationMode = "flat_list"
)

// AbatementPlacement says whether free months sit inside the stated term
// or extend the schedule beyond it.
type AbatementPlacement string

const (
	PlacementInside  AbatementPlacement = "inside"
	PlacementOutside AbatementPlacement = "outside"
)

// AbatementTiming says whether free months are front or back loaded.
type AbatementTiming string

const (
	TimingBegin AbatementTiming = "begin"
	TimingEnd   AbatementTiming = "end"
)

// AbatementScope says which charges a free month forgives.
type AbatementScope string

const (
	ScopeNet   AbatementScope = "net"
	ScopeGross AbatementScope = "gross"
)

// FundingTreatment selects how the landlord allowance is funded.
type FundingTreatment string

const (
	FundingCash      FundingTreatment = "cash"
	FundingAmortized FundingTreatment = "amortized"
)

// RentBasis selects net or gross rent as the base for a percentage charge.
type RentBasis string

const (
	BasisNet   RentBasis = "net"
	BasisGross RentBasis = "gross"
)

// AmountUnit says whether a dollar figure is entered as a lump sum or per area.
type AmountUnit string

const (
	UnitTotal AmountUnit = "total"
	UnitPSF   AmountUnit = "psf"
)

// EscalationRule describes how an annual per-area rate grows from one
// escalation step to the next.
type EscalationRule struct {
	Mode EscalationMode `json:"mode"`
	// Percent is the compounding growth fraction per step (e.g. 0.03).
	Percent float64 `json:"percent,omitempty"`
	// Increment is the flat $/SF/yr added per step.
	Increment float64 `json:"increment,omitempty"`
	// Schedule holds explicit per-step entries for the list modes. When the
	// list is shorter than the requested step the last entry repeats.
	Schedule []float64 `json:"schedule,omitempty"`
}

// ExpenseCategory is one operating-expense pass-through line (taxes, CAM,
// insurance, or a custom line).
type ExpenseCategory struct {
	Name          string         `json:"name"`
	AnnualRatePSF float64        `json:"annual_rate_psf"`
	Escalation    EscalationRule `json:"escalation"`
	// Payer is only consulted under the custom regime; the other regimes
	// force a mode for every category.
	Payer PayerMode `json:"payer,omitempty"`
	// BaseYearAnnualPSF is the explicit base-year stop rate. When nil the
	// base year is auto-derived from the commencement month.
	BaseYearAnnualPSF *float64 `json:"base_year_annual_psf,omitempty"`
}

// AbatementConfig describes the free-rent concession.
type AbatementConfig struct {
	FreeMonths int                `json:"free_months"`
	Placement  AbatementPlacement `json:"placement,omitempty"`
	Timing     AbatementTiming    `json:"timing,omitempty"`
	Scope      AbatementScope     `json:"scope,omitempty"`
	// ExplicitPeriods, when non-empty, wins over count/placement/timing:
	// a period is abated iff its number is listed here.
	ExplicitPeriods []int `json:"explicit_periods,omitempty"`
}

// CapExItem is one line of the capital-improvement budget.
type CapExItem struct {
	Label  string     `json:"label"`
	Amount float64    `json:"amount"`
	Unit   AmountUnit `json:"unit,omitempty"`
}

// AllowanceTerms describes the landlord TI allowance and its funding.
type AllowanceTerms struct {
	Amount    float64          `json:"amount"`
	Unit      AmountUnit       `json:"unit,omitempty"`
	Treatment FundingTreatment `json:"treatment,omitempty"`
	// FinancingRate is the annual rate shaping the amortized payment
	// schedule. It is not the discount rate that values the stream.
	FinancingRate float64 `json:"financing_rate,omitempty"`
}

// ManagementFee is charged as a fraction of net or gross rent.
type ManagementFee struct {
	Rate  float64   `json:"rate"`
	Basis RentBasis `json:"basis,omitempty"`
	// Payer overrides the regime-derived mode when set.
	Payer PayerMode `json:"payer,omitempty"`
}

// CommissionTerms describes the leasing commission.
type CommissionTerms struct {
	Rate  float64   `json:"rate"`
	Basis RentBasis `json:"basis,omitempty"`
}

// LeaseInput is the immutable configuration for one calculation run.
// Numeric fields arrive already parsed; the engine does no string handling.
type LeaseInput struct {
	Name         string    `json:"name,omitempty"`
	AreaSF       float64   `json:"area_sf"`
	Commencement time.Time `json:"commencement"`
	TermMonths   int       `json:"term_months"`

	BaseRentAnnualPSF  float64        `json:"base_rent_annual_psf"`
	BaseRentEscalation EscalationRule `json:"base_rent_escalation"`

	Regime     ServiceRegime     `json:"regime"`
	Categories []ExpenseCategory `json:"categories,omitempty"`

	Abatement     AbatementConfig `json:"abatement"`
	ManagementFee ManagementFee   `json:"management_fee"`

	CapExItems []CapExItem     `json:"capex_items,omitempty"`
	Allowance  AllowanceTerms  `json:"allowance"`
	Commission CommissionTerms `json:"commission"`

	// DiscountRate is the annual rate used for every present-value figure.
	DiscountRate float64 `json:"discount_rate"`
}
