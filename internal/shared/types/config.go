package types

// ScenarioConfig is the on-disk shape of a lease scenario, loadable from a
// TOML, YAML or JSON file. The config adapter converts it into the engine's
// input configuration; numbers here are already numbers, never raw text.
type ScenarioConfig struct {
	Name         string  `json:"name" yaml:"name" toml:"name"`
	AreaSF       float64 `json:"area_sf" yaml:"area_sf" toml:"area_sf"`
	Commencement string  `json:"commencement" yaml:"commencement" toml:"commencement"`
	TermMonths   int     `json:"term_months" yaml:"term_months" toml:"term_months"`

	BaseRentAnnualPSF  float64          `json:"base_rent_annual_psf" yaml:"base_rent_annual_psf" toml:"base_rent_annual_psf"`
	BaseRentEscalation EscalationConfig `json:"base_rent_escalation" yaml:"base_rent_escalation" toml:"base_rent_escalation"`

	Regime     string           `json:"regime" yaml:"regime" toml:"regime"`
	Categories []CategoryConfig `json:"categories" yaml:"categories" toml:"categories"`

	Abatement     AbatementFileConfig `json:"abatement" yaml:"abatement" toml:"abatement"`
	ManagementFee FeeConfig           `json:"management_fee" yaml:"management_fee" toml:"management_fee"`

	CapExItems []CapExItemConfig `json:"capex_items" yaml:"capex_items" toml:"capex_items"`
	Allowance  AllowanceConfig   `json:"allowance" yaml:"allowance" toml:"allowance"`
	Commission CommissionConfig  `json:"commission" yaml:"commission" toml:"commission"`

	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate" toml:"discount_rate"`
}

type EscalationConfig struct {
	Mode      string    `json:"mode" yaml:"mode" toml:"mode"`
	Percent   float64   `json:"percent" yaml:"percent" toml:"percent"`
	Increment float64   `json:"increment" yaml:"increment" toml:"increment"`
	Schedule  []float64 `json:"schedule" yaml:"schedule" toml:"schedule"`
}

type CategoryConfig struct {
	Name              string           `json:"name" yaml:"name" toml:"name"`
	AnnualRatePSF     float64          `json:"annual_rate_psf" yaml:"annual_rate_psf" toml:"annual_rate_psf"`
	Escalation        EscalationConfig `json:"escalation" yaml:"escalation" toml:"escalation"`
	Payer             string           `json:"payer" yaml:"payer" toml:"payer"`
	BaseYearAnnualPSF *float64         `json:"base_year_annual_psf" yaml:"base_year_annual_psf" toml:"base_year_annual_psf"`
}

type AbatementFileConfig struct {
	FreeMonths      int    `json:"free_months" yaml:"free_months" toml:"free_months"`
	Placement       string `json:"placement" yaml:"placement" toml:"placement"`
	Timing          string `json:"timing" yaml:"timing" toml:"timing"`
	Scope           string `json:"scope" yaml:"scope" toml:"scope"`
	ExplicitPeriods []int  `json:"explicit_periods" yaml:"explicit_periods" toml:"explicit_periods"`
}

type CapExItemConfig struct {
	Label  string  `json:"label" yaml:"label" toml:"label"`
	Amount float64 `json:"amount" yaml:"amount" toml:"amount"`
	Unit   string  `json:"unit" yaml:"unit" toml:"unit"`
}

type AllowanceConfig struct {
	Amount        float64 `json:"amount" yaml:"amount" toml:"amount"`
	Unit          string  `json:"unit" yaml:"unit" toml:"unit"`
	Treatment     string  `json:"treatment" yaml:"treatment" toml:"treatment"`
	FinancingRate float64 `json:"financing_rate" yaml:"financing_rate" toml:"financing_rate"`
}

type FeeConfig struct {
	Rate  float64 `json:"rate" yaml:"rate" toml:"rate"`
	Basis string  `json:"basis" yaml:"basis" toml:"basis"`
	Payer string  `json:"payer" yaml:"payer" toml:"payer"`
}

type CommissionConfig struct {
	Rate  float64 `json:"rate" yaml:"rate" toml:"rate"`
	Basis string  `json:"basis" yaml:"basis" toml:"basis"`
}
