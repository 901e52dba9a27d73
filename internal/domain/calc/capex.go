package calc

import (
	"fmt"
	"math"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

// TIFunding is the resolved capital-improvement funding profile.
type TIFunding struct {
	Budget             float64
	AllowanceOffered   float64
	AllowanceApplied   float64
	TenantContribution float64

	// PV figures feed net-effective-rent; Nominal* are their undiscounted
	// counterparts. For cash funding the allowance is a day-one credit so
	// PV equals nominal.
	PVApplied      float64
	PVOffered      float64
	NominalApplied float64
	NominalOffered float64
}

// ResolveTIFunding allocates the capital budget between landlord allowance
// and tenant contribution and values the landlord side.
//
// Amortized funding uses two distinct rates on purpose: the financing rate
// shapes the level payment schedule, while the lease's own discount rate
// values the resulting stream.
func ResolveTIFunding(in *entity.LeaseInput, warn func(string)) TIFunding {
	budget := 0.0
	for _, item := range in.CapExItems {
		budget += dollarAmount(item.Amount, item.Unit, in.AreaSF, warn)
	}

	offered := dollarAmount(in.Allowance.Amount, in.Allowance.Unit, in.AreaSF, warn)
	applied := math.Min(offered, budget)
	contribution := math.Max(0, budget-offered)

	f := TIFunding{
		Budget:             budget,
		AllowanceOffered:   offered,
		AllowanceApplied:   applied,
		TenantContribution: contribution,
	}

	switch in.Allowance.Treatment {
	case entity.FundingCash, "":
		f.PVApplied = applied
		f.PVOffered = offered
		f.NominalApplied = applied
		f.NominalOffered = offered
	case entity.FundingAmortized:
		months := in.TermMonths
		monthlyDisc := in.DiscountRate / 12
		pmtApplied := AnnuityPayment(applied, in.Allowance.FinancingRate, months)
		pmtOffered := AnnuityPayment(offered, in.Allowance.FinancingRate, months)
		f.PVApplied = PVLevelPayments(pmtApplied, monthlyDisc, months)
		f.PVOffered = PVLevelPayments(pmtOffered, monthlyDisc, months)
		f.NominalApplied = pmtApplied * float64(months)
		f.NominalOffered = pmtOffered * float64(months)
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown funding treatment %q, treating as cash", in.Allowance.Treatment))
		}
		f.PVApplied = applied
		f.PVOffered = offered
		f.NominalApplied = applied
		f.NominalOffered = offered
	}
	return f
}

// AnnuityPayment converts a principal into a level monthly payment over the
// term at the monthly-equivalent of the annual rate. A zero rate degenerates
// to straight-line principal / term.
func AnnuityPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 || principal == 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+r, float64(months))
	return principal * r * factor / (factor - 1)
}

// PVLevelPayments discounts a level monthly payment stream paid at the end
// of each month.
func PVLevelPayments(payment, monthlyRate float64, months int) float64 {
	if months <= 0 || payment == 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(months)
	}
	return payment * (1 - math.Pow(1+monthlyRate, -float64(months))) / monthlyRate
}

func dollarAmount(amount float64, unit entity.AmountUnit, area float64, warn func(string)) float64 {
	switch unit {
	case entity.UnitTotal, "":
		return amount
	case entity.UnitPSF:
		return amount * area
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown amount unit %q, treating as total", unit))
		}
		return amount
	}
}
