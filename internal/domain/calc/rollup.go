package calc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

// rateTolerance bounds the per-area drift tolerated inside one segment.
// Escalation steps and abatement boundaries move rates far beyond it.
const rateTolerance = 1e-6

// BuildSegments groups contiguous schedule rows into segments that share a
// grouping key (calendar year, or ceiling(period/12) for the lease-year
// basis), an abatement status and a per-area rate set. Rates are averaged
// weighted by proration; dollar columns are exact sums, so segment totals
// reproduce the monthly totals without drift.
func BuildSegments(model *entity.LeaseModel, perspective entity.RollupPerspective, basis entity.RollupBasis) []entity.Segment {
	if model == nil || len(model.Schedule) == 0 {
		return nil
	}

	segments := []entity.Segment{}
	var cur *segmentAccum

	for _, row := range model.Schedule {
		key := row.Year
		if basis == entity.BasisLeaseYear {
			key = (row.Period-1)/12 + 1
		}
		rates := perspectiveRates(row, perspective)

		if cur == nil || key != cur.key || row.Abated != cur.abated || !ratesMatch(rates, cur.rates) {
			if cur != nil {
				segments = append(segments, cur.finish(basis))
			}
			cur = &segmentAccum{key: key, abated: row.Abated, inTerm: row.InTerm, rates: rates, first: row.Period}
		}
		cur.add(row, perspective)
	}
	segments = append(segments, cur.finish(basis))

	return segments
}

func perspectiveRates(row entity.MonthlyCharge, perspective entity.RollupPerspective) [3]float64 {
	if perspective == entity.PerspectiveLandlord {
		return [3]float64{row.BaseAnnualPSF, row.LandlordOpExMonthlyPSF, row.NetMonthlyPSF}
	}
	return [3]float64{row.BaseAnnualPSF, row.TenantOpExMonthlyPSF, row.GrossMonthlyPSF}
}

func ratesMatch(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > rateTolerance {
			return false
		}
	}
	return true
}

type segmentAccum struct {
	key    int
	abated bool
	inTerm bool
	rates  [3]float64
	first  int
	last   int

	months float64

	wBaseAnnual, wNet, wOpEx, wGross float64

	netTotal, opExTotal, grossTotal, forgoneTotal float64
}

func (s *segmentAccum) add(row entity.MonthlyCharge, perspective entity.RollupPerspective) {
	s.last = row.Period
	s.months += row.Proration

	opExPSF := row.TenantOpExMonthlyPSF
	opExAmount := row.TenantOpExAmount
	if perspective == entity.PerspectiveLandlord {
		opExPSF = row.LandlordOpExMonthlyPSF
		opExAmount = row.LandlordOpExAmount
	}

	s.wBaseAnnual += row.BaseAnnualPSF * row.Proration
	s.wNet += row.NetMonthlyPSF * row.Proration
	s.wOpEx += opExPSF * row.Proration
	s.wGross += row.GrossMonthlyPSF * row.Proration

	s.netTotal += row.NetAmount
	s.opExTotal += opExAmount
	s.grossTotal += row.GrossAmount
	s.forgoneTotal += row.ForgoneAmount
}

func (s *segmentAccum) finish(basis entity.RollupBasis) entity.Segment {
	seg := entity.Segment{
		Key:         s.key,
		FirstPeriod: s.first,
		LastPeriod:  s.last,
		Abated:      s.abated,
		InTerm:      s.inTerm,
		Months:      s.months,

		NetTotal:     s.netTotal,
		OpExTotal:    s.opExTotal,
		GrossTotal:   s.grossTotal,
		ForgoneTotal: s.forgoneTotal,
	}

	if basis == entity.BasisLeaseYear {
		seg.Label = fmt.Sprintf("Year %d", s.key)
	} else {
		seg.Label = strconv.Itoa(s.key)
	}
	if s.first == s.last {
		seg.PeriodRange = strconv.Itoa(s.first)
	} else {
		seg.PeriodRange = fmt.Sprintf("%d-%d", s.first, s.last)
	}

	if s.months > 0 {
		seg.AvgBaseAnnualPSF = s.wBaseAnnual / s.months
		seg.AvgNetMonthlyPSF = s.wNet / s.months
		seg.AvgOpExMonthlyPSF = s.wOpEx / s.months
		seg.AvgGrossMonthlyPSF = s.wGross / s.months
	}

	return seg
}
