// Package calc implements the lease economics engine: a pure transformation
// from an immutable LeaseInput to a LeaseModel of monthly charge rows, KPIs
// and rollup segments. Nothing in this package performs I/O or holds state
// across invocations.
package calc

import "math"

// Intermediate money math stays exact; rounding happens only at finalize
// points (exports, display, summation boundaries that callers opt into).

// epsNudge scales a machine-epsilon correction into the value before
// rounding, so that amounts like 2.675 that sit a hair below the midpoint
// in binary do not truncate downward.
const epsNudge = 4 * 2.220446049250313e-16 // 4 ulp at 1.0

// RoundTo rounds x half away from zero at the given number of decimal
// places, nudged against binary truncation bias.
func RoundTo(x float64, places int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	shift := math.Pow(10, float64(places))
	scaled := x * shift
	scaled += math.Copysign(math.Abs(scaled)*epsNudge, scaled)
	return math.Trunc(scaled+math.Copysign(0.5, scaled)) / shift
}

// Round2 rounds to currency precision.
func Round2(x float64) float64 { return RoundTo(x, 2) }

// Round4 rounds per-area rates to audit precision.
func Round4(x float64) float64 { return RoundTo(x, 4) }

// SumExact sums the values in slice order without rounding. Ordered
// summation keeps repeated runs bit-identical.
func SumExact(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// SumRounded2 rounds each value to cents before summing. Consumers that
// present per-row figures use this path so their column totals match the
// printed rows; it is not interchangeable with Round2(SumExact(values)).
func SumRounded2(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += Round2(v)
	}
	return Round2(total)
}
