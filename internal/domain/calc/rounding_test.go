package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 3.0, RoundTo(2.5, 0))
	assert.Equal(t, -3.0, RoundTo(-2.5, 0))
	assert.Equal(t, 0.13, RoundTo(0.125, 2))
	assert.Equal(t, -0.13, RoundTo(-0.125, 2))
}

func TestRoundToBinaryMidpoints(t *testing.T) {
	// These literals sit a hair below the midpoint in binary; without the
	// epsilon nudge they would truncate downward.
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, -2.68, Round2(-2.675))
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 0.0001, Round4(0.00005))
}

func TestRoundToPassthrough(t *testing.T) {
	assert.Equal(t, 0.0, Round2(0))
	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
	assert.True(t, math.IsInf(Round2(math.Inf(-1)), -1))
}

func TestRoundToIdempotent(t *testing.T) {
	values := []float64{2.675, 1.005, 12.344999, -0.005, 1234.5678, 0.0001}
	for _, v := range values {
		r2 := Round2(v)
		assert.Equal(t, r2, Round2(r2), "Round2 not stable for %v", v)
		r4 := Round4(v)
		assert.Equal(t, r4, Round4(r4), "Round4 not stable for %v", v)
	}
}

func TestSumExactOrdered(t *testing.T) {
	assert.InDelta(t, 0.6, SumExact([]float64{0.1, 0.2, 0.3}), 1e-12)
	assert.Equal(t, 0.0, SumExact(nil))
}

func TestSumRounded2DivergesFromExactPath(t *testing.T) {
	values := []float64{1.004, 1.004}
	assert.Equal(t, 2.00, SumRounded2(values))
	assert.Equal(t, 2.01, Round2(SumExact(values)))
}
