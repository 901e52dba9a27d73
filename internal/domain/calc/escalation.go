package calc

import (
	"fmt"
	"math"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

// EscalatedRate returns the annual per-area rate at escalation step k
// (k = 0 for the first period) under the given growth rule.
//
// Base rent steps on the lease anniversary (floor of elapsed months / 12);
// operating expenses step on the calendar year. The caller supplies the
// step; this function only applies the rule.
func EscalatedRate(start float64, rule entity.EscalationRule, step int, warn func(string)) float64 {
	if step < 0 {
		step = 0
	}
	switch rule.Mode {
	case entity.EscalationPercent, "":
		return start * math.Pow(1+rule.Percent, float64(step))
	case entity.EscalationFlat:
		return start + float64(step)*rule.Increment
	case entity.EscalationPercentList:
		rate := start
		for i := 0; i < step; i++ {
			rate *= 1 + listEntry(rule.Schedule, i)
		}
		return rate
	case entity.EscalationFlatList:
		rate := start
		for i := 0; i < step; i++ {
			rate += listEntry(rule.Schedule, i)
		}
		return rate
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown escalation mode %q, treating as percent", rule.Mode))
		}
		return start * math.Pow(1+rule.Percent, float64(step))
	}
}

// listEntry repeats the last schedule entry when the list runs short.
func listEntry(schedule []float64, i int) float64 {
	if len(schedule) == 0 {
		return 0
	}
	if i >= len(schedule) {
		return schedule[len(schedule)-1]
	}
	return schedule[i]
}
