package calc

import (
	"fmt"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

// abatementPlan classifies every schedule period and locates the stated
// term inside the schedule, which grows beyond the term only for outside
// placement.
type abatementPlan struct {
	periods   int
	termStart int
	termEnd   int
	abated    []bool // 1-based, abated[0] unused
	gross     bool
}

func planAbatement(cfg entity.AbatementConfig, termMonths int, warn func(string)) abatementPlan {
	plan := abatementPlan{
		periods:   termMonths,
		termStart: 1,
		termEnd:   termMonths,
		gross:     resolveScope(cfg.Scope, warn) == entity.ScopeGross,
	}

	// An explicit period set overrides placement and timing entirely.
	if len(cfg.ExplicitPeriods) > 0 {
		plan.abated = make([]bool, termMonths+1)
		for _, p := range cfg.ExplicitPeriods {
			if p >= 1 && p <= termMonths {
				plan.abated[p] = true
			}
		}
		return plan
	}

	free := cfg.FreeMonths
	if free <= 0 {
		plan.abated = make([]bool, termMonths+1)
		return plan
	}
	if free > termMonths {
		free = termMonths
	}

	placement := cfg.Placement
	switch placement {
	case entity.PlacementInside, "":
		placement = entity.PlacementInside
	case entity.PlacementOutside:
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown abatement placement %q, treating as inside", cfg.Placement))
		}
		placement = entity.PlacementInside
	}

	timing := cfg.Timing
	switch timing {
	case entity.TimingBegin, "":
		timing = entity.TimingBegin
	case entity.TimingEnd:
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown abatement timing %q, treating as begin", cfg.Timing))
		}
		timing = entity.TimingBegin
	}

	if placement == entity.PlacementInside {
		plan.abated = make([]bool, termMonths+1)
		if timing == entity.TimingBegin {
			for p := 1; p <= free; p++ {
				plan.abated[p] = true
			}
		} else {
			for p := termMonths - free + 1; p <= termMonths; p++ {
				plan.abated[p] = true
			}
		}
		return plan
	}

	// Outside placement extends the schedule by the free months. Front
	// loaded, the extension precedes the stated term; back loaded it
	// follows it.
	plan.periods = termMonths + free
	plan.abated = make([]bool, plan.periods+1)
	if timing == entity.TimingBegin {
		plan.termStart = free + 1
		plan.termEnd = free + termMonths
		for p := 1; p <= free; p++ {
			plan.abated[p] = true
		}
	} else {
		for p := termMonths + 1; p <= plan.periods; p++ {
			plan.abated[p] = true
		}
	}
	return plan
}

func resolveScope(scope entity.AbatementScope, warn func(string)) entity.AbatementScope {
	switch scope {
	case entity.ScopeNet, "":
		return entity.ScopeNet
	case entity.ScopeGross:
		return entity.ScopeGross
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown abatement scope %q, treating as net", scope))
		}
		return entity.ScopeNet
	}
}
