package planner

import (
	"fmt"

	"github.com/alexanderramin/rendezvous/internal/domain"
)

// Plan is a named composite strategy.
type Plan struct {
	Name        string
	Description string
	Apply       func(domain.DateState) domain.DateState
}

// DefaultPlan is the plan the batch runner and CLI fall back to.
const DefaultPlan = "optimal"

// plans is the canonical ordered plan table.
var plans = []Plan{
	{
		Name:        "sequence",
		Description: "Cafe, wait for dinner time, restaurant — no branching",
		Apply:       DateSequence,
	},
	{
		Name:        "optimal",
		Description: "Cafe if viable, then restaurant or cinema by budget",
		Apply:       OptimalCourse,
	},
	{
		Name:        "safe",
		Description: "Full arc only with comfortable budget, shelter in storms",
		Apply:       SafeDatePlan,
	},
	{
		Name:        "weather",
		Description: "Venue chosen by the sky",
		Apply:       WeatherAdaptivePlan,
	},
	{
		Name:        "risk-averse",
		Description: "Cheapest viable option at every hour",
		Apply:       RiskAversePlan,
	},
	{
		Name:        "perfect-evening",
		Description: "Late start, best evening venue the budget allows",
		Apply:       PerfectEveningDate,
	},
}

// Plans returns the built-in plans in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// Lookup finds a plan by name.
func Lookup(name string) (Plan, error) {
	for _, p := range plans {
		if p.Name == name {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("unknown plan %q (see 'rendezvous plans')", name)
}
