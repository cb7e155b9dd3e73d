// Package scenario constructs initial states and runs batches of them
// through a plan, aggregating pass/fail statistics.
package scenario

import (
	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/eval"
	"github.com/alexanderramin/rendezvous/internal/planner"
)

// New builds the initial state for a scenario: the couple always meets
// at the station.
func New(time, budget, mood int, weather domain.Weather) domain.DateState {
	return domain.DateState{
		Time:        time,
		Location:    domain.LocationStation,
		PartnerMood: mood,
		Budget:      budget,
		Weather:     weather,
	}
}

// Run sends a scenario through the optimal course.
func Run(s domain.DateState) domain.DateState {
	return planner.OptimalCourse(s)
}

// Result pairs a scenario with its final state and success verdict.
type Result struct {
	Initial    domain.DateState
	Final      domain.DateState
	Successful bool
}

// suite is the fixed comprehensive scenario list. Order matters for
// stable reporting: sunny openers first, then marginal budgets, then
// bad weather and degenerate cases.
var suite = []domain.DateState{
	New(14, 8000, 7, domain.WeatherSunny),
	New(16, 10000, 8, domain.WeatherSunny),
	New(14, 5000, 5, domain.WeatherCloudy),
	New(20, 6000, 6, domain.WeatherCloudy),
	New(18, 8000, 6, domain.WeatherRainy),
	New(19, 3000, 7, domain.WeatherRainy),
	New(15, 2000, 4, domain.WeatherStormy),
	New(14, 0, 5, domain.WeatherSunny),
}

// Suite returns the comprehensive scenario list.
func Suite() []domain.DateState {
	out := make([]domain.DateState, len(suite))
	copy(out, suite)
	return out
}

// RunAll maps scenarios through the given plan and grades each result.
func RunAll(scenarios []domain.DateState, apply func(domain.DateState) domain.DateState) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		final := apply(s)
		results = append(results, Result{
			Initial:    s,
			Final:      final,
			Successful: eval.IsDateSuccessful(final),
		})
	}
	return results
}

// Comprehensive runs the fixed suite through the optimal course.
func Comprehensive() []Result {
	return RunAll(Suite(), Run)
}

// SuccessPercentage is the truncating integer percentage of successful
// results; an empty batch scores 0.
func SuccessPercentage(results []Result) int {
	if len(results) == 0 {
		return 0
	}
	succeeded := 0
	for _, r := range results {
		if r.Successful {
			succeeded++
		}
	}
	return succeeded * 100 / len(results)
}
