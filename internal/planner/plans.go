// Package planner holds the composite date plans. Each plan is a pure
// strategy over a DateState: it inspects the state, picks a path through
// the primitive transitions, and returns the resulting state. Plans
// deliberately lean on the primitives' own no-op guards — dispatching
// into a primitive whose guard then fails simply leaves the state alone.
package planner

import (
	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/sim"
)

const dinnerHour = 18

// DateSequence is the naive script: cafe first, then wait until dinner
// time, then the restaurant. No branching at all.
func DateSequence(s domain.DateState) domain.DateState {
	s = sim.GoToCafe(s)
	s.Time = dinnerHour
	return sim.GoToRestaurant(s)
}

// OptimalCourse is the default plan: cafe if it is still on the table,
// wait until dinner time, then restaurant if affordable, cinema
// otherwise.
func OptimalCourse(s domain.DateState) domain.DateState {
	if sim.CanGoCafe(s) {
		s = sim.GoToCafe(s)
	}
	s.Time = dinnerHour
	if sim.CanGoRestaurant(s) {
		return sim.GoToRestaurant(s)
	}
	return sim.GoToCinema(s)
}

// SafeDatePlan only commits to the full cafe-then-dinner arc when the
// budget comfortably covers both; in a storm it cuts losses, and
// otherwise it does nothing rather than risk a partial evening.
func SafeDatePlan(s domain.DateState) domain.DateState {
	if s.Time <= 16 && s.Budget >= 4000 {
		s = sim.GoToCafe(s)
		s.Time = dinnerHour
		if s.Budget >= 3000 {
			return sim.GoToRestaurant(s)
		}
		return s
	}
	if domain.IsStormy(s.Weather) {
		return sim.EmergencyShelter(s)
	}
	return s
}

// WeatherAdaptivePlan dispatches purely on the sky.
func WeatherAdaptivePlan(s domain.DateState) domain.DateState {
	switch s.Weather {
	case domain.WeatherSunny:
		if s.Time <= 18 {
			return sim.GoToPark(s)
		}
		return s
	case domain.WeatherCloudy:
		return sim.GoToCafe(s)
	case domain.WeatherRainy:
		if s.Time >= 18 {
			return sim.GoToCinema(s)
		}
		return sim.GoToCafe(s)
	case domain.WeatherStormy:
		return sim.EmergencyShelter(s)
	default:
		return s
	}
}

// RiskAversePlan prefers the cheapest viable option at every hour.
// The park fallback does not re-check the budget — GoToPark is free,
// and the primitive's own guard covers the rest.
func RiskAversePlan(s domain.DateState) domain.DateState {
	if domain.IsStormy(s.Weather) {
		return sim.EmergencyShelter(s)
	}
	if s.Budget >= 1000 && s.Time <= 16 {
		return sim.GoToCafe(s)
	}
	if s.Time <= 18 {
		return sim.GoToPark(s)
	}
	return s
}

// PerfectEveningDate is the late-start plan: go straight for the best
// evening venue the budget allows.
func PerfectEveningDate(s domain.DateState) domain.DateState {
	if s.Time >= 18 && s.Budget >= 3000 {
		return sim.GoToRestaurant(s)
	}
	if s.Time >= 18 && s.Budget >= 2000 {
		return sim.GoToCinema(s)
	}
	return s
}
