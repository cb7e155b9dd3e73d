// Package eval classifies and scores finished dates.
package eval

import "github.com/alexanderramin/rendezvous/internal/domain"

// IsDateSuccessful: the partner is happy, money is left, and the night
// did not run past 22:00.
func IsDateSuccessful(s domain.DateState) bool {
	return s.PartnerMood >= 7 && s.Budget > 0 && s.Time <= 22
}

// IsDisaster: a sour mood, an empty wallet, or a blown curfew.
func IsDisaster(s domain.DateState) bool {
	return s.PartnerMood <= 3 || s.Budget == 0 || s.Time > 22
}

// IsCompleteFailure is the stricter disaster: mood at rock bottom or
// past 23:00.
func IsCompleteFailure(s domain.DateState) bool {
	return s.PartnerMood <= 2 || s.Budget == 0 || s.Time > 23
}

// Outcome is a display-level classification derived from the boolean
// classifiers. The classifiers overlap on purpose (a date can be
// neither successful nor a disaster); Outcome picks the harshest label
// that applies.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeDisaster Outcome = "disaster"
	OutcomeRuined   Outcome = "ruined"
)

// Classify maps a final state to its outcome label.
func Classify(s domain.DateState) Outcome {
	switch {
	case IsCompleteFailure(s):
		return OutcomeRuined
	case IsDisaster(s):
		return OutcomeDisaster
	case IsDateSuccessful(s):
		return OutcomeSuccess
	default:
		return OutcomeFailed
	}
}

// Score is the breakdown of a plan evaluation. Total is always the sum
// of the three components.
type Score struct {
	MoodScore        int
	BudgetEfficiency int
	TimeEfficiency   int
	Total            int
}

// EvaluateDatePlan scores a finished date against where it started.
// Budget efficiency is the surviving percentage of the initial budget
// (integer division); a zero initial budget scores 0 rather than
// dividing.
func EvaluateDatePlan(initial, final domain.DateState) Score {
	sc := Score{
		MoodScore: final.PartnerMood * 10,
	}
	if initial.Budget > 0 {
		sc.BudgetEfficiency = final.Budget * 100 / initial.Budget
	}
	if final.Time <= 22 {
		sc.TimeEfficiency = 50
	}
	sc.Total = sc.MoodScore + sc.BudgetEfficiency + sc.TimeEfficiency
	return sc
}
