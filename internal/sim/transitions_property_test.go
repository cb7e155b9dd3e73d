package sim

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/stretchr/testify/assert"
)

func randomState(rng *rand.Rand) domain.DateState {
	locations := []domain.Location{
		domain.LocationStation, domain.LocationCafe, domain.LocationRestaurant,
		domain.LocationCinema, domain.LocationPark,
	}
	return domain.DateState{
		Time:        rng.Intn(12) + 13, // 13–24, deliberately past the nominal domain
		Location:    locations[rng.Intn(len(locations))],
		PartnerMood: rng.Intn(10) + 1,
		Budget:      rng.Intn(12000),
		Weather:     domain.Weathers[rng.Intn(len(domain.Weathers))],
	}
}

// TestTransitions_Invariant_MoodStaysInBounds property-tests the core
// mood invariant: every transition leaves PartnerMood in [1, 10].
func TestTransitions_Invariant_MoodStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	transitions := map[string]func(domain.DateState) domain.DateState{
		"cafe":       GoToCafe,
		"restaurant": GoToRestaurant,
		"cinema":     GoToCinema,
		"park":       GoToPark,
		"shelter":    EmergencyShelter,
	}

	for trial := 0; trial < 500; trial++ {
		s := randomState(rng)
		for name, f := range transitions {
			got := f(s)
			assert.GreaterOrEqual(t, got.PartnerMood, domain.MoodFloor,
				"trial %d %s: mood below floor", trial, name)
			assert.LessOrEqual(t, got.PartnerMood, domain.MoodCeil,
				"trial %d %s: mood above ceiling", trial, name)
		}
	}
}

// TestTransitions_Invariant_BudgetNeverNegative checks the saturating
// subtraction policy on every transition.
func TestTransitions_Invariant_BudgetNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 500; trial++ {
		s := randomState(rng)

		assert.GreaterOrEqual(t, GoToCafe(s).Budget, 0, "trial %d cafe", trial)
		assert.GreaterOrEqual(t, GoToRestaurant(s).Budget, 0, "trial %d restaurant", trial)
		assert.GreaterOrEqual(t, GoToCinema(s).Budget, 0, "trial %d cinema", trial)
		assert.Equal(t, s.Budget, GoToPark(s).Budget, "trial %d park never spends", trial)

		want := s.Budget - 500
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, EmergencyShelter(s).Budget, "trial %d shelter", trial)
	}
}

// TestGoToCafe_Invariant_TimeMonotonic: time never goes backwards, and
// stays equal exactly when the guard fails.
func TestGoToCafe_Invariant_TimeMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 500; trial++ {
		s := randomState(rng)
		got := GoToCafe(s)

		assert.GreaterOrEqual(t, got.Time, s.Time, "trial %d", trial)
		if CanGoCafe(s) {
			assert.Equal(t, s.Time+1, got.Time, "trial %d: guard held", trial)
		} else {
			assert.Equal(t, s, got, "trial %d: failed guard must be identity", trial)
		}
	}
}

// TestGoToRestaurant_Invariant_BudgetNonIncreasing covers both the
// applied and no-op branches.
func TestGoToRestaurant_Invariant_BudgetNonIncreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(123))

	for trial := 0; trial < 500; trial++ {
		s := randomState(rng)
		assert.LessOrEqual(t, GoToRestaurant(s).Budget, s.Budget, "trial %d", trial)
	}
}

// TestEmergencyShelter_Invariant_AlwaysStation: shelter ends at the
// station from any state.
func TestEmergencyShelter_Invariant_AlwaysStation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 500; trial++ {
		s := randomState(rng)
		assert.Equal(t, domain.LocationStation, EmergencyShelter(s).Location, "trial %d", trial)
	}
}
