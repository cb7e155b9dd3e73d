package scenario

import (
	"testing"

	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/planner"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New(14, 8000, 7, domain.WeatherSunny)

	assert.Equal(t, domain.LocationStation, s.Location, "dates start at the station")
	assert.Equal(t, 14, s.Time)
	assert.Equal(t, 8000, s.Budget)
	assert.Equal(t, 7, s.PartnerMood)
	assert.Equal(t, domain.WeatherSunny, s.Weather)
}

func TestRun_UsesOptimalCourse(t *testing.T) {
	s := New(14, 8000, 7, domain.WeatherSunny)
	assert.Equal(t, planner.OptimalCourse(s), Run(s))
}

func TestComprehensive_Deterministic(t *testing.T) {
	first := Comprehensive()
	second := Comprehensive()

	assert.Equal(t, first, second, "same suite, same results, every time")
	assert.Len(t, first, len(Suite()))
}

func TestComprehensive_KnownVerdicts(t *testing.T) {
	results := Comprehensive()

	// The generous sunny/cloudy/rainy-dinner scenarios pass; the broke,
	// stormy, and exact-budget ones do not.
	wantSuccess := []bool{true, true, true, true, true, false, false, false}
	got := make([]bool, len(results))
	for i, r := range results {
		got[i] = r.Successful
	}
	assert.Equal(t, wantSuccess, got)
	assert.Equal(t, 62, SuccessPercentage(results), "5 of 8, truncated")
}

func TestRunAll_OtherPlan(t *testing.T) {
	results := RunAll(Suite(), planner.WeatherAdaptivePlan)
	assert.Len(t, results, len(Suite()))
	for _, r := range results {
		assert.Equal(t, r.Initial.Weather, r.Final.Weather, "weather is exogenous")
	}
}

func TestSuccessPercentage(t *testing.T) {
	assert.Equal(t, 0, SuccessPercentage(nil), "empty batch")
	assert.Equal(t, 0, SuccessPercentage([]Result{}))

	all := []Result{{Successful: true}, {Successful: true}}
	assert.Equal(t, 100, SuccessPercentage(all))

	third := []Result{{Successful: true}, {}, {}}
	assert.Equal(t, 33, SuccessPercentage(third), "truncating division")
}
