// Package sim holds the primitive date transitions: pure functions from
// one DateState to the next. A transition whose guard fails returns its
// input unchanged — the no-op is the contract, not an error condition,
// and composite plans rely on it when they dispatch into a primitive
// without re-checking every precondition.
package sim

import "github.com/alexanderramin/rendezvous/internal/domain"

// GoToCafe takes the couple to the cafe: 1000 spent, one hour, a small
// mood lift.
func GoToCafe(s domain.DateState) domain.DateState {
	if !CanGoCafe(s) {
		return s
	}
	s.Location = domain.LocationCafe
	s.Budget -= 1000
	s.PartnerMood = MoodChange(s.PartnerMood, 1)
	s.Time += 1
	return s
}

// GoToRestaurant is the expensive centerpiece: 3000 spent, two hours,
// the biggest mood lift of any venue.
func GoToRestaurant(s domain.DateState) domain.DateState {
	if !CanGoRestaurant(s) {
		return s
	}
	s.Location = domain.LocationRestaurant
	s.Budget -= 3000
	s.PartnerMood = MoodChange(s.PartnerMood, 3)
	s.Time += 2
	return s
}

// GoToCinema is the mid-priced evening option.
func GoToCinema(s domain.DateState) domain.DateState {
	if !(s.Time >= 18 && s.Budget >= 2000 && !domain.IsStormy(s.Weather)) {
		return s
	}
	s.Location = domain.LocationCinema
	s.Budget -= 2000
	s.PartnerMood = MoodChange(s.PartnerMood, 2)
	s.Time += 2
	return s
}

// GoToPark costs nothing; the mood swing depends entirely on the
// weather (impact + 1 for the walk itself).
func GoToPark(s domain.DateState) domain.DateState {
	if domain.IsStormy(s.Weather) || s.Time > 18 {
		return s
	}
	s.Location = domain.LocationPark
	s.PartnerMood = MoodChange(s.PartnerMood, domain.WeatherImpact(s.Weather)+1)
	s.Time += 1
	return s
}

// EmergencyShelter always applies: retreat to the station, eat the mood
// hit and up to 500 in taxi fare. Budget saturates at zero.
func EmergencyShelter(s domain.DateState) domain.DateState {
	s.Location = domain.LocationStation
	s.PartnerMood = MoodChange(s.PartnerMood, -2)
	if s.Budget > 500 {
		s.Budget -= 500
	} else {
		s.Budget = 0
	}
	s.Time += 1
	return s
}
