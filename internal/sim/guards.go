package sim

import "github.com/alexanderramin/rendezvous/internal/domain"

// Clamp bounds v to the closed interval [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MoodChange applies delta to mood and saturates at the [1, 10] bounds.
func MoodChange(mood, delta int) int {
	return Clamp(mood+delta, domain.MoodFloor, domain.MoodCeil)
}

// CanGoCafe: the cafe works as an opener — early enough, enough budget,
// and no storm.
func CanGoCafe(s domain.DateState) bool {
	return s.Time <= 16 && s.Budget >= 1000 && !domain.IsStormy(s.Weather)
}

// CanGoRestaurant: dinner territory — evening, a real budget, no storm.
func CanGoRestaurant(s domain.DateState) bool {
	return s.Time >= 18 && s.Budget >= 3000 && !domain.IsStormy(s.Weather)
}

// CanGoOutdoor reports whether outdoor venues are viable at all.
func CanGoOutdoor(w domain.Weather, time int) bool {
	return !domain.IsStormy(w) && time >= 14 && time <= 20
}
