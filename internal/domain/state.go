package domain

// DateState is a snapshot of the date at one instant. States are plain
// values: every transition builds a new state from the old one's fields,
// so callers can hold on to earlier snapshots safely.
type DateState struct {
	// Time is the hour of day; scenarios start between 14 and 23.
	Time     int
	Location Location
	// PartnerMood is kept in [1, 10] by every transition that touches it.
	PartnerMood int
	// Budget in currency units; transitions never take it below zero.
	Budget  int
	Weather Weather
}

// MoodFloor and MoodCeil bound PartnerMood.
const (
	MoodFloor = 1
	MoodCeil  = 10
)
