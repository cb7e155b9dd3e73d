package domain

import "fmt"

type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherStormy Weather = "stormy"
)

type Location string

const (
	LocationStation    Location = "station"
	LocationCafe       Location = "cafe"
	LocationRestaurant Location = "restaurant"
	LocationCinema     Location = "cinema"
	LocationPark       Location = "park"
)

// Weathers is the canonical display order for weather conditions.
var Weathers = []Weather{WeatherSunny, WeatherCloudy, WeatherRainy, WeatherStormy}

// ParseWeather converts a user-supplied string into a Weather.
func ParseWeather(s string) (Weather, error) {
	switch Weather(s) {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherStormy:
		return Weather(s), nil
	}
	return "", fmt.Errorf("unknown weather %q (want sunny, cloudy, rainy, or stormy)", s)
}

// IsStormy reports whether the weather rules out every venue except shelter.
func IsStormy(w Weather) bool {
	return w == WeatherStormy
}

// WeatherImpact is the mood delta a partner experiences outdoors
// under the given weather.
func WeatherImpact(w Weather) int {
	switch w {
	case WeatherSunny:
		return 2
	case WeatherCloudy:
		return 0
	case WeatherRainy:
		return -1
	case WeatherStormy:
		return -3
	default:
		return 0
	}
}
