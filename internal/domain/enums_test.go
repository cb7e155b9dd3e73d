package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeather(t *testing.T) {
	for _, w := range Weathers {
		parsed, err := ParseWeather(string(w))
		assert.NoError(t, err)
		assert.Equal(t, w, parsed)
	}

	_, err := ParseWeather("snowy")
	assert.Error(t, err)
}

func TestWeatherImpact(t *testing.T) {
	assert.Equal(t, 2, WeatherImpact(WeatherSunny))
	assert.Equal(t, 0, WeatherImpact(WeatherCloudy))
	assert.Equal(t, -1, WeatherImpact(WeatherRainy))
	assert.Equal(t, -3, WeatherImpact(WeatherStormy))
}

func TestIsStormy(t *testing.T) {
	assert.True(t, IsStormy(WeatherStormy))
	assert.False(t, IsStormy(WeatherSunny))
	assert.False(t, IsStormy(WeatherCloudy))
	assert.False(t, IsStormy(WeatherRainy))
}
