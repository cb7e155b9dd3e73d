package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/scenario"
	"github.com/stretchr/testify/assert"
)

func TestFormatState(t *testing.T) {
	s := domain.DateState{
		Time:        14,
		Location:    domain.LocationStation,
		PartnerMood: 7,
		Budget:      8000,
		Weather:     domain.WeatherSunny,
	}

	out := FormatState(s)
	assert.Contains(t, out, "14:00")
	assert.Contains(t, out, "station")
	assert.Contains(t, out, "mood 7/10")
	assert.Contains(t, out, "¤8000")
}

func TestFormatSimulation(t *testing.T) {
	initial := scenario.New(14, 8000, 7, domain.WeatherSunny)
	final := scenario.Run(initial)

	out := FormatSimulation("optimal", initial, final)
	assert.Contains(t, out, "PLAN: OPTIMAL")
	assert.Contains(t, out, "restaurant")
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "TOTAL")
}

func TestFormatBatch(t *testing.T) {
	results := scenario.Comprehensive()

	out := FormatBatch("optimal", results)
	assert.Contains(t, out, "BATCH: OPTIMAL")
	assert.Contains(t, out, "success rate")
	assert.Contains(t, out, "62%")
	assert.Equal(t, len(results)+6, strings.Count(out, "\n"),
		"header, table header, separator, one row per result, blank, rate")
}

func TestFormatHistory_Empty(t *testing.T) {
	out := FormatHistory(nil)
	assert.Contains(t, out, "no recorded runs")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"A", "LONGER"},
		[][]string{{"xxxx", "y"}, {"z", "wwwwww"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
}
