package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/eval"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// OutcomeIndicator returns a colored outcome string such as "● SUCCESS".
func OutcomeIndicator(o eval.Outcome) string {
	switch o {
	case eval.OutcomeSuccess:
		return StyleGreen.Render("● SUCCESS")
	case eval.OutcomeFailed:
		return StyleYellow.Render("● FAILED")
	case eval.OutcomeDisaster:
		return StyleRed.Render("● DISASTER")
	case eval.OutcomeRuined:
		return StyleRed.Render("● RUINED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// WeatherBadge renders a weather condition with a matching color.
func WeatherBadge(w domain.Weather) string {
	switch w {
	case domain.WeatherSunny:
		return StyleYellow.Render("sunny")
	case domain.WeatherCloudy:
		return StyleDim.Render("cloudy")
	case domain.WeatherRainy:
		return StyleBlue.Render("rainy")
	case domain.WeatherStormy:
		return StyleRed.Render("stormy")
	default:
		return StyleDim.Render(string(w))
	}
}

// MoodStyle maps a partner mood to a traffic-light style.
func MoodStyle(mood int) lipgloss.Style {
	switch {
	case mood >= 7:
		return StyleGreen
	case mood >= 4:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
