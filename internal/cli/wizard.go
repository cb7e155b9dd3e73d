package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/rendezvous/internal/cli/formatter"
	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/planner"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// rendezvousHuhTheme returns a custom huh theme using the existing
// Gruvbox palette.
func rendezvousHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// scenarioInput is the wizard's result set.
type scenarioInput struct {
	hour    int
	budget  int
	mood    int
	weather string
	plan    string
}

// validateIntInRange accepts empty or an integer within [lo, hi].
func validateIntInRange(lo, hi int) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a number between %d and %d", lo, hi)
		}
		return nil
	}
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// parseIntOr parses s as an integer, returning fallback if s is empty.
// Used after huh validation has already ensured the string is valid.
func parseIntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// runScenarioWizard collects a scenario interactively, seeded with the
// flag values as defaults.
func runScenarioWizard(hour, budget, mood int, weather, plan string) (scenarioInput, error) {
	hourStr := strconv.Itoa(hour)
	budgetStr := strconv.Itoa(budget)
	moodStr := strconv.Itoa(mood)

	weatherOptions := make([]huh.Option[string], 0, len(domain.Weathers))
	for _, w := range domain.Weathers {
		weatherOptions = append(weatherOptions, huh.NewOption(string(w), string(w)))
	}

	planOptions := make([]huh.Option[string], 0, len(planner.Plans()))
	for _, p := range planner.Plans() {
		planOptions = append(planOptions, huh.NewOption(fmt.Sprintf("%s — %s", p.Name, p.Description), p.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Starting hour").
				Placeholder(hourStr).
				Value(&hourStr).
				Validate(validateIntInRange(14, 23)),
			huh.NewInput().
				Title("Budget").
				Placeholder(budgetStr).
				Value(&budgetStr).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Partner mood (1-10)").
				Placeholder(moodStr).
				Value(&moodStr).
				Validate(validateIntInRange(domain.MoodFloor, domain.MoodCeil)),
			huh.NewSelect[string]().
				Title("Weather").
				Options(weatherOptions...).
				Value(&weather),
			huh.NewSelect[string]().
				Title("Plan").
				Options(planOptions...).
				Value(&plan),
		),
	).WithTheme(rendezvousHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return scenarioInput{}, fmt.Errorf("scenario form: %w", err)
	}

	return scenarioInput{
		hour:    parseIntOr(hourStr, hour),
		budget:  parseIntOr(budgetStr, budget),
		mood:    parseIntOr(moodStr, mood),
		weather: weather,
		plan:    plan,
	}, nil
}
