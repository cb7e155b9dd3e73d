package cli

import (
	"fmt"

	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/planner"
	"github.com/alexanderramin/rendezvous/internal/scenario"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	var (
		hour       int
		budget     int
		mood       int
		weatherStr string
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Step a date through transitions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("explore requires a terminal")
			}

			weather, err := domain.ParseWeather(weatherStr)
			if err != nil {
				return err
			}
			if mood < domain.MoodFloor || mood > domain.MoodCeil {
				return fmt.Errorf("mood must be between %d and %d", domain.MoodFloor, domain.MoodCeil)
			}

			initial := scenario.New(hour, budget, mood, weather)
			m := newExploreModel(initial, planner.Plans())

			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&hour, "time", 14, "Starting hour (24h clock)")
	cmd.Flags().IntVar(&budget, "budget", 8000, "Starting budget in currency units")
	cmd.Flags().IntVar(&mood, "mood", 7, "Partner mood, 1-10")
	cmd.Flags().StringVar(&weatherStr, "weather", "sunny", "Weather: sunny, cloudy, rainy, or stormy")

	return cmd
}
