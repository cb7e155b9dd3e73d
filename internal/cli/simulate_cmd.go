package cli

import (
	"fmt"

	"github.com/alexanderramin/rendezvous/internal/cli/formatter"
	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/planner"
	"github.com/alexanderramin/rendezvous/internal/scenario"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	var (
		hour        int
		budget      int
		mood        int
		weatherStr  string
		planName    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one plan against a scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				in, err := runScenarioWizard(hour, budget, mood, weatherStr, planName)
				if err != nil {
					return err
				}
				hour, budget, mood, weatherStr, planName = in.hour, in.budget, in.mood, in.weather, in.plan
			}

			weather, err := domain.ParseWeather(weatherStr)
			if err != nil {
				return err
			}
			if mood < domain.MoodFloor || mood > domain.MoodCeil {
				return fmt.Errorf("mood must be between %d and %d", domain.MoodFloor, domain.MoodCeil)
			}
			if budget < 0 {
				return fmt.Errorf("budget must be non-negative")
			}

			plan, err := planner.Lookup(planName)
			if err != nil {
				return err
			}

			initial := scenario.New(hour, budget, mood, weather)
			final := plan.Apply(initial)

			fmt.Print(formatter.FormatSimulation(plan.Name, initial, final))
			return nil
		},
	}

	cmd.Flags().IntVar(&hour, "time", 14, "Starting hour (24h clock)")
	cmd.Flags().IntVar(&budget, "budget", 8000, "Starting budget in currency units")
	cmd.Flags().IntVar(&mood, "mood", 7, "Partner mood, 1-10")
	cmd.Flags().StringVar(&weatherStr, "weather", "sunny", "Weather: sunny, cloudy, rainy, or stormy")
	cmd.Flags().StringVar(&planName, "plan", planner.DefaultPlan, "Plan to run (see 'rendezvous plans')")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Build the scenario with an interactive form")

	return cmd
}
