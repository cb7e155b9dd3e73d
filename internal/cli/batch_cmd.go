package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rendezvous/internal/cli/formatter"
	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/planner"
	"github.com/alexanderramin/rendezvous/internal/scenario"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newBatchCmd(app *App) *cobra.Command {
	var (
		planName string
		record   bool
		history  int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run the comprehensive scenario suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("history") {
				return showHistory(app, history)
			}

			plan, err := planner.Lookup(planName)
			if err != nil {
				return err
			}

			results := scenario.RunAll(scenario.Suite(), plan.Apply)
			fmt.Print(formatter.FormatBatch(plan.Name, results))

			if !record {
				return nil
			}

			repo, err := app.History()
			if err != nil {
				return err
			}
			succeeded := 0
			for _, r := range results {
				if r.Successful {
					succeeded++
				}
			}
			run := &domain.BatchRun{
				ID:         uuid.New().String(),
				Plan:       plan.Name,
				Scenarios:  len(results),
				Successes:  succeeded,
				SuccessPct: scenario.SuccessPercentage(results),
				CreatedAt:  time.Now().UTC(),
			}
			if err := repo.Create(context.Background(), run); err != nil {
				return fmt.Errorf("recording batch run: %w", err)
			}
			fmt.Println(formatter.Dim(fmt.Sprintf("recorded as %s", run.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&planName, "plan", planner.DefaultPlan, "Plan to run the suite through")
	cmd.Flags().BoolVar(&record, "record", false, "Persist the run summary to the history database")
	cmd.Flags().IntVar(&history, "history", 10, "Show the N most recent recorded runs instead of running")

	return cmd
}

func showHistory(app *App, limit int) error {
	repo, err := app.History()
	if err != nil {
		return err
	}
	runs, err := repo.ListRecent(context.Background(), limit)
	if err != nil {
		return err
	}
	fmt.Print(formatter.FormatHistory(runs))
	return nil
}
