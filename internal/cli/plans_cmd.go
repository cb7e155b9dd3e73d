package cli

import (
	"fmt"

	"github.com/alexanderramin/rendezvous/internal/cli/formatter"
	"github.com/alexanderramin/rendezvous/internal/planner"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the built-in date plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			var names, descriptions []string
			for _, p := range planner.Plans() {
				names = append(names, p.Name)
				descriptions = append(descriptions, p.Description)
			}
			fmt.Print(formatter.FormatPlans(names, descriptions))
			return nil
		},
	}
}
