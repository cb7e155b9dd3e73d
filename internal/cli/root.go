package cli

import (
	"github.com/alexanderramin/rendezvous/internal/repository"
	"github.com/spf13/cobra"
)

// App holds the wiring CLI commands need beyond the pure engine: the
// lazily-opened run-history repository and the TTY check that gates
// interactive modes.
type App struct {
	// History opens the run-history repository on first use. Commands
	// that never touch history never open the database.
	History func() (repository.RunRepo, error)

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "rendezvous" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rendezvous",
		Short: "Deterministic date-planning simulator",
	}

	root.AddCommand(
		newSimulateCmd(app),
		newPlansCmd(app),
		newBatchCmd(app),
		newExploreCmd(app),
	)

	return root
}
