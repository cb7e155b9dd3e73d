package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/rendezvous/internal/cli"
	"github.com/alexanderramin/rendezvous/internal/db"
	"github.com/alexanderramin/rendezvous/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}

	// History DB path: env var or default ~/.rendezvous/rendezvous.db.
	// Opened lazily so plain simulations never touch the filesystem.
	app.History = func() (repository.RunRepo, error) {
		dbPath := os.Getenv("RENDEZVOUS_DB")
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("finding home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".rendezvous", "rendezvous.db")
		}
		database, err := db.OpenDB(dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening history database: %w", err)
		}
		return repository.NewSQLiteRunRepo(database), nil
	}

	// Detect interactive terminal for the wizard and explorer.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
