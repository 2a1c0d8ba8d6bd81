package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/trashsort/internal/cli"
	"github.com/alexanderramin/trashsort/internal/config"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/alexanderramin/trashsort/internal/game"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Event log goes to a file; the terminal belongs to the game screen.
	var observer game.Observer = game.NoopObserver{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening event log: %w", err)
		}
		defer f.Close()
		observer = game.NewLogObserver(f)
	}

	app := &cli.App{
		Config:   cfg,
		Roster:   domain.DefaultRoster(),
		Observer: observer,
	}

	// Detect interactive terminal for the play command.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
