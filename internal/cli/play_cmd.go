package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trashsort/internal/cli/formatter"
	"github.com/alexanderramin/trashsort/internal/clock"
	"github.com/alexanderramin/trashsort/internal/config"
	"github.com/alexanderramin/trashsort/internal/game"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// taskBuffer bounds countdown firings waiting for the UI loop.
const taskBuffer = 4

func newPlayCmd(app *App) *cobra.Command {
	cfg := app.Config
	var customize bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a timed sorting round in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return ErrNotInteractive
			}

			if customize {
				if err := setupForm(&cfg).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
						return nil
					}
					return fmt.Errorf("setup form: %w", err)
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			sched := clock.NewRealtime(taskBuffer)
			engine, err := game.NewEngine(app.roster(), cfg.Rules, sched, game.WithObserver(app.Observer))
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			defer engine.Close()

			if _, err := app.runProgram(newGameModel(engine, sched.Tasks(), cfg.FeedbackDelay)); err != nil {
				return fmt.Errorf("running game: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResult(engine.Snapshot()))
			return nil
		},
	}

	config.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().BoolVar(&customize, "customize", false, "Pick duration and feedback speed before playing")

	return cmd
}
