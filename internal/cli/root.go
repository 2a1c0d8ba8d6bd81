package cli

import (
	"github.com/alexanderramin/trashsort/internal/config"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/alexanderramin/trashsort/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the configuration and collaborators used by CLI commands.
type App struct {
	Config   config.Config
	Roster   []domain.Item
	Observer game.Observer

	// IsInteractive reports whether stdin is a terminal. Nil means yes.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion. Nil runs a real
	// full-screen program.
	RunProgram func(m tea.Model) (tea.Model, error)
}

// NewRootCmd creates the top-level "trashsort" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "trashsort",
		Short:         "Sort the trash into the right bins before time runs out",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlayCmd(app),
		newRosterCmd(app),
		newRulesCmd(app),
	)

	return root
}

func (a *App) roster() []domain.Item {
	if len(a.Roster) > 0 {
		return a.Roster
	}
	return domain.DefaultRoster()
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

func (a *App) runProgram(m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}
