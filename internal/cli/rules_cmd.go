package cli

import (
	"fmt"

	"github.com/alexanderramin/trashsort/internal/cli/formatter"
	"github.com/alexanderramin/trashsort/internal/config"
	"github.com/spf13/cobra"
)

func newRulesCmd(app *App) *cobra.Command {
	cfg := app.Config

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the effective scoring and timing rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRules(cfg))
			return nil
		},
	}

	config.BindFlags(cmd.Flags(), &cfg)

	return cmd
}
