package cli

import (
	"fmt"

	"github.com/alexanderramin/trashsort/internal/cli/formatter"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/spf13/cobra"
)

func newRosterCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List the items and the bin each belongs in",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.roster()
			if category != "" {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				items = filterByCategory(items, c)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoster(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "bin", "", "Only show items for one bin (organic, plastic, paper)")

	return cmd
}

func filterByCategory(items []domain.Item, c domain.Category) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for i := range items {
		if items[i].Category() == c {
			out = append(out, items[i])
		}
	}
	return out
}
