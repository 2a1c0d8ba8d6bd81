package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trashsort/internal/config"
	"github.com/alexanderramin/trashsort/internal/domain"
)

// FormatRoster lists the items a session plays with and the bin each one
// belongs in.
func FormatRoster(items []domain.Item) string {
	var b strings.Builder
	b.WriteString(Header("Items"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(items))
	for i := range items {
		it := &items[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", it.ID),
			it.Icon,
			Bold(it.Label),
			CategoryIndicator(it.Category()),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "", "ITEM", "BIN"}, rows))

	counts := domain.CountByCategory(items)
	parts := make([]string, 0, 3)
	for _, c := range domain.Categories() {
		parts = append(parts, CategoryStyle(c).Render(fmt.Sprintf("%d %s", counts[c], c)))
	}
	b.WriteString("\n" + strings.Join(parts, Dim(" · ")) + "\n")
	return b.String()
}

// FormatRules prints the effective game settings.
func FormatRules(cfg config.Config) string {
	var b strings.Builder
	b.WriteString(Header("Rules"))
	b.WriteString("\n")

	logTo := Dim("off")
	if cfg.LogFile != "" {
		logTo = cfg.LogFile
	}
	rows := [][]string{
		{"Duration", fmt.Sprintf("%ds", cfg.Rules.Duration)},
		{"Tick", cfg.Rules.TickInterval.String()},
		{"Correct drop", StyleGreen.Render(fmt.Sprintf("+%d", cfg.Rules.Reward))},
		{"Wrong drop", StyleRed.Render(fmt.Sprintf("-%d", cfg.Rules.Penalty)) + Dim(" (never below 0)")},
		{"Feedback", cfg.FeedbackDelay.String()},
		{"Event log", logTo},
	}
	b.WriteString(RenderTable([]string{"SETTING", "VALUE"}, rows))
	return b.String()
}
