package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/alexanderramin/trashsort/internal/game"
	"github.com/charmbracelet/lipgloss"
)

const itemCellWidth = 16

var cellStyle = lipgloss.NewStyle().
	Width(itemCellWidth).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Align(lipgloss.Center)

var binStyle = lipgloss.NewStyle().
	Width(itemCellWidth).
	Border(lipgloss.ThickBorder()).
	Align(lipgloss.Center)

// ItemCell renders one item on the table. Hidden items keep their slot
// as blank space so the row does not shift.
func ItemCell(v game.ItemView, selected bool) string {
	style := cellStyle
	if !v.Visible {
		return style.Border(lipgloss.HiddenBorder()).Render(Dim("·") + "\n ")
	}

	switch v.State {
	case domain.ItemDragging:
		style = style.BorderForeground(ColorPurple)
	case domain.ItemCorrect:
		style = style.BorderForeground(ColorGreen)
	case domain.ItemIncorrect:
		style = style.BorderForeground(ColorRed)
	default:
		if selected {
			style = style.BorderForeground(ColorHeader)
		}
	}

	label := v.Icon + " " + v.Label
	if selected {
		label = StyleBold.Render(label)
	}
	lines := []string{label}
	if pill := StatePill(v.State); pill != "" {
		lines = append(lines, pill)
	} else {
		lines = append(lines, " ")
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderItems lays the item cells out in one row with a cursor marker
// under the selected slot.
func RenderItems(items []game.ItemView, cursor int) string {
	cells := make([]string, len(items))
	marks := make([]string, len(items))
	for i, it := range items {
		cells[i] = ItemCell(it, i == cursor)
		mark := " "
		if i == cursor && it.Visible {
			mark = StyleHeader.Render("▲")
		}
		marks[i] = lipgloss.PlaceHorizontal(lipgloss.Width(cells[i]), lipgloss.Center, mark)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		lipgloss.JoinHorizontal(lipgloss.Top, marks...),
	)
}

// RenderBins draws the three drop targets with their number keys. While
// an item is held the bins are highlighted.
func RenderBins(holding bool) string {
	cats := domain.Categories()
	bins := make([]string, len(cats))
	for i, c := range cats {
		style := binStyle.BorderForeground(ColorDim)
		if holding {
			style = style.BorderForeground(CategoryStyle(c).GetForeground())
		}
		bins[i] = style.Render(fmt.Sprintf("%s\n%s", Dim(fmt.Sprintf("[%d]", i+1)), CategoryIndicator(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, bins...)
}

// FormatScoreLine renders the score and countdown bar on one line.
func FormatScoreLine(snap game.Snapshot, barWidth int) string {
	return fmt.Sprintf("%s %s    %s %s",
		Dim("Score"), Bold(fmt.Sprintf("%d", snap.Score)),
		Dim("Time"), RenderCountdown(snap.TimeLeft, snap.Duration, barWidth),
	)
}

// FormatResult summarizes a finished or abandoned session.
func FormatResult(snap game.Snapshot) string {
	sorted := 0
	for _, it := range snap.Items {
		if !it.Visible {
			sorted++
		}
	}
	switch snap.Phase {
	case domain.PhaseEnded:
		return fmt.Sprintf("%s Final score: %s (%d/%d sorted)\n",
			StyleHeader.Render("Time's up!"), Bold(fmt.Sprintf("%d", snap.Score)), sorted, len(snap.Items))
	case domain.PhaseActive:
		return fmt.Sprintf("%s Score: %s with %ds left\n",
			Dim("Game abandoned."), Bold(fmt.Sprintf("%d", snap.Score)), snap.TimeLeft)
	default:
		return Dim("No game played.") + "\n"
	}
}
