package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the bin color for a category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryOrganic:
		return StyleGreen
	case domain.CategoryPlastic:
		return StyleYellow
	case domain.CategoryPaper:
		return StyleBlue
	default:
		return StyleDim
	}
}

// CategoryIndicator returns a colored label such as "● PLASTIC".
func CategoryIndicator(c domain.Category) string {
	return CategoryStyle(c).Render("● " + strings.ToUpper(string(c)))
}

// StatePill renders an item state as a short colored tag.
func StatePill(s domain.ItemState) string {
	switch s {
	case domain.ItemDragging:
		return StylePurple.Render("[holding]")
	case domain.ItemCorrect:
		return StyleGreen.Render("[correct]")
	case domain.ItemIncorrect:
		return StyleRed.Render("[wrong]")
	default:
		return ""
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
