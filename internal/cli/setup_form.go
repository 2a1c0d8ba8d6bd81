package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/trashsort/internal/cli/formatter"
	"github.com/alexanderramin/trashsort/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trashsortHuhTheme returns a Gruvbox-styled huh theme matching the
// formatter palette.
func trashsortHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// setupForm asks for session length and feedback speed, writing the
// choices into cfg when the form completes.
func setupForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Round length").
				Options(durationOptions(cfg.Rules.Duration)...).
				Value(&cfg.Rules.Duration),
			huh.NewSelect[time.Duration]().
				Title("Feedback speed").
				Description("How long the correct/wrong animation plays").
				Options(feedbackOptions(cfg.FeedbackDelay)...).
				Value(&cfg.FeedbackDelay),
		),
	).WithTheme(trashsortHuhTheme()).WithShowHelp(false)
}

// durationOptions lists the stock round lengths, adding current when it is
// not one of them so the prefilled value stays selectable.
func durationOptions(current int) []huh.Option[int] {
	choices := config.DurationChoices
	if !slices.Contains(choices, current) {
		choices = append([]int{current}, choices...)
	}
	opts := make([]huh.Option[int], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(fmt.Sprintf("%d seconds", c), c)
	}
	return opts
}

func feedbackOptions(current time.Duration) []huh.Option[time.Duration] {
	labels := []string{"fast", "normal", "slow"}
	opts := make([]huh.Option[time.Duration], 0, len(config.FeedbackChoices)+1)
	found := false
	for i, d := range config.FeedbackChoices {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", labels[i], d), d))
		found = found || d == current
	}
	if !found {
		opts = append([]huh.Option[time.Duration]{huh.NewOption(fmt.Sprintf("current (%s)", current), current)}, opts...)
	}
	return opts
}

