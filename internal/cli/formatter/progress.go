package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCountdown renders the time bar like [██████░░░░] 36s.
// The bar drains as time runs out: green above two thirds, yellow above
// one third, red below.
func RenderCountdown(left, total, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if total > 0 {
		pct = float64(left) / float64(total)
	}
	pct = min(max(pct, 0), 1)

	filled := int(pct * float64(width))
	if left > 0 && filled == 0 {
		filled = 1
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %2ds", style.Render(bar), max(left, 0))
}
