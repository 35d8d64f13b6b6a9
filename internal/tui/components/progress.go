package components

import (
	"fmt"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar for done/all with a count suffix.
// Used for how many items are checked.
func ProgressBar(done, all, width int) string {
	t := theme.Active
	if width < 1 {
		width = 1
	}

	pct := 0.0
	if all > 0 {
		pct = float64(done) / float64(all)
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := t.Accent
	if done == all && all > 0 {
		barColor = t.Green
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))
	b.WriteString(countStyle.Render(fmt.Sprintf(" %d/%d", done, all)))
	return b.String()
}
