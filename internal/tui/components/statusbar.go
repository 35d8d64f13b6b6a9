package components

import (
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the grand total on the right. A non-empty flash replaces the hints.
func RenderStatusBar(width int, hints, flash string, flashErr bool, total string) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)
	totalStyle := lipgloss.NewStyle().
		Foreground(t.Green).
		Background(t.Surface).
		Bold(true)

	left := " " + hints
	if flash != "" {
		fg := t.Accent
		if flashErr {
			fg = t.Red
		}
		left = lipgloss.NewStyle().Foreground(fg).Background(t.Surface).Render(" " + flash)
	}
	right := totalStyle.Render(total + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return barStyle.Render(left + strings.Repeat(" ", padding) + right)
}
