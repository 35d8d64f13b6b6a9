package tui

import (
	"fmt"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type rowKind int

const (
	sectionRow rowKind = iota
	itemRow
)

// row is one selectable line of the event list.
type row struct {
	kind      rowKind
	sectionID string
	itemID    string
}

// buildRows flattens e into selectable rows. Items of collapsed sections
// are hidden.
func buildRows(e model.Event) []row {
	var rows []row
	for _, s := range e.Sections {
		rows = append(rows, row{kind: sectionRow, sectionID: s.ID})
		if s.IsCollapsed {
			continue
		}
		for _, it := range s.Items {
			rows = append(rows, row{kind: itemRow, sectionID: s.ID, itemID: it.ID})
		}
	}
	return rows
}

// indexOf returns the position of the row matching sectionID/itemID, or -1.
func indexOf(rows []row, sectionID, itemID string) int {
	for i, r := range rows {
		if r.sectionID == sectionID && r.itemID == itemID {
			return i
		}
	}
	return -1
}

// renderRows renders rows[offset:offset+height] of e at the given width.
func renderRows(e model.Event, rows []row, cursor, offset, height, width int) string {
	t := theme.Active

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	offStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Strikethrough(true)
	manualStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	sections := make(map[string]model.Section, len(e.Sections))
	for _, s := range e.Sections {
		sections[s.ID] = s
	}

	var lines []string
	for i := offset; i < len(rows) && i < offset+height; i++ {
		r := rows[i]
		s := sections[r.sectionID]

		var left, right string
		switch r.kind {
		case sectionRow:
			fold := "▾"
			if s.IsCollapsed {
				fold = "▸"
			}
			checked, all := 0, len(s.Items)
			for _, it := range s.Items {
				if it.IsChecked {
					checked++
				}
			}
			left = sectionStyle.Render(fmt.Sprintf("%s %s", fold, s.Title)) +
				mutedStyle.Render(fmt.Sprintf("  (%d/%d)", checked, all))
			right = sectionStyle.Render(cli.FormatMoney(s.Total()))

		case itemRow:
			var it model.CostItem
			for _, c := range s.Items {
				if c.ID == r.itemID {
					it = c
					break
				}
			}
			box, style := "[x]", itemStyle
			if !it.IsChecked {
				box, style = "[ ]", offStyle
			}
			name := it.Name
			if name == "" {
				name = "—"
			}
			left = mutedStyle.Render("   "+box+" ") + style.Render(name)
			calc := fmt.Sprintf("%s × %s = ", cli.FormatQuantity(it.Quantity), cli.FormatMoney(it.Price))
			if it.IsManualTotal {
				right = mutedStyle.Render("يدوي ") + manualStyle.Render(cli.FormatMoney(it.Total))
			} else {
				right = mutedStyle.Render(calc) + style.Render(cli.FormatMoney(it.Total))
			}
		}

		gap := width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		line := left + mutedStyle.Render(strings.Repeat(" ", gap)) + right

		if i == cursor {
			line = lipgloss.NewStyle().
				Background(t.SurfaceHover).
				Width(width).
				Render(stripBackground(left) + strings.Repeat(" ", gap) + stripBackground(right))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// stripBackground drops styling so the selected row can be re-rendered
// on the highlight background.
func stripBackground(s string) string {
	return ansi.Strip(s)
}
