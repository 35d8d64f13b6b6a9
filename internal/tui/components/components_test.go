package components

import (
	"strings"
	"testing"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(10, 3)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 10 {
		t.Fatalf("sum(LayoutRow(10, 3)) = %d, want 10", sum)
	}
	if widths[0] != 4 || widths[2] != 3 {
		t.Errorf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow(10, 0) should be nil")
	}
}

func TestCardRowPadsToTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "A", 22, false)
	tall := ContentCard("Tall", "1\n2\n3\n4\n5", 22, true)

	joined := CardRow([]string{tall, short})
	lines := strings.Split(joined, "\n")
	if want := lipgloss.Height(tall); len(lines) != want {
		t.Fatalf("joined height = %d, want %d", len(lines), want)
	}
	shortLines := lipgloss.Height(short)
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no background styling: %q", i, lines[i])
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "الإجمالي", Value: "£500.00"},
		{Label: "البنود", Value: "3/4"},
	}, 60)
	if got := lipgloss.Width(row); got != 60 {
		t.Errorf("row width = %d, want 60", got)
	}
}

func TestStatusBarShowsTotal(t *testing.T) {
	bar := RenderStatusBar(60, "? help", "", false, "£42.00")
	if got := lipgloss.Width(bar); got != 60 {
		t.Errorf("status bar width = %d, want 60", got)
	}
	if !strings.Contains(bar, "£42.00") {
		t.Errorf("status bar missing total: %q", bar)
	}
}

func TestProgressBar(t *testing.T) {
	bar := ProgressBar(1, 4, 8)
	if !strings.Contains(bar, "1/4") {
		t.Errorf("progress bar missing count: %q", bar)
	}
	if strings.Count(bar, "█") != 2 {
		t.Errorf("progress bar filled cells = %d, want 2", strings.Count(bar, "█"))
	}
}
