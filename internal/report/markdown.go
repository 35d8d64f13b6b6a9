package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
)

// Markdown exports a human-readable summary.
type Markdown struct {
	// Money formats amounts; two fixed decimals when nil.
	Money func(decimal.Decimal) string
}

// Ext implements Exporter.
func (Markdown) Ext() string { return ".md" }

// Export implements Exporter.
func (m Markdown) Export(w io.Writer, r Report) error {
	_, err := io.WriteString(w, m.String(r))
	return err
}

func (m Markdown) money(d decimal.Decimal) string {
	if m.Money == nil {
		return d.StringFixed(2)
	}
	return m.Money(d)
}

// String renders r as markdown.
func (m Markdown) String(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# حساب تكلفة: %s\n\n", escape(r.Title))

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", escape(s.Title))
		if len(s.Items) == 0 {
			b.WriteString("_لا توجد بنود_\n\n")
		} else {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", HeaderItem, HeaderQuantity, HeaderPrice, HeaderTotal)
			b.WriteString("|---|---:|---:|---:|\n")
			for _, it := range s.Items {
				fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
					escape(it.Name), it.Quantity.String(), m.money(it.Price), m.money(it.Total))
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**%s:** %s\n\n", HeaderTotal, m.money(s.Total))
	}

	fmt.Fprintf(&b, "---\n\n**%s:** %s\n", GrandTotalLabel, m.money(r.GrandTotal))
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// Render pretty-prints markdown for a terminal of the given width.
func Render(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
