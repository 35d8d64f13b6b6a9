// Package report reduces an event to exportable summaries: a flat row
// table for spreadsheets and a markdown summary for reading or capture.
package report

import (
	"io"
	"strconv"
	"time"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/shopspring/decimal"
)

// Column headers and fixed labels, as shown to the user.
const (
	HeaderSection  = "القسم"
	HeaderItem     = "البند"
	HeaderQuantity = "العدد"
	HeaderPrice    = "السعر"
	HeaderTotal    = "الإجمالي"

	SubtotalSuffix  = " - الإجمالي"
	GrandTotalLabel = "الإجمالي النهائي"
	SheetName       = "التكاليف"
)

// Headers is the header row of the flat table.
var Headers = []string{HeaderSection, HeaderItem, HeaderQuantity, HeaderPrice, HeaderTotal}

// RowKind tells exporters how to present a row.
type RowKind int

// Row kinds in the order they appear within a section.
const (
	ItemRow RowKind = iota
	SubtotalRow
	SpacerRow
	GrandTotalRow
)

// Row is one line of the flat table. Quantity and Price are only set on
// item rows.
type Row struct {
	Kind     RowKind
	Section  string
	Item     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// SectionSummary is a section with its derived total.
type SectionSummary struct {
	Title   string
	Total   decimal.Decimal
	Items   []model.CostItem // checked items only
	Skipped int              // unchecked items
}

// Report is a finalized snapshot of an event and its totals.
type Report struct {
	Title       string
	Type        model.EventType
	GeneratedAt time.Time
	Sections    []SectionSummary
	Rows        []Row
	GrandTotal  decimal.Decimal
}

// Exporter writes a report in some file format.
type Exporter interface {
	Export(w io.Writer, r Report) error
	// Ext is the file extension including the dot.
	Ext() string
}

// Project builds the report for e. For every section it emits one row per
// checked item, a subtotal row and a spacer; a grand total row comes last.
func Project(e model.Event, at time.Time) Report {
	r := Report{
		Title:       e.DisplayName(),
		Type:        e.Type,
		GeneratedAt: at,
		GrandTotal:  e.Total(),
	}
	for _, s := range e.Sections {
		sum := SectionSummary{Title: s.Title, Total: s.Total()}
		for _, it := range s.Items {
			if !it.IsChecked {
				sum.Skipped++
				continue
			}
			sum.Items = append(sum.Items, it)
			r.Rows = append(r.Rows, Row{
				Kind:     ItemRow,
				Section:  s.Title,
				Item:     it.Name,
				Quantity: it.Quantity,
				Price:    it.Price,
				Total:    it.Total,
			})
		}
		r.Sections = append(r.Sections, sum)
		r.Rows = append(r.Rows,
			Row{Kind: SubtotalRow, Section: s.Title + SubtotalSuffix, Total: sum.Total},
			Row{Kind: SpacerRow},
		)
	}
	r.Rows = append(r.Rows, Row{Kind: GrandTotalRow, Section: GrandTotalLabel, Total: r.GrandTotal})
	return r
}

// Filename returns the default export file name for a report.
func Filename(r Report, ex Exporter) string {
	return "event_costs_" + strconv.FormatInt(r.GeneratedAt.UnixMilli(), 10) + ex.Ext()
}
