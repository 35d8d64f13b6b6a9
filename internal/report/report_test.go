package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleEvent(t *testing.T) model.Event {
	t.Helper()
	e := model.NewEvent(model.Birthday, "", model.NoLocation, time.UnixMilli(1000))
	e, food := e.AddSection("المأكولات")
	e, _ = e.AddSection("المشروبات")

	cake := model.NewItem("كيكة", decimal.NewFromInt(1), decimal.NewFromInt(500))
	cake.IsChecked = false
	balloons := model.NewItem("بالونات", decimal.NewFromInt(10), decimal.NewFromInt(5))

	var err error
	for _, it := range []model.CostItem{cake, balloons} {
		e, err = e.AddItem(food.ID, it)
		if err != nil {
			t.Fatal(err)
		}
	}
	return e
}

func TestProject_RowOrder(t *testing.T) {
	r := Project(sampleEvent(t), time.UnixMilli(42))

	wantKinds := []RowKind{ItemRow, SubtotalRow, SpacerRow, SubtotalRow, SpacerRow, GrandTotalRow}
	if len(r.Rows) != len(wantKinds) {
		t.Fatalf("len(Rows) = %d, want %d", len(r.Rows), len(wantKinds))
	}
	for i, k := range wantKinds {
		if r.Rows[i].Kind != k {
			t.Errorf("Rows[%d].Kind = %d, want %d", i, r.Rows[i].Kind, k)
		}
	}

	if r.Rows[0].Item != "بالونات" {
		t.Errorf("first item row = %q, want the checked item only", r.Rows[0].Item)
	}
	if r.Rows[1].Section != "المأكولات"+SubtotalSuffix || !r.Rows[1].Total.Equal(decimal.NewFromInt(50)) {
		t.Errorf("subtotal row = %+v", r.Rows[1])
	}
	last := r.Rows[len(r.Rows)-1]
	if last.Section != GrandTotalLabel || !last.Total.Equal(decimal.NewFromInt(50)) {
		t.Errorf("grand total row = %+v", last)
	}
	if r.Sections[0].Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", r.Sections[0].Skipped)
	}
}

func TestXLSX_Export(t *testing.T) {
	r := Project(sampleEvent(t), time.UnixMilli(42))

	var buf bytes.Buffer
	if err := (XLSX{}).Export(&buf, r); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(Headers, ",") {
		t.Errorf("header = %v, want %v", rows[0], Headers)
	}
	if rows[1][1] != "بالونات" {
		t.Errorf("first item = %q", rows[1][1])
	}
	if got := rows[len(rows)-1][0]; got != GrandTotalLabel {
		t.Errorf("last row label = %q, want %q", got, GrandTotalLabel)
	}
}

func TestMarkdown_String(t *testing.T) {
	e := sampleEvent(t)
	e, _ = e.AddSection("a|b")
	md := Markdown{}.String(Project(e, time.Now()))

	for _, want := range []string{
		"# حساب تكلفة: عيد ميلاد",
		"| بالونات | 10 | 5.00 | 50.00 |",
		"**" + GrandTotalLabel + ":** 50.00",
		`## a\|b`,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "كيكة") {
		t.Error("markdown lists an unchecked item")
	}
}

func TestFilename(t *testing.T) {
	r := Report{GeneratedAt: time.UnixMilli(1700000000123)}
	if got := Filename(r, XLSX{}); got != "event_costs_1700000000123.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}
