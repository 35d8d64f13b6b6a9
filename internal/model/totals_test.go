package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecompute_QuantityTimesPrice(t *testing.T) {
	cases := []struct{ q, p, want string }{
		{"1", "500", "500"},
		{"10", "5", "50"},
		{"0", "120", "0"},
		{"3", "0", "0"},
		{"2.5", "0.4", "1"},
	}
	for _, tc := range cases {
		var it CostItem
		it.SetQuantity(d(tc.q))
		it.SetPrice(d(tc.p))
		if !it.Total.Equal(d(tc.want)) {
			t.Errorf("%s x %s: Total = %s, want %s", tc.q, tc.p, it.Total, tc.want)
		}
	}
}

func TestManualTotalSurvivesQuantityAndPriceEdits(t *testing.T) {
	it := NewItem("قاعة", d("1"), d("1000"))
	it.SetManualTotal(d("750"))

	it.SetQuantity(d("4"))
	it.SetPrice(d("20"))
	if !it.Total.Equal(d("750")) {
		t.Fatalf("manual Total = %s, want 750", it.Total)
	}

	it.ClearManualTotal()
	if !it.Total.Equal(d("80")) {
		t.Fatalf("Total after clearing manual = %s, want 80", it.Total)
	}
}

func TestUncheckedItemsExcludedFromTotals(t *testing.T) {
	cake := NewItem("كيكة", d("1"), d("500"))
	balloons := NewItem("بالونات", d("10"), d("5"))
	s := Section{ID: "s1", Items: []CostItem{cake, balloons}}
	e := Event{Sections: []Section{s, {ID: "s2"}}}

	if got := e.Total(); !got.Equal(d("550")) {
		t.Fatalf("EventTotal = %s, want 550", got)
	}

	s.Items[0].SetChecked(false)
	e.Sections[0] = s
	if got := SectionTotal(s); !got.Equal(d("50")) {
		t.Fatalf("SectionTotal = %s, want 50", got)
	}
	if got := EventTotal(e); !got.Equal(d("50")) {
		t.Fatalf("EventTotal = %s, want 50", got)
	}

	s.Items[0].SetChecked(true)
	if !s.Items[0].Total.Equal(d("500")) {
		t.Fatalf("rechecked Total = %s, want 500", s.Items[0].Total)
	}
	if got := SectionTotal(s); !got.Equal(d("550")) {
		t.Fatalf("SectionTotal after recheck = %s, want 550", got)
	}
}

func TestEditorsAreCopyOnWrite(t *testing.T) {
	e := NewEvent(Birthday, "", NoLocation, time.Now())
	e, first := e.AddSection("أ")
	e, second := e.AddSection("ب")
	e, err := e.AddItem(first.ID, NewItem("x", d("1"), d("10")))
	if err != nil {
		t.Fatal(err)
	}
	e, err = e.AddItem(second.ID, NewItem("y", d("2"), d("10")))
	if err != nil {
		t.Fatal(err)
	}

	before := e.Clone()
	itemID := e.Sections[0].Items[0].ID

	after, err := e.UpdateItem(first.ID, itemID, func(it *CostItem) { it.SetPrice(d("99")) })
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(before) {
		t.Fatal("UpdateItem modified its receiver")
	}
	if !after.Sections[1].Equal(before.Sections[1]) {
		t.Fatal("UpdateItem modified a sibling section")
	}
	if !after.Sections[0].Items[0].Total.Equal(d("99")) {
		t.Fatalf("updated Total = %s, want 99", after.Sections[0].Items[0].Total)
	}

	removed, err := after.RemoveItem(first.ID, itemID)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Sections[0].Items) != 1 || len(removed.Sections[0].Items) != 0 {
		t.Fatal("RemoveItem did not copy the items slice")
	}

	dropped, err := removed.RemoveSection(first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(dropped.Sections) != 1 || dropped.Sections[0].ID != second.ID {
		t.Fatalf("RemoveSection left %d sections", len(dropped.Sections))
	}
	if len(removed.Sections) != 2 {
		t.Fatal("RemoveSection modified its receiver")
	}
}

func TestEditorsReportUnknownIDs(t *testing.T) {
	e := NewEvent(Wedding, "", NoLocation, time.Now())
	e, s := e.AddSection("a")

	if _, err := e.RenameSection("nope", "b"); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("RenameSection err = %v, want ErrSectionNotFound", err)
	}
	if _, err := e.UpdateItem(s.ID, "nope", func(*CostItem) {}); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("UpdateItem err = %v, want ErrItemNotFound", err)
	}
	if _, err := e.RemoveItem(s.ID, "nope"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("RemoveItem err = %v, want ErrItemNotFound", err)
	}
}

func TestNewEventDropsLocationForNonEngagement(t *testing.T) {
	e := NewEvent(Birthday, "", Hall, time.Now())
	if e.Location != NoLocation {
		t.Fatalf("Location = %q, want empty", e.Location)
	}
	e = NewEvent(Engagement, "", Hall, time.Now())
	if e.Location != Hall {
		t.Fatalf("Location = %q, want hall", e.Location)
	}
}

func TestValidate(t *testing.T) {
	good := NewEvent(Engagement, "", Home, time.UnixMilli(1000))
	good, s := good.AddSection("a")
	good, _ = good.AddItem(s.ID, NewItem("", d("0"), d("0")))
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate(good) = %v", err)
	}

	bad := []struct {
		name string
		mut  func(e *Event)
	}{
		{"unknown type", func(e *Event) { e.Type = "party" }},
		{"location on birthday", func(e *Event) { e.Type = Birthday }},
		{"negative price", func(e *Event) { e.Sections[0].Items[0].Price = d("-1") }},
		{"stale total", func(e *Event) { e.Sections[0].Items[0].Quantity = d("3"); e.Sections[0].Items[0].Price = d("2") }},
		{"duplicate id", func(e *Event) { e.Sections[0].Items[0].ID = e.Sections[0].ID }},
		{"time travel", func(e *Event) { e.LastModified = e.CreatedAt - 1 }},
	}
	for _, tc := range bad {
		e := good.Clone()
		tc.mut(&e)
		if err := e.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Validate = %v, want ErrInvalid", tc.name, err)
		}
	}
}

func TestNormalizeRepairsDerivedFields(t *testing.T) {
	good := NewEvent(Engagement, "", Home, time.UnixMilli(1000))
	good, s := good.AddSection("a")
	good, _ = good.AddItem(s.ID, NewItem("", d("2"), d("5")))
	good, _ = good.AddItem(s.ID, NewItem("", d("1"), d("1")))

	fixable := []struct {
		name string
		mut  func(e *Event)
	}{
		{"location on birthday", func(e *Event) { e.Type = Birthday }},
		{"stale total", func(e *Event) { e.Sections[0].Items[0].Quantity = d("3") }},
		{"duplicate id", func(e *Event) { e.Sections[0].Items[1].ID = e.Sections[0].Items[0].ID }},
		{"missing id", func(e *Event) { e.Sections[0].ID = "" }},
	}
	for _, tc := range fixable {
		e := good.Clone()
		tc.mut(&e)
		n := e.Normalize()
		if err := n.Validate(); err != nil {
			t.Errorf("%s: Normalize().Validate() = %v", tc.name, err)
		}
	}

	stale := good.Clone()
	stale.Sections[0].Items[0].Quantity = d("3")
	if n := stale.Normalize(); !n.Sections[0].Items[0].Total.Equal(d("15")) {
		t.Errorf("Total = %s, want 15", n.Sections[0].Items[0].Total)
	}
	if !stale.Sections[0].Items[0].Total.Equal(d("10")) {
		t.Errorf("Normalize modified its receiver")
	}

	manual := good.Clone()
	manual.Sections[0].Items[0].SetManualTotal(d("99"))
	if n := manual.Normalize(); !n.Sections[0].Items[0].Total.Equal(d("99")) {
		t.Errorf("manual Total = %s, want 99", n.Sections[0].Items[0].Total)
	}

	neg := good.Clone()
	neg.Sections[0].Items[0].Price = d("-1")
	if err := neg.Normalize().Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("negative price: Validate = %v, want ErrInvalid", err)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestParseEventType(t *testing.T) {
	for _, et := range EventTypes {
		if _, err := ParseEventType(string(et)); err != nil {
			t.Errorf("ParseEventType(%q) = %v", et, err)
		}
	}
	if _, err := ParseEventType("graduation"); err == nil {
		t.Error("ParseEventType(graduation) succeeded, want error")
	}
	if got := Birthday.Label(); got != "عيد ميلاد" {
		t.Errorf("Birthday.Label() = %q", got)
	}
}
