package catalog

import (
	"testing"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"
)

func titles(sections []model.Section) []string {
	var out []string
	for _, s := range sections {
		out = append(out, s.Title)
		for _, it := range s.Items {
			out = append(out, "  "+it.Name)
		}
	}
	return out
}

func ids(sections []model.Section) []string {
	var out []string
	for _, s := range sections {
		out = append(out, s.ID)
		for _, it := range s.Items {
			out = append(out, it.ID)
		}
	}
	return out
}

func TestDefaultSections_SameShapeFreshIDs(t *testing.T) {
	a := DefaultSections(model.Engagement, model.Hall)
	b := DefaultSections(model.Engagement, model.Hall)

	ta, tb := titles(a), titles(b)
	if len(ta) != len(tb) {
		t.Fatalf("shape differs: %d vs %d entries", len(ta), len(tb))
	}
	for i := range ta {
		if ta[i] != tb[i] {
			t.Fatalf("entry %d = %q vs %q", i, ta[i], tb[i])
		}
	}

	seen := make(map[string]bool)
	for _, id := range ids(a) {
		seen[id] = true
	}
	for _, id := range ids(b) {
		if seen[id] {
			t.Fatalf("id %s reused across calls", id)
		}
	}
}

func TestDefaultSections_EngagementHall(t *testing.T) {
	got := DefaultSections(model.Engagement, model.Hall)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "القاعة" || len(got[0].Items) != 2 {
		t.Fatalf("first section = %q with %d items", got[0].Title, len(got[0].Items))
	}
	if !got[2].IsCollapsed {
		t.Error("transportation section should start collapsed")
	}
	for _, it := range got[0].Items {
		if !it.IsChecked || it.IsManualTotal || !it.Total.IsZero() {
			t.Errorf("item %q = %+v, want checked computed zero total", it.Name, it)
		}
	}
}

func TestDefaultSections_EngagementHomeIsDefault(t *testing.T) {
	for _, loc := range []model.Location{model.Home, model.NoLocation} {
		got := DefaultSections(model.Engagement, loc)
		want := []string{"تجهيز البيت", "بوفيه", "فستان ومكياج"}
		if len(got) != len(want) {
			t.Fatalf("loc %q: len = %d, want %d", loc, len(got), len(want))
		}
		for i, w := range want {
			if got[i].Title != w {
				t.Errorf("loc %q: section %d = %q, want %q", loc, i, got[i].Title, w)
			}
		}
		if q := got[0].Items[1].Quantity.IntPart(); q != 10 {
			t.Errorf("chairs quantity = %d, want 10", q)
		}
	}
}

func TestDefaultSections_GeneralForOtherTypes(t *testing.T) {
	want := []string{"التجهيزات الأساسية", "المأكولات", "المشروبات", "المواصلات"}
	for _, et := range model.EventTypes {
		if et == model.Engagement {
			continue
		}
		got := DefaultSections(et, model.Hall)
		if len(got) != len(want) {
			t.Fatalf("%s: len = %d, want %d", et, len(got), len(want))
		}
		for i, s := range got {
			if s.Title != want[i] || len(s.Items) != 0 {
				t.Errorf("%s: section %d = %q (%d items)", et, i, s.Title, len(s.Items))
			}
		}
	}
}

func TestTemplatesCoverEveryEventType(t *testing.T) {
	names := make(map[string]bool)
	for _, tpl := range Templates() {
		if tpl.Name == "" || names[tpl.Name] {
			t.Fatalf("template name %q empty or repeated", tpl.Name)
		}
		names[tpl.Name] = true
	}
	for _, et := range model.EventTypes {
		for _, loc := range []model.Location{model.NoLocation, model.Home, model.Hall} {
			if tpl := TemplateFor(et, loc); !names[tpl.Name] {
				t.Errorf("TemplateFor(%s, %q) = %q, not listed by Templates", et, loc, tpl.Name)
			}
		}
	}
}
