package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/state"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func press(t *testing.T, a App, keys ...tea.KeyMsg) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(k)
		a = m.(App)
	}
	return a
}

// hallApp returns an app over an engagement-in-a-hall event. Rows:
// 0 section, 1 item, 2 item, 3 section, 4 collapsed section.
func hallApp(t *testing.T) (App, *state.Store) {
	t.Helper()
	st := state.New(store.NewMemory())
	st.StartNewEvent(model.Engagement, "", model.Hall)
	a := NewApp(st)
	if a.mode != modeBrowse {
		t.Fatalf("mode = %d, want browse", a.mode)
	}
	return a, st
}

func firstSection(t *testing.T, st *state.Store) model.Section {
	t.Helper()
	ev, ok := st.Current()
	if !ok {
		t.Fatal("no current event")
	}
	return ev.Sections[0]
}

func TestWelcomeEnterMarksVisited(t *testing.T) {
	st := state.New(store.NewMemory())
	a := NewApp(st)
	if a.mode != modeWelcome {
		t.Fatalf("mode = %d, want welcome", a.mode)
	}

	a = press(t, a, keyEnter)
	if st.IsFirstVisit() {
		t.Error("IsFirstVisit still true after Enter")
	}
	if a.mode != modeForm || a.form == nil {
		t.Errorf("mode = %d, want the new-event form", a.mode)
	}
}

func TestToggleItemChecked(t *testing.T) {
	a, st := hallApp(t)
	press(t, a, keyDown, keySpace)

	it := firstSection(t, st).Items[0]
	if it.IsChecked {
		t.Error("item still checked after space")
	}
}

func TestEditPriceRecomputes(t *testing.T) {
	a, st := hallApp(t)
	a = press(t, a, keyDown, runes("p"))
	if a.mode != modeEdit {
		t.Fatalf("mode = %d, want edit", a.mode)
	}
	press(t, a, runes("250"), keyEnter)

	it := firstSection(t, st).Items[0]
	if !it.Price.Equal(decimal.NewFromInt(250)) || !it.Total.Equal(decimal.NewFromInt(250)) {
		t.Errorf("price/total = %s/%s, want 250/250", it.Price, it.Total)
	}
	if !st.Total().Equal(decimal.NewFromInt(250)) {
		t.Errorf("Total = %s, want 250", st.Total())
	}
}

func TestEditRejectsBadNumber(t *testing.T) {
	a, st := hallApp(t)
	a = press(t, a, keyDown, runes("c"), runes("abc"), keyEnter)

	if a.mode != modeEdit {
		t.Errorf("mode = %d, want to stay in edit", a.mode)
	}
	if !a.flashErr {
		t.Error("expected an error flash")
	}
	if q := firstSection(t, st).Items[0].Quantity; !q.Equal(decimal.NewFromInt(1)) {
		t.Errorf("quantity = %s, want unchanged 1", q)
	}
}

func TestManualTotalAndClear(t *testing.T) {
	a, st := hallApp(t)
	a = press(t, a, keyDown, runes("t"), runes("999"), keyEnter)

	it := firstSection(t, st).Items[0]
	if !it.IsManualTotal || !it.Total.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("item = %+v, want manual total 999", it)
	}

	press(t, a, runes("t"), keyEnter)
	it = firstSection(t, st).Items[0]
	if it.IsManualTotal || !it.Total.IsZero() {
		t.Errorf("item = %+v, want computed total 0", it)
	}
}

func TestCollapseHidesItems(t *testing.T) {
	a, st := hallApp(t)
	press(t, a, keyEnter)

	sec := firstSection(t, st)
	if !sec.IsCollapsed {
		t.Fatal("section not collapsed")
	}
	ev, _ := st.Current()
	if n := len(buildRows(ev)); n != 3 {
		t.Errorf("visible rows = %d, want 3", n)
	}
}

func TestAddAndDeleteItem(t *testing.T) {
	a, st := hallApp(t)
	a = press(t, a, runes("a"), runes("ورد"), keyEnter)

	sec := firstSection(t, st)
	if len(sec.Items) != 3 || sec.Items[2].Name != "ورد" {
		t.Fatalf("items = %+v, want a third item named ورد", sec.Items)
	}
	if a.cursor != 3 {
		t.Errorf("cursor = %d, want it on the new item", a.cursor)
	}

	press(t, a, runes("x"), runes("y"))
	if n := len(firstSection(t, st).Items); n != 2 {
		t.Errorf("items after delete = %d, want 2", n)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	a, st := hallApp(t)
	press(t, a, keyDown, runes("x"), runes("n"))
	if n := len(firstSection(t, st).Items); n != 2 {
		t.Errorf("items = %d, want 2 after declining", n)
	}
}

func TestCopyCode(t *testing.T) {
	a, st := hallApp(t)

	var copied string
	a.clip = func(s string) error { copied = s; return nil }
	a = press(t, a, runes("s"))
	if copied == "" || copied != st.GenerateSaveCode() {
		t.Errorf("copied %q, want the current restore code", copied)
	}
	if a.lastCode != "" {
		t.Error("lastCode set after a successful copy")
	}

	a.clip = func(string) error { return errors.New("no clipboard") }
	a = press(t, a, runes("s"))
	if a.lastCode == "" || !a.flashErr {
		t.Error("failed copy should keep the code on screen and flash an error")
	}
}

func TestQuit(t *testing.T) {
	a, _ := hallApp(t)
	_, cmd := a.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewShowsEventAndTotal(t *testing.T) {
	a, _ := hallApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	out := m.(App).View()

	for _, want := range []string{"خطوبة", "القاعة", "حجز القاعة"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
