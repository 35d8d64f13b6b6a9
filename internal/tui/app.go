// Package tui provides the interactive Bubble Tea budget editor for evcost.
package tui

import (
	"fmt"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/codec"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/state"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/components"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/tui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeWelcome mode = iota
	modeForm
	modeBrowse
	modeEdit
	modeConfirmDelete
)

const (
	minTerminalWidth = 50
	maxContentWidth  = 110
	minListHeight    = 3
)

// App is the root Bubble Tea model.
type App struct {
	store *state.Store
	keys  keyMap
	help  help.Model
	clip  func(string) error

	mode     mode
	showHelp bool

	// New-event form (huh)
	form     *huh.Form
	formVals *newEventValues // pointer: App is copied on every Update

	// Event list
	cursor int
	offset int

	// Inline prompt
	input  textinput.Model
	edit   editField
	target row

	flash    string
	flashErr bool
	lastCode string // shown when the clipboard is unavailable

	width  int
	height int
}

// NewApp creates the TUI over st. A first visit starts on the welcome
// screen; without a current event the new-event form opens.
func NewApp(st *state.Store) App {
	a := App{
		store: st,
		keys:  defaultKeys(),
		help:  help.New(),
		clip:  clipboard.WriteAll,
		input: newEditInput(),
		mode:  modeBrowse,
	}
	switch {
	case st.IsFirstVisit():
		a.mode = modeWelcome
	default:
		if _, ok := st.Current(); !ok {
			a.openForm(false)
		}
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.form != nil {
		return a.form.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth()).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.mode {
		case modeWelcome:
			return a.updateWelcome(msg)
		case modeForm:
			return a.updateForm(msg)
		case modeEdit:
			return a.updateEdit(msg)
		case modeConfirmDelete:
			return a.updateConfirm(msg)
		}
		return a.updateBrowse(msg)
	}

	// huh drives itself with its own messages
	if a.mode == modeForm {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.store.SetVisited(true)
		if _, ok := a.store.Current(); ok {
			a.mode = modeBrowse
			return a, nil
		}
		a.openForm(false)
		return a, a.form.Init()
	case "q", "esc":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) openForm(replacing bool) {
	a.formVals = &newEventValues{}
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	a.form = newEventForm(a.formVals, replacing).WithKeyMap(km)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.contentWidth()).WithHeight(a.height)
	}
	a.mode = modeForm
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		if a.formVals.Confirm {
			t, name, loc := a.formVals.parsed()
			ev := a.store.StartNewEvent(t, name, loc)
			a.cursor, a.offset = 0, 0
			a.setFlash("بدأ حساب "+ev.DisplayName(), false)
		}
		a.form = nil
		a.mode = modeBrowse
		return a, nil
	case huh.StateAborted:
		a.form = nil
		a.mode = modeBrowse
		return a, nil
	}
	return a, cmd
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.flash = ""

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	ev, hasEvent := a.store.Current()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keys.NewEvent):
		a.openForm(hasEvent)
		return a, a.form.Init()
	case key.Matches(msg, a.keys.Copy):
		a.copyCode()
		return a, nil
	}

	if !hasEvent {
		return a, nil
	}

	rows := buildRows(ev)
	a.clampCursor(len(rows))

	switch {
	case key.Matches(msg, a.keys.AddSection):
		return a.startEdit(editNewSection, ev, row{})
	case len(rows) == 0:
		return a, nil
	}

	cur := rows[a.cursor]
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
	case key.Matches(msg, a.keys.Bottom):
		a.cursor = len(rows) - 1
	case key.Matches(msg, a.keys.Collapse):
		a.toggleCollapse(cur)
	case key.Matches(msg, a.keys.Toggle):
		if cur.kind == sectionRow {
			a.toggleCollapse(cur)
			break
		}
		a.reportErr(a.updateItem(cur, func(it *model.CostItem) { it.SetChecked(!it.IsChecked) }))
	case key.Matches(msg, a.keys.Rename):
		return a.startEdit(editName, ev, cur)
	case key.Matches(msg, a.keys.Quantity):
		return a.startEdit(editQuantity, ev, cur)
	case key.Matches(msg, a.keys.Price):
		return a.startEdit(editPrice, ev, cur)
	case key.Matches(msg, a.keys.Total):
		return a.startEdit(editTotal, ev, cur)
	case key.Matches(msg, a.keys.AddItem):
		return a.startEdit(editNewItem, ev, row{kind: sectionRow, sectionID: cur.sectionID})
	case key.Matches(msg, a.keys.Delete):
		a.target = cur
		a.mode = modeConfirmDelete
	}
	return a, nil
}

func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.mode = modeBrowse
	if msg.String() != "y" {
		return a, nil
	}
	r := a.target
	err := a.store.Edit(func(e model.Event) (model.Event, error) {
		if r.kind == sectionRow {
			return e.RemoveSection(r.sectionID)
		}
		return e.RemoveItem(r.sectionID, r.itemID)
	})
	a.reportErr(err)
	if ev, ok := a.store.Current(); ok {
		a.clampCursor(len(buildRows(ev)))
	}
	return a, nil
}

func (a *App) toggleCollapse(r row) {
	a.reportErr(a.store.Edit(func(e model.Event) (model.Event, error) {
		return e.ToggleSection(r.sectionID)
	}))
	a.follow(r.sectionID, "")
}

// copyCode puts the restore code on the clipboard. When that fails the
// code is kept on screen instead.
func (a *App) copyCode() {
	code := a.store.GenerateSaveCode()
	if code == codec.Unencodable {
		a.setFlash("تعذر إنشاء كود الحفظ", true)
		return
	}
	if err := a.clip(code); err != nil {
		a.lastCode = code
		a.setFlash("تعذر النسخ للحافظة، الكود معروض بالأسفل", true)
		return
	}
	a.lastCode = ""
	a.setFlash("تم نسخ كود الحفظ", false)
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

func (a *App) reportErr(err error) {
	if err != nil {
		a.setFlash(err.Error(), true)
	}
}

func (a *App) clampCursor(n int) {
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  evcost needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	switch {
	case a.mode == modeWelcome:
		return a.viewWelcome()
	case a.mode == modeForm && a.form != nil:
		return a.place(a.form.View())
	case a.showHelp:
		return a.place(a.viewHelp())
	}
	return a.viewMain()
}

func (a App) place(s string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, s,
		lipgloss.WithWhitespaceBackground(theme.Active.Background))
}

func (a App) viewWelcome() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ evcost"))
	b.WriteString(mutedStyle.Render(" · حاسبة تكاليف المناسبات"))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render("اختر المناسبة، ونجهز لك الأقسام الأساسية."))
	b.WriteString("\n")
	b.WriteString(textStyle.Render("اكتب العدد والسعر لكل بند، والإجمالي يتحسب لوحده."))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("احفظ الكود عشان ترجع لحسابك في أي وقت."))
	b.WriteString("\n\n")
	b.WriteString(accentStyle.Render("Enter للبدء · q للخروج"))

	return a.place(cardStyle.Render(b.String()))
}

func (a App) viewHelp() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	full := a.help
	full.ShowAll = true
	return cardStyle.Render(
		titleStyle.Render("◈ Keyboard Shortcuts") + "\n\n" +
			full.View(a.keys) + "\n\n" +
			dimStyle.Render("Press any key to close"))
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	ev, hasEvent := a.store.Current()
	total := cli.FormatMoney(a.store.Total())

	var blocks []string
	if !hasEvent {
		blocks = append(blocks, components.ContentCard("لا توجد مناسبة",
			"اضغط N لبدء حساب جديد", cw, true))
	} else {
		blocks = append(blocks, a.viewHeader(ev, total, cw))
	}

	var footer []string
	switch a.mode {
	case modeEdit:
		footer = append(footer, a.input.View())
	case modeConfirmDelete:
		footer = append(footer, lipgloss.NewStyle().Foreground(t.Orange).
			Render("حذف العنصر المحدد؟ (y/n)"))
	}
	if a.lastCode != "" {
		footer = append(footer, lipgloss.NewStyle().Foreground(t.TextMuted).
			Width(cw).Render("كود الحفظ: "+a.lastCode))
	}
	statusBar := components.RenderStatusBar(a.width,
		a.help.ShortHelpView(a.keys.ShortHelp()), a.flash, a.flashErr, total)

	used := lipgloss.Height(strings.Join(blocks, "\n")) + lipgloss.Height(statusBar)
	if len(footer) > 0 {
		used += lipgloss.Height(strings.Join(footer, "\n"))
	}

	if hasEvent {
		// card border + title
		listH := a.height - used - 3
		if listH < minListHeight {
			listH = minListHeight
		}
		rows := buildRows(ev)
		a.clampCursor(len(rows))
		a.scrollTo(listH)
		body := renderRows(ev, rows, a.cursor, a.offset, listH, components.CardInnerWidth(cw))
		if len(rows) == 0 {
			body = "لا توجد أقسام، اضغط A لإضافة قسم"
		}
		blocks = append(blocks, components.ContentCard("الأقسام", body, cw, a.mode == modeBrowse))
	}

	blocks = append(blocks, footer...)
	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	contentH := a.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}
	content = lipgloss.Place(a.width, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (a App) viewHeader(ev model.Event, total string, cw int) string {
	checked, all := ev.CheckedCount()

	title := ev.DisplayName()
	if ev.CustomName != "" {
		title += " · " + ev.Type.Label()
	}
	if l := ev.Location.Label(); l != "" {
		title += " · " + l
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard(title,
			components.ProgressBar(checked, all, components.CardInnerWidth(cw)-8), cw, false),
		components.MetricCardRow([]components.Metric{
			{Label: "الإجمالي النهائي", Value: total, Note: cli.Currency()},
			{Label: "البنود المحسوبة", Value: fmt.Sprintf("%d/%d", checked, all)},
			{Label: "آخر تعديل", Value: ev.Modified().Format("2006-01-02 15:04")},
		}, cw),
	)
}

// scrollTo keeps the cursor inside a window of h rows.
func (a *App) scrollTo(h int) {
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+h {
		a.offset = a.cursor - h + 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}
