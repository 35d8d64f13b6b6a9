package tui

import (
	"errors"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/cli"
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// editField is what the prompt is editing.
type editField int

const (
	editName editField = iota
	editQuantity
	editPrice
	editTotal
	editNewItem
	editNewSection
)

var editPrompts = map[editField]string{
	editName:       "الاسم: ",
	editQuantity:   "العدد: ",
	editPrice:      "السعر: ",
	editTotal:      "الإجمالي (فارغ = تلقائي): ",
	editNewItem:    "بند جديد: ",
	editNewSection: "قسم جديد: ",
}

func newEditInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40
	return ti
}

// startEdit opens the prompt for field on the row under the cursor.
func (a App) startEdit(field editField, ev model.Event, target row) (tea.Model, tea.Cmd) {
	if target.kind == sectionRow && (field == editQuantity || field == editPrice || field == editTotal) {
		return a, nil
	}

	ti := newEditInput()
	ti.Prompt = editPrompts[field]

	sec, it := lookup(ev, target)
	switch field {
	case editName:
		if target.kind == sectionRow {
			ti.SetValue(sec.Title)
		} else {
			ti.SetValue(it.Name)
		}
	case editQuantity:
		ti.Placeholder = cli.FormatQuantity(it.Quantity)
	case editPrice:
		ti.Placeholder = it.Price.String()
	case editTotal:
		if it.IsManualTotal {
			ti.Placeholder = it.Total.String()
		}
	}

	ti.Focus()
	a.input = ti
	a.edit = field
	a.target = target
	a.mode = modeEdit
	return a, textinput.Blink
}

func (a App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := a.applyEdit(); err != nil {
			a.setFlash(err.Error(), true)
			return a, nil
		}
		a.mode = modeBrowse
		return a, nil
	case "esc":
		a.mode = modeBrowse
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// applyEdit commits the prompt value through the store. On error the
// state is unchanged.
func (a *App) applyEdit() error {
	val := a.input.Value()
	r := a.target

	switch a.edit {
	case editName:
		name := strings.TrimSpace(val)
		if r.kind == sectionRow {
			return a.store.Edit(func(e model.Event) (model.Event, error) {
				return e.RenameSection(r.sectionID, name)
			})
		}
		return a.updateItem(r, func(it *model.CostItem) { it.Name = name })

	case editQuantity, editPrice:
		d, err := cli.ParseAmount(val)
		if err != nil {
			return err
		}
		if a.edit == editQuantity {
			return a.updateItem(r, func(it *model.CostItem) { it.SetQuantity(d) })
		}
		return a.updateItem(r, func(it *model.CostItem) { it.SetPrice(d) })

	case editTotal:
		if strings.TrimSpace(val) == "" {
			return a.updateItem(r, func(it *model.CostItem) { it.ClearManualTotal() })
		}
		d, err := cli.ParseAmount(val)
		if err != nil {
			return err
		}
		return a.updateItem(r, func(it *model.CostItem) { it.SetManualTotal(d) })

	case editNewItem:
		it := model.NewItem(strings.TrimSpace(val), decimal.NewFromInt(1), decimal.Zero)
		err := a.store.Edit(func(e model.Event) (model.Event, error) {
			e, err := e.AddItem(r.sectionID, it)
			if err != nil {
				return e, err
			}
			for i, s := range e.Sections {
				if s.ID == r.sectionID && s.IsCollapsed {
					e.Sections[i].IsCollapsed = false
				}
			}
			return e, nil
		})
		if err == nil {
			a.follow(r.sectionID, it.ID)
		}
		return err

	case editNewSection:
		var id string
		err := a.store.Edit(func(e model.Event) (model.Event, error) {
			e, s := e.AddSection(strings.TrimSpace(val))
			id = s.ID
			return e, nil
		})
		if err == nil {
			a.follow(id, "")
		}
		return err
	}
	return errors.New("unknown field")
}

func (a *App) updateItem(r row, fn func(*model.CostItem)) error {
	return a.store.Edit(func(e model.Event) (model.Event, error) {
		return e.UpdateItem(r.sectionID, r.itemID, fn)
	})
}

// follow moves the cursor onto the given row if it is visible.
func (a *App) follow(sectionID, itemID string) {
	ev, ok := a.store.Current()
	if !ok {
		return
	}
	if i := indexOf(buildRows(ev), sectionID, itemID); i >= 0 {
		a.cursor = i
	}
}

// lookup returns the section and, for item rows, the item r points at.
func lookup(ev model.Event, r row) (model.Section, model.CostItem) {
	for _, s := range ev.Sections {
		if s.ID != r.sectionID {
			continue
		}
		for _, it := range s.Items {
			if it.ID == r.itemID {
				return s, it
			}
		}
		return s, model.CostItem{}
	}
	return model.Section{}, model.CostItem{}
}
