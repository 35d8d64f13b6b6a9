package tui

import (
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/charmbracelet/huh"
)

// newEventValues is bound to the new-event form fields.
type newEventValues struct {
	Type     string
	Name     string
	Location string
	Confirm  bool
}

// parsed returns the form values as model types. Invalid values were
// already rejected by the form's options.
func (v newEventValues) parsed() (model.EventType, string, model.Location) {
	t := model.EventType(v.Type)
	loc := model.NoLocation
	if t == model.Engagement {
		loc = model.Location(v.Location)
	}
	return t, strings.TrimSpace(v.Name), loc
}

// newEventForm asks for the event type, an optional name and, for
// engagements, the location. replacing adds a confirmation step since
// starting over discards the current event.
func newEventForm(vals *newEventValues, replacing bool) *huh.Form {
	if vals.Type == "" {
		vals.Type = string(model.Engagement)
	}
	if vals.Location == "" {
		vals.Location = string(model.Hall)
	}

	typeOpts := make([]huh.Option[string], 0, len(model.EventTypes))
	for _, t := range model.EventTypes {
		typeOpts = append(typeOpts, huh.NewOption(t.Label(), string(t)))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("نوع المناسبة").
				Options(typeOpts...).
				Value(&vals.Type),
			huh.NewInput().
				Title("اسم المناسبة").
				Description("اختياري").
				CharLimit(80).
				Value(&vals.Name),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("مكان الخطوبة").
				Options(
					huh.NewOption(model.Hall.Label(), string(model.Hall)),
					huh.NewOption(model.Home.Label(), string(model.Home)),
				).
				Value(&vals.Location),
		).WithHideFunc(func() bool {
			return vals.Type != string(model.Engagement)
		}),
	}

	if replacing {
		groups = append(groups, huh.NewGroup(
			huh.NewConfirm().
				Title("بدء مناسبة جديدة؟").
				Description("سيتم حذف الحساب الحالي").
				Affirmative("نعم").
				Negative("لا").
				Value(&vals.Confirm),
		))
	} else {
		vals.Confirm = true
	}

	return huh.NewForm(groups...)
}
