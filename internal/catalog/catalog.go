// Package catalog holds the default section templates seeded into new events.
package catalog

import (
	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/shopspring/decimal"
)

// TemplateItem is a pre-filled line in a template section.
type TemplateItem struct {
	Name     string
	Quantity int64
}

// TemplateSection is a section shape without identifiers.
type TemplateSection struct {
	Title     string
	Items     []TemplateItem
	Collapsed bool
}

// Template is a named, ordered list of template sections.
type Template struct {
	Name     string
	Sections []TemplateSection
}

// EngagementHall is seeded for engagements held in a venue.
var EngagementHall = Template{
	Name: "engagement-hall",
	Sections: []TemplateSection{
		{Title: "القاعة", Items: []TemplateItem{
			{Name: "حجز القاعة", Quantity: 1},
			{Name: "تأمين القاعة", Quantity: 1},
		}},
		{Title: "تصوير"},
		{Title: "مواصلات", Collapsed: true},
	},
}

// EngagementHome is seeded for engagements held at home.
var EngagementHome = Template{
	Name: "engagement-home",
	Sections: []TemplateSection{
		{Title: "تجهيز البيت", Items: []TemplateItem{
			{Name: "ديكور", Quantity: 1},
			{Name: "كراسي", Quantity: 10},
			{Name: "إضاءة", Quantity: 1},
		}},
		{Title: "بوفيه"},
		{Title: "فستان ومكياج"},
	},
}

// General is seeded for every other event type.
var General = Template{
	Name: "general",
	Sections: []TemplateSection{
		{Title: "التجهيزات الأساسية"},
		{Title: "المأكولات"},
		{Title: "المشروبات"},
		{Title: "المواصلات"},
	},
}

// Templates lists every template.
func Templates() []Template {
	return []Template{EngagementHall, EngagementHome, General}
}

// TemplateFor picks the template for an event type and location.
func TemplateFor(t model.EventType, loc model.Location) Template {
	if t != model.Engagement {
		return General
	}
	if loc == model.Hall {
		return EngagementHall
	}
	return EngagementHome
}

// DefaultSections instantiates the template for t and loc. Every call
// returns fresh identifiers; prices start at zero.
func DefaultSections(t model.EventType, loc model.Location) []model.Section {
	return TemplateFor(t, loc).Instantiate()
}

// Instantiate builds sections and items with new identifiers.
func (tpl Template) Instantiate() []model.Section {
	sections := make([]model.Section, 0, len(tpl.Sections))
	for _, ts := range tpl.Sections {
		s := model.Section{
			ID:          model.NewID(),
			Title:       ts.Title,
			Items:       make([]model.CostItem, 0, len(ts.Items)),
			IsCollapsed: ts.Collapsed,
		}
		for _, ti := range ts.Items {
			s.Items = append(s.Items, model.NewItem(ti.Name, decimal.NewFromInt(ti.Quantity), decimal.Zero))
		}
		sections = append(sections, s)
	}
	return sections
}
