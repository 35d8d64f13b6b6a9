package model

import (
	"errors"
	"fmt"
)

// Errors returned by the copy-on-write editors.
var (
	ErrSectionNotFound = errors.New("section not found")
	ErrItemNotFound    = errors.New("item not found")
)

// The editors below never modify the receiver. They return a new Event
// whose sections slice is fresh and in which only the touched section's
// items slice is copied; untouched sections keep their own items.

func (e Event) sectionIndex(sectionID string) (int, error) {
	for i, s := range e.Sections {
		if s.ID == sectionID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrSectionNotFound, sectionID)
}

func (e Event) withSections() Event {
	c := e
	c.Sections = make([]Section, len(e.Sections))
	copy(c.Sections, e.Sections)
	return c
}

// AddSection appends an empty section and returns it with the new event.
func (e Event) AddSection(title string) (Event, Section) {
	s := Section{ID: NewID(), Title: title, Items: []CostItem{}}
	c := e.withSections()
	c.Sections = append(c.Sections, s)
	return c, s
}

// RenameSection changes a section title.
func (e Event) RenameSection(sectionID, title string) (Event, error) {
	i, err := e.sectionIndex(sectionID)
	if err != nil {
		return e, err
	}
	c := e.withSections()
	c.Sections[i].Title = title
	return c, nil
}

// ToggleSection flips the collapsed flag of a section.
func (e Event) ToggleSection(sectionID string) (Event, error) {
	i, err := e.sectionIndex(sectionID)
	if err != nil {
		return e, err
	}
	c := e.withSections()
	c.Sections[i].IsCollapsed = !c.Sections[i].IsCollapsed
	return c, nil
}

// RemoveSection drops a section and all of its items.
func (e Event) RemoveSection(sectionID string) (Event, error) {
	i, err := e.sectionIndex(sectionID)
	if err != nil {
		return e, err
	}
	c := e
	c.Sections = make([]Section, 0, len(e.Sections)-1)
	c.Sections = append(c.Sections, e.Sections[:i]...)
	c.Sections = append(c.Sections, e.Sections[i+1:]...)
	return c, nil
}

// AddItem appends it to a section. The item total is recomputed first.
func (e Event) AddItem(sectionID string, it CostItem) (Event, error) {
	i, err := e.sectionIndex(sectionID)
	if err != nil {
		return e, err
	}
	if it.ID == "" {
		it.ID = NewID()
	}
	it.Recompute()
	c := e.withSections()
	s := c.Sections[i].Clone()
	s.Items = append(s.Items, it)
	c.Sections[i] = s
	return c, nil
}

// UpdateItem applies fn to a copy of one item and recomputes its total.
func (e Event) UpdateItem(sectionID, itemID string, fn func(*CostItem)) (Event, error) {
	i, err := e.sectionIndex(sectionID)
	if err != nil {
		return e, err
	}
	for j, it := range e.Sections[i].Items {
		if it.ID != itemID {
			continue
		}
		fn(&it)
		it.ID = itemID
		it.Recompute()
		c := e.withSections()
		s := c.Sections[i].Clone()
		s.Items[j] = it
		c.Sections[i] = s
		return c, nil
	}
	return e, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// RemoveItem drops one item from a section.
func (e Event) RemoveItem(sectionID, itemID string) (Event, error) {
	i, err := e.sectionIndex(sectionID)
	if err != nil {
		return e, err
	}
	items := e.Sections[i].Items
	for j, it := range items {
		if it.ID != itemID {
			continue
		}
		c := e.withSections()
		s := c.Sections[i]
		s.Items = make([]CostItem, 0, len(items)-1)
		s.Items = append(s.Items, items[:j]...)
		s.Items = append(s.Items, items[j+1:]...)
		c.Sections[i] = s
		return c, nil
	}
	return e, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// FindItem returns the section and item holding itemID.
func (e Event) FindItem(itemID string) (Section, CostItem, bool) {
	for _, s := range e.Sections {
		for _, it := range s.Items {
			if it.ID == itemID {
				return s, it, true
			}
		}
	}
	return Section{}, CostItem{}, false
}
