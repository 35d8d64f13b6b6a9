package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"
)

// Sections and items are addressed by 1-based position ("2" is the second
// section, "2.3" its third item) or by a unique prefix of their ID.

func resolveSection(ev model.Event, ref string) (model.Section, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(ev.Sections) {
			return model.Section{}, fmt.Errorf("section %d out of range (1-%d)", n, len(ev.Sections))
		}
		return ev.Sections[n-1], nil
	}

	var found []model.Section
	for _, s := range ev.Sections {
		if ref != "" && strings.HasPrefix(s.ID, ref) {
			found = append(found, s)
		}
	}
	switch len(found) {
	case 0:
		return model.Section{}, fmt.Errorf("no section matches %q: %w", ref, model.ErrSectionNotFound)
	case 1:
		return found[0], nil
	}
	return model.Section{}, fmt.Errorf("%q matches %d sections; use a longer prefix", ref, len(found))
}

func resolveItem(ev model.Event, ref string) (model.Section, model.CostItem, error) {
	ref = strings.TrimSpace(ref)
	if secRef, itemRef, ok := strings.Cut(ref, "."); ok {
		if n, err := strconv.Atoi(itemRef); err == nil {
			s, err := resolveSection(ev, secRef)
			if err != nil {
				return model.Section{}, model.CostItem{}, err
			}
			if n < 1 || n > len(s.Items) {
				return model.Section{}, model.CostItem{}, fmt.Errorf("item %d out of range in section %q (1-%d)", n, s.Title, len(s.Items))
			}
			return s, s.Items[n-1], nil
		}
	}

	type match struct {
		s  model.Section
		it model.CostItem
	}
	var found []match
	for _, s := range ev.Sections {
		for _, it := range s.Items {
			if ref != "" && strings.HasPrefix(it.ID, ref) {
				found = append(found, match{s, it})
			}
		}
	}
	switch len(found) {
	case 0:
		return model.Section{}, model.CostItem{}, fmt.Errorf("no item matches %q: %w", ref, model.ErrItemNotFound)
	case 1:
		return found[0].s, found[0].it, nil
	}
	return model.Section{}, model.CostItem{}, fmt.Errorf("%q matches %d items; use a longer prefix", ref, len(found))
}

// shortID is the ID prefix shown in listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
