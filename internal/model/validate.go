package model

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a structurally implausible state.
var ErrInvalid = errors.New("invalid state")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks that e could have been produced by this program.
// Empty names and zero quantities are valid; negative numbers, unknown
// types, a location on a non-engagement event, a computed total that
// disagrees with quantity*price, and duplicate IDs are not.
func (e Event) Validate() error {
	if e.ID == "" {
		return invalidf("event without id")
	}
	if !e.Type.Valid() {
		return invalidf("event %s: unknown type %q", e.ID, e.Type)
	}
	switch e.Location {
	case NoLocation:
	case Home, Hall:
		if e.Type != Engagement {
			return invalidf("event %s: location %q on %s event", e.ID, e.Location, e.Type)
		}
	default:
		return invalidf("event %s: unknown location %q", e.ID, e.Location)
	}
	if e.CreatedAt < 0 || e.LastModified < e.CreatedAt {
		return invalidf("event %s: lastModified before createdAt", e.ID)
	}

	seen := map[string]bool{e.ID: true}
	for _, s := range e.Sections {
		if s.ID == "" || seen[s.ID] {
			return invalidf("section %q: missing or duplicate id", s.ID)
		}
		seen[s.ID] = true
		for _, it := range s.Items {
			if it.ID == "" || seen[it.ID] {
				return invalidf("item %q: missing or duplicate id", it.ID)
			}
			seen[it.ID] = true
			if err := it.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (it CostItem) validate() error {
	if it.Quantity.IsNegative() || it.Price.IsNegative() || it.Total.IsNegative() {
		return invalidf("item %s: negative amount", it.ID)
	}
	if !it.IsManualTotal && !it.Total.Equal(it.Quantity.Mul(it.Price)) {
		return invalidf("item %s: total %s != %s x %s", it.ID, it.Total, it.Quantity, it.Price)
	}
	return nil
}

// Validate checks the current event and every saved event.
func (s AppState) Validate() error {
	if s.CurrentEvent != nil {
		if err := s.CurrentEvent.Validate(); err != nil {
			return err
		}
	}
	for _, e := range s.SavedEvents {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Normalize returns e with its derived fields brought in line with
// Validate: computed totals are recomputed, a location on a
// non-engagement event is dropped, and missing or duplicate IDs are
// replaced with fresh ones. Values Validate rejects that cannot be
// derived, such as negative amounts, are left alone.
func (e Event) Normalize() Event {
	e = e.Clone()
	if e.Type != Engagement {
		e.Location = NoLocation
	}
	if e.ID == "" {
		e.ID = NewID()
	}
	seen := map[string]bool{e.ID: true}
	fresh := func(id string) string {
		if id == "" || seen[id] {
			id = NewID()
		}
		seen[id] = true
		return id
	}
	for i := range e.Sections {
		s := &e.Sections[i]
		s.ID = fresh(s.ID)
		for j := range s.Items {
			it := &s.Items[j]
			it.ID = fresh(it.ID)
			it.Recompute()
		}
	}
	return e
}
