// Package model defines the budgeting entities and their total derivation rules.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewID returns a fresh opaque identifier (random UUID).
func NewID() string {
	return uuid.NewString()
}

// EventType selects the kind of occasion being budgeted.
type EventType string

// Known event types.
const (
	Engagement  EventType = "engagement"
	Marriage    EventType = "marriage"
	GroomPrep   EventType = "groom_prep"
	BridePrep   EventType = "bride_prep"
	Birthday    EventType = "birthday"
	BabyShower  EventType = "baby_shower"
	Wedding     EventType = "wedding"
	CustomEvent EventType = "custom"
)

// EventTypes lists every event type in menu order.
var EventTypes = []EventType{
	Engagement, Marriage, Wedding, GroomPrep, BridePrep, Birthday, BabyShower, CustomEvent,
}

var eventLabels = map[EventType]string{
	Engagement:  "خطوبة",
	Marriage:    "كتب كتاب",
	Wedding:     "فرح",
	GroomPrep:   "تجهيزات عريس",
	BridePrep:   "تجهيزات عروسة",
	Birthday:    "عيد ميلاد",
	BabyShower:  "سبوع",
	CustomEvent: "مناسبة خاصة",
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	_, ok := eventLabels[t]
	return ok
}

// Label returns the display label for t, or t itself when unknown.
func (t EventType) Label() string {
	if l, ok := eventLabels[t]; ok {
		return l
	}
	return string(t)
}

// ParseEventType converts a user supplied string to an EventType.
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return t, nil
}

// Location is where an engagement takes place.
type Location string

// Engagement locations. NoLocation is used for every other event type.
const (
	NoLocation Location = ""
	Home       Location = "home"
	Hall       Location = "hall"
)

// ParseLocation converts a user supplied string to a Location.
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case NoLocation, Home, Hall:
		return Location(s), nil
	}
	return "", fmt.Errorf("unknown location %q (want home or hall)", s)
}

// Label returns the display label for l.
func (l Location) Label() string {
	switch l {
	case Home:
		return "في البيت"
	case Hall:
		return "في قاعة"
	}
	return ""
}

// CostItem is a single budget line.
type CostItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Total         decimal.Decimal `json:"total"`
	IsManualTotal bool            `json:"isManualTotal"`
	IsChecked     bool            `json:"isChecked"`
}

// Section is a named, ordered grouping of items.
type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Items       []CostItem `json:"items"`
	IsCollapsed bool       `json:"isCollapsed"`
}

// Event is one planning session. Timestamps are Unix milliseconds.
type Event struct {
	ID           string    `json:"id"`
	Type         EventType `json:"type"`
	CustomName   string    `json:"customName,omitempty"`
	Location     Location  `json:"location,omitempty"`
	Sections     []Section `json:"sections"`
	CreatedAt    int64     `json:"createdAt"`
	LastModified int64     `json:"lastModified"`
}

// AppState is the whole persisted application state.
type AppState struct {
	CurrentEvent *Event  `json:"currentEvent"`
	SavedEvents  []Event `json:"savedEvents"`
	IsFirstVisit bool    `json:"isFirstVisit"`
}

// Initial returns the state of a true first visit.
func Initial() AppState {
	return AppState{SavedEvents: []Event{}, IsFirstVisit: true}
}

// NewEvent builds an empty event of the given type created at now.
// A location is kept only for engagements.
func NewEvent(t EventType, customName string, loc Location, now time.Time) Event {
	if t != Engagement {
		loc = NoLocation
	}
	ms := now.UnixMilli()
	return Event{
		ID:           NewID(),
		Type:         t,
		CustomName:   customName,
		Location:     loc,
		Sections:     []Section{},
		CreatedAt:    ms,
		LastModified: ms,
	}
}

// DisplayName returns the custom name when set, else the type label.
func (e Event) DisplayName() string {
	if e.CustomName != "" {
		return e.CustomName
	}
	return e.Type.Label()
}

// Created returns CreatedAt as a time.
func (e Event) Created() time.Time { return time.UnixMilli(e.CreatedAt) }

// Modified returns LastModified as a time.
func (e Event) Modified() time.Time { return time.UnixMilli(e.LastModified) }

// Clone returns a deep copy of s.
func (s Section) Clone() Section {
	c := s
	c.Items = make([]CostItem, len(s.Items))
	copy(c.Items, s.Items)
	return c
}

// Clone returns a deep copy of e.
func (e Event) Clone() Event {
	c := e
	c.Sections = make([]Section, len(e.Sections))
	for i, s := range e.Sections {
		c.Sections[i] = s.Clone()
	}
	return c
}

// Clone returns a deep copy of s.
func (s AppState) Clone() AppState {
	c := AppState{IsFirstVisit: s.IsFirstVisit}
	if s.CurrentEvent != nil {
		ev := s.CurrentEvent.Clone()
		c.CurrentEvent = &ev
	}
	c.SavedEvents = make([]Event, len(s.SavedEvents))
	for i, e := range s.SavedEvents {
		c.SavedEvents[i] = e.Clone()
	}
	return c
}
