package model

import "github.com/shopspring/decimal"

// NewItem returns a checked item with a computed total and a fresh ID.
func NewItem(name string, quantity, price decimal.Decimal) CostItem {
	it := CostItem{
		ID:        NewID(),
		Name:      name,
		Quantity:  quantity,
		Price:     price,
		IsChecked: true,
	}
	it.Recompute()
	return it
}

// Recompute sets Total to Quantity*Price unless the total is manual.
func (it *CostItem) Recompute() {
	if it.IsManualTotal {
		return
	}
	it.Total = it.Quantity.Mul(it.Price)
}

// SetQuantity updates the quantity and recomputes the total.
func (it *CostItem) SetQuantity(q decimal.Decimal) {
	it.Quantity = q
	it.Recompute()
}

// SetPrice updates the unit price and recomputes the total.
func (it *CostItem) SetPrice(p decimal.Decimal) {
	it.Price = p
	it.Recompute()
}

// SetManualTotal pins the total to t regardless of quantity and price.
func (it *CostItem) SetManualTotal(t decimal.Decimal) {
	it.IsManualTotal = true
	it.Total = t
}

// ClearManualTotal returns the item to quantity*price.
func (it *CostItem) ClearManualTotal() {
	it.IsManualTotal = false
	it.Recompute()
}

// SetChecked includes or excludes the item from totals. The item's own
// total is left as is.
func (it *CostItem) SetChecked(checked bool) {
	it.IsChecked = checked
}

// SectionTotal sums the totals of checked items.
func SectionTotal(s Section) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.Items {
		if it.IsChecked {
			sum = sum.Add(it.Total)
		}
	}
	return sum
}

// EventTotal sums all section totals.
func EventTotal(e Event) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range e.Sections {
		sum = sum.Add(SectionTotal(s))
	}
	return sum
}

// Total is shorthand for SectionTotal(s).
func (s Section) Total() decimal.Decimal { return SectionTotal(s) }

// Total is shorthand for EventTotal(e).
func (e Event) Total() decimal.Decimal { return EventTotal(e) }

// CheckedCount returns how many items in the event count toward the total.
func (e Event) CheckedCount() (checked, all int) {
	for _, s := range e.Sections {
		for _, it := range s.Items {
			all++
			if it.IsChecked {
				checked++
			}
		}
	}
	return checked, all
}

// Equal reports whether two items hold the same values. Numbers are
// compared by value, so 1.0 equals 1.
func (it CostItem) Equal(o CostItem) bool {
	return it.ID == o.ID &&
		it.Name == o.Name &&
		it.Quantity.Equal(o.Quantity) &&
		it.Price.Equal(o.Price) &&
		it.Total.Equal(o.Total) &&
		it.IsManualTotal == o.IsManualTotal &&
		it.IsChecked == o.IsChecked
}

// Equal reports whether two sections hold the same values.
func (s Section) Equal(o Section) bool {
	if s.ID != o.ID || s.Title != o.Title || s.IsCollapsed != o.IsCollapsed || len(s.Items) != len(o.Items) {
		return false
	}
	for i := range s.Items {
		if !s.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two events hold the same values.
func (e Event) Equal(o Event) bool {
	if e.ID != o.ID || e.Type != o.Type || e.CustomName != o.CustomName ||
		e.Location != o.Location || e.CreatedAt != o.CreatedAt ||
		e.LastModified != o.LastModified || len(e.Sections) != len(o.Sections) {
		return false
	}
	for i := range e.Sections {
		if !e.Sections[i].Equal(o.Sections[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two application states hold the same values.
func (s AppState) Equal(o AppState) bool {
	if s.IsFirstVisit != o.IsFirstVisit || len(s.SavedEvents) != len(o.SavedEvents) {
		return false
	}
	if (s.CurrentEvent == nil) != (o.CurrentEvent == nil) {
		return false
	}
	if s.CurrentEvent != nil && !s.CurrentEvent.Equal(*o.CurrentEvent) {
		return false
	}
	for i := range s.SavedEvents {
		if !s.SavedEvents[i].Equal(o.SavedEvents[i]) {
			return false
		}
	}
	return true
}
