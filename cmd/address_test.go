package cmd

import (
	"errors"
	"testing"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/shopspring/decimal"
)

func addressEvent() model.Event {
	one := decimal.NewFromInt(1)
	return model.Event{
		Sections: []model.Section{
			{ID: "aaaa1111", Title: "first", Items: []model.CostItem{
				{ID: "c0ffee01", Name: "x", Quantity: one},
				{ID: "c0ffee02", Name: "y", Quantity: one},
			}},
			{ID: "bbbb2222", Title: "second", Items: []model.CostItem{
				{ID: "deadbeef", Name: "z", Quantity: one},
			}},
		},
	}
}

func TestResolveSection(t *testing.T) {
	ev := addressEvent()

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"1", "first", false},
		{"2", "second", false},
		{"bbbb", "second", false},
		{"0", "", true},
		{"3", "", true},
		{"zz", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		s, err := resolveSection(ev, tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveSection(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && s.Title != tt.want {
			t.Errorf("resolveSection(%q) = %q, want %q", tt.ref, s.Title, tt.want)
		}
	}
}

func TestResolveItem(t *testing.T) {
	ev := addressEvent()

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"1.2", "y", false},
		{"2.1", "z", false},
		{"dead", "z", false},
		{"c0ffee01", "x", false},
		{"c0ffee", "", true}, // ambiguous
		{"1.3", "", true},
		{"3.1", "", true},
		{"nope", "", true},
	}
	for _, tt := range tests {
		_, it, err := resolveItem(ev, tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveItem(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && it.Name != tt.want {
			t.Errorf("resolveItem(%q) = %q, want %q", tt.ref, it.Name, tt.want)
		}
	}

	if _, _, err := resolveItem(ev, "nope"); !errors.Is(err, model.ErrItemNotFound) {
		t.Errorf("unknown item error = %v, want ErrItemNotFound", err)
	}
}
