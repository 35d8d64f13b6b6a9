package cmd

import (
	"testing"

	"github.com/ahmedfaresabdelghani/event-cost-calculator/internal/model"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestItemEditApply(t *testing.T) {
	base := model.NewItem("كراسي", decimal.NewFromInt(10), decimal.NewFromInt(25))

	tests := []struct {
		name       string
		ed         itemEdit
		wantTotal  string
		wantManual bool
	}{
		{"quantity recomputes", itemEdit{qty: dec("4")}, "100", false},
		{"price recomputes", itemEdit{price: dec("30")}, "300", false},
		{"manual total wins over price", itemEdit{price: dec("30"), total: dec("200")}, "200", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := base
			tt.ed.apply(&it)
			if !it.Total.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", it.Total, tt.wantTotal)
			}
			if it.IsManualTotal != tt.wantManual {
				t.Errorf("IsManualTotal = %v, want %v", it.IsManualTotal, tt.wantManual)
			}
		})
	}

	t.Run("auto clears a manual total", func(t *testing.T) {
		it := base
		it.SetManualTotal(decimal.NewFromInt(1))
		itemEdit{auto: true}.apply(&it)
		if it.IsManualTotal || !it.Total.Equal(decimal.NewFromInt(250)) {
			t.Errorf("item = %+v, want computed total 250", it)
		}
	})

	t.Run("name only keeps totals", func(t *testing.T) {
		it := base
		name := "طاولات"
		itemEdit{name: &name}.apply(&it)
		if it.Name != name || !it.Total.Equal(base.Total) {
			t.Errorf("item = %+v", it)
		}
	})
}
