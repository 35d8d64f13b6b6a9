package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	defer SetCurrency("")

	SetCurrency("usd")
	if got := FormatMoney(decimal.RequireFromString("1234.5")); got != "$1,234.50" {
		t.Errorf("FormatMoney(1234.5) = %q, want %q", got, "$1,234.50")
	}
	if got := FormatMoney(decimal.RequireFromString("0.005")); !strings.Contains(got, "0.01") {
		t.Errorf("FormatMoney(0.005) = %q, want rounding to 0.01", got)
	}

	SetCurrency("XYZ")
	if got := FormatMoney(decimal.NewFromInt(500)); got != "500.00 XYZ" {
		t.Errorf("unknown currency = %q, want %q", got, "500.00 XYZ")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "0", false},
		{" 10 ", "10", false},
		{"1,250.5", "1250.5", false},
		{"0.1", "0.1", false},
		{"-3", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.NewFromInt(1), decimal.NewFromInt(4)); got != "25.0%" {
		t.Errorf("FormatPercent(1, 4) = %q", got)
	}
	if got := FormatPercent(decimal.NewFromInt(1), decimal.Zero); got != "-" {
		t.Errorf("FormatPercent(1, 0) = %q", got)
	}
}

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"البند", "السعر"},
		Rows: [][]string{
			{"كيكة", "500"},
			{Separator},
			{"بالونات", "5"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "بالونات") {
		t.Errorf("table missing row:\n%s", out)
	}
}
