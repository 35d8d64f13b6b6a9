// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var currency = money.EGP

// SetCurrency selects the ISO 4217 currency used by FormatMoney.
// Unknown codes are kept and printed after a plain amount.
func SetCurrency(code string) {
	if code == "" {
		code = money.EGP
	}
	currency = strings.ToUpper(code)
}

// Currency returns the active currency code.
func Currency() string { return currency }

// FormatMoney formats an amount in the active currency.
// e.g., 1234.5 -> "£1,234.50" for EGP
func FormatMoney(d decimal.Decimal) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return d.StringFixed(2) + " " + currency
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatQuantity formats a count without trailing zeros.
// e.g., 10 -> "10", 2.50 -> "2.5"
func FormatQuantity(d decimal.Decimal) string {
	return d.String()
}

// ParseAmount parses a non-negative user supplied number.
// Thousands separators are accepted: "1,250.5" -> 1250.5
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative: %s", s)
	}
	return d, nil
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a part of a whole as a percentage string.
// A zero whole gives "-".
func FormatPercent(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return "-"
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
