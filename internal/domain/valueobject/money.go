// Package valueobject contains immutable domain values shared across layers.
package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency identifies a supported display currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyIDR Currency = "IDR"
)

// ParseCurrency validates a currency code.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencyIDR:
		return CurrencyIDR, nil
	default:
		return "", fmt.Errorf("unsupported currency %q", code)
	}
}

// FormatAmount renders an amount for display in the given currency.
// IDR amounts are whole rupiah with period thousands separators
// ("Rp 1.234.567"); USD amounts carry two decimals with comma thousands
// separators ("$1,234.50").
func FormatAmount(amount decimal.Decimal, currency Currency) string {
	switch currency {
	case CurrencyIDR:
		return "Rp " + groupDigits(amount.Round(0).StringFixed(0), ".")
	default:
		fixed := amount.Round(2).StringFixed(2)
		intPart, fracPart, _ := strings.Cut(fixed, ".")
		return "$" + groupDigits(intPart, ",") + "." + fracPart
	}
}

// ParseAmount reverses FormatAmount: it strips the currency symbol and
// grouping separators and returns the numeric value. It also accepts plain
// numeric strings without symbols.
func ParseAmount(s string, currency Currency) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)

	switch currency {
	case CurrencyIDR:
		s = strings.TrimSpace(strings.TrimPrefix(s, "Rp"))
		s = strings.ReplaceAll(s, ".", "")
	default:
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
	}

	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return value, nil
}

// groupDigits inserts sep every three digits from the right. The input must
// be a plain integer string, optionally signed.
func groupDigits(digits, sep string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	n := len(digits)
	if n <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
		b.WriteString(sep)
	}
	for i := head; i < n; i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < n {
			b.WriteString(sep)
		}
	}
	return b.String()
}
