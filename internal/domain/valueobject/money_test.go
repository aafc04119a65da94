package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmountIDR(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Rp 0"},
		{"500", "Rp 500"},
		{"1500", "Rp 1.500"},
		{"1234567", "Rp 1.234.567"},
		{"1000000000", "Rp 1.000.000.000"},
		{"1234567.89", "Rp 1.234.568"},
		{"-50000", "Rp -50.000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FormatAmount(amount, CurrencyIDR))
		})
	}
}

func TestFormatAmountUSD(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"999", "$999.00"},
		{"-42.5", "$-42.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FormatAmount(amount, CurrencyUSD))
		})
	}
}

func TestParseAmountRoundTrip(t *testing.T) {
	for _, currency := range []Currency{CurrencyIDR, CurrencyUSD} {
		for _, raw := range []string{"0", "500", "1234567", "1000000000"} {
			amount := decimal.RequireFromString(raw)
			formatted := FormatAmount(amount, currency)
			parsed, err := ParseAmount(formatted, currency)
			require.NoError(t, err, "currency %s amount %s", currency, raw)
			assert.True(t, parsed.Equal(amount),
				"currency %s: %s formatted to %s parsed back to %s", currency, raw, formatted, parsed)
		}
	}
}

func TestParseAmountPlainNumber(t *testing.T) {
	parsed, err := ParseAmount("12500", CurrencyIDR)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(decimal.NewFromInt(12500)))

	parsed, err = ParseAmount("99.95", CurrencyUSD)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(decimal.RequireFromString("99.95")))
}

func TestParseAmountInvalid(t *testing.T) {
	_, err := ParseAmount("", CurrencyIDR)
	assert.Error(t, err)

	_, err = ParseAmount("Rp abc", CurrencyIDR)
	assert.Error(t, err)
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("IDR")
	require.NoError(t, err)
	assert.Equal(t, CurrencyIDR, c)

	c, err = ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, CurrencyUSD, c)

	_, err = ParseCurrency("EUR")
	assert.Error(t, err)
}
