package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePriceCancellationMarkers(t *testing.T) {
	cases := []struct {
		name   string
		raw    any
		marker string
	}{
		{"plain marker", "ANULADO", "ANULADO"},
		{"lower case with padding", "  anulado  ", "ANULADO"},
		{"compound marker", "BONIFICADO PERDIDO", "BONIFICADO"},
		{"irregular internal spacing", "BONIFICADO  PERDIDO", "BONIFICADO"},
		{"marker inside longer text", "SERVICIO ANULADO POR CLIENTE", "ANULADO"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, verdict := NormalizePrice(tc.raw)
			assert.Equal(t, 0.0, value)
			assert.False(t, verdict.Valid)
			assert.Contains(t, verdict.Reason, tc.marker)
		})
	}
}

func TestNormalizePriceCurrencyText(t *testing.T) {
	value, verdict := NormalizePrice("S/ 1,234.50")
	require.True(t, verdict.Valid)
	assert.Equal(t, ReasonOK, verdict.Reason)
	assert.Equal(t, 1234.50, value)
}

func TestNormalizePriceNegative(t *testing.T) {
	value, verdict := NormalizePrice(-150.0)
	assert.Equal(t, 0.0, value)
	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Reason, "negative")

	value, verdict = NormalizePrice("-12")
	assert.Equal(t, 0.0, value)
	assert.Contains(t, verdict.Reason, "negative")
}

func TestNormalizePriceNonNumeric(t *testing.T) {
	value, verdict := NormalizePrice("pendiente")
	assert.Equal(t, 0.0, value)
	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Reason, "non-numeric")
	// Original raw text preserved for diagnostics.
	assert.Contains(t, verdict.Reason, "pendiente")
}

func TestNormalizePriceNil(t *testing.T) {
	value, verdict := NormalizePrice(nil)
	assert.Equal(t, 0.0, value)
	assert.False(t, verdict.Valid)
}

func TestNormalizePriceNumericPassthrough(t *testing.T) {
	value, verdict := NormalizePrice(1500.0)
	assert.True(t, verdict.Valid)
	assert.Equal(t, 1500.0, value)

	value, verdict = NormalizePrice(0.0)
	assert.True(t, verdict.Valid)
	assert.Equal(t, 0.0, value)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "JUAN PEREZ", NormalizeText("  juan perez "))
	assert.Nil(t, NormalizeText(nil))
	assert.Equal(t, 42, NormalizeText(42))
}

func TestMonthNameToNumber(t *testing.T) {
	assert.Equal(t, 1, MonthNameToNumber("Enero"))
	assert.Equal(t, 9, MonthNameToNumber(" SETIEMBRE "))
	assert.Equal(t, 9, MonthNameToNumber("septiembre"))
	assert.Equal(t, 12, MonthNameToNumber("DICIEMBRE"))

	// Unrecognized values pass through unchanged.
	assert.Equal(t, "Miercoles", MonthNameToNumber("Miercoles"))
	assert.Equal(t, 7, MonthNameToNumber(7))
	assert.Nil(t, MonthNameToNumber(nil))
}

func TestToYear(t *testing.T) {
	year, ok := ToYear("2025")
	require.True(t, ok)
	assert.Equal(t, 2025, year)

	year, ok = ToYear("2025.0")
	require.True(t, ok)
	assert.Equal(t, 2025, year)

	year, ok = ToYear(2024.0)
	require.True(t, ok)
	assert.Equal(t, 2024, year)

	_, ok = ToYear("sin año")
	assert.False(t, ok)
	_, ok = ToYear(nil)
	assert.False(t, ok)
	_, ok = ToYear("")
	assert.False(t, ok)
}
