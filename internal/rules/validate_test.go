package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCode(t *testing.T) {
	cases := []struct {
		name   string
		code   any
		valid  bool
		reason string
	}{
		{"well formed", "0-35-13-3203-012025-100", true, "valid"},
		{"five digit fifth segment", "0-35-13-3203-12025-100", false, "segment 5 must have 6 digits (year+month)"},
		{"not a string", 12345, false, "not a string"},
		{"nil", nil, false, "not a string"},
		{"too few segments", "0-35-13-3203-012025", false, "must have 5 dashes (has 4)"},
		{"too many segments", "0-35-13-3203-012025-100-9", false, "must have 5 dashes (has 6)"},
		{"non numeric segment", "0-35-AB-3203-012025-100", false, "every segment must be numeric"},
		{"empty segment", "0-35--3203-012025-100", false, "every segment must be numeric"},
		{"empty string", "", false, "must have 5 dashes (has 0)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := ValidateCode(tc.code)
			assert.Equal(t, tc.valid, verdict.Valid)
			assert.Equal(t, tc.reason, verdict.Reason)
		})
	}
}

func TestValidateCodeChecksShortCircuitInOrder(t *testing.T) {
	// Both the segment count and the digit rule are broken; the count is
	// reported because it is checked first.
	verdict := ValidateCode("AB-CD")
	assert.False(t, verdict.Valid)
	assert.Equal(t, "must have 5 dashes (has 1)", verdict.Reason)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("Enero"))
	assert.True(t, IsValidMonth("  DICIEMBRE "))
	assert.True(t, IsValidMonth("Setiembre"))
	assert.True(t, IsValidMonth(7))
	assert.True(t, IsValidMonth(12.0))
	assert.True(t, IsValidMonth(int64(1)))

	assert.False(t, IsValidMonth(13))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(-3))
	assert.False(t, IsValidMonth("Miercoles"))
	assert.False(t, IsValidMonth(nil))
	assert.False(t, IsValidMonth(true))
}
