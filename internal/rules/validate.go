package rules

import (
	"fmt"
	"strings"

	"github.com/paulcobox/ar-carga-sabana/internal/domain"
)

// Verdict is the outcome of a per-field check: whether the value was
// acceptable as-is, and a short human-readable reason when it was not.
// Every validator returns a verdict for any input; none of them panic.
type Verdict struct {
	Valid  bool
	Reason string
}

// ValidateCode checks the structured service code, e.g.
// "0-35-13-3203-012025-100": six dash-separated numeric segments where the
// fifth segment encodes a year+month pair as six digits. Checks short-circuit
// in order, so the first failure decides the reported reason.
func ValidateCode(code any) Verdict {
	s, ok := code.(string)
	if !ok {
		return Verdict{Valid: false, Reason: "not a string"}
	}

	parts := strings.Split(s, "-")
	if len(parts) != 6 {
		return Verdict{Valid: false, Reason: fmt.Sprintf("must have 5 dashes (has %d)", len(parts)-1)}
	}

	for _, part := range parts {
		if !allDigits(part) {
			return Verdict{Valid: false, Reason: "every segment must be numeric"}
		}
	}

	if len(parts[4]) != 6 {
		return Verdict{Valid: false, Reason: "segment 5 must have 6 digits (year+month)"}
	}

	if last := s[len(s)-1]; last < '0' || last > '9' {
		return Verdict{Valid: false, Reason: "must end with a digit"}
	}

	return Verdict{Valid: true, Reason: "valid"}
}

// IsValidMonth reports whether a value names a month (case and
// surrounding-space insensitive) or is a number in [1, 12]. Fractional
// numbers truncate before the range check. Nil and everything else is false.
func IsValidMonth(raw any) bool {
	switch v := raw.(type) {
	case string:
		_, ok := domain.MonthNumbers[strings.ToUpper(strings.TrimSpace(v))]
		return ok
	case int:
		return v >= 1 && v <= 12
	case int64:
		return v >= 1 && v <= 12
	case float64:
		n := int(v)
		return n >= 1 && n <= 12
	case float32:
		n := int(v)
		return n >= 1 && n <= 12
	default:
		return false
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
