package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulcobox/ar-carga-sabana/internal/domain"
)

// ReasonOK marks a value that needed no coercion.
const ReasonOK = "OK"

// priceCleaner strips the currency symbol, internal spaces and thousands
// separators before the numeric parse.
var priceCleaner = strings.NewReplacer("S/", "", " ", "", ",", "")

// NormalizePrice cleans a PRECIO value. It never fails: any input that cannot
// be interpreted as a non-negative number degrades to 0.0 with a reason the
// caller can report. Textual values are trimmed and upper-cased first; if the
// text contains a cancellation marker the price is zero by business rule.
func NormalizePrice(raw any) (float64, Verdict) {
	switch v := raw.(type) {
	case string:
		upper := strings.ToUpper(strings.TrimSpace(v))
		for _, marker := range domain.CancellationMarkers {
			if strings.Contains(upper, marker) {
				return 0, Verdict{Valid: false, Reason: fmt.Sprintf("replaced with 0 (contains '%s')", marker)}
			}
		}
		value, err := strconv.ParseFloat(priceCleaner.Replace(upper), 64)
		if err != nil {
			return 0, Verdict{Valid: false, Reason: fmt.Sprintf("replaced with 0 (non-numeric value: '%s')", v)}
		}
		return clampNegative(value)
	case float64:
		return clampNegative(v)
	case float32:
		return clampNegative(float64(v))
	case int:
		return clampNegative(float64(v))
	case int64:
		return clampNegative(float64(v))
	case nil:
		return 0, Verdict{Valid: false, Reason: "replaced with 0 (non-numeric value: '')"}
	default:
		value, err := strconv.ParseFloat(fmt.Sprintf("%v", raw), 64)
		if err != nil {
			return 0, Verdict{Valid: false, Reason: fmt.Sprintf("replaced with 0 (non-numeric value: '%v')", raw)}
		}
		return clampNegative(value)
	}
}

func clampNegative(value float64) (float64, Verdict) {
	if value < 0 {
		return 0, Verdict{Valid: false, Reason: "replaced with 0 (negative value)"}
	}
	return value, Verdict{Valid: true, Reason: ReasonOK}
}

// NormalizeText trims and upper-cases string input. Anything else, including
// nil, passes through unchanged.
func NormalizeText(raw any) any {
	if s, ok := raw.(string); ok {
		return strings.ToUpper(strings.TrimSpace(s))
	}
	return raw
}

// MonthNameToNumber maps a recognized month name to its 1-12 ordinal.
// Unrecognized values come back unchanged; numeric months are validated
// separately by IsValidMonth.
func MonthNameToNumber(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	if n, found := domain.MonthNumbers[strings.ToUpper(strings.TrimSpace(s))]; found {
		return n
	}
	return raw
}

// ToYear coerces a fiscal-year value to an integer. The second return is
// false when the value is absent or not numeric.
func ToYear(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}
