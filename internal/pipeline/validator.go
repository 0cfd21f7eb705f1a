package pipeline

import (
	"fmt"
	"strings"

	"github.com/paulcobox/ar-carga-sabana/internal/domain"
	"github.com/paulcobox/ar-carga-sabana/internal/rules"
)

// RecordErrors aggregates every failed check of one record.
type RecordErrors struct {
	Row      int
	Identity string
	Problems []string
}

// BatchValidationError is the hard failure raised when admitted records fail
// the completeness pass. It keeps the full violation list; truncation for
// display is the caller's choice via Detail.
type BatchValidationError struct {
	Records []RecordErrors
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d records", len(e.Records))
}

// Detail renders up to limit record blocks plus a count of the remainder.
// A non-positive limit renders every block.
func (e *BatchValidationError) Detail(limit int) string {
	blocks := e.Records
	remainder := 0
	if limit > 0 && len(blocks) > limit {
		remainder = len(blocks) - limit
		blocks = blocks[:limit]
	}

	var b strings.Builder
	b.WriteString("validation errors found:")
	for _, rec := range blocks {
		fmt.Fprintf(&b, "\nrecord with errors (row %d) - %s:", rec.Row, rec.Identity)
		for _, problem := range rec.Problems {
			fmt.Fprintf(&b, "\n  - %s", problem)
		}
	}
	if remainder > 0 {
		fmt.Fprintf(&b, "\n  ... and %d more records with errors", remainder)
	}
	return b.String()
}

// Validate runs the final completeness pass over the records that will be
// loaded under strict rules: mandatory text fields non-empty, both month
// fields present and valid, price numeric and non-negative. Every failing
// check is collected; a non-empty result aborts the whole run before any
// database interaction.
func Validate(records []domain.Record) error {
	var failed []RecordErrors

	for _, rec := range records {
		var problems []string

		for _, col := range domain.MandatoryColumns {
			s, ok := rec.Get(col).(string)
			if !ok || strings.TrimSpace(s) == "" {
				problems = append(problems, fmt.Sprintf("%s invalid (empty or not text)", col))
			}
		}

		for _, col := range []string{domain.ColMesFacturacion, domain.ColMesRealizacion} {
			value := rec.Get(col)
			switch {
			case value == nil:
				problems = append(problems, fmt.Sprintf("%s is empty", col))
			case !rules.IsValidMonth(value):
				problems = append(problems, fmt.Sprintf("%s invalid: %v", col, value))
			}
		}

		if problem, ok := checkPrice(rec.Get(domain.ColPrecio)); !ok {
			problems = append(problems, problem)
		}

		if len(problems) > 0 {
			failed = append(failed, RecordErrors{
				Row:      rec.Row,
				Identity: rec.Identity(),
				Problems: problems,
			})
		}
	}

	if len(failed) > 0 {
		return &BatchValidationError{Records: failed}
	}
	return nil
}

func checkPrice(value any) (string, bool) {
	var price float64
	switch v := value.(type) {
	case float64:
		price = v
	case float32:
		price = float64(v)
	case int:
		price = float64(v)
	case int64:
		price = float64(v)
	default:
		return fmt.Sprintf("%s invalid: %v", domain.ColPrecio, value), false
	}
	if price < 0 {
		return fmt.Sprintf("%s invalid: %v", domain.ColPrecio, value), false
	}
	return "", true
}
