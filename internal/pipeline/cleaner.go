package pipeline

import (
	"github.com/paulcobox/ar-carga-sabana/internal/domain"
	"github.com/paulcobox/ar-carga-sabana/internal/rules"
)

// Clean normalizes every record's scalar fields: the price is cleaned and
// overwritten (capturing a modification entry when it had to be coerced),
// free-text columns are trimmed and upper-cased, and the fiscal-year columns
// are coerced to numeric with non-numeric values degrading to the
// missing-value sentinel. Clean never rejects a record; it returns a new
// record set plus the report of everything it changed. Running it over an
// already-clean set produces an empty report.
func Clean(records []domain.Record) ([]domain.Record, domain.ModificationReport) {
	cleaned := make([]domain.Record, 0, len(records))
	var report domain.ModificationReport

	for _, rec := range records {
		out := rec.Clone()

		original := out.Get(domain.ColPrecio)
		price, verdict := rules.NormalizePrice(original)
		if !verdict.Valid {
			report = append(report, domain.Modification{
				Row:      out.Row,
				Column:   domain.ColPrecio,
				Original: original,
				Cleaned:  price,
				Reason:   verdict.Reason,
				Codigo:   out.Code(),
				Asesor:   out.Advisor(),
			})
		}
		out.Set(domain.ColPrecio, price)

		for _, col := range domain.TextColumns {
			out.Set(col, rules.NormalizeText(out.Get(col)))
		}

		for _, col := range domain.YearColumns {
			if year, ok := rules.ToYear(out.Get(col)); ok {
				out.Set(col, year)
			} else {
				out.Set(col, nil)
			}
		}

		cleaned = append(cleaned, out)
	}

	return cleaned, report
}
