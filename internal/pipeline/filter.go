package pipeline

import (
	"github.com/paulcobox/ar-carga-sabana/internal/domain"
	"github.com/paulcobox/ar-carga-sabana/internal/rules"
)

// FilterSummary counts the outcome of the fiscal-year partition and the code
// validation applied to the target-year subset.
type FilterSummary struct {
	CurrentYear int
	Valid       int
	Invalid     int
	OtherYears  int
}

// FilterResult is the outcome of Filter. Admitted preserves the original
// input order; CurrentYear is the target-year slice of Admitted, kept
// separately because only that subset goes through the final strict
// validation pass.
type FilterResult struct {
	Admitted    []domain.Record
	CurrentYear []domain.Record
	Rejections  domain.RejectionReport
	Summary     FilterSummary
}

// Filter partitions the cleaned record set by fiscal year. Records from other
// years pass through with no code validation. Target-year records must carry
// a well-formed code; those that do not are excluded and reported, which is a
// silent exclusion rather than a batch failure.
func Filter(records []domain.Record, targetYear int) FilterResult {
	var result FilterResult

	for _, rec := range records {
		year, ok := rec.Get(domain.ColAnoFacturacion).(int)
		if !ok || year != targetYear {
			result.Summary.OtherYears++
			result.Admitted = append(result.Admitted, rec)
			continue
		}

		result.Summary.CurrentYear++
		verdict := rules.ValidateCode(rec.Get(domain.ColCodigo))
		if !verdict.Valid {
			result.Summary.Invalid++
			result.Rejections = append(result.Rejections, domain.Rejection{
				Row:      rec.Row,
				Codigo:   rec.Code(),
				Reason:   verdict.Reason,
				Asesor:   rec.Advisor(),
				Proyecto: rec.Project(),
				Ano:      year,
			})
			continue
		}

		result.Summary.Valid++
		result.CurrentYear = append(result.CurrentYear, rec)
		result.Admitted = append(result.Admitted, rec)
	}

	return result
}
