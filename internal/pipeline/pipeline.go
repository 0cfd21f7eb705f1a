package pipeline

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/paulcobox/ar-carga-sabana/internal/domain"
	"github.com/paulcobox/ar-carga-sabana/internal/rules"
)

// Loader is the port toward the transactional load. Implementations insert
// the admitted records one at a time inside a single transaction, in input
// order, and guarantee that the first failure rolls everything back.
type Loader interface {
	Load(ctx context.Context, records []domain.Record) (int, error)
}

// Summary reports what one run did.
type Summary struct {
	Total       int
	CurrentYear int
	OtherYears  int
	Rejected    int
	Modified    int
	Loaded      int
}

// Pipeline runs the full clean → filter → validate → load sequence over one
// batch of records. Stages execute strictly in order; any hard failure aborts
// the remainder of the run.
type Pipeline struct {
	targetYear int
	loader     Loader
	log        *zap.SugaredLogger
}

// New builds a pipeline for the given target fiscal year.
func New(targetYear int, loader Loader, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{targetYear: targetYear, loader: loader, log: log}
}

// Run processes the record set end to end. Field-level degradations and
// row-level rejections are absorbed as diagnostics; a batch validation
// failure or a load failure aborts with no partial insert.
func (p *Pipeline) Run(ctx context.Context, records []domain.Record) (Summary, error) {
	summary := Summary{Total: len(records)}

	p.log.Infow("cleaning records", "rows", len(records))
	cleaned, modifications := Clean(records)
	summary.Modified = len(modifications)
	if len(modifications) > 0 {
		p.log.Warn("records with modified prices:")
		for _, m := range modifications {
			p.log.Warn(m.String())
		}
		p.log.Warnw("total records with modified prices", "count", len(modifications))
	}

	p.log.Infow("filtering records and validating codes", "target_year", p.targetYear)
	filtered := Filter(cleaned, p.targetYear)
	summary.CurrentYear = filtered.Summary.CurrentYear
	summary.OtherYears = filtered.Summary.OtherYears
	summary.Rejected = filtered.Summary.Invalid
	if len(filtered.Rejections) > 0 {
		p.log.Warn("target-year records with invalid codes that will not be inserted:")
		for _, r := range filtered.Rejections {
			p.log.Warn(r.String())
		}
		p.log.Infow("code validation report",
			"total_current_year", filtered.Summary.CurrentYear,
			"valid", filtered.Summary.Valid,
			"invalid", filtered.Summary.Invalid,
		)
	}
	p.log.Infow("records admitted",
		"current_year", filtered.Summary.Valid,
		"other_years", filtered.Summary.OtherYears,
	)

	if err := Validate(filtered.CurrentYear); err != nil {
		var batchErr *BatchValidationError
		if errors.As(err, &batchErr) {
			p.log.Error(batchErr.Detail(5))
		}
		return summary, err
	}

	admitted := TransformMonths(filtered.Admitted)

	p.log.Infow("starting insert", "rows", len(admitted))
	loaded, err := p.loader.Load(ctx, admitted)
	if err != nil {
		return summary, errors.Wrap(err, "no records were inserted")
	}
	summary.Loaded = loaded
	p.log.Infow("inserted records", "count", loaded)

	return summary, nil
}

// TransformMonths rewrites both month columns from names to their 1-12
// ordinal on every admitted record. Values that are not recognized month
// names pass through unchanged.
func TransformMonths(records []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		c := rec.Clone()
		c.Set(domain.ColMesFacturacion, rules.MonthNameToNumber(c.Get(domain.ColMesFacturacion)))
		c.Set(domain.ColMesRealizacion, rules.MonthNameToNumber(c.Get(domain.ColMesRealizacion)))
		out = append(out, c)
	}
	return out
}
