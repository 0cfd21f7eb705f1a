package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/paulcobox/ar-carga-sabana/internal/db"
	"github.com/paulcobox/ar-carga-sabana/internal/domain"
	"github.com/paulcobox/ar-carga-sabana/internal/pipeline"
	"github.com/paulcobox/ar-carga-sabana/internal/rules"
)

// LoadError reports a driver-level failure while inserting one record. It is
// distinct from a validation failure: the transaction has been rolled back
// and no row of the batch was committed.
type LoadError struct {
	Row      int
	Identity string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to insert record (row %d, %s): %v", e.Row, e.Identity, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

const insertSabanaSQL = `
	INSERT INTO ar_sabana_full (
		asesor, mes_facturacion, ano_facturacion, tipo, precio, codigo,
		inmobiliaria, servicio, proyecto, distrito, lima_que_pertenece,
		mes_realizacion, ano_realizacion,
		fb_inst, fecha_fb_inst,
		mailing, fecha_mailing,
		destacado_normal, fecha_inicio_destacado_normal, fecha_fin_destacado_normal,
		remarketing, fecha_remarketing,
		banner_top, fecha_inicio_banner_top, fecha_fin_banner_top,
		toma_de_canal, fecha_inicio_toma_de_canal, fecha_fin_toma_de_canal,
		wsp_nexo_evento, fecha_wsp_nexo_evento
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30
	)`

// SabanaRepository loads admitted records into ar_sabana_full.
type SabanaRepository struct {
	conn *db.Connection
	log  *zap.SugaredLogger
}

// NewSabanaRepository wires a repository over the shared connection.
func NewSabanaRepository(conn *db.Connection, log *zap.SugaredLogger) *SabanaRepository {
	return &SabanaRepository{conn: conn, log: log}
}

var _ pipeline.Loader = (*SabanaRepository)(nil)

// Load inserts the records one at a time, in input order, inside a single
// transaction. The first failure rolls everything back and surfaces as a
// *LoadError; only a fully inserted batch commits.
func (r *SabanaRepository) Load(ctx context.Context, records []domain.Record) (int, error) {
	inserted := 0
	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		for _, rec := range records {
			args, err := insertArgs(rec)
			if err != nil {
				return &LoadError{Row: rec.Row, Identity: rec.Identity(), Err: err}
			}
			if _, err := tx.Exec(ctx, insertSabanaSQL, args...); err != nil {
				return &LoadError{Row: rec.Row, Identity: rec.Identity(), Err: err}
			}
			r.log.Debugw("record inserted", "row", rec.Row, "identity", rec.Identity())
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// insertArgs converts one record to the insert parameter list. Months and
// years must be convertible to integers and the price to a number; by this
// point the month transform has already mapped names to ordinals, so a
// conversion failure here is a data defect equivalent to a driver failure.
func insertArgs(rec domain.Record) ([]any, error) {
	mesFact, err := asInt(rec.Get(domain.ColMesFacturacion))
	if err != nil {
		return nil, errors.Wrap(err, domain.ColMesFacturacion)
	}
	anoFact, err := asInt(rec.Get(domain.ColAnoFacturacion))
	if err != nil {
		return nil, errors.Wrap(err, domain.ColAnoFacturacion)
	}
	mesReal, err := asInt(rec.Get(domain.ColMesRealizacion))
	if err != nil {
		return nil, errors.Wrap(err, domain.ColMesRealizacion)
	}
	anoReal, err := asInt(rec.Get(domain.ColAnoRealizacion))
	if err != nil {
		return nil, errors.Wrap(err, domain.ColAnoRealizacion)
	}
	precio, err := asFloat(rec.Get(domain.ColPrecio))
	if err != nil {
		return nil, errors.Wrap(err, domain.ColPrecio)
	}

	var codigo any
	if s, ok := rec.Get(domain.ColCodigo).(string); ok {
		codigo = strings.TrimSpace(s)
	}

	args := []any{
		rec.Get(domain.ColAsesor),
		mesFact,
		anoFact,
		rec.Get(domain.ColTipo),
		precio,
		codigo,
		rec.Get(domain.ColInmobiliaria),
		rec.Get(domain.ColServicio),
		rec.Get(domain.ColProyecto),
		rec.Get(domain.ColDistrito),
		rec.Get(domain.ColLima),
		mesReal,
		anoReal,
	}
	for _, cf := range domain.CampaignFields {
		args = append(args, rec.Get(cf.Value))
		for _, dateCol := range cf.Dates {
			args = append(args, rules.SafeDate(rec.Get(dateCol)))
		}
	}
	return args, nil
}

func asInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case float32:
		return int(v), nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(f), nil
		}
	}
	return 0, errors.Newf("cannot convert %v to integer", value)
}

func asFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, nil
		}
	}
	return 0, errors.Newf("cannot convert %v to number", value)
}
