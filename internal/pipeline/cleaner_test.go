package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulcobox/ar-carga-sabana/internal/domain"
)

func testRecord(row int, fields map[string]any) domain.Record {
	rec := domain.NewRecord(row)
	for k, v := range fields {
		rec.Set(k, v)
	}
	return rec
}

func TestCleanNormalizesFields(t *testing.T) {
	records := []domain.Record{
		testRecord(2, map[string]any{
			domain.ColPrecio:         "S/ 1,500.00",
			domain.ColAsesor:         "  maria lopez ",
			domain.ColCodigo:         " 0-35-13-3203-012025-100 ",
			domain.ColAnoFacturacion: "2025",
			domain.ColAnoRealizacion: "sin dato",
		}),
	}

	cleaned, report := Clean(records)
	require.Len(t, cleaned, 1)
	assert.Empty(t, report, "a parseable price is not a modification")

	rec := cleaned[0]
	assert.Equal(t, 1500.0, rec.Get(domain.ColPrecio))
	assert.Equal(t, "MARIA LOPEZ", rec.Get(domain.ColAsesor))
	assert.Equal(t, "0-35-13-3203-012025-100", rec.Get(domain.ColCodigo))
	assert.Equal(t, 2025, rec.Get(domain.ColAnoFacturacion))
	assert.Nil(t, rec.Get(domain.ColAnoRealizacion), "non-numeric year degrades to the missing sentinel")
}

func TestCleanReportsCoercedPrices(t *testing.T) {
	records := []domain.Record{
		testRecord(2, map[string]any{
			domain.ColPrecio: "ANULADO",
			domain.ColCodigo: "0-35-13-3203-012025-100",
			domain.ColAsesor: "maria",
		}),
		testRecord(3, map[string]any{
			domain.ColPrecio: "???",
		}),
		testRecord(4, map[string]any{
			domain.ColPrecio: "250.00",
		}),
	}

	cleaned, report := Clean(records)
	require.Len(t, cleaned, 3)
	require.Len(t, report, 2, "clean never rejects, it only annotates")

	assert.Equal(t, 2, report[0].Row)
	assert.Equal(t, domain.ColPrecio, report[0].Column)
	assert.Equal(t, "ANULADO", report[0].Original)
	assert.Equal(t, 0.0, report[0].Cleaned)
	assert.Contains(t, report[0].Reason, "ANULADO")
	// Identity fields are captured as they appeared in the source row.
	assert.Equal(t, "0-35-13-3203-012025-100", report[0].Codigo)
	assert.Equal(t, "maria", report[0].Asesor)

	assert.Equal(t, 3, report[1].Row)
	assert.Contains(t, report[1].Reason, "non-numeric")

	assert.Equal(t, 0.0, cleaned[0].Get(domain.ColPrecio))
	assert.Equal(t, 0.0, cleaned[1].Get(domain.ColPrecio))
	assert.Equal(t, 250.0, cleaned[2].Get(domain.ColPrecio))
}

func TestCleanIsIdempotent(t *testing.T) {
	records := []domain.Record{
		testRecord(2, map[string]any{
			domain.ColPrecio:         "BONIFICADO",
			domain.ColAsesor:         " juan ",
			domain.ColAnoFacturacion: "2025",
		}),
	}

	once, first := Clean(records)
	require.Len(t, first, 1)

	twice, second := Clean(once)
	assert.Empty(t, second, "cleaning an already-clean set produces no new modifications")
	assert.Equal(t, once, twice)
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	rec := testRecord(2, map[string]any{domain.ColPrecio: "S/ 100"})
	_, _ = Clean([]domain.Record{rec})
	assert.Equal(t, "S/ 100", rec.Get(domain.ColPrecio))
}
