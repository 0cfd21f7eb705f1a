package domain

import "fmt"

// Record is one row of the sábana export: a mapping from canonical column
// names to scalar values. Absent or empty cells are nil. Row is the 1-based
// spreadsheet row number (the header is row 1), kept for diagnostics.
type Record struct {
	Row    int
	Fields map[string]any
}

// NewRecord builds a record for the given sheet row.
func NewRecord(row int) Record {
	return Record{Row: row, Fields: make(map[string]any)}
}

// Get returns the value for a column, or nil when the column is absent.
func (r Record) Get(col string) any {
	return r.Fields[col]
}

// Set overwrites a column value.
func (r Record) Set(col string, value any) {
	r.Fields[col] = value
}

// Clone returns a record with its own copy of the field map, so pipeline
// stages can rewrite values without mutating their input.
func (r Record) Clone() Record {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Record{Row: r.Row, Fields: fields}
}

// Code returns the CODIGO identity field rendered as text.
func (r Record) Code() string { return identityString(r.Fields[ColCodigo]) }

// Advisor returns the ASESOR identity field rendered as text.
func (r Record) Advisor() string { return identityString(r.Fields[ColAsesor]) }

// Project returns the PROYECTO identity field rendered as text.
func (r Record) Project() string { return identityString(r.Fields[ColProyecto]) }

// Identity renders the identity fields used to trace a record through
// diagnostic reports, regardless of how its business fields were coerced.
func (r Record) Identity() string {
	return fmt.Sprintf("CODIGO: %s | ASESOR: %s | PROYECTO: %s", r.Code(), r.Advisor(), r.Project())
}

func identityString(v any) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%v", v)
}
