package domain

import "fmt"

// Modification records that the cleaner altered a field value. The identity
// fields of the owning record are captured so the entry stays traceable after
// the original value is gone.
type Modification struct {
	Row      int
	Column   string
	Original any
	Cleaned  any
	Reason   string
	Codigo   string
	Asesor   string
}

func (m Modification) String() string {
	return fmt.Sprintf("row %d: %s original=%q cleaned=%v | reason: %s | CODIGO: %s | ASESOR: %s",
		m.Row, m.Column, fmt.Sprintf("%v", m.Original), m.Cleaned, m.Reason, m.Codigo, m.Asesor)
}

// ModificationReport is the ordered side-channel of every coerced value.
type ModificationReport []Modification

// Rejection records that a record was excluded from the load.
type Rejection struct {
	Row      int
	Codigo   string
	Reason   string
	Asesor   string
	Proyecto string
	Ano      any
}

func (r Rejection) String() string {
	return fmt.Sprintf("row %d: CODIGO=%q | reason: %s | ASESOR: %s | PROYECTO: %s | AÑO: %v",
		r.Row, r.Codigo, r.Reason, r.Asesor, r.Proyecto, r.Ano)
}

// RejectionReport collects the silently excluded records of one run.
type RejectionReport []Rejection
