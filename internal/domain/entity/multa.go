package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Multa sanción monetaria por la devolución tardía de un préstamo.
// Invariante: Pagada == true implica FechaPago presente (se escriben juntas).
type Multa struct {
	ID          string
	IDPrestamo  string
	IDTarifa    string
	DiasRetraso int
	MontoTotal  decimal.Decimal
	FechaPago   *time.Time
	Pagada      bool
}
