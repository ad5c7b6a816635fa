package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un ejemplar.
// Un ejemplar "pendiente" está prestado o en proceso; "inactivo" está dado de
// baja (deterioro, pérdida). Solo los "activo" cuentan para disponibilidad.
const (
	EjemplarActivo    = "activo"
	EjemplarInactivo  = "inactivo"
	EjemplarPendiente = "pendiente"
)

// Ejemplar instancia física de un Libro, identificable por su código interno.
type Ejemplar struct {
	ID                string
	IDLibro           string
	CodigoInterno     string
	Estado            string // activo | inactivo | pendiente
	Ubicacion         string
	FechaAdquisicion  time.Time
	PrecioAdquisicion decimal.Decimal
}
