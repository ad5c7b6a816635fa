package entity

import "time"

// Estados del registro de préstamo (campo persistido estado_prestamo).
// El estado de presentación (activo/atrasado/devuelto) se deriva por fechas
// en el paquete circulacion, no se guarda.
const (
	PrestamoRegistroActivo    = "activo"
	PrestamoRegistroInactivo  = "inactivo"
	PrestamoRegistroPendiente = "pendiente"
)

// Prestamo préstamo de un ejemplar a un usuario.
// FechaDevolucionReal ausente (nil) significa préstamo abierto.
type Prestamo struct {
	ID                      string
	IDUsuario               string
	IDEjemplar              string
	FechaPrestamo           time.Time
	FechaDevolucionPrevista time.Time
	FechaDevolucionReal     *time.Time
	Estado                  string // activo | inactivo | pendiente
	NumeroRenovaciones      int
}

// Abierto indica si el préstamo sigue sin devolución registrada.
func (p Prestamo) Abierto() bool {
	return p.FechaDevolucionReal == nil
}
