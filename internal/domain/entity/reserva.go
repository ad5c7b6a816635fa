package entity

import "time"

// Estados persistidos de una reserva. "expirada" no se guarda nunca: se deriva
// por fecha en el paquete circulacion cuando la reserva activa ya venció.
const (
	ReservaActiva     = "activa"
	ReservaCompletada = "completada"
	ReservaCancelada  = "cancelada"
)

// Reserva apartado de un ejemplar por un usuario hasta una fecha de expiración.
type Reserva struct {
	ID              string
	IDUsuario       string
	IDEjemplar      string
	FechaReserva    time.Time
	FechaExpiracion time.Time
	Estado          string // activa | completada | cancelada
}
