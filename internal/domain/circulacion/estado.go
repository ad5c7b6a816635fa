package circulacion

import (
	"time"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// Estados de presentación de un préstamo (derivados, nunca persistidos).
const (
	PrestamoDevuelto = "devuelto"
	PrestamoAtrasado = "atrasado"
	PrestamoActivo   = "activo"
)

// ReservaExpirada estado derivado de una reserva activa cuya fecha de
// expiración ya pasó. Los demás estados de reserva son los persistidos.
const ReservaExpirada = "expirada"

// EstadoPrestamo clasifica un préstamo por sus fechas:
//   - devuelto: hay fecha de devolución real
//   - atrasado: sin devolución y hoy es posterior a la fecha prevista
//   - activo:   sin devolución y hoy es la fecha prevista o anterior
//
// La comparación es por día calendario; el mismo día de la fecha prevista el
// préstamo sigue activo.
func EstadoPrestamo(prevista time.Time, real *time.Time, hoy time.Time) string {
	if real != nil {
		return PrestamoDevuelto
	}
	if diaPosterior(hoy, prevista) {
		return PrestamoAtrasado
	}
	return PrestamoActivo
}

// EstadoReserva refina el estado persistido de la reserva: una "activa" cuya
// fecha de expiración ya pasó se presenta como "expirada". Los estados
// "completada" y "cancelada" (y cualquier otro valor almacenado) pasan sin
// cambio; nunca se re-derivan por fechas.
func EstadoReserva(estado string, expiracion, hoy time.Time) string {
	if estado == entity.ReservaActiva && diaPosterior(hoy, expiracion) {
		return ReservaExpirada
	}
	return estado
}

// diaPosterior indica si el día calendario de a es estrictamente posterior al
// de b, ignorando horas y zonas horarias distintas dentro del mismo día.
func diaPosterior(a, b time.Time) bool {
	return truncarDia(a).After(truncarDia(b))
}

func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
