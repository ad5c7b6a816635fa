package circulacion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avasquez/biblioteca-api/internal/domain/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// EstadoPrestamo
// ──────────────────────────────────────────────────────────────────────────────

func TestEstadoPrestamo_Clasificacion(t *testing.T) {
	prevista := dia(2024, 1, 10)
	devuelto := dia(2024, 1, 9)

	tests := []struct {
		nombre   string
		real     *time.Time
		hoy      time.Time
		esperado string
	}{
		{"mismo día de la fecha prevista sigue activo", nil, dia(2024, 1, 10), circulacion.PrestamoActivo},
		{"un día después ya está atrasado", nil, dia(2024, 1, 11), circulacion.PrestamoAtrasado},
		{"antes de la fecha prevista está activo", nil, dia(2024, 1, 5), circulacion.PrestamoActivo},
		{"con devolución real es devuelto sin importar hoy", &devuelto, dia(2024, 6, 1), circulacion.PrestamoDevuelto},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.esperado, circulacion.EstadoPrestamo(prevista, tc.real, tc.hoy))
		})
	}
}

// La comparación es por día calendario: las 23:59 del día previsto no son atraso.
func TestEstadoPrestamo_HoraDelDiaNoImporta(t *testing.T) {
	prevista := dia(2024, 1, 10)
	hoy := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, circulacion.PrestamoActivo, circulacion.EstadoPrestamo(prevista, nil, hoy))
}

// Una devolución registrada después de la fecha prevista sigue siendo "devuelto":
// el atraso se refleja en la multa, no en el estado.
func TestEstadoPrestamo_DevueltoTardeSigueDevuelto(t *testing.T) {
	prevista := dia(2024, 1, 10)
	real := dia(2024, 1, 20)

	assert.Equal(t, circulacion.PrestamoDevuelto, circulacion.EstadoPrestamo(prevista, &real, dia(2024, 2, 1)))
}

// ──────────────────────────────────────────────────────────────────────────────
// EstadoReserva
// ──────────────────────────────────────────────────────────────────────────────

func TestEstadoReserva_ActivaVencidaSeExpira(t *testing.T) {
	estado := circulacion.EstadoReserva(entity.ReservaActiva, dia(2024, 1, 1), dia(2024, 2, 1))
	assert.Equal(t, circulacion.ReservaExpirada, estado)
}

func TestEstadoReserva_ActivaVigenteSigueActiva(t *testing.T) {
	// El mismo día de la expiración la reserva todavía vale.
	estado := circulacion.EstadoReserva(entity.ReservaActiva, dia(2024, 1, 10), dia(2024, 1, 10))
	assert.Equal(t, entity.ReservaActiva, estado)
}

func TestEstadoReserva_EstadosFinalesNoSeRederivan(t *testing.T) {
	expiracion := dia(2024, 1, 1)
	hoy := dia(2024, 6, 1) // muy posterior a la expiración

	assert.Equal(t, entity.ReservaCompletada, circulacion.EstadoReserva(entity.ReservaCompletada, expiracion, hoy))
	assert.Equal(t, entity.ReservaCancelada, circulacion.EstadoReserva(entity.ReservaCancelada, expiracion, hoy))
}

func TestEstadoReserva_ValorDesconocidoPasaSinCambio(t *testing.T) {
	assert.Equal(t, "pendiente", circulacion.EstadoReserva("pendiente", dia(2024, 1, 1), dia(2024, 2, 1)))
}
