package circulacion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/biblioteca-api/internal/domain/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

func ejemplar(id, estado string) entity.Ejemplar {
	return entity.Ejemplar{ID: id, IDLibro: "libro-1", CodigoInterno: "EJ-" + id, Estado: estado}
}

func prestamoAbierto(idEjemplar string) entity.Prestamo {
	return entity.Prestamo{
		ID:                      "prestamo-" + idEjemplar,
		IDEjemplar:              idEjemplar,
		FechaPrestamo:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FechaDevolucionPrevista: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Estado:                  entity.PrestamoRegistroActivo,
	}
}

func prestamoDevuelto(idEjemplar string) entity.Prestamo {
	p := prestamoAbierto(idEjemplar)
	devuelto := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	p.FechaDevolucionReal = &devuelto
	return p
}

// El caso normal: ejemplares activos menos los que tienen préstamo abierto.
func TestDisponibles_ActivosMenosPrestados(t *testing.T) {
	ejemplares := []entity.Ejemplar{
		ejemplar("e1", entity.EjemplarActivo),
		ejemplar("e2", entity.EjemplarActivo),
		ejemplar("e3", entity.EjemplarActivo),
	}
	prestamos := []entity.Prestamo{prestamoAbierto("e2")}

	disponibles := circulacion.Disponibles(ejemplares, prestamos)

	require.Len(t, disponibles, 2, "de 3 activos con 1 prestado deben quedar 2")
	assert.Equal(t, "e1", disponibles[0].ID)
	assert.Equal(t, "e3", disponibles[1].ID)
}

// Un préstamo ya devuelto no bloquea el ejemplar.
func TestDisponibles_PrestamoDevueltoNoBloquea(t *testing.T) {
	ejemplares := []entity.Ejemplar{ejemplar("e1", entity.EjemplarActivo)}
	prestamos := []entity.Prestamo{prestamoDevuelto("e1")}

	disponibles := circulacion.Disponibles(ejemplares, prestamos)

	assert.Len(t, disponibles, 1, "el ejemplar con préstamo devuelto debe estar disponible")
}

// Ejemplares inactivos o pendientes nunca cuentan, tengan o no préstamo.
func TestDisponibles_SoloCuentanActivos(t *testing.T) {
	ejemplares := []entity.Ejemplar{
		ejemplar("e1", entity.EjemplarInactivo),
		ejemplar("e2", entity.EjemplarPendiente),
		ejemplar("e3", entity.EjemplarActivo),
	}

	disponibles := circulacion.Disponibles(ejemplares, nil)

	require.Len(t, disponibles, 1)
	assert.Equal(t, "e3", disponibles[0].ID)
}

// Un préstamo abierto que referencia un ejemplar no activo (o inexistente) no
// debe alterar el resultado: conteo y lista salen del mismo filtro.
func TestDisponibles_PrestamoSobreEjemplarNoActivo(t *testing.T) {
	ejemplares := []entity.Ejemplar{
		ejemplar("e1", entity.EjemplarActivo),
		ejemplar("e2", entity.EjemplarInactivo),
	}
	prestamos := []entity.Prestamo{
		prestamoAbierto("e2"),          // ejemplar inactivo
		prestamoAbierto("fantasma-99"), // ejemplar que no existe en el set
	}

	disponibles := circulacion.Disponibles(ejemplares, prestamos)

	require.Len(t, disponibles, 1)
	assert.Equal(t, "e1", disponibles[0].ID)
}

// Entradas vacías producen lista vacía, nunca error ni nil-panic.
func TestDisponibles_EntradasVacias(t *testing.T) {
	assert.Empty(t, circulacion.Disponibles(nil, nil))
	assert.Empty(t, circulacion.Disponibles([]entity.Ejemplar{}, []entity.Prestamo{}))
}

// Idempotencia: dos llamadas con la misma entrada dan el mismo resultado.
func TestDisponibles_Idempotente(t *testing.T) {
	ejemplares := []entity.Ejemplar{
		ejemplar("e1", entity.EjemplarActivo),
		ejemplar("e2", entity.EjemplarActivo),
	}
	prestamos := []entity.Prestamo{prestamoAbierto("e1")}

	primera := circulacion.Disponibles(ejemplares, prestamos)
	segunda := circulacion.Disponibles(ejemplares, prestamos)

	assert.Equal(t, primera, segunda)
}
