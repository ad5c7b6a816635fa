package circulacion_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del caso de uso de préstamos: registro con verificación de
// disponibilidad dentro de la transacción, devolución con cálculo de multa y
// listado con estado derivado por fechas.
// ──────────────────────────────────────────────────────────────────────────────

type prestamoFixture struct {
	uc         *circulacion.PrestamoUseCase
	prestamos  *memPrestamoRepo
	ejemplares *memEjemplarRepo
	usuarios   *memUsuarioRepo
	multas     *memMultaRepo
}

func nuevoPrestamoFixture(tarifas []entity.Tarifa) *prestamoFixture {
	prestamos := &memPrestamoRepo{}
	ejemplares := &memEjemplarRepo{ejemplares: []*entity.Ejemplar{
		{ID: "ej-1", IDLibro: "lib-1", CodigoInterno: "LIB-001-01", Estado: entity.EjemplarActivo},
		{ID: "ej-2", IDLibro: "lib-1", CodigoInterno: "LIB-001-02", Estado: entity.EjemplarInactivo},
	}}
	usuarios := &memUsuarioRepo{usuarios: []*entity.Usuario{
		{ID: "usr-1", Nombre: "Ana", Apellido: "García", Activo: true},
		{ID: "usr-2", Nombre: "Luis", Apellido: "Pardo", Activo: false},
	}}
	libros := &memLibroRepo{libros: []*entity.Libro{
		{ID: "lib-1", Titulo: "Cien años de soledad"},
	}}
	multas := &memMultaRepo{}
	tx := &memTxRunner{prestamoRepo: prestamos, ejemplarRepo: ejemplares, multaRepo: multas}

	uc := circulacion.NewPrestamoUseCase(
		tx, prestamos, ejemplares, usuarios, libros,
		&memTarifaRepo{tarifas: tarifas}, nil, "Biblioteca Central",
	)
	uc.Ahora = fechaFija(2026, time.March, 10)

	return &prestamoFixture{uc: uc, prestamos: prestamos, ejemplares: ejemplares, usuarios: usuarios, multas: multas}
}

func TestPrestamoCrear_EjemplarQuedaPendiente(t *testing.T) {
	f := nuevoPrestamoFixture(nil)

	resp, err := f.uc.Crear(context.Background(), dto.CrearPrestamoRequest{
		IDUsuario:  "usr-1",
		IDEjemplar: "ej-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "activo", resp.Estado)
	assert.Equal(t, "Ana García", resp.Usuario.Nombre)
	assert.Equal(t, "Cien años de soledad", resp.Libro.Titulo)
	// sin fecha prevista en la solicitud: préstamo + 14 días
	assert.Equal(t, time.Date(2026, time.March, 24, 10, 30, 0, 0, time.UTC), resp.FechaDevolucionPrevista)

	ejemplar, _ := f.ejemplares.GetByID("ej-1")
	assert.Equal(t, entity.EjemplarPendiente, ejemplar.Estado)
}

func TestPrestamoCrear_EjemplarYaPrestado(t *testing.T) {
	f := nuevoPrestamoFixture(nil)

	_, err := f.uc.Crear(context.Background(), dto.CrearPrestamoRequest{IDUsuario: "usr-1", IDEjemplar: "ej-1"})
	require.NoError(t, err)

	// el mismo ejemplar otra vez: la re-verificación dentro de la tx lo rechaza
	_, err = f.uc.Crear(context.Background(), dto.CrearPrestamoRequest{IDUsuario: "usr-1", IDEjemplar: "ej-1"})
	assert.ErrorIs(t, err, domain.ErrEjemplarNoDisponible)
	assert.Len(t, f.prestamos.prestamos, 1, "no debe quedar registrado un segundo préstamo")
}

func TestPrestamoCrear_EjemplarInactivo(t *testing.T) {
	f := nuevoPrestamoFixture(nil)

	_, err := f.uc.Crear(context.Background(), dto.CrearPrestamoRequest{IDUsuario: "usr-1", IDEjemplar: "ej-2"})
	assert.ErrorIs(t, err, domain.ErrEjemplarNoDisponible)
}

func TestPrestamoCrear_UsuarioInactivo(t *testing.T) {
	f := nuevoPrestamoFixture(nil)

	_, err := f.uc.Crear(context.Background(), dto.CrearPrestamoRequest{IDUsuario: "usr-2", IDEjemplar: "ej-1"})
	assert.ErrorIs(t, err, domain.ErrUsuarioInactivo)
}

func TestPrestamoCrear_FechaPrevistaEnElPasado(t *testing.T) {
	f := nuevoPrestamoFixture(nil)

	_, err := f.uc.Crear(context.Background(), dto.CrearPrestamoRequest{
		IDUsuario:               "usr-1",
		IDEjemplar:              "ej-1",
		FechaDevolucionPrevista: "2026-03-09",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrestamoDevolver_ATiempoSinMulta(t *testing.T) {
	f := nuevoPrestamoFixture([]entity.Tarifa{
		{ID: "tar-1", DiasRetrasoMin: 1, DiasRetrasoMax: 30, MontoPorDia: decimal.NewFromInt(500)},
	})
	f.prestamos.prestamos = []*entity.Prestamo{{
		ID:                      "pre-1",
		IDUsuario:               "usr-1",
		IDEjemplar:              "ej-1",
		FechaPrestamo:           time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		FechaDevolucionPrevista: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}}
	f.ejemplares.ejemplares[0].Estado = entity.EjemplarPendiente

	resp, err := f.uc.Devolver(context.Background(), "pre-1")
	require.NoError(t, err)

	// devuelto el mismo día previsto: sin multa y el ejemplar vuelve a activo
	assert.Nil(t, resp.Multa)
	assert.Equal(t, "devuelto", resp.Prestamo.Estado)
	ejemplar, _ := f.ejemplares.GetByID("ej-1")
	assert.Equal(t, entity.EjemplarActivo, ejemplar.Estado)
}

func TestPrestamoDevolver_ConRetrasoGeneraMulta(t *testing.T) {
	f := nuevoPrestamoFixture([]entity.Tarifa{
		{ID: "tar-1", DiasRetrasoMin: 1, DiasRetrasoMax: 30, MontoPorDia: decimal.NewFromInt(500)},
	})
	f.prestamos.prestamos = []*entity.Prestamo{{
		ID:                      "pre-1",
		IDUsuario:               "usr-1",
		IDEjemplar:              "ej-1",
		FechaPrestamo:           time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC),
		FechaDevolucionPrevista: time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
	}}

	resp, err := f.uc.Devolver(context.Background(), "pre-1")
	require.NoError(t, err)

	require.NotNil(t, resp.Multa)
	assert.Equal(t, 3, resp.Multa.DiasRetraso)
	assert.True(t, decimal.NewFromInt(1500).Equal(resp.Multa.MontoTotal),
		"3 días × 500 por día = 1500, esperado exacto en decimal")
	assert.False(t, resp.Multa.Pagada)
	assert.Len(t, f.multas.multas, 1)
}

func TestPrestamoDevolver_YaDevuelto(t *testing.T) {
	f := nuevoPrestamoFixture(nil)
	real := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	f.prestamos.prestamos = []*entity.Prestamo{{
		ID:                      "pre-1",
		IDUsuario:               "usr-1",
		IDEjemplar:              "ej-1",
		FechaDevolucionPrevista: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		FechaDevolucionReal:     &real,
	}}

	_, err := f.uc.Devolver(context.Background(), "pre-1")
	assert.ErrorIs(t, err, domain.ErrPrestamoCerrado)
}

func TestPrestamoDevolver_RetrasoSinTarifaAplicable(t *testing.T) {
	// tabla de tarifas vacía: hay retraso pero no se puede tasar, no hay multa
	f := nuevoPrestamoFixture(nil)
	f.prestamos.prestamos = []*entity.Prestamo{{
		ID:                      "pre-1",
		IDUsuario:               "usr-1",
		IDEjemplar:              "ej-1",
		FechaDevolucionPrevista: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}}

	resp, err := f.uc.Devolver(context.Background(), "pre-1")
	require.NoError(t, err)
	assert.Nil(t, resp.Multa)
	assert.Empty(t, f.multas.multas)
}

func TestPrestamoList_EstadoDerivadoYConteoDeAbiertos(t *testing.T) {
	f := nuevoPrestamoFixture(nil)
	real := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	f.prestamos.prestamos = []*entity.Prestamo{
		{ID: "pre-1", IDUsuario: "usr-1", IDEjemplar: "ej-1",
			FechaDevolucionPrevista: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "pre-2", IDUsuario: "usr-1", IDEjemplar: "ej-1",
			FechaDevolucionPrevista: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "pre-3", IDUsuario: "usr-1", IDEjemplar: "ej-1",
			FechaDevolucionPrevista: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			FechaDevolucionReal:     &real},
	}

	resp, err := f.uc.List(10, 0)
	require.NoError(t, err)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, "activo", resp.Items[0].Estado)
	assert.Equal(t, "atrasado", resp.Items[1].Estado)
	assert.Equal(t, "devuelto", resp.Items[2].Estado)
	assert.Equal(t, 2, resp.Activos)
}

func TestPrestamoList_ReferenciaHuerfanaNoFalla(t *testing.T) {
	f := nuevoPrestamoFixture(nil)
	f.prestamos.prestamos = []*entity.Prestamo{
		{ID: "pre-1", IDUsuario: "usr-borrado", IDEjemplar: "ej-borrado",
			FechaDevolucionPrevista: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
	}

	resp, err := f.uc.List(10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Nil(t, resp.Items[0].Usuario)
	assert.Nil(t, resp.Items[0].Libro)
}
