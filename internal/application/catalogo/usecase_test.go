package catalogo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/biblioteca-api/internal/application/catalogo"
	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// Fakes en memoria para las consultas de catálogo.

type stubLibroRepo struct {
	libros []*entity.Libro
}

func (r *stubLibroRepo) GetByID(id string) (*entity.Libro, error) {
	for _, l := range r.libros {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *stubLibroRepo) List(limit, offset int) ([]*entity.Libro, error) { return r.libros, nil }

func (r *stubLibroRepo) ListByIDs(ids []string) ([]*entity.Libro, error) {
	var out []*entity.Libro
	for _, id := range ids {
		if l, _ := r.GetByID(id); l != nil {
			out = append(out, l)
		}
	}
	return out, nil
}

type stubEditorialRepo struct {
	editoriales []*entity.Editorial
}

func (r *stubEditorialRepo) GetByID(id string) (*entity.Editorial, error) {
	for _, e := range r.editoriales {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *stubEditorialRepo) ListByIDs(ids []string) ([]*entity.Editorial, error) {
	var out []*entity.Editorial
	for _, id := range ids {
		if e, _ := r.GetByID(id); e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubAutorRepo struct {
	autores []entity.AutorDeLibro
}

func (r *stubAutorRepo) ListPorLibros(libroIDs []string) ([]entity.AutorDeLibro, error) {
	ids := make(map[string]bool, len(libroIDs))
	for _, id := range libroIDs {
		ids[id] = true
	}
	var out []entity.AutorDeLibro
	for _, a := range r.autores {
		if ids[a.IDLibro] {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubEjemplarRepo struct {
	ejemplares []entity.Ejemplar
}

func (r *stubEjemplarRepo) GetByID(id string) (*entity.Ejemplar, error) {
	for i := range r.ejemplares {
		if r.ejemplares[i].ID == id {
			return &r.ejemplares[i], nil
		}
	}
	return nil, nil
}

func (r *stubEjemplarRepo) GetForUpdate(id string) (*entity.Ejemplar, error) { return r.GetByID(id) }

func (r *stubEjemplarRepo) ListPorLibro(libroID string) ([]entity.Ejemplar, error) {
	var out []entity.Ejemplar
	for _, e := range r.ejemplares {
		if e.IDLibro == libroID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEjemplarRepo) ListByIDs(ids []string) ([]*entity.Ejemplar, error) {
	var out []*entity.Ejemplar
	for _, id := range ids {
		if e, _ := r.GetByID(id); e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEjemplarRepo) UpdateEstado(id, estado string) error { return nil }

type stubPrestamoAbiertosRepo struct {
	abiertos []entity.Prestamo
}

func (r *stubPrestamoAbiertosRepo) Create(p *entity.Prestamo) error { return nil }

func (r *stubPrestamoAbiertosRepo) GetByID(id string) (*entity.Prestamo, error) { return nil, nil }

func (r *stubPrestamoAbiertosRepo) List(limit, offset int) ([]*entity.Prestamo, error) {
	return nil, nil
}

func (r *stubPrestamoAbiertosRepo) ListPorUsuario(usuarioID string) ([]*entity.Prestamo, error) {
	return nil, nil
}

func (r *stubPrestamoAbiertosRepo) ListAbiertosPorEjemplares(ejemplarIDs []string) ([]entity.Prestamo, error) {
	ids := make(map[string]bool, len(ejemplarIDs))
	for _, id := range ejemplarIDs {
		ids[id] = true
	}
	var out []entity.Prestamo
	for _, p := range r.abiertos {
		if ids[p.IDEjemplar] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPrestamoAbiertosRepo) RegistrarDevolucion(id string, fecha time.Time) error { return nil }

type stubExporter struct{}

func (stubExporter) Exportar(libro dto.LibroResponse) ([]byte, error) {
	return []byte(libro.Titulo), nil
}

func nuevoCatalogo() *catalogo.CatalogoUseCase {
	libros := &stubLibroRepo{libros: []*entity.Libro{
		{ID: "lib-1", Titulo: "Cien años de soledad", ISBN: "978-0307474728", IDEditorial: "edi-1"},
		{ID: "lib-2", Titulo: "Ficciones", ISBN: "978-0802130303", IDEditorial: "edi-huerfana"},
		{ID: "lib-3", Titulo: "La ciudad y los perros", ISBN: "978-8466332835"},
	}}
	editoriales := &stubEditorialRepo{editoriales: []*entity.Editorial{
		{ID: "edi-1", Nombre: "Sudamericana", Pais: "Argentina"},
	}}
	autores := &stubAutorRepo{autores: []entity.AutorDeLibro{
		{IDLibro: "lib-1", Rol: "principal", Autor: entity.Autor{ID: "aut-1", Nombre: "Gabriel García Márquez", Nacionalidad: "colombiana"}},
	}}
	ejemplares := &stubEjemplarRepo{ejemplares: []entity.Ejemplar{
		{ID: "ej-1", IDLibro: "lib-1", CodigoInterno: "LIB-001-01", Estado: entity.EjemplarActivo},
		{ID: "ej-2", IDLibro: "lib-1", CodigoInterno: "LIB-001-02", Estado: entity.EjemplarActivo},
		{ID: "ej-3", IDLibro: "lib-1", CodigoInterno: "LIB-001-03", Estado: entity.EjemplarInactivo},
	}}
	prestamos := &stubPrestamoAbiertosRepo{abiertos: []entity.Prestamo{
		{ID: "pre-1", IDEjemplar: "ej-2"},
	}}
	return catalogo.NewCatalogoUseCase(libros, editoriales, autores, ejemplares, prestamos, stubExporter{})
}

func TestCatalogoList_UneEditorialYAutores(t *testing.T) {
	uc := nuevoCatalogo()

	resp, err := uc.List("", 10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)

	conEditorial := resp.Items[0]
	require.NotNil(t, conEditorial.Editorial)
	assert.Equal(t, "Sudamericana", conEditorial.Editorial.Nombre)
	require.Len(t, conEditorial.Autores, 1)
	assert.Equal(t, "Gabriel García Márquez", conEditorial.Autores[0].Nombre)
	assert.Equal(t, "principal", conEditorial.Autores[0].Rol)

	// referencia a editorial inexistente: campo ausente, nunca error
	assert.Nil(t, resp.Items[1].Editorial)
	// libro sin editorial registrada
	assert.Nil(t, resp.Items[2].Editorial)
}

func TestCatalogoList_BusquedaSinAcentos(t *testing.T) {
	uc := nuevoCatalogo()

	resp, err := uc.List("cien anos", 10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Cien años de soledad", resp.Items[0].Titulo)

	// también por ISBN
	resp, err = uc.List("0802130303", 10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Ficciones", resp.Items[0].Titulo)
}

func TestCatalogoGetDetalle_CuentaDisponibles(t *testing.T) {
	uc := nuevoCatalogo()

	detalle, err := uc.GetDetalle("lib-1")
	require.NoError(t, err)
	require.NotNil(t, detalle)

	// 3 ejemplares: uno inactivo y uno con préstamo abierto, queda 1 prestable
	assert.Len(t, detalle.Ejemplares, 3)
	assert.Equal(t, 1, detalle.Disponibles)
}

func TestCatalogoGetDetalle_NoExiste(t *testing.T) {
	uc := nuevoCatalogo()

	detalle, err := uc.GetDetalle("lib-x")
	require.NoError(t, err)
	assert.Nil(t, detalle)
}

func TestCatalogoEjemplaresDisponibles(t *testing.T) {
	uc := nuevoCatalogo()

	disponibles, err := uc.EjemplaresDisponibles("lib-1")
	require.NoError(t, err)
	require.Len(t, disponibles, 1)
	assert.Equal(t, "LIB-001-01", disponibles[0].CodigoInterno)
}

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "garcia marquez", catalogo.Normalizar("García Márquez"))
	assert.Equal(t, "cien anos", catalogo.Normalizar("Cien Años"))
	assert.Equal(t, "ubeda", catalogo.Normalizar("Úbeda"))
}
