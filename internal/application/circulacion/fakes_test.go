package circulacion_test

import (
	"context"
	"time"

	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Implementan los
// puertos de dominio sobre slices; el TxRunner falso solo reenvía los mismos
// repos, sin transacción real.

type memPrestamoRepo struct {
	prestamos []*entity.Prestamo
}

func (r *memPrestamoRepo) Create(p *entity.Prestamo) error {
	r.prestamos = append(r.prestamos, p)
	return nil
}

func (r *memPrestamoRepo) GetByID(id string) (*entity.Prestamo, error) {
	for _, p := range r.prestamos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPrestamoRepo) List(limit, offset int) ([]*entity.Prestamo, error) {
	return r.prestamos, nil
}

func (r *memPrestamoRepo) ListPorUsuario(usuarioID string) ([]*entity.Prestamo, error) {
	var out []*entity.Prestamo
	for _, p := range r.prestamos {
		if p.IDUsuario == usuarioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPrestamoRepo) ListAbiertosPorEjemplares(ejemplarIDs []string) ([]entity.Prestamo, error) {
	ids := make(map[string]bool, len(ejemplarIDs))
	for _, id := range ejemplarIDs {
		ids[id] = true
	}
	var out []entity.Prestamo
	for _, p := range r.prestamos {
		if p.Abierto() && ids[p.IDEjemplar] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPrestamoRepo) RegistrarDevolucion(id string, fecha time.Time) error {
	for _, p := range r.prestamos {
		if p.ID == id {
			f := fecha
			p.FechaDevolucionReal = &f
			return nil
		}
	}
	return nil
}

type memEjemplarRepo struct {
	ejemplares []*entity.Ejemplar
}

func (r *memEjemplarRepo) GetByID(id string) (*entity.Ejemplar, error) {
	for _, e := range r.ejemplares {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memEjemplarRepo) GetForUpdate(id string) (*entity.Ejemplar, error) {
	return r.GetByID(id)
}

func (r *memEjemplarRepo) ListPorLibro(libroID string) ([]entity.Ejemplar, error) {
	var out []entity.Ejemplar
	for _, e := range r.ejemplares {
		if e.IDLibro == libroID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEjemplarRepo) ListByIDs(ids []string) ([]*entity.Ejemplar, error) {
	var out []*entity.Ejemplar
	for _, id := range ids {
		if e, _ := r.GetByID(id); e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEjemplarRepo) UpdateEstado(id, estado string) error {
	for _, e := range r.ejemplares {
		if e.ID == id {
			e.Estado = estado
		}
	}
	return nil
}

type memUsuarioRepo struct {
	usuarios []*entity.Usuario
}

func (r *memUsuarioRepo) Create(u *entity.Usuario) error {
	r.usuarios = append(r.usuarios, u)
	return nil
}

func (r *memUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsuarioRepo) GetByCorreo(correo string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsuarioRepo) List(soloActivos bool, limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		if !soloActivos || u.Activo {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUsuarioRepo) ListByIDs(ids []string) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, id := range ids {
		if u, _ := r.GetByID(id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

type memLibroRepo struct {
	libros []*entity.Libro
}

func (r *memLibroRepo) GetByID(id string) (*entity.Libro, error) {
	for _, l := range r.libros {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memLibroRepo) List(limit, offset int) ([]*entity.Libro, error) {
	return r.libros, nil
}

func (r *memLibroRepo) ListByIDs(ids []string) ([]*entity.Libro, error) {
	var out []*entity.Libro
	for _, id := range ids {
		if l, _ := r.GetByID(id); l != nil {
			out = append(out, l)
		}
	}
	return out, nil
}

type memTarifaRepo struct {
	tarifas []entity.Tarifa
}

func (r *memTarifaRepo) ListAll() ([]entity.Tarifa, error) {
	return r.tarifas, nil
}

type memMultaRepo struct {
	multas []*entity.Multa
}

func (r *memMultaRepo) Create(m *entity.Multa) error {
	r.multas = append(r.multas, m)
	return nil
}

func (r *memMultaRepo) GetByID(id string) (*entity.Multa, error) {
	for _, m := range r.multas {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMultaRepo) ListPorUsuario(usuarioID string) ([]entity.Multa, error) {
	var out []entity.Multa
	for _, m := range r.multas {
		out = append(out, *m)
	}
	return out, nil
}

func (r *memMultaRepo) RegistrarPago(id string, fecha time.Time) error {
	for _, m := range r.multas {
		if m.ID == id {
			f := fecha
			m.Pagada = true
			m.FechaPago = &f
		}
	}
	return nil
}

type memReservaRepo struct {
	reservas []*entity.Reserva
}

func (r *memReservaRepo) Create(res *entity.Reserva) error {
	r.reservas = append(r.reservas, res)
	return nil
}

func (r *memReservaRepo) GetByID(id string) (*entity.Reserva, error) {
	for _, res := range r.reservas {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, nil
}

func (r *memReservaRepo) List(limit, offset int) ([]*entity.Reserva, error) {
	return r.reservas, nil
}

func (r *memReservaRepo) UpdateEstado(id, estado string) error {
	for _, res := range r.reservas {
		if res.ID == id {
			res.Estado = estado
		}
	}
	return nil
}

// memTxRunner ejecuta la función directamente con los repos en memoria.
type memTxRunner struct {
	prestamoRepo repository.PrestamoRepository
	ejemplarRepo repository.EjemplarRepository
	multaRepo    repository.MultaRepository
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	prestamoRepo repository.PrestamoRepository,
	ejemplarRepo repository.EjemplarRepository,
	multaRepo repository.MultaRepository,
) error) error {
	return fn(t.prestamoRepo, t.ejemplarRepo, t.multaRepo)
}

var _ circulacion.TxRunner = (*memTxRunner)(nil)

// fechaFija reloj congelado para que la clasificación por fechas sea determinista.
func fechaFija(anio int, mes time.Month, dia int) func() time.Time {
	return func() time.Time {
		return time.Date(anio, mes, dia, 10, 30, 0, 0, time.UTC)
	}
}
