package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.PrestamoRepository = (*PrestamoRepo)(nil)

const prestamoColumns = `id::text, id_usuario::text, id_ejemplar::text, fecha_prestamo, fecha_devolucion_prevista, fecha_devolucion_real, estado_prestamo, numero_renovaciones`

// PrestamoRepo implementación del puerto PrestamoRepository sobre PostgreSQL.
type PrestamoRepo struct {
	q Querier
}

// NewPrestamoRepository construye el adaptador de persistencia para préstamos.
func NewPrestamoRepository(q Querier) *PrestamoRepo {
	return &PrestamoRepo{q: q}
}

// Create persiste un nuevo préstamo.
func (r *PrestamoRepo) Create(p *entity.Prestamo) error {
	query := `
		INSERT INTO prestamos (id, id_usuario, id_ejemplar, fecha_prestamo, fecha_devolucion_prevista, fecha_devolucion_real, estado_prestamo, numero_renovaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.IDUsuario, p.IDEjemplar, p.FechaPrestamo, p.FechaDevolucionPrevista,
		p.FechaDevolucionReal, p.Estado, p.NumeroRenovaciones,
	)
	if err != nil {
		return fmt.Errorf("insert prestamo: %w", err)
	}
	return nil
}

// GetByID obtiene un préstamo por ID.
func (r *PrestamoRepo) GetByID(id string) (*entity.Prestamo, error) {
	query := `SELECT ` + prestamoColumns + ` FROM prestamos WHERE id = $1`
	var p entity.Prestamo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.IDUsuario, &p.IDEjemplar, &p.FechaPrestamo, &p.FechaDevolucionPrevista,
		&p.FechaDevolucionReal, &p.Estado, &p.NumeroRenovaciones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prestamo: %w", err)
	}
	return &p, nil
}

// List lista préstamos ordenados por fecha de préstamo descendente.
func (r *PrestamoRepo) List(limit, offset int) ([]*entity.Prestamo, error) {
	query := `SELECT ` + prestamoColumns + ` FROM prestamos ORDER BY fecha_prestamo DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list prestamos: %w", err)
	}
	defer rows.Close()
	return scanPrestamos(rows)
}

// ListPorUsuario lista los préstamos de un usuario, más recientes primero.
func (r *PrestamoRepo) ListPorUsuario(usuarioID string) ([]*entity.Prestamo, error) {
	query := `SELECT ` + prestamoColumns + ` FROM prestamos WHERE id_usuario = $1 ORDER BY fecha_prestamo DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list prestamos por usuario: %w", err)
	}
	defer rows.Close()
	return scanPrestamos(rows)
}

// ListAbiertosPorEjemplares devuelve los préstamos sin devolución real que
// referencian los ejemplares dados.
func (r *PrestamoRepo) ListAbiertosPorEjemplares(ejemplarIDs []string) ([]entity.Prestamo, error) {
	if len(ejemplarIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + prestamoColumns + ` FROM prestamos
		WHERE id_ejemplar = ANY($1) AND fecha_devolucion_real IS NULL`
	rows, err := r.q.Query(context.Background(), query, ejemplarIDs)
	if err != nil {
		return nil, fmt.Errorf("list prestamos abiertos: %w", err)
	}
	defer rows.Close()
	var list []entity.Prestamo
	for rows.Next() {
		var p entity.Prestamo
		if err := rows.Scan(&p.ID, &p.IDUsuario, &p.IDEjemplar, &p.FechaPrestamo,
			&p.FechaDevolucionPrevista, &p.FechaDevolucionReal, &p.Estado, &p.NumeroRenovaciones); err != nil {
			return nil, fmt.Errorf("scan prestamo: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// RegistrarDevolucion fija la fecha de devolución real del préstamo.
func (r *PrestamoRepo) RegistrarDevolucion(id string, fecha time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE prestamos SET fecha_devolucion_real = $2 WHERE id = $1`, id, fecha)
	if err != nil {
		return fmt.Errorf("registrar devolucion: %w", err)
	}
	return nil
}

func scanPrestamos(rows pgx.Rows) ([]*entity.Prestamo, error) {
	var list []*entity.Prestamo
	for rows.Next() {
		var p entity.Prestamo
		if err := rows.Scan(&p.ID, &p.IDUsuario, &p.IDEjemplar, &p.FechaPrestamo,
			&p.FechaDevolucionPrevista, &p.FechaDevolucionReal, &p.Estado, &p.NumeroRenovaciones); err != nil {
			return nil, fmt.Errorf("scan prestamo: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
