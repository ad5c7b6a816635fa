package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.EjemplarRepository = (*EjemplarRepo)(nil)

const ejemplarColumns = `id::text, id_libro::text, codigo_interno, estado, ubicacion, fecha_adquisicion, precio_adquisicion`

// EjemplarRepo implementación del puerto EjemplarRepository sobre PostgreSQL.
type EjemplarRepo struct {
	q Querier
}

// NewEjemplarRepository construye el adaptador de persistencia para ejemplares.
func NewEjemplarRepository(q Querier) *EjemplarRepo {
	return &EjemplarRepo{q: q}
}

// GetByID obtiene un ejemplar por ID.
func (r *EjemplarRepo) GetByID(id string) (*entity.Ejemplar, error) {
	return r.get(id, "")
}

// GetForUpdate obtiene el ejemplar bloqueando su fila hasta que termine la
// transacción. Solo tiene sentido con un Querier transaccional.
func (r *EjemplarRepo) GetForUpdate(id string) (*entity.Ejemplar, error) {
	return r.get(id, " FOR UPDATE")
}

func (r *EjemplarRepo) get(id, suffix string) (*entity.Ejemplar, error) {
	query := `SELECT ` + ejemplarColumns + ` FROM ejemplares WHERE id = $1` + suffix
	var e entity.Ejemplar
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.IDLibro, &e.CodigoInterno, &e.Estado, &e.Ubicacion,
		&e.FechaAdquisicion, &e.PrecioAdquisicion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ejemplar: %w", err)
	}
	return &e, nil
}

// ListPorLibro lista los ejemplares de un libro ordenados por código interno.
func (r *EjemplarRepo) ListPorLibro(libroID string) ([]entity.Ejemplar, error) {
	query := `SELECT ` + ejemplarColumns + ` FROM ejemplares WHERE id_libro = $1 ORDER BY codigo_interno`
	rows, err := r.q.Query(context.Background(), query, libroID)
	if err != nil {
		return nil, fmt.Errorf("list ejemplares por libro: %w", err)
	}
	defer rows.Close()
	var list []entity.Ejemplar
	for rows.Next() {
		var e entity.Ejemplar
		if err := rows.Scan(&e.ID, &e.IDLibro, &e.CodigoInterno, &e.Estado, &e.Ubicacion,
			&e.FechaAdquisicion, &e.PrecioAdquisicion); err != nil {
			return nil, fmt.Errorf("scan ejemplar: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListByIDs devuelve los ejemplares cuyos IDs están en la lista dada.
func (r *EjemplarRepo) ListByIDs(ids []string) ([]*entity.Ejemplar, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + ejemplarColumns + ` FROM ejemplares WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list ejemplares by ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ejemplar
	for rows.Next() {
		var e entity.Ejemplar
		if err := rows.Scan(&e.ID, &e.IDLibro, &e.CodigoInterno, &e.Estado, &e.Ubicacion,
			&e.FechaAdquisicion, &e.PrecioAdquisicion); err != nil {
			return nil, fmt.Errorf("scan ejemplar: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado del ejemplar (activo | inactivo | pendiente).
func (r *EjemplarRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ejemplares SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado ejemplar: %w", err)
	}
	return nil
}
