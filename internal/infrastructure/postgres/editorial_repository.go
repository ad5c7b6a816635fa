package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.EditorialRepository = (*EditorialRepo)(nil)

// EditorialRepo implementación del puerto EditorialRepository sobre PostgreSQL.
type EditorialRepo struct {
	q Querier
}

// NewEditorialRepository construye el adaptador de persistencia para editoriales.
func NewEditorialRepository(q Querier) *EditorialRepo {
	return &EditorialRepo{q: q}
}

// GetByID obtiene una editorial por ID.
func (r *EditorialRepo) GetByID(id string) (*entity.Editorial, error) {
	query := `SELECT id::text, nombre, pais, anio_fundacion, sitio_web FROM editoriales WHERE id = $1`
	var e entity.Editorial
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nombre, &e.Pais, &e.AnioFundacion, &e.SitioWeb,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get editorial: %w", err)
	}
	return &e, nil
}

// ListByIDs devuelve las editoriales cuyos IDs están en la lista dada.
func (r *EditorialRepo) ListByIDs(ids []string) ([]*entity.Editorial, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id::text, nombre, pais, anio_fundacion, sitio_web FROM editoriales WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list editoriales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Editorial
	for rows.Next() {
		var e entity.Editorial
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Pais, &e.AnioFundacion, &e.SitioWeb); err != nil {
			return nil, fmt.Errorf("scan editorial: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
