package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.LibroRepository = (*LibroRepo)(nil)

const libroColumns = `id::text, titulo, isbn, anio_publicacion, COALESCE(id_editorial::text, ''), numero_paginas, descripcion, clasificacion_dewey, created_at, updated_at`

// LibroRepo implementación del puerto LibroRepository sobre PostgreSQL (usable con pool o tx).
type LibroRepo struct {
	q Querier
}

// NewLibroRepository construye el adaptador de persistencia para libros. Pasar pool o tx (Querier).
func NewLibroRepository(q Querier) *LibroRepo {
	return &LibroRepo{q: q}
}

// GetByID obtiene un libro por ID.
func (r *LibroRepo) GetByID(id string) (*entity.Libro, error) {
	query := `SELECT ` + libroColumns + ` FROM libros WHERE id = $1`
	var l entity.Libro
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Titulo, &l.ISBN, &l.AnioPublicacion, &l.IDEditorial,
		&l.NumeroPaginas, &l.Descripcion, &l.ClasificacionDewey, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get libro: %w", err)
	}
	return &l, nil
}

// List lista libros ordenados por título con paginación.
func (r *LibroRepo) List(limit, offset int) ([]*entity.Libro, error) {
	query := `SELECT ` + libroColumns + ` FROM libros ORDER BY titulo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list libros: %w", err)
	}
	defer rows.Close()
	return scanLibros(rows)
}

// ListByIDs devuelve los libros cuyos IDs están en la lista dada.
func (r *LibroRepo) ListByIDs(ids []string) ([]*entity.Libro, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + libroColumns + ` FROM libros WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list libros by ids: %w", err)
	}
	defer rows.Close()
	return scanLibros(rows)
}

func scanLibros(rows pgx.Rows) ([]*entity.Libro, error) {
	var list []*entity.Libro
	for rows.Next() {
		var l entity.Libro
		if err := rows.Scan(&l.ID, &l.Titulo, &l.ISBN, &l.AnioPublicacion, &l.IDEditorial,
			&l.NumeroPaginas, &l.Descripcion, &l.ClasificacionDewey, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan libro: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
