package postgres

import (
	"context"
	"fmt"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ repository.AutorRepository = (*AutorRepo)(nil)

// AutorRepo implementación del puerto AutorRepository sobre PostgreSQL.
type AutorRepo struct {
	q Querier
}

// NewAutorRepository construye el adaptador de persistencia para autores.
func NewAutorRepository(q Querier) *AutorRepo {
	return &AutorRepo{q: q}
}

// ListPorLibros devuelve las filas autor-con-rol de los libros dados uniendo
// la asociación libros_autores con autores.
func (r *AutorRepo) ListPorLibros(libroIDs []string) ([]entity.AutorDeLibro, error) {
	if len(libroIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT la.id_libro::text, la.rol_autor, a.id::text, a.nombre, a.nacionalidad, a.fecha_nacimiento, a.biografia
		FROM libros_autores la
		JOIN autores a ON a.id = la.id_autor
		WHERE la.id_libro = ANY($1)
		ORDER BY la.id_libro, la.orden`
	rows, err := r.q.Query(context.Background(), query, libroIDs)
	if err != nil {
		return nil, fmt.Errorf("list autores por libros: %w", err)
	}
	defer rows.Close()
	var list []entity.AutorDeLibro
	for rows.Next() {
		var al entity.AutorDeLibro
		if err := rows.Scan(&al.IDLibro, &al.Rol, &al.Autor.ID, &al.Autor.Nombre,
			&al.Autor.Nacionalidad, &al.Autor.FechaNacimiento, &al.Autor.Biografia); err != nil {
			return nil, fmt.Errorf("scan autor de libro: %w", err)
		}
		list = append(list, al)
	}
	return list, rows.Err()
}
