package repository

import "github.com/avasquez/biblioteca-api/internal/domain/entity"

// AutorRepository puerto de persistencia para Autor y la asociación libros_autores.
type AutorRepository interface {
	// ListPorLibros devuelve las filas autor-con-rol de los libros dados,
	// en el orden de inserción de la asociación.
	ListPorLibros(libroIDs []string) ([]entity.AutorDeLibro, error)
}
