package repository

import "github.com/avasquez/biblioteca-api/internal/domain/entity"

// LibroRepository define el puerto de persistencia para Libro (DIP).
type LibroRepository interface {
	GetByID(id string) (*entity.Libro, error)
	List(limit, offset int) ([]*entity.Libro, error)
	ListByIDs(ids []string) ([]*entity.Libro, error)
}
