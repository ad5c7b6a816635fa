package repository

import "github.com/avasquez/biblioteca-api/internal/domain/entity"

// EditorialRepository puerto de persistencia para Editorial.
type EditorialRepository interface {
	GetByID(id string) (*entity.Editorial, error)
	ListByIDs(ids []string) ([]*entity.Editorial, error)
}
