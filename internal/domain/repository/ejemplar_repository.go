package repository

import "github.com/avasquez/biblioteca-api/internal/domain/entity"

// EjemplarRepository puerto de persistencia para Ejemplar.
type EjemplarRepository interface {
	GetByID(id string) (*entity.Ejemplar, error)
	// GetForUpdate obtiene el ejemplar bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Ejemplar, error)
	ListPorLibro(libroID string) ([]entity.Ejemplar, error)
	ListByIDs(ids []string) ([]*entity.Ejemplar, error)
	UpdateEstado(id, estado string) error
}
