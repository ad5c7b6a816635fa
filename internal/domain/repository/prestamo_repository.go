package repository

import (
	"time"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// PrestamoRepository puerto de persistencia para Prestamo.
type PrestamoRepository interface {
	Create(prestamo *entity.Prestamo) error
	GetByID(id string) (*entity.Prestamo, error)
	// List lista préstamos ordenados por fecha de préstamo descendente.
	List(limit, offset int) ([]*entity.Prestamo, error)
	ListPorUsuario(usuarioID string) ([]*entity.Prestamo, error)
	// ListAbiertosPorEjemplares devuelve los préstamos sin devolución real que
	// referencian los ejemplares dados.
	ListAbiertosPorEjemplares(ejemplarIDs []string) ([]entity.Prestamo, error)
	RegistrarDevolucion(id string, fecha time.Time) error
}
