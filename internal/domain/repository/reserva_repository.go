package repository

import "github.com/avasquez/biblioteca-api/internal/domain/entity"

// ReservaRepository puerto de persistencia para Reserva.
type ReservaRepository interface {
	Create(reserva *entity.Reserva) error
	GetByID(id string) (*entity.Reserva, error)
	// List lista reservas ordenadas por fecha de reserva descendente.
	List(limit, offset int) ([]*entity.Reserva, error)
	UpdateEstado(id, estado string) error
}
