package repository

import (
	"time"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// MultaRepository puerto de persistencia para Multa.
type MultaRepository interface {
	Create(multa *entity.Multa) error
	GetByID(id string) (*entity.Multa, error)
	// ListPorUsuario devuelve las multas de los préstamos del usuario,
	// primero las pendientes y luego las pagadas más recientes.
	ListPorUsuario(usuarioID string) ([]entity.Multa, error)
	// RegistrarPago marca la multa como pagada y fija la fecha de pago en la
	// misma sentencia; pagada y fecha_pago nunca se escriben por separado.
	RegistrarPago(id string, fecha time.Time) error
}

// TarifaRepository tabla de tarifas por días de retraso.
type TarifaRepository interface {
	ListAll() ([]entity.Tarifa, error)
}
