package circulacion

import (
	"context"

	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que registrar el préstamo y cambiar
// el estado del ejemplar sea atómico: sin esto, dos solicitudes simultáneas
// sobre el mismo ejemplar podrían prestarlo dos veces.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		prestamoRepo repository.PrestamoRepository,
		ejemplarRepo repository.EjemplarRepository,
		multaRepo repository.MultaRepository,
	) error) error
}

// ComprobanteData datos ya unidos para el comprobante de préstamo.
// Usuario/Ejemplar/Libro pueden ser nil si la referencia no resuelve.
type ComprobanteData struct {
	Biblioteca string
	Prestamo   entity.Prestamo
	Usuario    *entity.Usuario
	Ejemplar   *entity.Ejemplar
	Libro      *entity.Libro
}

// ComprobantePDFGenerator genera el comprobante de préstamo en PDF.
type ComprobantePDFGenerator interface {
	GenerarComprobante(ctx context.Context, data ComprobanteData) ([]byte, error)
}
