package circulacion

import (
	"time"

	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

// MultaUseCase casos de uso de multas.
type MultaUseCase struct {
	multaRepo    repository.MultaRepository
	prestamoRepo repository.PrestamoRepository
	ejemplarRepo repository.EjemplarRepository
	libroRepo    repository.LibroRepository

	Ahora func() time.Time
}

// NewMultaUseCase construye el caso de uso.
func NewMultaUseCase(
	multaRepo repository.MultaRepository,
	prestamoRepo repository.PrestamoRepository,
	ejemplarRepo repository.EjemplarRepository,
	libroRepo repository.LibroRepository,
) *MultaUseCase {
	return &MultaUseCase{
		multaRepo:    multaRepo,
		prestamoRepo: prestamoRepo,
		ejemplarRepo: ejemplarRepo,
		libroRepo:    libroRepo,
		Ahora:        time.Now,
	}
}

// Pagar registra el pago de una multa pendiente. La marca de pagada y la fecha
// de pago se escriben juntas; pagar dos veces es un conflicto.
func (uc *MultaUseCase) Pagar(id string) (*dto.MultaResponse, error) {
	multa, err := uc.multaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if multa == nil {
		return nil, domain.ErrNotFound
	}
	if multa.Pagada {
		return nil, domain.ErrMultaPagada
	}

	fecha := uc.Ahora()
	if err := uc.multaRepo.RegistrarPago(id, fecha); err != nil {
		return nil, err
	}
	multa.Pagada = true
	multa.FechaPago = &fecha

	resp := uc.unirUna(*multa)
	return &resp, nil
}

// ListPorUsuario lista las multas de un usuario con libro y ejemplar unidos.
func (uc *MultaUseCase) ListPorUsuario(idUsuario string) ([]dto.MultaResponse, error) {
	multas, err := uc.multaRepo.ListPorUsuario(idUsuario)
	if err != nil {
		return nil, err
	}
	return uc.unir(multas)
}

func (uc *MultaUseCase) unir(multas []entity.Multa) ([]dto.MultaResponse, error) {
	prestamos := make([]*entity.Prestamo, 0, len(multas))
	for _, m := range multas {
		p, err := uc.prestamoRepo.GetByID(m.IDPrestamo)
		if err != nil {
			return nil, err
		}
		if p != nil {
			prestamos = append(prestamos, p)
		}
	}
	ejemplarIDs := make([]string, 0, len(prestamos))
	for _, p := range prestamos {
		ejemplarIDs = append(ejemplarIDs, p.IDEjemplar)
	}
	ejemplares, err := uc.ejemplarRepo.ListByIDs(ejemplarIDs)
	if err != nil {
		return nil, err
	}
	libroIDs := make([]string, 0, len(ejemplares))
	for _, e := range ejemplares {
		libroIDs = append(libroIDs, e.IDLibro)
	}
	libros, err := uc.libroRepo.ListByIDs(libroIDs)
	if err != nil {
		return nil, err
	}
	return UnirMultas(multas, prestamos, ejemplares, libros), nil
}

func (uc *MultaUseCase) unirUna(m entity.Multa) dto.MultaResponse {
	if out, err := uc.unir([]entity.Multa{m}); err == nil && len(out) == 1 {
		return out[0]
	}
	return dto.MultaResponse{
		ID:          m.ID,
		IDPrestamo:  m.IDPrestamo,
		DiasRetraso: m.DiasRetraso,
		MontoTotal:  m.MontoTotal,
		FechaPago:   m.FechaPago,
		Pagada:      m.Pagada,
	}
}
