package circulacion

import (
	"time"

	"github.com/google/uuid"

	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain"
	domcirc "github.com/avasquez/biblioteca-api/internal/domain/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

// DiasReservaDefecto vigencia por defecto de una reserva cuando la solicitud
// no trae fecha de expiración.
const DiasReservaDefecto = 7

// ReservaUseCase casos de uso de reservas.
type ReservaUseCase struct {
	reservaRepo  repository.ReservaRepository
	usuarioRepo  repository.UsuarioRepository
	ejemplarRepo repository.EjemplarRepository
	libroRepo    repository.LibroRepository

	Ahora func() time.Time
}

// NewReservaUseCase construye el caso de uso.
func NewReservaUseCase(
	reservaRepo repository.ReservaRepository,
	usuarioRepo repository.UsuarioRepository,
	ejemplarRepo repository.EjemplarRepository,
	libroRepo repository.LibroRepository,
) *ReservaUseCase {
	return &ReservaUseCase{
		reservaRepo:  reservaRepo,
		usuarioRepo:  usuarioRepo,
		ejemplarRepo: ejemplarRepo,
		libroRepo:    libroRepo,
		Ahora:        time.Now,
	}
}

// Crear registra una reserva activa sobre un ejemplar para un usuario activo.
func (uc *ReservaUseCase) Crear(in dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	if in.IDUsuario == "" || in.IDEjemplar == "" {
		return nil, domain.ErrInvalidInput
	}

	usuario, err := uc.usuarioRepo.GetByID(in.IDUsuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	if !usuario.Activo {
		return nil, domain.ErrUsuarioInactivo
	}

	ejemplar, err := uc.ejemplarRepo.GetByID(in.IDEjemplar)
	if err != nil {
		return nil, err
	}
	if ejemplar == nil {
		return nil, domain.ErrNotFound
	}

	hoy := uc.Ahora()
	expiracion := hoy.AddDate(0, 0, DiasReservaDefecto)
	if in.FechaExpiracion != "" {
		expiracion, err = time.Parse("2006-01-02", in.FechaExpiracion)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	reserva := &entity.Reserva{
		ID:              uuid.New().String(),
		IDUsuario:       in.IDUsuario,
		IDEjemplar:      in.IDEjemplar,
		FechaReserva:    hoy,
		FechaExpiracion: expiracion,
		Estado:          entity.ReservaActiva,
	}
	if err := uc.reservaRepo.Create(reserva); err != nil {
		return nil, err
	}

	resp := uc.unirUna(reserva, usuario, ejemplar, hoy)
	return &resp, nil
}

// Cancelar pasa una reserva activa a cancelada. Una reserva ya completada o
// cancelada no se puede cancelar de nuevo.
func (uc *ReservaUseCase) Cancelar(id string) (*dto.ReservaResponse, error) {
	reserva, err := uc.reservaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, domain.ErrNotFound
	}
	if reserva.Estado != entity.ReservaActiva {
		return nil, domain.ErrConflict
	}

	if err := uc.reservaRepo.UpdateEstado(id, entity.ReservaCancelada); err != nil {
		return nil, err
	}
	reserva.Estado = entity.ReservaCancelada

	hoy := uc.Ahora()
	usuario, _ := uc.usuarioRepo.GetByID(reserva.IDUsuario)
	ejemplar, _ := uc.ejemplarRepo.GetByID(reserva.IDEjemplar)
	resp := uc.unirUna(reserva, usuario, ejemplar, hoy)
	return &resp, nil
}

// List lista reservas desnormalizadas con el total de activas no expiradas
// de la página.
func (uc *ReservaUseCase) List(limit, offset int) (*dto.ReservaListResponse, error) {
	reservas, err := uc.reservaRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}

	usuarioIDs := make([]string, 0, len(reservas))
	ejemplarIDs := make([]string, 0, len(reservas))
	for _, r := range reservas {
		usuarioIDs = append(usuarioIDs, r.IDUsuario)
		ejemplarIDs = append(ejemplarIDs, r.IDEjemplar)
	}
	usuarios, err := uc.usuarioRepo.ListByIDs(usuarioIDs)
	if err != nil {
		return nil, err
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

	hoy := uc.Ahora()
	items := UnirReservas(reservas, usuarios, ejemplares, libros, hoy)

	activas := 0
	for _, it := range items {
		if it.Estado == entity.ReservaActiva {
			activas++
		}
	}
	return &dto.ReservaListResponse{
		Items:   items,
		Activas: activas,
		Page:    dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ReservaUseCase) unirUna(r *entity.Reserva, usuario *entity.Usuario, ejemplar *entity.Ejemplar, hoy time.Time) dto.ReservaResponse {
	resp := dto.ReservaResponse{
		ID:              r.ID,
		FechaReserva:    r.FechaReserva,
		FechaExpiracion: r.FechaExpiracion,
		Estado:          domcirc.EstadoReserva(r.Estado, r.FechaExpiracion, hoy),
	}
	if usuario != nil {
		resp.Usuario = &dto.UsuarioResumen{ID: usuario.ID, Nombre: usuario.NombreCompleto()}
	}
	if ejemplar != nil {
		resp.CodigoInterno = ejemplar.CodigoInterno
		if libro, err := uc.libroRepo.GetByID(ejemplar.IDLibro); err == nil && libro != nil {
			resp.Libro = &dto.LibroResumen{ID: libro.ID, Titulo: libro.Titulo}
		}
	}
	return resp
}
