package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain"
	domcirc "github.com/avasquez/biblioteca-api/internal/domain/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso de lectores: alta, listado y ficha con
// estadísticas de circulación.
type UsuarioUseCase struct {
	usuarioRepo  repository.UsuarioRepository
	tipoDocRepo  repository.TipoDocumentoRepository
	prestamoRepo repository.PrestamoRepository
	multaRepo    repository.MultaRepository
	ejemplarRepo repository.EjemplarRepository
	libroRepo    repository.LibroRepository

	Ahora func() time.Time
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(
	usuarioRepo repository.UsuarioRepository,
	tipoDocRepo repository.TipoDocumentoRepository,
	prestamoRepo repository.PrestamoRepository,
	multaRepo repository.MultaRepository,
	ejemplarRepo repository.EjemplarRepository,
	libroRepo repository.LibroRepository,
) *UsuarioUseCase {
	return &UsuarioUseCase{
		usuarioRepo:  usuarioRepo,
		tipoDocRepo:  tipoDocRepo,
		prestamoRepo: prestamoRepo,
		multaRepo:    multaRepo,
		ejemplarRepo: ejemplarRepo,
		libroRepo:    libroRepo,
		Ahora:        time.Now,
	}
}

// Create registra un lector. El correo debe ser único y el password se guarda
// hasheado con bcrypt.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	existente, err := uc.usuarioRepo.GetByCorreo(in.Correo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	tipoDoc, err := uc.tipoDocRepo.GetByID(in.IDTipoDocumento)
	if err != nil {
		return nil, err
	}
	if tipoDoc == nil {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var fechaNacimiento *time.Time
	if in.FechaNacimiento != "" {
		f, err := time.Parse("2006-01-02", in.FechaNacimiento)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fechaNacimiento = &f
	}

	usuario := &entity.Usuario{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		Apellido:        in.Apellido,
		Correo:          in.Correo,
		PasswordHash:    string(hash),
		Direccion:       in.Direccion,
		Telefono:        in.Telefono,
		FechaNacimiento: fechaNacimiento,
		NumeroDocumento: in.NumeroDocumento,
		IDTipoDocumento: in.IDTipoDocumento,
		FechaRegistro:   uc.Ahora(),
		Activo:          true,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}

	resp := toUsuarioResponse(usuario, tipoDoc)
	return &resp, nil
}

// List lista usuarios con el total de activos de la página.
func (uc *UsuarioUseCase) List(soloActivos bool, limit, offset int) (*dto.UsuarioListResponse, error) {
	usuarios, err := uc.usuarioRepo.List(soloActivos, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UsuarioResponse, 0, len(usuarios))
	activos := 0
	for _, u := range usuarios {
		tipoDoc, err := uc.tipoDocRepo.GetByID(u.IDTipoDocumento)
		if err != nil {
			return nil, err
		}
		items = append(items, toUsuarioResponse(u, tipoDoc))
		if u.Activo {
			activos++
		}
	}
	return &dto.UsuarioListResponse{
		Items:   items,
		Activos: activos,
		Page:    dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetDetalle arma la ficha del usuario: datos personales, préstamos y multas
// desnormalizados, y las estadísticas derivadas (préstamos abiertos, multas
// pendientes y total adeudado).
func (uc *UsuarioUseCase) GetDetalle(id string) (*dto.UsuarioDetalleResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	tipoDoc, err := uc.tipoDocRepo.GetByID(usuario.IDTipoDocumento)
	if err != nil {
		return nil, err
	}

	prestamos, err := uc.prestamoRepo.ListPorUsuario(id)
	if err != nil {
		return nil, err
	}
	multas, err := uc.multaRepo.ListPorUsuario(id)
	if err != nil {
		return nil, err
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

	abiertos := 0
	for _, p := range prestamos {
		if p.Abierto() {
			abiertos++
		}
	}
	resumen := domcirc.ResumirMultas(multas)

	return &dto.UsuarioDetalleResponse{
		UsuarioResponse:  toUsuarioResponse(usuario, tipoDoc),
		PrestamosActivos: abiertos,
		MultasPendientes: resumen.Pendientes,
		TotalAdeudado:    resumen.TotalAdeudado,
		Multas:           circulacion.UnirMultas(multas, prestamos, ejemplares, libros),
		Prestamos:        circulacion.UnirPrestamos(prestamos, []*entity.Usuario{usuario}, ejemplares, libros, uc.Ahora()),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario, tipoDoc *entity.TipoDocumento) dto.UsuarioResponse {
	resp := dto.UsuarioResponse{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Apellido:        u.Apellido,
		Correo:          u.Correo,
		Direccion:       u.Direccion,
		Telefono:        u.Telefono,
		FechaNacimiento: u.FechaNacimiento,
		NumeroDocumento: u.NumeroDocumento,
		FechaRegistro:   u.FechaRegistro,
		Activo:          u.Activo,
	}
	if tipoDoc != nil {
		resp.TipoDocumento = tipoDoc.Nombre
	}
	return resp
}
