package circulacion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain"
	domcirc "github.com/avasquez/biblioteca-api/internal/domain/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

// DiasPrestamoDefecto plazo por defecto de un préstamo cuando la solicitud no
// trae fecha de devolución prevista.
const DiasPrestamoDefecto = 14

// PrestamoUseCase casos de uso de préstamos: registrar, devolver, listar y
// generar el comprobante.
type PrestamoUseCase struct {
	txRunner     TxRunner
	prestamoRepo repository.PrestamoRepository
	ejemplarRepo repository.EjemplarRepository
	usuarioRepo  repository.UsuarioRepository
	libroRepo    repository.LibroRepository
	tarifaRepo   repository.TarifaRepository
	pdf          ComprobantePDFGenerator
	biblioteca   string

	// Ahora devuelve la fecha actual; se reemplaza en tests para que la
	// clasificación por fechas sea determinista.
	Ahora func() time.Time
}

// NewPrestamoUseCase construye el caso de uso.
func NewPrestamoUseCase(
	txRunner TxRunner,
	prestamoRepo repository.PrestamoRepository,
	ejemplarRepo repository.EjemplarRepository,
	usuarioRepo repository.UsuarioRepository,
	libroRepo repository.LibroRepository,
	tarifaRepo repository.TarifaRepository,
	pdf ComprobantePDFGenerator,
	biblioteca string,
) *PrestamoUseCase {
	return &PrestamoUseCase{
		txRunner:     txRunner,
		prestamoRepo: prestamoRepo,
		ejemplarRepo: ejemplarRepo,
		usuarioRepo:  usuarioRepo,
		libroRepo:    libroRepo,
		tarifaRepo:   tarifaRepo,
		pdf:          pdf,
		biblioteca:   biblioteca,
		Ahora:        time.Now,
	}
}

// Crear registra un préstamo. Dentro de una sola transacción bloquea la fila
// del ejemplar (SELECT FOR UPDATE), re-verifica que siga activo y sin préstamo
// abierto, inserta el préstamo y pasa el ejemplar a "pendiente". Así dos
// solicitudes concurrentes sobre el mismo ejemplar no pueden prestarlo dos veces.
func (uc *PrestamoUseCase) Crear(ctx context.Context, in dto.CrearPrestamoRequest) (*dto.PrestamoResponse, error) {
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

	hoy := uc.Ahora()
	prevista := hoy.AddDate(0, 0, DiasPrestamoDefecto)
	if in.FechaDevolucionPrevista != "" {
		prevista, err = time.Parse("2006-01-02", in.FechaDevolucionPrevista)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if prevista.Before(time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)) {
			return nil, domain.ErrInvalidInput
		}
	}

	prestamo := &entity.Prestamo{
		ID:                      uuid.New().String(),
		IDUsuario:               in.IDUsuario,
		IDEjemplar:              in.IDEjemplar,
		FechaPrestamo:           hoy,
		FechaDevolucionPrevista: prevista,
		Estado:                  entity.PrestamoRegistroActivo,
		NumeroRenovaciones:      0,
	}

	var ejemplar *entity.Ejemplar
	err = uc.txRunner.Run(ctx, func(
		prestamoRepo repository.PrestamoRepository,
		ejemplarRepo repository.EjemplarRepository,
		_ repository.MultaRepository,
	) error {
		ejemplar, err = ejemplarRepo.GetForUpdate(in.IDEjemplar)
		if err != nil {
			return err
		}
		if ejemplar == nil {
			return domain.ErrNotFound
		}
		if ejemplar.Estado != entity.EjemplarActivo {
			return domain.ErrEjemplarNoDisponible
		}
		abiertos, err := prestamoRepo.ListAbiertosPorEjemplares([]string{in.IDEjemplar})
		if err != nil {
			return err
		}
		if len(abiertos) > 0 {
			return domain.ErrEjemplarNoDisponible
		}
		if err := prestamoRepo.Create(prestamo); err != nil {
			return err
		}
		return ejemplarRepo.UpdateEstado(in.IDEjemplar, entity.EjemplarPendiente)
	})
	if err != nil {
		return nil, err
	}

	resp := uc.unirUno(prestamo, usuario, ejemplar, hoy)
	return &resp, nil
}

// Devolver cierra un préstamo abierto: fija la fecha de devolución real,
// reactiva el ejemplar y, si hubo retraso con tarifa aplicable, crea la multa.
// Todo dentro de una transacción.
func (uc *PrestamoUseCase) Devolver(ctx context.Context, id string) (*dto.DevolucionResponse, error) {
	prestamo, err := uc.prestamoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prestamo == nil {
		return nil, domain.ErrNotFound
	}
	if !prestamo.Abierto() {
		return nil, domain.ErrPrestamoCerrado
	}

	hoy := uc.Ahora()
	dias := domcirc.DiasRetraso(prestamo.FechaDevolucionPrevista, hoy)

	var multa *entity.Multa
	if dias > 0 {
		tarifas, err := uc.tarifaRepo.ListAll()
		if err != nil {
			return nil, err
		}
		if tarifa := domcirc.SeleccionarTarifa(dias, tarifas); tarifa != nil {
			multa = &entity.Multa{
				ID:          uuid.New().String(),
				IDPrestamo:  prestamo.ID,
				IDTarifa:    tarifa.ID,
				DiasRetraso: dias,
				MontoTotal:  domcirc.CalcularMonto(dias, *tarifa),
			}
		}
	}

	err = uc.txRunner.Run(ctx, func(
		prestamoRepo repository.PrestamoRepository,
		ejemplarRepo repository.EjemplarRepository,
		multaRepo repository.MultaRepository,
	) error {
		if err := prestamoRepo.RegistrarDevolucion(prestamo.ID, hoy); err != nil {
			return err
		}
		if err := ejemplarRepo.UpdateEstado(prestamo.IDEjemplar, entity.EjemplarActivo); err != nil {
			return err
		}
		if multa != nil {
			return multaRepo.Create(multa)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	prestamo.FechaDevolucionReal = &hoy
	usuario, _ := uc.usuarioRepo.GetByID(prestamo.IDUsuario)
	ejemplar, _ := uc.ejemplarRepo.GetByID(prestamo.IDEjemplar)

	resp := &dto.DevolucionResponse{Prestamo: uc.unirUno(prestamo, usuario, ejemplar, hoy)}
	if multa != nil {
		resp.Multa = &dto.MultaResponse{
			ID:          multa.ID,
			IDPrestamo:  multa.IDPrestamo,
			DiasRetraso: multa.DiasRetraso,
			MontoTotal:  multa.MontoTotal,
			Pagada:      false,
		}
	}
	return resp, nil
}

// List lista préstamos desnormalizados, más recientes primero, con el total
// de préstamos abiertos de la página.
func (uc *PrestamoUseCase) List(limit, offset int) (*dto.PrestamoListResponse, error) {
	prestamos, err := uc.prestamoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}

	items, err := uc.unirTodos(prestamos)
	if err != nil {
		return nil, err
	}

	activos := 0
	for _, p := range prestamos {
		if p.Abierto() {
			activos++
		}
	}
	return &dto.PrestamoListResponse{
		Items:   items,
		Activos: activos,
		Page:    dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Comprobante genera el comprobante PDF del préstamo. Nil si no existe.
func (uc *PrestamoUseCase) Comprobante(ctx context.Context, id string) ([]byte, error) {
	prestamo, err := uc.prestamoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prestamo == nil {
		return nil, nil
	}

	usuario, err := uc.usuarioRepo.GetByID(prestamo.IDUsuario)
	if err != nil {
		return nil, err
	}
	ejemplar, err := uc.ejemplarRepo.GetByID(prestamo.IDEjemplar)
	if err != nil {
		return nil, err
	}
	var libro *entity.Libro
	if ejemplar != nil {
		libro, err = uc.libroRepo.GetByID(ejemplar.IDLibro)
		if err != nil {
			return nil, err
		}
	}

	return uc.pdf.GenerarComprobante(ctx, ComprobanteData{
		Biblioteca: uc.biblioteca,
		Prestamo:   *prestamo,
		Usuario:    usuario,
		Ejemplar:   ejemplar,
		Libro:      libro,
	})
}

// unirTodos consulta usuarios, ejemplares y libros referenciados y une.
func (uc *PrestamoUseCase) unirTodos(prestamos []*entity.Prestamo) ([]dto.PrestamoResponse, error) {
	usuarioIDs := make([]string, 0, len(prestamos))
	ejemplarIDs := make([]string, 0, len(prestamos))
	for _, p := range prestamos {
		usuarioIDs = append(usuarioIDs, p.IDUsuario)
		ejemplarIDs = append(ejemplarIDs, p.IDEjemplar)
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

	return UnirPrestamos(prestamos, usuarios, ejemplares, libros, uc.Ahora()), nil
}

// unirUno versión de conveniencia para respuestas de una sola fila.
func (uc *PrestamoUseCase) unirUno(p *entity.Prestamo, usuario *entity.Usuario, ejemplar *entity.Ejemplar, hoy time.Time) dto.PrestamoResponse {
	var usuarios []*entity.Usuario
	if usuario != nil {
		usuarios = append(usuarios, usuario)
	}
	var ejemplares []*entity.Ejemplar
	var libros []*entity.Libro
	if ejemplar != nil {
		ejemplares = append(ejemplares, ejemplar)
		if libro, err := uc.libroRepo.GetByID(ejemplar.IDLibro); err == nil && libro != nil {
			libros = append(libros, libro)
		}
	}
	return UnirPrestamos([]*entity.Prestamo{p}, usuarios, ejemplares, libros, hoy)[0]
}
