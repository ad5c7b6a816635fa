package catalogo

import (
	"github.com/avasquez/biblioteca-api/internal/application/dto"
	domcirc "github.com/avasquez/biblioteca-api/internal/domain/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

// CatalogoUseCase consultas del catálogo: listado con búsqueda, detalle con
// disponibilidad y exportación del registro bibliográfico.
type CatalogoUseCase struct {
	libroRepo     repository.LibroRepository
	editorialRepo repository.EditorialRepository
	autorRepo     repository.AutorRepository
	ejemplarRepo  repository.EjemplarRepository
	prestamoRepo  repository.PrestamoRepository
	exporter      RegistroExporter
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(
	libroRepo repository.LibroRepository,
	editorialRepo repository.EditorialRepository,
	autorRepo repository.AutorRepository,
	ejemplarRepo repository.EjemplarRepository,
	prestamoRepo repository.PrestamoRepository,
	exporter RegistroExporter,
) *CatalogoUseCase {
	return &CatalogoUseCase{
		libroRepo:     libroRepo,
		editorialRepo: editorialRepo,
		autorRepo:     autorRepo,
		ejemplarRepo:  ejemplarRepo,
		prestamoRepo:  prestamoRepo,
		exporter:      exporter,
	}
}

// List lista el catálogo desnormalizado, ordenado por título. Si busqueda no
// está vacía filtra por título o ISBN sin distinguir mayúsculas ni acentos.
func (uc *CatalogoUseCase) List(busqueda string, limit, offset int) (*dto.LibroListResponse, error) {
	libros, err := uc.libroRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	if busqueda != "" {
		filtrados := libros[:0]
		for _, l := range libros {
			if coincide(l.Titulo, busqueda) || coincide(l.ISBN, busqueda) {
				filtrados = append(filtrados, l)
			}
		}
		libros = filtrados
	}

	items, err := uc.unir(libros)
	if err != nil {
		return nil, err
	}
	return &dto.LibroListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetDetalle devuelve el libro con editorial, autores, ejemplares y la
// cantidad de ejemplares disponibles para préstamo. Nil si no existe.
func (uc *CatalogoUseCase) GetDetalle(id string) (*dto.LibroDetalleResponse, error) {
	libro, err := uc.libroRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if libro == nil {
		return nil, nil
	}

	items, err := uc.unir([]*entity.Libro{libro})
	if err != nil {
		return nil, err
	}

	ejemplares, err := uc.ejemplarRepo.ListPorLibro(id)
	if err != nil {
		return nil, err
	}
	disponibles, err := uc.disponibles(ejemplares)
	if err != nil {
		return nil, err
	}

	detalle := &dto.LibroDetalleResponse{
		LibroResponse: items[0],
		Ejemplares:    make([]dto.EjemplarResponse, 0, len(ejemplares)),
		Disponibles:   len(disponibles),
	}
	for _, e := range ejemplares {
		detalle.Ejemplares = append(detalle.Ejemplares, toEjemplarResponse(e))
	}
	return detalle, nil
}

// EjemplaresDisponibles devuelve los ejemplares del libro prestables ahora
// mismo (para el formulario de préstamo).
func (uc *CatalogoUseCase) EjemplaresDisponibles(libroID string) ([]dto.EjemplarResponse, error) {
	ejemplares, err := uc.ejemplarRepo.ListPorLibro(libroID)
	if err != nil {
		return nil, err
	}
	disponibles, err := uc.disponibles(ejemplares)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EjemplarResponse, 0, len(disponibles))
	for _, e := range disponibles {
		out = append(out, toEjemplarResponse(e))
	}
	return out, nil
}

// Exportar serializa el registro bibliográfico del libro. Nil si no existe.
func (uc *CatalogoUseCase) Exportar(id string) ([]byte, error) {
	libro, err := uc.libroRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if libro == nil {
		return nil, nil
	}
	items, err := uc.unir([]*entity.Libro{libro})
	if err != nil {
		return nil, err
	}
	return uc.exporter.Exportar(items[0])
}

// disponibles aplica la regla de dominio sobre los ejemplares dados y sus
// préstamos abiertos.
func (uc *CatalogoUseCase) disponibles(ejemplares []entity.Ejemplar) ([]entity.Ejemplar, error) {
	ids := make([]string, 0, len(ejemplares))
	for _, e := range ejemplares {
		ids = append(ids, e.ID)
	}
	abiertos, err := uc.prestamoRepo.ListAbiertosPorEjemplares(ids)
	if err != nil {
		return nil, err
	}
	return domcirc.Disponibles(ejemplares, abiertos), nil
}

// unir consulta editoriales y autores de los libros dados y los desnormaliza.
func (uc *CatalogoUseCase) unir(libros []*entity.Libro) ([]dto.LibroResponse, error) {
	editorialIDs := make([]string, 0, len(libros))
	libroIDs := make([]string, 0, len(libros))
	vistos := make(map[string]struct{}, len(libros))
	for _, l := range libros {
		libroIDs = append(libroIDs, l.ID)
		if l.IDEditorial == "" {
			continue
		}
		if _, ok := vistos[l.IDEditorial]; ok {
			continue
		}
		vistos[l.IDEditorial] = struct{}{}
		editorialIDs = append(editorialIDs, l.IDEditorial)
	}

	editoriales, err := uc.editorialRepo.ListByIDs(editorialIDs)
	if err != nil {
		return nil, err
	}
	autores, err := uc.autorRepo.ListPorLibros(libroIDs)
	if err != nil {
		return nil, err
	}
	return UnirLibros(libros, editoriales, autores), nil
}

func toEjemplarResponse(e entity.Ejemplar) dto.EjemplarResponse {
	return dto.EjemplarResponse{
		ID:                e.ID,
		CodigoInterno:     e.CodigoInterno,
		Estado:            e.Estado,
		Ubicacion:         e.Ubicacion,
		FechaAdquisicion:  e.FechaAdquisicion,
		PrecioAdquisicion: e.PrecioAdquisicion,
	}
}
