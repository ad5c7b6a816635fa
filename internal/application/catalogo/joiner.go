package catalogo

import (
	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// UnirLibros arma un registro desnormalizado por libro a partir de los sets
// planos ya consultados: editorial adjunta (o nil si el libro no referencia
// ninguna o la referencia no resuelve) y autores en orden con su rol.
// Las claves foráneas colgantes nunca son error: el campo queda ausente.
func UnirLibros(libros []*entity.Libro, editoriales []*entity.Editorial, autores []entity.AutorDeLibro) []dto.LibroResponse {
	editorialesPorID := make(map[string]*entity.Editorial, len(editoriales))
	for _, e := range editoriales {
		editorialesPorID[e.ID] = e
	}
	autoresPorLibro := make(map[string][]entity.AutorDeLibro, len(libros))
	for _, a := range autores {
		autoresPorLibro[a.IDLibro] = append(autoresPorLibro[a.IDLibro], a)
	}

	out := make([]dto.LibroResponse, 0, len(libros))
	for _, libro := range libros {
		out = append(out, unirLibro(libro, editorialesPorID[libro.IDEditorial], autoresPorLibro[libro.ID]))
	}
	return out
}

func unirLibro(libro *entity.Libro, editorial *entity.Editorial, autores []entity.AutorDeLibro) dto.LibroResponse {
	resp := dto.LibroResponse{
		ID:                 libro.ID,
		Titulo:             libro.Titulo,
		ISBN:               libro.ISBN,
		AnioPublicacion:    libro.AnioPublicacion,
		NumeroPaginas:      libro.NumeroPaginas,
		ClasificacionDewey: libro.ClasificacionDewey,
		Descripcion:        libro.Descripcion,
		Autores:            make([]dto.AutorResponse, 0, len(autores)),
	}
	if editorial != nil {
		resp.Editorial = &dto.EditorialResponse{
			ID:            editorial.ID,
			Nombre:        editorial.Nombre,
			Pais:          editorial.Pais,
			AnioFundacion: editorial.AnioFundacion,
			SitioWeb:      editorial.SitioWeb,
		}
	}
	for _, a := range autores {
		resp.Autores = append(resp.Autores, dto.AutorResponse{
			ID:           a.Autor.ID,
			Nombre:       a.Autor.Nombre,
			Nacionalidad: a.Autor.Nacionalidad,
			Rol:          a.Rol,
		})
	}
	return resp
}
