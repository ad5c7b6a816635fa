package circulacion

import (
	"time"

	"github.com/avasquez/biblioteca-api/internal/application/dto"
	domcirc "github.com/avasquez/biblioteca-api/internal/domain/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/entity"
)

// Las funciones de unión arman registros desnormalizados a partir de sets
// planos consultados por separado, uniendo por identificador. Una referencia
// que no resuelve deja el campo ausente; nunca es error.

// UnirPrestamos une préstamos con usuario, ejemplar y libro, y deriva el
// estado de presentación por fechas contra hoy.
func UnirPrestamos(prestamos []*entity.Prestamo, usuarios []*entity.Usuario, ejemplares []*entity.Ejemplar, libros []*entity.Libro, hoy time.Time) []dto.PrestamoResponse {
	usuariosPorID := indexarUsuarios(usuarios)
	ejemplaresPorID := indexarEjemplares(ejemplares)
	librosPorID := indexarLibros(libros)

	out := make([]dto.PrestamoResponse, 0, len(prestamos))
	for _, p := range prestamos {
		out = append(out, unirPrestamo(p, usuariosPorID, ejemplaresPorID, librosPorID, hoy))
	}
	return out
}

func unirPrestamo(p *entity.Prestamo, usuarios map[string]*entity.Usuario, ejemplares map[string]*entity.Ejemplar, libros map[string]*entity.Libro, hoy time.Time) dto.PrestamoResponse {
	resp := dto.PrestamoResponse{
		ID:                      p.ID,
		FechaPrestamo:           p.FechaPrestamo,
		FechaDevolucionPrevista: p.FechaDevolucionPrevista,
		FechaDevolucionReal:     p.FechaDevolucionReal,
		Estado:                  domcirc.EstadoPrestamo(p.FechaDevolucionPrevista, p.FechaDevolucionReal, hoy),
		NumeroRenovaciones:      p.NumeroRenovaciones,
	}
	if u := usuarios[p.IDUsuario]; u != nil {
		resp.Usuario = &dto.UsuarioResumen{ID: u.ID, Nombre: u.NombreCompleto()}
	}
	if e := ejemplares[p.IDEjemplar]; e != nil {
		resp.CodigoInterno = e.CodigoInterno
		if l := libros[e.IDLibro]; l != nil {
			resp.Libro = &dto.LibroResumen{ID: l.ID, Titulo: l.Titulo}
		}
	}
	return resp
}

// UnirReservas une reservas con usuario, ejemplar y libro, refinando el estado
// persistido con la expiración por fecha.
func UnirReservas(reservas []*entity.Reserva, usuarios []*entity.Usuario, ejemplares []*entity.Ejemplar, libros []*entity.Libro, hoy time.Time) []dto.ReservaResponse {
	usuariosPorID := indexarUsuarios(usuarios)
	ejemplaresPorID := indexarEjemplares(ejemplares)
	librosPorID := indexarLibros(libros)

	out := make([]dto.ReservaResponse, 0, len(reservas))
	for _, r := range reservas {
		resp := dto.ReservaResponse{
			ID:              r.ID,
			FechaReserva:    r.FechaReserva,
			FechaExpiracion: r.FechaExpiracion,
			Estado:          domcirc.EstadoReserva(r.Estado, r.FechaExpiracion, hoy),
		}
		if u := usuariosPorID[r.IDUsuario]; u != nil {
			resp.Usuario = &dto.UsuarioResumen{ID: u.ID, Nombre: u.NombreCompleto()}
		}
		if e := ejemplaresPorID[r.IDEjemplar]; e != nil {
			resp.CodigoInterno = e.CodigoInterno
			if l := librosPorID[e.IDLibro]; l != nil {
				resp.Libro = &dto.LibroResumen{ID: l.ID, Titulo: l.Titulo}
			}
		}
		out = append(out, resp)
	}
	return out
}

// UnirMultas une multas con la cadena préstamo → ejemplar → libro.
func UnirMultas(multas []entity.Multa, prestamos []*entity.Prestamo, ejemplares []*entity.Ejemplar, libros []*entity.Libro) []dto.MultaResponse {
	prestamosPorID := make(map[string]*entity.Prestamo, len(prestamos))
	for _, p := range prestamos {
		prestamosPorID[p.ID] = p
	}
	ejemplaresPorID := indexarEjemplares(ejemplares)
	librosPorID := indexarLibros(libros)

	out := make([]dto.MultaResponse, 0, len(multas))
	for _, m := range multas {
		resp := dto.MultaResponse{
			ID:          m.ID,
			IDPrestamo:  m.IDPrestamo,
			DiasRetraso: m.DiasRetraso,
			MontoTotal:  m.MontoTotal,
			FechaPago:   m.FechaPago,
			Pagada:      m.Pagada,
		}
		if p := prestamosPorID[m.IDPrestamo]; p != nil {
			if e := ejemplaresPorID[p.IDEjemplar]; e != nil {
				resp.CodigoInterno = e.CodigoInterno
				if l := librosPorID[e.IDLibro]; l != nil {
					resp.Libro = &dto.LibroResumen{ID: l.ID, Titulo: l.Titulo}
				}
			}
		}
		out = append(out, resp)
	}
	return out
}

func indexarUsuarios(usuarios []*entity.Usuario) map[string]*entity.Usuario {
	m := make(map[string]*entity.Usuario, len(usuarios))
	for _, u := range usuarios {
		m[u.ID] = u
	}
	return m
}

func indexarEjemplares(ejemplares []*entity.Ejemplar) map[string]*entity.Ejemplar {
	m := make(map[string]*entity.Ejemplar, len(ejemplares))
	for _, e := range ejemplares {
		m[e.ID] = e
	}
	return m
}

func indexarLibros(libros []*entity.Libro) map[string]*entity.Libro {
	m := make(map[string]*entity.Libro, len(libros))
	for _, l := range libros {
		m[l.ID] = l
	}
	return m
}
