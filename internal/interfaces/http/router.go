package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avasquez/biblioteca-api/internal/application/catalogo"
	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogoUC *catalogo.CatalogoUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	PrestamoUC *circulacion.PrestamoUseCase
	ReservaUC  *circulacion.ReservaUseCase
	MultaUC    *circulacion.MultaUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	libros := api.Group("/libros")
	libroHandler := NewLibroHandler(deps.CatalogoUC)
	libros.Get("/", libroHandler.List)
	libros.Get("/:id", libroHandler.GetDetalle)
	libros.Get("/:id/disponibles", libroHandler.EjemplaresDisponibles)
	libros.Get("/:id/export", libroHandler.Exportar)

	// Lectores
	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	multaHandler := NewMultaHandler(deps.MultaUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetDetalle)
	usuarios.Get("/:id/multas", multaHandler.ListPorUsuario)

	// Circulación
	prestamos := api.Group("/prestamos")
	prestamoHandler := NewPrestamoHandler(deps.PrestamoUC)
	prestamos.Post("/", prestamoHandler.Create)
	prestamos.Get("/", prestamoHandler.List)
	prestamos.Post("/:id/devolucion", prestamoHandler.Devolver)
	prestamos.Get("/:id/comprobante", prestamoHandler.Comprobante)

	reservas := api.Group("/reservas")
	reservaHandler := NewReservaHandler(deps.ReservaUC)
	reservas.Post("/", reservaHandler.Create)
	reservas.Get("/", reservaHandler.List)
	reservas.Post("/:id/cancelacion", reservaHandler.Cancelar)

	multas := api.Group("/multas")
	multas.Post("/:id/pago", multaHandler.Pagar)
}
