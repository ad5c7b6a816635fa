package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avasquez/biblioteca-api/internal/application/catalogo"
	"github.com/avasquez/biblioteca-api/internal/application/dto"
)

// LibroHandler maneja las peticiones HTTP del catálogo.
type LibroHandler struct {
	uc *catalogo.CatalogoUseCase
}

// NewLibroHandler construye el handler.
func NewLibroHandler(uc *catalogo.CatalogoUseCase) *LibroHandler {
	return &LibroHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo
// @Tags         libros
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por título o ISBN (insensible a acentos)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.LibroListResponse
// @Router       /api/libros [get]
func (h *LibroHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("q"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetDetalle godoc
// @Summary      Detalle de un libro con ejemplares y disponibilidad
// @Tags         libros
// @Produce      json
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {object}  dto.LibroDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/libros/{id} [get]
func (h *LibroHandler) GetDetalle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetDetalle(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
	}
	return c.JSON(out)
}

// EjemplaresDisponibles godoc
// @Summary      Ejemplares del libro prestables ahora mismo
// @Tags         libros
// @Produce      json
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {array}  dto.EjemplarResponse
// @Router       /api/libros/{id}/disponibles [get]
func (h *LibroHandler) EjemplaresDisponibles(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.EjemplaresDisponibles(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Exportar godoc
// @Summary      Exportar el registro bibliográfico en Dublin Core XML
// @Tags         libros
// @Produce      xml
// @Param        id   path  string  true  "ID del libro"
// @Success      200  {string}  string  "Registro oai_dc"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/libros/{id}/export [get]
func (h *LibroHandler) Exportar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Exportar(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}

// pageParams lee limit/offset con los topes de siempre.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
