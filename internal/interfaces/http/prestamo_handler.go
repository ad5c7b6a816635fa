package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain"
)

// PrestamoHandler maneja las peticiones HTTP de préstamos.
type PrestamoHandler struct {
	uc *circulacion.PrestamoUseCase
}

// NewPrestamoHandler construye el handler.
func NewPrestamoHandler(uc *circulacion.PrestamoUseCase) *PrestamoHandler {
	return &PrestamoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un préstamo
// @Tags         prestamos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPrestamoRequest  true  "Datos del préstamo"
// @Success      201   {object}  dto.PrestamoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/prestamos [post]
func (h *PrestamoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPrestamoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario o ejemplar no encontrado"})
		case domain.ErrUsuarioInactivo:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USUARIO_INACTIVO", Message: "el lector está inactivo"})
		case domain.ErrEjemplarNoDisponible:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_DISPONIBLE", Message: "el ejemplar no está disponible para préstamo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar préstamos
// @Tags         prestamos
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PrestamoListResponse
// @Router       /api/prestamos [get]
func (h *PrestamoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Devolver godoc
// @Summary      Registrar la devolución de un préstamo
// @Tags         prestamos
// @Produce      json
// @Param        id   path  string  true  "ID del préstamo"
// @Success      200  {object}  dto.DevolucionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/prestamos/{id}/devolucion [post]
func (h *PrestamoHandler) Devolver(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Devolver(c.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "préstamo no encontrado"})
		case domain.ErrPrestamoCerrado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "YA_DEVUELTO", Message: "el préstamo ya fue devuelto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Comprobante godoc
// @Summary      Descargar el comprobante PDF del préstamo
// @Tags         prestamos
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del préstamo"
// @Success      200  {file}  byte
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prestamos/{id}/comprobante [get]
func (h *PrestamoHandler) Comprobante(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Comprobante(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "préstamo no encontrado"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comprobante-`+id+`.pdf"`)
	return c.Send(out)
}
