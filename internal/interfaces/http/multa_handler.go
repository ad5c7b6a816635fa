package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/application/dto"
	"github.com/avasquez/biblioteca-api/internal/domain"
)

// MultaHandler maneja las peticiones HTTP de multas.
type MultaHandler struct {
	uc *circulacion.MultaUseCase
}

// NewMultaHandler construye el handler.
func NewMultaHandler(uc *circulacion.MultaUseCase) *MultaHandler {
	return &MultaHandler{uc: uc}
}

// Pagar godoc
// @Summary      Registrar el pago de una multa
// @Tags         multas
// @Produce      json
// @Param        id   path  string  true  "ID de la multa"
// @Success      200  {object}  dto.MultaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/multas/{id}/pago [post]
func (h *MultaHandler) Pagar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Pagar(id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "multa no encontrada"})
		case domain.ErrMultaPagada:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "YA_PAGADA", Message: "la multa ya fue pagada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListPorUsuario godoc
// @Summary      Listar las multas de un lector
// @Tags         multas
// @Produce      json
// @Param        id   path  string  true  "ID del lector"
// @Success      200  {array}  dto.MultaResponse
// @Router       /api/usuarios/{id}/multas [get]
func (h *MultaHandler) ListPorUsuario(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListPorUsuario(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
