package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
)

// TemplateHandler maneja plantillas de presupuesto (recurso solo-dueño:
// ni el admin ve las de otros usuarios).
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Create POST /api/estimate-templates — cabecera + ítems en una transacción.
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), SessionFromCtx(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/estimate-templates/:id
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/estimate-templates — siempre solo las del usuario autenticado.
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(SessionFromCtx(c), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/estimate-templates/:id — reemplaza los ítems completos.
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), SessionFromCtx(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/estimate-templates/:id
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(SessionFromCtx(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
