package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
)

// SavedItemHandler maneja los elementos guardados (plantas, materiales,
// notas, enlaces). Recurso solo-dueño.
type SavedItemHandler struct {
	uc *usecase.SavedItemUseCase
}

// NewSavedItemHandler construye el handler.
func NewSavedItemHandler(uc *usecase.SavedItemUseCase) *SavedItemHandler {
	return &SavedItemHandler{uc: uc}
}

// Create POST /api/saved-items
func (h *SavedItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSavedItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(SessionFromCtx(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/saved-items/:id
func (h *SavedItemHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/saved-items?kind=plant — siempre solo los del usuario.
func (h *SavedItemHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(SessionFromCtx(c), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/saved-items/:id
func (h *SavedItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSavedItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(SessionFromCtx(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/saved-items/:id
func (h *SavedItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(SessionFromCtx(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
