package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
)

// JobHandler maneja la agenda de trabajos y sus notas.
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Get GET /api/schedule/:id
func (h *JobHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/schedule — admin/gerente ven toda la empresa, operario solo
// sus trabajos (propios o asignados).
func (h *JobHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(SessionFromCtx(c), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/schedule/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(SessionFromCtx(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/schedule/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(SessionFromCtx(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateNote POST /api/schedule/:id/notes
func (h *JobHandler) CreateNote(c *fiber.Ctx) error {
	var in dto.CreateJobNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateNote(SessionFromCtx(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateNote PUT /api/schedule/:id/notes/:noteId
func (h *JobHandler) UpdateNote(c *fiber.Ctx) error {
	var in dto.UpdateJobNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateNote(SessionFromCtx(c), c.Params("id"), c.Params("noteId"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListNotes GET /api/schedule/:id/notes
func (h *JobHandler) ListNotes(c *fiber.Ctx) error {
	out, err := h.uc.ListNotes(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
