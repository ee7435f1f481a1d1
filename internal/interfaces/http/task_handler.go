package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
)

// TaskHandler maneja las tareas pendientes.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(SessionFromCtx(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(SessionFromCtx(c), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(SessionFromCtx(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(SessionFromCtx(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
