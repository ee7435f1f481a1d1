package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients — crea el cliente y su trabajo "Contacto inicial".
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), SessionFromCtx(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/clients/:id
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/clients?limit=20&offset=0
func (h *ClientHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(SessionFromCtx(c), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(SessionFromCtx(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(SessionFromCtx(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
