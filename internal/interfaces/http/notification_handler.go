package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/notifications"
)

// NotificationHandler expone el feed agregado para admin y gerente.
type NotificationHandler struct {
	agg *notifications.Aggregator
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(agg *notifications.Aggregator) *NotificationHandler {
	return &NotificationHandler{agg: agg}
}

// Feed GET /api/admin/notifications?lastChecked=2026-08-25T00:00:00Z
// Sin lastChecked se devuelve la ventana por defecto (últimos 7 días).
// El corte es estrictamente posterior: un evento con timestamp igual a
// lastChecked no vuelve a aparecer.
func (h *NotificationHandler) Feed(c *fiber.Ctx) error {
	var since time.Time
	if raw := c.Query("lastChecked"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TIMESTAMP", Message: "lastChecked debe ser RFC3339"})
		}
		since = parsed
	}
	out, err := h.agg.Collect(c.Context(), GetCompanyID(c), since)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
