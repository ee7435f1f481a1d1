package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TemplateItemRequest línea de plantilla en peticiones de create/update.
type TemplateItemRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=300"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
}

// CreateTemplateRequest entrada para crear una plantilla de presupuesto.
type CreateTemplateRequest struct {
	Name        string                `json:"name" validate:"required,min=1,max=200"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Items       []TemplateItemRequest `json:"items" validate:"dive"`
}

// UpdateTemplateRequest entrada para actualizar: reemplaza TODAS las líneas
// de forma atómica (una sola transacción).
type UpdateTemplateRequest struct {
	Name        string                `json:"name" validate:"required,min=1,max=200"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Items       []TemplateItemRequest `json:"items" validate:"dive"`
}

// TemplateItemResponse línea de plantilla en respuestas.
type TemplateItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Position    int             `json:"position"`
}

// TemplateResponse salida de una plantilla con sus líneas ordenadas.
type TemplateResponse struct {
	ID          string                 `json:"id"`
	CompanyID   string                 `json:"company_id"`
	OwnerID     string                 `json:"owner_id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Items       []TemplateItemResponse `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
