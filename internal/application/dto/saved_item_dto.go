package dto

import "time"

// CreateSavedItemRequest entrada para guardar un elemento privado del usuario.
type CreateSavedItemRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=plant material note link"`
	Payload string `json:"payload" validate:"required,max=10000"`
}

// UpdateSavedItemRequest entrada para actualizar un elemento guardado.
type UpdateSavedItemRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=plant material note link"`
	Payload string `json:"payload" validate:"required,max=10000"`
}

// SavedItemResponse salida de un elemento guardado.
type SavedItemResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	OwnerID   string    `json:"owner_id"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
