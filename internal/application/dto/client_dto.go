package dto

import "time"

// CreateClientRequest entrada para crear un cliente. Al crearse se genera
// además un trabajo "Contacto inicial" en la misma transacción.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Notes   string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateClientRequest entrada para actualizar un cliente (owner no se toca).
type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Notes   string `json:"notes" validate:"omitempty,max=2000"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientResponse cliente recién creado junto con su trabajo inicial.
type CreateClientResponse struct {
	Client     ClientResponse `json:"client"`
	InitialJob JobResponse    `json:"initial_job"`
}
