package entity

import "time"

// Client representa un cliente de la empresa de paisajismo.
// OwnerID se asigna una sola vez al crear y no se modifica después.
type Client struct {
	ID        string
	CompanyID string
	OwnerID   string // usuario que creó el cliente (inmutable)
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
