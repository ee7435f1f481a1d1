package entity

import "time"

// SavedItem elemento guardado por un usuario (favoritos, snippets de presupuesto,
// referencias de plantas). Estrictamente privado del dueño.
type SavedItem struct {
	ID        string
	CompanyID string
	OwnerID   string
	Kind      string // plant, material, note, link
	Payload   string // JSON serializado por el cliente; opaco para el dominio
	CreatedAt time.Time
	UpdatedAt time.Time
}
