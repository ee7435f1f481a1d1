package entity

import "time"

// Company representa una empresa de jardinería/paisajismo (tenant del sistema).
// Todo recurso de negocio queda aislado dentro de su Company.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
