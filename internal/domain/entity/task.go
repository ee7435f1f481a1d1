package entity

import "time"

// Task tarea interna del equipo (no facturable, a diferencia de Job).
type Task struct {
	ID         string
	CompanyID  string
	OwnerID    string
	AssigneeID string // vacío = sin asignar
	Title      string
	Done       bool
	DueAt      *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
