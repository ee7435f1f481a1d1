package dto

import "time"

// CreateTaskRequest entrada para crear una tarea interna.
type CreateTaskRequest struct {
	Title      string     `json:"title" validate:"required,min=1,max=200"`
	AssigneeID string     `json:"assignee_id" validate:"omitempty,uuid"`
	DueAt      *time.Time `json:"due_at"`
}

// UpdateTaskRequest entrada para actualizar una tarea.
type UpdateTaskRequest struct {
	Title      string     `json:"title" validate:"required,min=1,max=200"`
	AssigneeID string     `json:"assignee_id" validate:"omitempty,uuid"`
	Done       bool       `json:"done"`
	DueAt      *time.Time `json:"due_at"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	OwnerID    string     `json:"owner_id"`
	AssigneeID string     `json:"assignee_id,omitempty"`
	Title      string     `json:"title"`
	Done       bool       `json:"done"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
