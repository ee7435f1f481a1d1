package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateJobRequest entrada para actualizar un trabajo de la agenda.
// AssigneeID solo lo cambian admin/gerente (lo valida el use case).
type UpdateJobRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Status      string          `json:"status" validate:"required,oneof=pendiente agendado en_curso completado cancelado"`
	ScheduledAt *time.Time      `json:"scheduled_at"`
	AssigneeID  string          `json:"assignee_id" validate:"omitempty,uuid"`
	Price       decimal.Decimal `json:"price"`
}

// JobResponse salida de un trabajo.
type JobResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	ClientID    string          `json:"client_id"`
	OwnerID     string          `json:"owner_id"`
	AssigneeID  string          `json:"assignee_id,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	ScheduledAt *time.Time      `json:"scheduled_at,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateJobNoteRequest entrada para agregar una nota a un trabajo.
type CreateJobNoteRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

// UpdateJobNoteRequest entrada para editar una nota existente.
type UpdateJobNoteRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

// JobNoteResponse salida de una nota de trabajo.
type JobNoteResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
