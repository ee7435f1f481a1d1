package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Job.
const (
	JobPendiente  = "pendiente"
	JobAgendado   = "agendado"
	JobEnCurso    = "en_curso"
	JobCompletado = "completado"
	JobCancelado  = "cancelado"
)

// Job representa un trabajo agendado para un cliente (corte, poda, diseño, etc.).
// OwnerID es quien lo creó (inmutable); AssigneeID es el operario responsable y
// puede reasignarse por admin o gerente.
type Job struct {
	ID          string
	CompanyID   string
	ClientID    string
	OwnerID     string
	AssigneeID  string // vacío = sin asignar
	Title       string
	Description string
	Status      string // ver constantes Job*
	ScheduledAt *time.Time
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobNote nota de seguimiento sobre un trabajo.
type JobNote struct {
	ID        string
	JobID     string
	AuthorID  string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
