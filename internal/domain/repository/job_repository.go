package repository

import (
	"time"

	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
)

// JobRepository define el puerto de persistencia para Job y sus notas.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Job, error)
	// ListForUser trabajos donde el usuario es dueño o asignado (vista de operario).
	ListForUser(companyID, userID string, limit, offset int) ([]*entity.Job, error)
	Update(job *entity.Job) error
	Delete(id string) error

	// ListCompletedAfter trabajos marcados como completados estrictamente después
	// de `after` (para el feed de notificaciones).
	ListCompletedAfter(companyID string, after time.Time) ([]*entity.Job, error)

	CreateNote(note *entity.JobNote) error
	GetNote(id string) (*entity.JobNote, error)
	UpdateNote(note *entity.JobNote) error
	ListNotesByJob(jobID string) ([]*entity.JobNote, error)
}
