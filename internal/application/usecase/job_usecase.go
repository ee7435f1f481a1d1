package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/policy"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// JobUseCase casos de uso de la agenda de trabajos y sus notas.
type JobUseCase struct {
	jobRepo repository.JobRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(jobRepo repository.JobRepository) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo}
}

func jobSnapshot(j *entity.Job) policy.Resource {
	return policy.Resource{
		Kind:       policy.KindJob,
		CompanyID:  j.CompanyID,
		OwnerID:    j.OwnerID,
		AssigneeID: j.AssigneeID,
	}
}

// Get obtiene un trabajo. Trabajos de otra empresa se reportan como no encontrados.
func (uc *JobUseCase) Get(s policy.Session, id string) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil || job.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, jobSnapshot(job)); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// List lista la agenda: admin/gerente ven toda la empresa, operario solo los
// trabajos propios o asignados.
func (uc *JobUseCase) List(s policy.Session, limit, offset int) ([]*dto.JobResponse, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	var (
		jobs []*entity.Job
		err  error
	)
	if s.Role == entity.RoleOperario {
		jobs, err = uc.jobRepo.ListForUser(s.CompanyID, s.UserID, limit, offset)
	} else {
		jobs, err = uc.jobRepo.ListByCompany(s.CompanyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	return out, nil
}

// Update actualiza un trabajo. El cambio de asignado queda reservado a
// admin/gerente; owner y company son inmutables.
func (uc *JobUseCase) Update(s policy.Session, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if strings.TrimSpace(in.Title) == "" || !validJobStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	job, err := uc.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionUpdate, jobSnapshot(job)); err != nil {
		return nil, err
	}
	if in.AssigneeID != job.AssigneeID && s.Role == entity.RoleOperario {
		return nil, domain.ErrForbidden
	}
	job.Title = in.Title
	job.Description = in.Description
	job.Status = in.Status
	job.ScheduledAt = in.ScheduledAt
	job.AssigneeID = in.AssigneeID
	job.Price = in.Price
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Delete elimina un trabajo. La asignación no otorga borrado.
func (uc *JobUseCase) Delete(s policy.Session, id string) error {
	job, err := uc.jobRepo.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionDelete, jobSnapshot(job)); err != nil {
		return err
	}
	return uc.jobRepo.Delete(id)
}

// CreateNote agrega una nota a un trabajo visible para la sesión.
func (uc *JobUseCase) CreateNote(s policy.Session, jobID string, in dto.CreateJobNoteRequest) (*dto.JobNoteResponse, error) {
	if strings.TrimSpace(in.Body) == "" {
		return nil, domain.ErrInvalidInput
	}
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	// Quien puede actualizar el trabajo puede anotarlo.
	if err := policy.Authorize(s, policy.ActionUpdate, jobSnapshot(job)); err != nil {
		return nil, err
	}
	now := time.Now()
	note := &entity.JobNote{
		ID:        uuid.New().String(),
		JobID:     job.ID,
		AuthorID:  s.UserID,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.jobRepo.CreateNote(note); err != nil {
		return nil, err
	}
	return toJobNoteResponse(note), nil
}

// UpdateNote edita una nota existente de un trabajo.
func (uc *JobUseCase) UpdateNote(s policy.Session, jobID, noteID string, in dto.UpdateJobNoteRequest) (*dto.JobNoteResponse, error) {
	if strings.TrimSpace(in.Body) == "" {
		return nil, domain.ErrInvalidInput
	}
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionUpdate, jobSnapshot(job)); err != nil {
		return nil, err
	}
	note, err := uc.jobRepo.GetNote(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil || note.JobID != job.ID {
		return nil, domain.ErrNotFound
	}
	note.Body = in.Body
	note.UpdatedAt = time.Now()
	if err := uc.jobRepo.UpdateNote(note); err != nil {
		return nil, err
	}
	return toJobNoteResponse(note), nil
}

// ListNotes lista las notas de un trabajo visible para la sesión.
func (uc *JobUseCase) ListNotes(s policy.Session, jobID string) ([]*dto.JobNoteResponse, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, jobSnapshot(job)); err != nil {
		return nil, err
	}
	notes, err := uc.jobRepo.ListNotesByJob(job.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobNoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toJobNoteResponse(n))
	}
	return out, nil
}

func validJobStatus(s string) bool {
	switch s {
	case entity.JobPendiente, entity.JobAgendado, entity.JobEnCurso, entity.JobCompletado, entity.JobCancelado:
		return true
	}
	return false
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		ClientID:    j.ClientID,
		OwnerID:     j.OwnerID,
		AssigneeID:  j.AssigneeID,
		Title:       j.Title,
		Description: j.Description,
		Status:      j.Status,
		ScheduledAt: j.ScheduledAt,
		Price:       j.Price,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func toJobNoteResponse(n *entity.JobNote) *dto.JobNoteResponse {
	return &dto.JobNoteResponse{
		ID:        n.ID,
		JobID:     n.JobID,
		AuthorID:  n.AuthorID,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
