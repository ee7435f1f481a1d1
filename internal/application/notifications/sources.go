package notifications

import (
	"context"
	"time"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// PhotoSource eventos de fotos subidas.
type PhotoSource struct {
	repo repository.PhotoRepository
}

// NewPhotoSource construye la fuente de fotos.
func NewPhotoSource(repo repository.PhotoRepository) *PhotoSource {
	return &PhotoSource{repo: repo}
}

// EventsAfter fotos subidas estrictamente después de `after`.
func (s *PhotoSource) EventsAfter(ctx context.Context, companyID string, after time.Time) ([]dto.NotificationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	photos, err := s.repo.ListUploadedAfter(companyID, after)
	if err != nil {
		return nil, err
	}
	events := make([]dto.NotificationEvent, 0, len(photos))
	for _, p := range photos {
		events = append(events, dto.NotificationEvent{
			ID:        "photo:" + p.ID,
			Kind:      "photo_uploaded",
			Title:     "Nueva foto",
			Message:   p.Caption,
			Timestamp: p.CreatedAt,
			Data: map[string]interface{}{
				"photo_id": p.ID,
				"job_id":   p.JobID,
				"owner_id": p.OwnerID,
			},
		})
	}
	return events, nil
}

// JobSource eventos de trabajos completados.
type JobSource struct {
	repo repository.JobRepository
}

// NewJobSource construye la fuente de trabajos.
func NewJobSource(repo repository.JobRepository) *JobSource {
	return &JobSource{repo: repo}
}

// EventsAfter trabajos completados estrictamente después de `after`.
func (s *JobSource) EventsAfter(ctx context.Context, companyID string, after time.Time) ([]dto.NotificationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	jobs, err := s.repo.ListCompletedAfter(companyID, after)
	if err != nil {
		return nil, err
	}
	events := make([]dto.NotificationEvent, 0, len(jobs))
	for _, j := range jobs {
		events = append(events, dto.NotificationEvent{
			ID:        "job:" + j.ID,
			Kind:      "job_completed",
			Title:     "Trabajo completado",
			Message:   j.Title,
			Timestamp: j.UpdatedAt,
			Data: map[string]interface{}{
				"job_id":      j.ID,
				"client_id":   j.ClientID,
				"assignee_id": j.AssigneeID,
			},
		})
	}
	return events, nil
}

// TaskSource eventos de tareas marcadas como hechas.
type TaskSource struct {
	repo repository.TaskRepository
}

// NewTaskSource construye la fuente de tareas.
func NewTaskSource(repo repository.TaskRepository) *TaskSource {
	return &TaskSource{repo: repo}
}

// EventsAfter tareas completadas estrictamente después de `after`.
func (s *TaskSource) EventsAfter(ctx context.Context, companyID string, after time.Time) ([]dto.NotificationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tasks, err := s.repo.ListDoneAfter(companyID, after)
	if err != nil {
		return nil, err
	}
	events := make([]dto.NotificationEvent, 0, len(tasks))
	for _, t := range tasks {
		events = append(events, dto.NotificationEvent{
			ID:        "task:" + t.ID,
			Kind:      "task_done",
			Title:     "Tarea completada",
			Message:   t.Title,
			Timestamp: t.UpdatedAt,
			Data: map[string]interface{}{
				"task_id":     t.ID,
				"assignee_id": t.AssigneeID,
			},
		})
	}
	return events, nil
}
