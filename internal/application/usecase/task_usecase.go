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

// TaskUseCase casos de uso de tareas internas del equipo.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(taskRepo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo}
}

func taskSnapshot(t *entity.Task) policy.Resource {
	return policy.Resource{
		Kind:       policy.KindTask,
		CompanyID:  t.CompanyID,
		OwnerID:    t.OwnerID,
		AssigneeID: t.AssigneeID,
	}
}

// Create crea una tarea; el creador queda como dueño.
func (uc *TaskUseCase) Create(s policy.Session, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := policy.Authorize(s, policy.ActionCreate, policy.Resource{Kind: policy.KindTask, CompanyID: s.CompanyID}); err != nil {
		return nil, err
	}
	now := time.Now()
	task := &entity.Task{
		ID:         uuid.New().String(),
		CompanyID:  s.CompanyID,
		OwnerID:    s.UserID,
		AssigneeID: in.AssigneeID,
		Title:      in.Title,
		DueAt:      in.DueAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Get obtiene una tarea visible para la sesión.
func (uc *TaskUseCase) Get(s policy.Session, id string) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil || task.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, taskSnapshot(task)); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// List lista tareas: admin/gerente toda la empresa, operario las propias o asignadas.
func (uc *TaskUseCase) List(s policy.Session, limit, offset int) ([]*dto.TaskResponse, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	var (
		tasks []*entity.Task
		err   error
	)
	if s.Role == entity.RoleOperario {
		tasks, err = uc.taskRepo.ListForUser(s.CompanyID, s.UserID, limit, offset)
	} else {
		tasks, err = uc.taskRepo.ListByCompany(s.CompanyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Update actualiza una tarea (el asignado puede marcarla como hecha).
func (uc *TaskUseCase) Update(s policy.Session, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionUpdate, taskSnapshot(task)); err != nil {
		return nil, err
	}
	if in.AssigneeID != task.AssigneeID && s.Role == entity.RoleOperario {
		return nil, domain.ErrForbidden
	}
	task.Title = in.Title
	task.AssigneeID = in.AssigneeID
	task.Done = in.Done
	task.DueAt = in.DueAt
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina una tarea (solo dueño, o admin/gerente).
func (uc *TaskUseCase) Delete(s policy.Session, id string) error {
	task, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionDelete, taskSnapshot(task)); err != nil {
		return err
	}
	return uc.taskRepo.Delete(id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:         t.ID,
		CompanyID:  t.CompanyID,
		OwnerID:    t.OwnerID,
		AssigneeID: t.AssigneeID,
		Title:      t.Title,
		Done:       t.Done,
		DueAt:      t.DueAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
