package repository

import (
	"time"

	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Task, error)
	// ListForUser tareas donde el usuario es dueño o asignado (vista de operario).
	ListForUser(companyID, userID string, limit, offset int) ([]*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id string) error

	// ListDoneAfter tareas completadas estrictamente después de `after`
	// (para el feed de notificaciones).
	ListDoneAfter(companyID string, after time.Time) ([]*entity.Task, error)
}
