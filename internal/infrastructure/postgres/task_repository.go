package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository (usable con pool o tx).
// AssigneeID vacío se guarda como NULL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, company_id, owner_id, assignee_id, title, done, due_at, created_at, updated_at`

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, company_id, owner_id, assignee_id, title, done, due_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.CompanyID, task.OwnerID, nullable(task.AssigneeID), task.Title,
		task.Done, task.DueAt, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t entity.Task
	var assignee *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.OwnerID, &assignee, &t.Title, &t.Done, &t.DueAt,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	if assignee != nil {
		t.AssigneeID = *assignee
	}
	return &t, nil
}

// ListByCompany lista tareas de la empresa, próximas primero.
func (r *TaskRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE company_id = $1
		ORDER BY due_at ASC NULLS LAST, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListForUser tareas donde el usuario es dueño o asignado.
func (r *TaskRepo) ListForUser(companyID, userID string, limit, offset int) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE company_id = $1 AND (owner_id = $2 OR assignee_id = $2)
		ORDER BY due_at ASC NULLS LAST, created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, companyID, userID, limit, offset)
}

// ListDoneAfter tareas completadas estrictamente después de `after`.
func (r *TaskRepo) ListDoneAfter(companyID string, after time.Time) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE company_id = $1 AND done AND updated_at > $2
		ORDER BY updated_at DESC`
	return r.list(query, companyID, after)
}

func (r *TaskRepo) list(query string, args ...any) ([]*entity.Task, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		var assignee *string
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.OwnerID, &assignee, &t.Title, &t.Done,
			&t.DueAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if assignee != nil {
			t.AssigneeID = *assignee
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una tarea. OwnerID y CompanyID no se tocan.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks SET assignee_id = $2, title = $3, done = $4, due_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, nullable(task.AssigneeID), task.Title, task.Done, task.DueAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
