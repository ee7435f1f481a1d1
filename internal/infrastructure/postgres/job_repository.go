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

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación de JobRepository (usable con pool o tx).
// AssigneeID vacío se guarda como NULL.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `id, company_id, client_id, owner_id, assignee_id, title, description, status, scheduled_at, price, created_at, updated_at`

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	var j entity.Job
	var assignee *string
	err := row.Scan(&j.ID, &j.CompanyID, &j.ClientID, &j.OwnerID, &assignee, &j.Title,
		&j.Description, &j.Status, &j.ScheduledAt, &j.Price, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if assignee != nil {
		j.AssigneeID = *assignee
	}
	return &j, nil
}

// Create persiste un nuevo trabajo.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, company_id, client_id, owner_id, assignee_id, title, description, status, scheduled_at, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.CompanyID, job.ClientID, job.OwnerID, nullable(job.AssigneeID),
		job.Title, job.Description, job.Status, job.ScheduledAt, job.Price,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajo por ID.
func (r *JobRepo) GetByID(id string) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	j, err := scanJob(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// ListByCompany lista trabajos de la empresa ordenados por agenda.
func (r *JobRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE company_id = $1
		ORDER BY scheduled_at DESC NULLS LAST, created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListForUser trabajos donde el usuario es dueño o asignado.
func (r *JobRepo) ListForUser(companyID, userID string, limit, offset int) ([]*entity.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE company_id = $1 AND (owner_id = $2 OR assignee_id = $2)
		ORDER BY scheduled_at DESC NULLS LAST, created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, companyID, userID, limit, offset)
}

// ListCompletedAfter trabajos completados estrictamente después de `after`.
func (r *JobRepo) ListCompletedAfter(companyID string, after time.Time) ([]*entity.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE company_id = $1 AND status = $2 AND updated_at > $3
		ORDER BY updated_at DESC`
	return r.list(query, companyID, entity.JobCompletado, after)
}

func (r *JobRepo) list(query string, args ...any) ([]*entity.Job, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		var assignee *string
		if err := rows.Scan(&j.ID, &j.CompanyID, &j.ClientID, &j.OwnerID, &assignee, &j.Title,
			&j.Description, &j.Status, &j.ScheduledAt, &j.Price, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		if assignee != nil {
			j.AssigneeID = *assignee
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// Update actualiza un trabajo. OwnerID, ClientID y CompanyID no se tocan.
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET assignee_id = $2, title = $3, description = $4, status = $5, scheduled_at = $6, price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, nullable(job.AssigneeID), job.Title, job.Description, job.Status,
		job.ScheduledAt, job.Price, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete elimina un trabajo por ID (las notas caen por FK en cascada).
func (r *JobRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// CreateNote persiste una nota de trabajo.
func (r *JobRepo) CreateNote(note *entity.JobNote) error {
	query := `
		INSERT INTO job_notes (id, job_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.JobID, note.AuthorID, note.Body, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job note: %w", err)
	}
	return nil
}

// GetNote obtiene una nota por ID.
func (r *JobRepo) GetNote(id string) (*entity.JobNote, error) {
	query := `SELECT id, job_id, author_id, body, created_at, updated_at FROM job_notes WHERE id = $1`
	var n entity.JobNote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.JobID, &n.AuthorID, &n.Body, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job note: %w", err)
	}
	return &n, nil
}

// UpdateNote actualiza el cuerpo de una nota.
func (r *JobRepo) UpdateNote(note *entity.JobNote) error {
	query := `UPDATE job_notes SET body = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, note.ID, note.Body, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update job note: %w", err)
	}
	return nil
}

// ListNotesByJob lista las notas de un trabajo, más recientes primero.
func (r *JobRepo) ListNotesByJob(jobID string) ([]*entity.JobNote, error) {
	query := `
		SELECT id, job_id, author_id, body, created_at, updated_at
		FROM job_notes WHERE job_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobNote
	for rows.Next() {
		var n entity.JobNote
		if err := rows.Scan(&n.ID, &n.JobID, &n.AuthorID, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
