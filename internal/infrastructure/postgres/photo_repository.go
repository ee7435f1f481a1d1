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

var _ repository.PhotoRepository = (*PhotoRepo)(nil)

// PhotoRepo implementación de PhotoRepository (usable con pool o tx).
// JobID vacío se guarda como NULL.
type PhotoRepo struct {
	q Querier
}

// NewPhotoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPhotoRepository(q Querier) *PhotoRepo {
	return &PhotoRepo{q: q}
}

const photoColumns = `id, company_id, owner_id, job_id, file_path, caption, content_type, size_bytes, created_at`

// Create persiste una nueva foto.
func (r *PhotoRepo) Create(photo *entity.Photo) error {
	query := `
		INSERT INTO photos (id, company_id, owner_id, job_id, file_path, caption, content_type, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		photo.ID, photo.CompanyID, photo.OwnerID, nullable(photo.JobID), photo.FilePath,
		photo.Caption, photo.ContentType, photo.SizeBytes, photo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

// GetByID obtiene una foto por ID.
func (r *PhotoRepo) GetByID(id string) (*entity.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`
	var p entity.Photo
	var jobID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.OwnerID, &jobID, &p.FilePath, &p.Caption,
		&p.ContentType, &p.SizeBytes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get photo: %w", err)
	}
	if jobID != nil {
		p.JobID = *jobID
	}
	return &p, nil
}

// ListByCompany lista fotos de la empresa, más recientes primero.
func (r *PhotoRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Photo, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM photos WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByOwner lista fotos subidas por el usuario.
func (r *PhotoRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.Photo, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM photos WHERE company_id = $1 AND owner_id = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, companyID, ownerID, limit, offset)
}

// ListUploadedAfter fotos subidas estrictamente después de `after`.
func (r *PhotoRepo) ListUploadedAfter(companyID string, after time.Time) ([]*entity.Photo, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM photos WHERE company_id = $1 AND created_at > $2 ORDER BY created_at DESC`
	return r.list(query, companyID, after)
}

func (r *PhotoRepo) list(query string, args ...any) ([]*entity.Photo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Photo
	for rows.Next() {
		var p entity.Photo
		var jobID *string
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.OwnerID, &jobID, &p.FilePath, &p.Caption,
			&p.ContentType, &p.SizeBytes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		if jobID != nil {
			p.JobID = *jobID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una foto por ID (el archivo lo borra el use case).
func (r *PhotoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
