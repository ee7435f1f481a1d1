package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

var _ repository.SavedItemRepository = (*SavedItemRepo)(nil)

// SavedItemRepo implementación de SavedItemRepository (usable con pool o tx).
type SavedItemRepo struct {
	q Querier
}

// NewSavedItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSavedItemRepository(q Querier) *SavedItemRepo {
	return &SavedItemRepo{q: q}
}

const savedItemColumns = `id, company_id, owner_id, kind, payload, created_at, updated_at`

// Create persiste un nuevo elemento guardado.
func (r *SavedItemRepo) Create(item *entity.SavedItem) error {
	query := `
		INSERT INTO saved_items (id, company_id, owner_id, kind, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.OwnerID, item.Kind, item.Payload, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert saved item: %w", err)
	}
	return nil
}

// GetByID obtiene un elemento guardado por ID.
func (r *SavedItemRepo) GetByID(id string) (*entity.SavedItem, error) {
	query := `SELECT ` + savedItemColumns + ` FROM saved_items WHERE id = $1`
	var i entity.SavedItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.CompanyID, &i.OwnerID, &i.Kind, &i.Payload, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saved item: %w", err)
	}
	return &i, nil
}

// ListByOwner lista los elementos guardados del usuario.
func (r *SavedItemRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.SavedItem, error) {
	query := `
		SELECT ` + savedItemColumns + `
		FROM saved_items WHERE company_id = $1 AND owner_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list saved items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SavedItem
	for rows.Next() {
		var i entity.SavedItem
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.OwnerID, &i.Kind, &i.Payload, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan saved item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un elemento guardado.
func (r *SavedItemRepo) Update(item *entity.SavedItem) error {
	query := `UPDATE saved_items SET kind = $2, payload = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Kind, item.Payload, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update saved item: %w", err)
	}
	return nil
}

// Delete elimina un elemento guardado por ID.
func (r *SavedItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM saved_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete saved item: %w", err)
	}
	return nil
}
