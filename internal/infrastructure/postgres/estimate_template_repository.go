package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

var _ repository.EstimateTemplateRepository = (*EstimateTemplateRepo)(nil)

// EstimateTemplateRepo implementación de EstimateTemplateRepository (usable
// con pool o tx). El reemplazo de líneas se orquesta desde el use case dentro
// de una transacción del TxRunner.
type EstimateTemplateRepo struct {
	q Querier
}

// NewEstimateTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEstimateTemplateRepository(q Querier) *EstimateTemplateRepo {
	return &EstimateTemplateRepo{q: q}
}

// Create persiste el header de una plantilla (las líneas van por CreateItem).
func (r *EstimateTemplateRepo) Create(tpl *entity.EstimateTemplate) error {
	query := `
		INSERT INTO estimate_templates (id, company_id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tpl.ID, tpl.CompanyID, tpl.OwnerID, tpl.Name, tpl.Description, tpl.CreatedAt, tpl.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert estimate template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla con sus líneas ordenadas por posición.
func (r *EstimateTemplateRepo) GetByID(id string) (*entity.EstimateTemplate, error) {
	query := `
		SELECT id, company_id, owner_id, name, description, created_at, updated_at
		FROM estimate_templates WHERE id = $1`
	var t entity.EstimateTemplate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.OwnerID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estimate template: %w", err)
	}
	items, err := r.listItems(t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

func (r *EstimateTemplateRepo) listItems(templateID string) ([]entity.TemplateItem, error) {
	query := `
		SELECT id, template_id, description, quantity, unit_price, position
		FROM template_items WHERE template_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, templateID)
	if err != nil {
		return nil, fmt.Errorf("list template items: %w", err)
	}
	defer rows.Close()
	var items []entity.TemplateItem
	for rows.Next() {
		var it entity.TemplateItem
		if err := rows.Scan(&it.ID, &it.TemplateID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Position); err != nil {
			return nil, fmt.Errorf("scan template item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByOwner lista plantillas del dueño (sin líneas, para el listado).
func (r *EstimateTemplateRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.EstimateTemplate, error) {
	query := `
		SELECT id, company_id, owner_id, name, description, created_at, updated_at
		FROM estimate_templates WHERE company_id = $1 AND owner_id = $2
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list estimate templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.EstimateTemplate
	for rows.Next() {
		var t entity.EstimateTemplate
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.OwnerID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan estimate template: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateHeader actualiza nombre y descripción (no toca las líneas).
func (r *EstimateTemplateRepo) UpdateHeader(tpl *entity.EstimateTemplate) error {
	query := `
		UPDATE estimate_templates SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, tpl.ID, tpl.Name, tpl.Description, tpl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update estimate template: %w", err)
	}
	return nil
}

// DeleteItemsByTemplate borra todas las líneas de una plantilla.
func (r *EstimateTemplateRepo) DeleteItemsByTemplate(templateID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM template_items WHERE template_id = $1`, templateID)
	if err != nil {
		return fmt.Errorf("delete template items: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de plantilla.
func (r *EstimateTemplateRepo) CreateItem(item *entity.TemplateItem) error {
	query := `
		INSERT INTO template_items (id, template_id, description, quantity, unit_price, position)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TemplateID, item.Description, item.Quantity, item.UnitPrice, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert template item: %w", err)
	}
	return nil
}

// Delete elimina una plantilla (las líneas caen por FK en cascada).
func (r *EstimateTemplateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM estimate_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete estimate template: %w", err)
	}
	return nil
}
