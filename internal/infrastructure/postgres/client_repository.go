package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, company_id, owner_id, name, email, phone, address, notes, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, company_id, owner_id, name, email, phone, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.CompanyID, client.OwnerID, client.Name, client.Email, client.Phone,
		client.Address, client.Notes, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByCompany lista clientes de la empresa con paginación.
func (r *ClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByOwner lista clientes creados por el usuario.
func (r *ClientRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE company_id = $1 AND owner_id = $2 ORDER BY name LIMIT $3 OFFSET $4`
	return r.list(query, companyID, ownerID, limit, offset)
}

func (r *ClientRepo) list(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.OwnerID, &c.Name, &c.Email, &c.Phone,
			&c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente. OwnerID y CompanyID no se tocan.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, email = $3, phone = $4, address = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.Address, client.Notes, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
