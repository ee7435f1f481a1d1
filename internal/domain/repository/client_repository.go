package repository

import "github.com/jhoicas/Jardineria-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error)
	// ListByOwner clientes creados por el usuario (vista de operario).
	ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
