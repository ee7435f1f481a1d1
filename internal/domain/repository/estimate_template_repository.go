package repository

import "github.com/jhoicas/Jardineria-api/internal/domain/entity"

// EstimateTemplateRepository define el puerto de persistencia para plantillas
// de presupuesto. El reemplazo de líneas en Update se hace con los métodos
// granulares dentro de una transacción (ver TxRunner).
type EstimateTemplateRepository interface {
	Create(tpl *entity.EstimateTemplate) error
	GetByID(id string) (*entity.EstimateTemplate, error)
	ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.EstimateTemplate, error)
	UpdateHeader(tpl *entity.EstimateTemplate) error
	DeleteItemsByTemplate(templateID string) error
	CreateItem(item *entity.TemplateItem) error
	Delete(id string) error
}
