package repository

import "github.com/jhoicas/Jardineria-api/internal/domain/entity"

// SavedItemRepository define el puerto de persistencia para SavedItem.
// Los listados filtran siempre por dueño: un SavedItem nunca es visible
// para otro usuario, sin importar el rol.
type SavedItemRepository interface {
	Create(item *entity.SavedItem) error
	GetByID(id string) (*entity.SavedItem, error)
	ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.SavedItem, error)
	Update(item *entity.SavedItem) error
	Delete(id string) error
}
