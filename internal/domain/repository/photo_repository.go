package repository

import (
	"time"

	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
)

// PhotoRepository define el puerto de persistencia para Photo.
type PhotoRepository interface {
	Create(photo *entity.Photo) error
	GetByID(id string) (*entity.Photo, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Photo, error)
	// ListByOwner fotos subidas por el usuario (vista de operario).
	ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.Photo, error)
	Delete(id string) error

	// ListUploadedAfter fotos subidas estrictamente después de `after`
	// (para el feed de notificaciones).
	ListUploadedAfter(companyID string, after time.Time) ([]*entity.Photo, error)
}
