package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/policy"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// SavedItemUseCase casos de uso de elementos guardados. Estrictamente del
// dueño: el evaluador de políticas niega el acceso a items ajenos para
// cualquier rol.
type SavedItemUseCase struct {
	itemRepo repository.SavedItemRepository
}

// NewSavedItemUseCase construye el caso de uso.
func NewSavedItemUseCase(itemRepo repository.SavedItemRepository) *SavedItemUseCase {
	return &SavedItemUseCase{itemRepo: itemRepo}
}

func savedItemSnapshot(i *entity.SavedItem) policy.Resource {
	return policy.Resource{Kind: policy.KindSavedItem, CompanyID: i.CompanyID, OwnerID: i.OwnerID}
}

func validSavedItemKind(k string) bool {
	switch k {
	case "plant", "material", "note", "link":
		return true
	}
	return false
}

// Create guarda un elemento privado del usuario autenticado.
func (uc *SavedItemUseCase) Create(s policy.Session, in dto.CreateSavedItemRequest) (*dto.SavedItemResponse, error) {
	if !validSavedItemKind(in.Kind) || strings.TrimSpace(in.Payload) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := policy.Authorize(s, policy.ActionCreate, policy.Resource{Kind: policy.KindSavedItem, CompanyID: s.CompanyID}); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.SavedItem{
		ID:        uuid.New().String(),
		CompanyID: s.CompanyID,
		OwnerID:   s.UserID,
		Kind:      in.Kind,
		Payload:   in.Payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toSavedItemResponse(item), nil
}

// Get obtiene un elemento guardado propio.
func (uc *SavedItemUseCase) Get(s policy.Session, id string) (*dto.SavedItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, savedItemSnapshot(item)); err != nil {
		return nil, err
	}
	return toSavedItemResponse(item), nil
}

// List lista los elementos del usuario autenticado.
func (uc *SavedItemUseCase) List(s policy.Session, limit, offset int) ([]*dto.SavedItemResponse, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	items, err := uc.itemRepo.ListByOwner(s.CompanyID, s.UserID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SavedItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toSavedItemResponse(i))
	}
	return out, nil
}

// Update actualiza un elemento guardado propio.
func (uc *SavedItemUseCase) Update(s policy.Session, id string, in dto.UpdateSavedItemRequest) (*dto.SavedItemResponse, error) {
	if !validSavedItemKind(in.Kind) || strings.TrimSpace(in.Payload) == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionUpdate, savedItemSnapshot(item)); err != nil {
		return nil, err
	}
	item.Kind = in.Kind
	item.Payload = in.Payload
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toSavedItemResponse(item), nil
}

// Delete elimina un elemento guardado propio.
func (uc *SavedItemUseCase) Delete(s policy.Session, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionDelete, savedItemSnapshot(item)); err != nil {
		return err
	}
	return uc.itemRepo.Delete(id)
}

func toSavedItemResponse(i *entity.SavedItem) *dto.SavedItemResponse {
	return &dto.SavedItemResponse{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		OwnerID:   i.OwnerID,
		Kind:      i.Kind,
		Payload:   i.Payload,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
