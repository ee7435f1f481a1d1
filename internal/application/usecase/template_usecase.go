package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/policy"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// TemplateUseCase casos de uso de plantillas de presupuesto. Estrictamente
// del dueño: ni admin ni gerente acceden a plantillas ajenas.
type TemplateUseCase struct {
	tplRepo  repository.EstimateTemplateRepository
	txRunner TxRunner
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(tplRepo repository.EstimateTemplateRepository, txRunner TxRunner) *TemplateUseCase {
	return &TemplateUseCase{tplRepo: tplRepo, txRunner: txRunner}
}

func templateSnapshot(t *entity.EstimateTemplate) policy.Resource {
	return policy.Resource{Kind: policy.KindEstimateTemplate, CompanyID: t.CompanyID, OwnerID: t.OwnerID}
}

func validItems(items []dto.TemplateItemRequest) bool {
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			return false
		}
		if !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.LessThan(decimal.Zero) {
			return false
		}
	}
	return true
}

// Create crea la plantilla con sus líneas en una sola transacción.
func (uc *TemplateUseCase) Create(ctx context.Context, s policy.Session, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if strings.TrimSpace(in.Name) == "" || !validItems(in.Items) {
		return nil, domain.ErrInvalidInput
	}
	if err := policy.Authorize(s, policy.ActionCreate, policy.Resource{Kind: policy.KindEstimateTemplate, CompanyID: s.CompanyID}); err != nil {
		return nil, err
	}
	now := time.Now()
	tpl := &entity.EstimateTemplate{
		ID:          uuid.New().String(),
		CompanyID:   s.CompanyID,
		OwnerID:     s.UserID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tpl.Items = buildItems(tpl.ID, in.Items)
	err := uc.txRunner.RunTemplate(ctx, func(tplRepo repository.EstimateTemplateRepository) error {
		if err := tplRepo.Create(tpl); err != nil {
			return err
		}
		for i := range tpl.Items {
			if err := tplRepo.CreateItem(&tpl.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// Get obtiene una plantilla propia con sus líneas.
func (uc *TemplateUseCase) Get(s policy.Session, id string) (*dto.TemplateResponse, error) {
	tpl, err := uc.tplRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tpl == nil || tpl.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, templateSnapshot(tpl)); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// List lista las plantillas del usuario autenticado.
func (uc *TemplateUseCase) List(s policy.Session, limit, offset int) ([]*dto.TemplateResponse, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	tpls, err := uc.tplRepo.ListByOwner(s.CompanyID, s.UserID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TemplateResponse, 0, len(tpls))
	for _, t := range tpls {
		out = append(out, toTemplateResponse(t))
	}
	return out, nil
}

// Update actualiza el header y reemplaza TODAS las líneas en una sola
// transacción: si falla la inserción de una línea nueva, la plantilla
// conserva sus líneas originales.
func (uc *TemplateUseCase) Update(ctx context.Context, s policy.Session, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	if strings.TrimSpace(in.Name) == "" || !validItems(in.Items) {
		return nil, domain.ErrInvalidInput
	}
	tpl, err := uc.tplRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionUpdate, templateSnapshot(tpl)); err != nil {
		return nil, err
	}
	tpl.Name = in.Name
	tpl.Description = in.Description
	tpl.UpdatedAt = time.Now()
	tpl.Items = buildItems(tpl.ID, in.Items)
	err = uc.txRunner.RunTemplate(ctx, func(tplRepo repository.EstimateTemplateRepository) error {
		if err := tplRepo.UpdateHeader(tpl); err != nil {
			return err
		}
		if err := tplRepo.DeleteItemsByTemplate(tpl.ID); err != nil {
			return err
		}
		for i := range tpl.Items {
			if err := tplRepo.CreateItem(&tpl.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// Delete elimina una plantilla propia (las líneas caen por FK en cascada).
func (uc *TemplateUseCase) Delete(s policy.Session, id string) error {
	tpl, err := uc.tplRepo.GetByID(id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionDelete, templateSnapshot(tpl)); err != nil {
		return err
	}
	return uc.tplRepo.Delete(id)
}

func buildItems(templateID string, in []dto.TemplateItemRequest) []entity.TemplateItem {
	items := make([]entity.TemplateItem, 0, len(in))
	for i, it := range in {
		items = append(items, entity.TemplateItem{
			ID:          uuid.New().String(),
			TemplateID:  templateID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Position:    i,
		})
	}
	return items
}

func toTemplateResponse(t *entity.EstimateTemplate) *dto.TemplateResponse {
	items := make([]dto.TemplateItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TemplateItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Position:    it.Position,
		})
	}
	return &dto.TemplateResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		OwnerID:     t.OwnerID,
		Name:        t.Name,
		Description: t.Description,
		Items:       items,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
