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

// ClientUseCase casos de uso de clientes. Toda operación pasa por el evaluador
// de políticas con el snapshot del recurso cargado.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	txRunner   TxRunner
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, txRunner TxRunner) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, txRunner: txRunner}
}

func clientSnapshot(c *entity.Client) policy.Resource {
	return policy.Resource{Kind: policy.KindClient, CompanyID: c.CompanyID, OwnerID: c.OwnerID}
}

// Create crea el cliente y su trabajo "Contacto inicial" en una sola
// transacción: si falla el trabajo, el cliente no queda persistido.
func (uc *ClientUseCase) Create(ctx context.Context, s policy.Session, in dto.CreateClientRequest) (*dto.CreateClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := policy.Authorize(s, policy.ActionCreate, policy.Resource{Kind: policy.KindClient, CompanyID: s.CompanyID}); err != nil {
		return nil, err
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		CompanyID: s.CompanyID,
		OwnerID:   s.UserID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job := &entity.Job{
		ID:          uuid.New().String(),
		CompanyID:   s.CompanyID,
		ClientID:    client.ID,
		OwnerID:     s.UserID,
		Title:       "Contacto inicial",
		Description: "Primer contacto con " + client.Name,
		Status:      entity.JobPendiente,
		Price:       decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.RunClientCreate(ctx, func(clientRepo repository.ClientRepository, jobRepo repository.JobRepository) error {
		if err := clientRepo.Create(client); err != nil {
			return err
		}
		return jobRepo.Create(job)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateClientResponse{
		Client:     *toClientResponse(client),
		InitialJob: *toJobResponse(job),
	}, nil
}

// Get obtiene un cliente por ID. Recursos de otra empresa se reportan como
// no encontrados para no revelar su existencia.
func (uc *ClientUseCase) Get(s policy.Session, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, clientSnapshot(client)); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes: admin/gerente ven todos los de la empresa, operario
// solo los propios.
func (uc *ClientUseCase) List(s policy.Session, limit, offset int) ([]*dto.ClientResponse, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	var (
		clients []*entity.Client
		err     error
	)
	if s.Role == entity.RoleOperario {
		clients, err = uc.clientRepo.ListByOwner(s.CompanyID, s.UserID, limit, offset)
	} else {
		clients, err = uc.clientRepo.ListByCompany(s.CompanyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de un cliente. OwnerID es inmutable.
func (uc *ClientUseCase) Update(s policy.Session, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionUpdate, clientSnapshot(client)); err != nil {
		return nil, err
	}
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente. El chequeo de propiedad aplica igual que en el
// resto de operaciones: un operario solo borra clientes propios.
func (uc *ClientUseCase) Delete(s policy.Session, id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionDelete, clientSnapshot(client)); err != nil {
		return err
	}
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
