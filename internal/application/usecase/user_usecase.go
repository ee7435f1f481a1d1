package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/policy"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// UserUseCase gestión de empleados dentro de la empresa. El alta está
// reservada a admin (ActionManageUsers); el listado a admin/gerente.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

func validRole(r string) bool {
	switch r {
	case entity.RoleAdmin, entity.RoleGerente, entity.RoleOperario:
		return true
	}
	return false
}

// CreateUser alta de empleado en la empresa del admin autenticado.
func (uc *UserUseCase) CreateUser(s policy.Session, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := policy.Authorize(s, policy.ActionManageUsers, policy.Resource{Kind: policy.KindUser, CompanyID: s.CompanyID}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Email) == "" || len(in.Password) < 8 || strings.TrimSpace(in.Name) == "" || !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	// El email identifica la cuenta a nivel global: el login resuelve solo por
	// email, así que un duplicado en otra empresa dejaría a uno de los dos sin
	// poder entrar.
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    s.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lista los empleados de la empresa (admin y gerente).
func (uc *UserUseCase) ListUsers(s policy.Session, limit, offset int) ([]*dto.UserResponse, error) {
	// Lectura del directorio de empleados: la política permite leer recursos
	// de la empresa a admin y gerente; al operario, solo lo propio o asignado,
	// que aquí no aplica.
	if err := policy.Authorize(s, policy.ActionRead, policy.Resource{Kind: policy.KindUser, CompanyID: s.CompanyID}); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListByCompany(s.CompanyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
