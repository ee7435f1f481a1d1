package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
	"github.com/jhoicas/Jardineria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash bcrypt de una contraseña aleatoria. Se compara contra él cuando el
// email no existe, para que el tiempo de respuesta no delate si la cuenta existe.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	txRunner usecase.TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner usecase.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Register crea una empresa nueva y su primer usuario (admin) en una sola
// transacción. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
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
	name := in.Name
	if name == "" {
		name = in.Email
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunRegister(ctx, func(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite el JWT de sesión (30 días).
// Cualquier fallo (email desconocido, password incorrecto, cuenta inactiva)
// devuelve el mismo ErrUnauthorized: no se filtra si la cuenta existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
