package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Jardineria-api/internal/application/auth"
	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/Jardineria-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	companies  map[string]*entity.Company
	failCreate error
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(company *entity.Company) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) Update(company *entity.Company) error {
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

// fakeTxRunner simula la transacción de registro: si el callback falla no
// queda ni la empresa ni el usuario.
type fakeTxRunner struct {
	companies *fakeCompanyRepo
	users     *fakeUserRepo
	// failUserCreate hace fallar el alta del usuario dentro de la tx.
	failUserCreate error
}

func (r *fakeTxRunner) RunRegister(ctx context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	cs := make(map[string]*entity.Company, len(r.companies.companies))
	for k, v := range r.companies.companies {
		cp := *v
		cs[k] = &cp
	}
	us := make(map[string]*entity.User, len(r.users.users))
	for k, v := range r.users.users {
		cp := *v
		us[k] = &cp
	}
	var userRepo repository.UserRepository = r.users
	if r.failUserCreate != nil {
		userRepo = failingUserRepo{err: r.failUserCreate}
	}
	if err := fn(r.companies, userRepo); err != nil {
		r.companies.companies = cs
		r.users.users = us
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunClientCreate(ctx context.Context, fn func(repository.ClientRepository, repository.JobRepository) error) error {
	panic("RunClientCreate no se usa en los tests de auth")
}

func (r *fakeTxRunner) RunTemplate(ctx context.Context, fn func(repository.EstimateTemplateRepository) error) error {
	panic("RunTemplate no se usa en los tests de auth")
}

type failingUserRepo struct {
	repository.UserRepository
	err error
}

func (f failingUserRepo) Create(*entity.User) error { return f.err }

// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "secreto-de-prueba"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeCompanyRepo, *fakeTxRunner) {
	t.Helper()
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	tx := &fakeTxRunner{companies: companies, users: users}
	uc := auth.NewAuthUseCase(users, tx, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "jardin-pro-test",
	})
	return uc, users, companies, tx
}

func registerInput() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:       "dueno@jardinperez.co",
		Password:    "secreta123",
		Name:        "Pedro Pérez",
		CompanyName: "Jardines Pérez",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// El registro crea la empresa y deja al registrante como su admin.
func TestRegister_CreaEmpresaYAdmin(t *testing.T) {
	uc, users, companies, _ := newAuthFixture(t)

	out, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, "active", out.Status)
	require.Len(t, companies.companies, 1)
	require.Len(t, users.users, 1)

	company := companies.companies[out.CompanyID]
	require.NotNil(t, company, "el usuario debe pertenecer a la empresa recién creada")
	assert.Equal(t, "Jardines Pérez", company.Name)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := newAuthFixture(t)

	_, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Si falla el alta del usuario, la empresa tampoco queda persistida.
func TestRegister_RollbackSiFallaElUsuario(t *testing.T) {
	uc, users, companies, tx := newAuthFixture(t)
	tx.failUserCreate = errors.New("fallo simulado")

	_, err := uc.Register(context.Background(), registerInput())
	require.Error(t, err)

	assert.Empty(t, companies.companies, "la empresa no debe quedar sin su admin")
	assert.Empty(t, users.users)
}

// El password nunca se guarda en claro.
func TestRegister_PasswordHasheado(t *testing.T) {
	uc, users, _, _ := newAuthFixture(t)

	out, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	stored := users.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Login correcto emite un token con los claims de la sesión.
func TestLogin_EmiteTokenValido(t *testing.T) {
	uc, _, _, _ := newAuthFixture(t)

	registered, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "dueno@jardinperez.co", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, companyID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, registered.CompanyID, companyID)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Email desconocido, password incorrecto y cuenta inactiva devuelven el MISMO
// error: la respuesta no revela si la cuenta existe.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	uc, users, _, _ := newAuthFixture(t)

	registered, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, errDesconocido := uc.Login(dto.LoginRequest{Email: "nadie@x.co", Password: "loquesea"})
	_, errPassword := uc.Login(dto.LoginRequest{Email: "dueno@jardinperez.co", Password: "incorrecta"})

	stored := users.users[registered.ID]
	stored.Status = "suspended"
	_, errInactiva := uc.Login(dto.LoginRequest{Email: "dueno@jardinperez.co", Password: "secreta123"})

	assert.ErrorIs(t, errDesconocido, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)
	assert.ErrorIs(t, errInactiva, domain.ErrUnauthorized)
	assert.Equal(t, errDesconocido, errPassword, "mismo error para no filtrar existencia de cuentas")
	assert.Equal(t, errPassword, errInactiva)
}
