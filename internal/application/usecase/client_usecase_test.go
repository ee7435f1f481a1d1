package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/policy"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
)

const (
	companyA = "company-a"
	companyB = "company-b"
)

func adminSession(userID string) policy.Session {
	return policy.Session{UserID: userID, CompanyID: companyA, Role: entity.RoleAdmin}
}

func operarioSession(userID string) policy.Session {
	return policy.Session{UserID: userID, CompanyID: companyA, Role: entity.RoleOperario}
}

func newClientFixture(t *testing.T) (*usecase.ClientUseCase, *fakeClientRepo, *fakeJobRepo) {
	t.Helper()
	clients := newFakeClientRepo()
	jobs := newFakeJobRepo()
	tx := &fakeTxRunner{clients: clients, jobs: jobs, tpls: newFakeTemplateRepo()}
	return usecase.NewClientUseCase(clients, tx), clients, jobs
}

// Crear un cliente genera además su trabajo "Contacto inicial" pendiente.
func TestClientCreate_GeneraTrabajoInicial(t *testing.T) {
	uc, clients, jobs := newClientFixture(t)
	s := operarioSession("op-1")

	out, err := uc.Create(context.Background(), s, dto.CreateClientRequest{Name: "Vivero El Roble"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Vivero El Roble", out.Client.Name)
	assert.Equal(t, "op-1", out.Client.OwnerID, "el creador queda como dueño")
	assert.Equal(t, companyA, out.Client.CompanyID)

	assert.Equal(t, "Contacto inicial", out.InitialJob.Title)
	assert.Equal(t, out.Client.ID, out.InitialJob.ClientID)
	assert.Equal(t, entity.JobPendiente, out.InitialJob.Status)

	assert.Len(t, clients.clients, 1)
	assert.Len(t, jobs.jobs, 1)
}

// Si el INSERT del trabajo falla, el cliente tampoco queda persistido.
func TestClientCreate_RollbackSiFallaElTrabajo(t *testing.T) {
	uc, clients, jobs := newClientFixture(t)
	jobs.failCreate = errors.New("fallo simulado")

	_, err := uc.Create(context.Background(), adminSession("admin-1"), dto.CreateClientRequest{Name: "Jardines Díaz"})
	require.Error(t, err)

	assert.Empty(t, clients.clients, "el cliente no debe quedar persistido si falla el trabajo")
	assert.Empty(t, jobs.jobs)
}

func TestClientCreate_NombreVacio(t *testing.T) {
	uc, _, _ := newClientFixture(t)
	_, err := uc.Create(context.Background(), adminSession("admin-1"), dto.CreateClientRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un recurso de otra empresa se reporta como 404, nunca como 403: no se
// revela su existencia.
func TestClientGet_OtraEmpresaEsNotFound(t *testing.T) {
	uc, clients, _ := newClientFixture(t)
	require.NoError(t, clients.Create(&entity.Client{ID: "c-1", CompanyID: companyB, OwnerID: "ajeno", Name: "X"}))

	_, err := uc.Get(adminSession("admin-1"), "c-1")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"incluso el admin recibe 404 para recursos de otra empresa")
}

// El operario solo lista sus propios clientes; admin ve toda la empresa.
func TestClientList_OperarioSoloPropios(t *testing.T) {
	uc, clients, _ := newClientFixture(t)
	require.NoError(t, clients.Create(&entity.Client{ID: "c-1", CompanyID: companyA, OwnerID: "op-1", Name: "A"}))
	require.NoError(t, clients.Create(&entity.Client{ID: "c-2", CompanyID: companyA, OwnerID: "op-2", Name: "B"}))

	propios, err := uc.List(operarioSession("op-1"), 20, 0)
	require.NoError(t, err)
	require.Len(t, propios, 1)
	assert.Equal(t, "c-1", propios[0].ID)

	todos, err := uc.List(adminSession("admin-1"), 20, 0)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

// Un operario no puede modificar clientes de otro usuario.
func TestClientUpdate_OperarioAjenoForbidden(t *testing.T) {
	uc, clients, _ := newClientFixture(t)
	require.NoError(t, clients.Create(&entity.Client{ID: "c-1", CompanyID: companyA, OwnerID: "op-2", Name: "Ajeno"}))

	_, err := uc.Update(operarioSession("op-1"), "c-1", dto.UpdateClientRequest{Name: "Hackeado"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El gerente sí puede modificar clientes ajenos (misma empresa).
func TestClientUpdate_GerentePuedeAjenos(t *testing.T) {
	uc, clients, _ := newClientFixture(t)
	require.NoError(t, clients.Create(&entity.Client{ID: "c-1", CompanyID: companyA, OwnerID: "op-2", Name: "Viejo"}))

	s := policy.Session{UserID: "ger-1", CompanyID: companyA, Role: entity.RoleGerente}
	out, err := uc.Update(s, "c-1", dto.UpdateClientRequest{Name: "Nuevo"})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", out.Name)
	assert.Equal(t, "op-2", out.OwnerID, "el dueño no cambia en updates")
}

// Borrado: el operario solo borra clientes propios.
func TestClientDelete_OperarioSoloPropios(t *testing.T) {
	uc, clients, _ := newClientFixture(t)
	require.NoError(t, clients.Create(&entity.Client{ID: "mio", CompanyID: companyA, OwnerID: "op-1", Name: "Mío"}))
	require.NoError(t, clients.Create(&entity.Client{ID: "ajeno", CompanyID: companyA, OwnerID: "op-2", Name: "Ajeno"}))

	assert.ErrorIs(t, uc.Delete(operarioSession("op-1"), "ajeno"), domain.ErrForbidden)
	assert.NoError(t, uc.Delete(operarioSession("op-1"), "mio"))
	assert.Len(t, clients.clients, 1)
}

// Sin sesión autenticada, todo es ErrUnauthorized.
func TestClientCreate_SinSesion(t *testing.T) {
	uc, _, _ := newClientFixture(t)
	_, err := uc.Create(context.Background(), policy.Session{}, dto.CreateClientRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
