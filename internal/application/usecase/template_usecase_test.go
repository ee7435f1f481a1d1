package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/policy"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
)

func newTemplateFixture(t *testing.T) (*usecase.TemplateUseCase, *fakeTemplateRepo) {
	t.Helper()
	tpls := newFakeTemplateRepo()
	tx := &fakeTxRunner{clients: newFakeClientRepo(), jobs: newFakeJobRepo(), tpls: tpls}
	return usecase.NewTemplateUseCase(tpls, tx), tpls
}

func dosLineas() []dto.TemplateItemRequest {
	return []dto.TemplateItemRequest{
		{Description: "Césped en rollo m²", Quantity: decimal.NewFromInt(50), UnitPrice: decimal.NewFromFloat(8.5)},
		{Description: "Mano de obra (hora)", Quantity: decimal.NewFromInt(6), UnitPrice: decimal.NewFromInt(25)},
	}
}

func TestTemplateCreate_ConLineasOrdenadas(t *testing.T) {
	uc, _ := newTemplateFixture(t)
	s := operarioSession("op-1")

	out, err := uc.Create(context.Background(), s, dto.CreateTemplateRequest{
		Name:  "Jardín estándar",
		Items: dosLineas(),
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 0, out.Items[0].Position)
	assert.Equal(t, 1, out.Items[1].Position)
	assert.Equal(t, "op-1", out.OwnerID)
}

// El reemplazo de líneas es atómico: si falla la inserción de la segunda línea
// nueva, la plantilla conserva sus líneas originales.
func TestTemplateUpdate_FalloMantieneLineasOriginales(t *testing.T) {
	uc, tpls := newTemplateFixture(t)
	s := operarioSession("op-1")

	created, err := uc.Create(context.Background(), s, dto.CreateTemplateRequest{
		Name:  "Jardín estándar",
		Items: dosLineas(),
	})
	require.NoError(t, err)

	// Falla en la segunda línea nueva (las dos del create ya contaron 2).
	tpls.failCreateItemAt = 4

	_, err = uc.Update(context.Background(), s, created.ID, dto.UpdateTemplateRequest{
		Name: "Jardín premium",
		Items: []dto.TemplateItemRequest{
			{Description: "Césped premium m²", Quantity: decimal.NewFromInt(50), UnitPrice: decimal.NewFromInt(12)},
			{Description: "Riego automático", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(400)},
		},
	})
	require.Error(t, err)

	// Tras el rollback las líneas originales siguen intactas.
	tpls.failCreateItemAt = 0
	after, err := uc.Get(s, created.ID)
	require.NoError(t, err)
	require.Len(t, after.Items, 2)
	assert.Equal(t, "Césped en rollo m²", after.Items[0].Description)
	assert.Equal(t, "Jardín estándar", after.Name, "el header tampoco debe quedar a medias")
}

func TestTemplateUpdate_ReemplazaTodasLasLineas(t *testing.T) {
	uc, _ := newTemplateFixture(t)
	s := operarioSession("op-1")

	created, err := uc.Create(context.Background(), s, dto.CreateTemplateRequest{
		Name:  "Jardín estándar",
		Items: dosLineas(),
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), s, created.ID, dto.UpdateTemplateRequest{
		Name: "Solo mano de obra",
		Items: []dto.TemplateItemRequest{
			{Description: "Mano de obra (hora)", Quantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "el conjunto de líneas se reemplaza completo")
	assert.Equal(t, "Mano de obra (hora)", out.Items[0].Description)
}

// Las plantillas son estrictamente del dueño: ni el admin accede a ajenas.
func TestTemplateGet_AdminNoVeAjenas(t *testing.T) {
	uc, _ := newTemplateFixture(t)

	created, err := uc.Create(context.Background(), operarioSession("op-1"), dto.CreateTemplateRequest{
		Name:  "Privada",
		Items: dosLineas(),
	})
	require.NoError(t, err)

	_, err = uc.Get(adminSession("admin-1"), created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"las plantillas son privadas del dueño incluso frente al admin")
}

func TestTemplateDelete_SoloElDueno(t *testing.T) {
	uc, tpls := newTemplateFixture(t)

	created, err := uc.Create(context.Background(), operarioSession("op-1"), dto.CreateTemplateRequest{
		Name:  "Privada",
		Items: dosLineas(),
	})
	require.NoError(t, err)

	gerente := policy.Session{UserID: "ger-1", CompanyID: companyA, Role: entity.RoleGerente}
	assert.ErrorIs(t, uc.Delete(gerente, created.ID), domain.ErrForbidden)

	require.NoError(t, uc.Delete(operarioSession("op-1"), created.ID))
	assert.Empty(t, tpls.templates)
}

func TestTemplateCreate_LineaInvalida(t *testing.T) {
	uc, _ := newTemplateFixture(t)

	_, err := uc.Create(context.Background(), operarioSession("op-1"), dto.CreateTemplateRequest{
		Name: "Inválida",
		Items: []dto.TemplateItemRequest{
			{Description: "Cantidad cero", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
