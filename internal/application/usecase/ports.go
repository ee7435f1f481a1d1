package usecase

import (
	"context"

	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción con repositorios atados
// a la tx. Si el callback devuelve error se hace rollback completo: ninguna
// escritura parcial queda persistida.
type TxRunner interface {
	// RunRegister registro: alta de empresa + usuario admin en una transacción.
	RunRegister(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error

	// RunClientCreate alta de cliente + trabajo "Contacto inicial" en una transacción.
	RunClientCreate(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		jobRepo repository.JobRepository,
	) error) error

	// RunTemplate escrituras de plantilla (header + reemplazo de líneas) en una transacción.
	RunTemplate(ctx context.Context, fn func(
		tplRepo repository.EstimateTemplateRepository,
	) error) error
}
