package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegister inicia una transacción con repos de empresa y usuario
// (registro: empresa nueva + primer admin) y hace Commit o Rollback.
func (r *TxRunner) RunRegister(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompanyRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunClientCreate inicia una transacción con repos de cliente y trabajo
// (alta de cliente + trabajo "Contacto inicial") y hace Commit o Rollback.
func (r *TxRunner) RunClientCreate(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	jobRepo repository.JobRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClientRepository(tx), NewJobRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTemplate inicia una transacción con el repo de plantillas (reemplazo
// atómico de líneas) y hace Commit o Rollback.
func (r *TxRunner) RunTemplate(ctx context.Context, fn func(
	tplRepo repository.EstimateTemplateRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEstimateTemplateRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
