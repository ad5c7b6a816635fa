package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/domain/repository"
)

var _ circulacion.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El préstamo y el cambio de estado del ejemplar (y la
// multa en la devolución) se confirman o deshacen juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	prestamoRepo repository.PrestamoRepository,
	ejemplarRepo repository.EjemplarRepository,
	multaRepo repository.MultaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	prestamoRepo := NewPrestamoRepository(tx)
	ejemplarRepo := NewEjemplarRepository(tx)
	multaRepo := NewMultaRepository(tx)

	if err := fn(prestamoRepo, ejemplarRepo, multaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
