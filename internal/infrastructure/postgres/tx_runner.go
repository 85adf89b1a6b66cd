package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/erp-suite/erp-backend/internal/application/inventory"
	"github.com/erp-suite/erp-backend/internal/application/store"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// Ensure TxRunner implements store.TxRunner and inventory.MovementTxRunner.
var _ store.TxRunner = (*TxRunner)(nil)
var _ inventory.MovementTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos de almacén y saldo atados a la tx
// (desactivación: bloqueo de fila + re-verificación de saldo + cambio de estado).
func (r *TxRunner) Run(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	balanceRepo repository.StockBalanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	storeRepo := NewStoreRepository(tx)
	balanceRepo := NewStockBalanceRepository(tx)

	if err := fn(storeRepo, balanceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMovement inicia una transacción con los repos que necesita el registro de
// movimientos de inventario.
func (r *TxRunner) RunMovement(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	balanceRepo repository.StockBalanceRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	storeRepo := NewStoreRepository(tx)
	balanceRepo := NewStockBalanceRepository(tx)
	movRepo := NewStockMovementRepository(tx)

	if err := fn(storeRepo, balanceRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
