package inventory

import (
	"context"

	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// MovementTxRunner ejecuta una función dentro de una transacción de BD con
// repositorios atados a esa tx. Garantiza atomicidad entre el saldo, el
// movimiento y la re-lectura del estado del almacén.
type MovementTxRunner interface {
	RunMovement(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		balanceRepo repository.StockBalanceRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
