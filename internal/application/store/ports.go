package store

import (
	"context"

	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La desactivación necesita que la consulta de
// saldo y el cambio de estado compartan la misma frontera transaccional.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		balanceRepo repository.StockBalanceRepository,
	) error) error
}
