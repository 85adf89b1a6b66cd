package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/domain"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario (IN, OUT) de
// forma transaccional con bloqueo de fila (SELECT FOR UPDATE).
//
// La re-lectura del estado del almacén dentro de la transacción es la
// mitigación de la ventana entre "saldo confirmado cero" y "estado
// persistido" en la desactivación: no se admite saldo nuevo contra un
// almacén INACTIVE.
type RegisterMovementUseCase struct {
	txRunner  MovementTxRunner
	itemRepo  repository.StockItemRepository
	storeRepo repository.StoreRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner MovementTxRunner,
	itemRepo repository.StockItemRepository,
	storeRepo repository.StoreRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:  txRunner,
		itemRepo:  itemRepo,
		storeRepo: storeRepo,
	}
}

// RegisterMovement valida la entrada, inicia una transacción, bloquea las
// filas de almacén y saldo y aplica la lógica según tipo (IN/OUT) con
// Commit o Rollback.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.MovementRequest) error {
	switch in.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if in.ItemID == "" || in.StoreID == "" {
			return domain.ErrInvalidInput
		}
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	st, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return err
	}
	if st == nil {
		return domain.ErrNotFound
	}

	now := time.Now()

	return uc.txRunner.RunMovement(ctx, func(
		storeRepo repository.StoreRepository,
		balanceRepo repository.StockBalanceRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del almacén y re-verifica su estado dentro de la tx:
		// serializa contra una desactivación concurrente.
		locked, err := storeRepo.GetByIDForUpdate(in.StoreID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if !locked.IsActive() {
			return domain.ErrStoreInactive
		}

		balance, err := balanceRepo.GetForUpdate(in.ItemID, in.StoreID)
		if err != nil {
			return err
		}

		qty := in.Quantity
		if in.Type == entity.MovementTypeOUT {
			if balance.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			qty = in.Quantity.Neg()
		}

		balance.Quantity = balance.Quantity.Add(qty)
		balance.UpdatedAt = now
		if err := balanceRepo.Upsert(balance); err != nil {
			return err
		}

		return movRepo.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ItemID:    in.ItemID,
			StoreID:   in.StoreID,
			Type:      in.Type,
			Quantity:  qty,
			CreatedAt: now,
			CreatedBy: userID,
		})
	})
}
