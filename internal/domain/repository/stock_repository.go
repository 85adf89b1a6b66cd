package repository

import "github.com/erp-suite/erp-backend/internal/domain/entity"

// StockBalanceRepository puerto para consultar/actualizar saldos por
// almacén+artículo. HasBalance es la "consulta de saldo" que arbitra la
// desactivación suave; debe poder ejecutarse dentro de la misma transacción
// que el cambio de estado del almacén.
type StockBalanceRepository interface {
	// HasBalance indica si el almacén tiene algún saldo > 0.
	HasBalance(storeID string) (bool, error)
	Get(itemID, storeID string) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila de saldo (SELECT FOR UPDATE).
	GetForUpdate(itemID, storeID string) (*entity.StockBalance, error)
	Upsert(balance *entity.StockBalance) error
	ListByStore(storeID string) ([]*entity.StockBalance, error)
}

// StockItemRepository puerto de artículos de inventario.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
}

// StockMovementRepository puerto de persistencia de movimientos (solo inserción
// y consulta; los movimientos son inmutables).
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByStore(storeID string, limit, offset int) ([]*entity.StockMovement, error)
}
