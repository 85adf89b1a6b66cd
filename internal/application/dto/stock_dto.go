package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest entrada para registrar un movimiento de inventario.
type MovementRequest struct {
	ItemID   string          `json:"itemId" validate:"required"`
	StoreID  string          `json:"storeId" validate:"required"`
	Type     string          `json:"type" validate:"required,oneof=IN OUT"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}

// BalanceResponse saldo de un artículo en un almacén.
type BalanceResponse struct {
	ItemID    string          `json:"itemId"`
	StoreID   string          `json:"storeId"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
