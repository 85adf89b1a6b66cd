package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"
	MovementTypeOUT = "OUT"
)

// StockMovement registra una entrada o salida de inventario contra un almacén.
// Las salidas se guardan con cantidad negativa.
type StockMovement struct {
	ID        string
	ItemID    string
	StoreID   string
	Type      string // IN | OUT
	Quantity  decimal.Decimal
	CreatedAt time.Time
	CreatedBy string
}
