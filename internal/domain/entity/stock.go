package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa un artículo de inventario rastreable por almacén.
type StockItem struct {
	ID        string
	SKU       string
	Name      string
	CreatedAt time.Time
}

// StockBalance representa el saldo actual de un artículo en un almacén
// (tabla materializada item+almacén). La suma de Quantity por almacén es el
// "saldo" que bloquea la desactivación suave.
type StockBalance struct {
	ItemID    string
	StoreID   string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
