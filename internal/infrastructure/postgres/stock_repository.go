package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)
var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockBalanceRepo implementación de StockBalanceRepository sobre PostgreSQL
// (usable con pool o tx).
type StockBalanceRepo struct {
	q Querier
}

// NewStockBalanceRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockBalanceRepository(q Querier) *StockBalanceRepo {
	return &StockBalanceRepo{q: q}
}

// HasBalance indica si el almacén conserva algún saldo > 0. Es la consulta
// que arbitra la desactivación suave; dentro de una tx comparte frontera
// transaccional con el cambio de estado.
func (r *StockBalanceRepo) HasBalance(storeID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stock_balances WHERE store_id = $1 AND quantity > 0)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, storeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check store balance: %w", err)
	}
	return exists, nil
}

// Get obtiene el saldo actual de un artículo en un almacén.
func (r *StockBalanceRepo) Get(itemID, storeID string) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, store_id, quantity, updated_at
		FROM stock_balances WHERE item_id = $1 AND store_id = $2`
	return r.scanOne(query, itemID, storeID)
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE).
func (r *StockBalanceRepo) GetForUpdate(itemID, storeID string) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, store_id, quantity, updated_at
		FROM stock_balances WHERE item_id = $1 AND store_id = $2
		FOR UPDATE`
	return r.scanOne(query, itemID, storeID)
}

// Upsert inserta o actualiza el saldo (por artículo y almacén).
func (r *StockBalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (item_id, store_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, store_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, balance.ItemID, balance.StoreID, balance.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock balance: %w", err)
	}
	return nil
}

// ListByStore devuelve los saldos de un almacén (para reportes).
func (r *StockBalanceRepo) ListByStore(storeID string) ([]*entity.StockBalance, error) {
	query := `
		SELECT item_id, store_id, quantity, updated_at
		FROM stock_balances WHERE store_id = $1 ORDER BY item_id`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list stock balances: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.StockBalance, 0)
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ItemID, &b.StoreID, &b.Quantity, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *StockBalanceRepo) scanOne(query string, args ...any) (*entity.StockBalance, error) {
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&b.ItemID, &b.StoreID, &b.Quantity, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Sin fila aún: saldo cero implícito
			return &entity.StockBalance{ItemID: args[0].(string), StoreID: args[1].(string), Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return &b, nil
}

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste un artículo.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, sku, name, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.SKU, item.Name, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert stock item: sku duplicado")
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT id, sku, name, created_at FROM stock_items WHERE id = $1`
	var it entity.StockItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(&it.ID, &it.SKU, &it.Name, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &it, nil
}
