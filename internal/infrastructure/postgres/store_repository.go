package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/erp-suite/erp-backend/internal/domain"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL
// (usable con pool o tx).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para almacenes. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, name, project_code, address, status, created_at, modified_at`

// Create persiste un nuevo almacén.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, project_code, address, status, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.ProjectCode, store.Address,
		store.Status, store.CreatedAt, store.ModifiedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene un almacén y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *StoreRepo) GetByIDForUpdate(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update actualiza los campos mutables de un almacén existente.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, address = $3, modified_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Address, store.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// UpdateStatus persiste la transición de estado condicionada al estado actual:
// si otra transacción ya aplicó el mismo estado, el UPDATE no afecta filas y
// la operación queda como no-op.
func (r *StoreRepo) UpdateStatus(id, status string, modifiedAt time.Time) error {
	query := `
		UPDATE stores SET status = $2, modified_at = $3
		WHERE id = $1 AND status <> $2`
	_, err := r.q.Exec(context.Background(), query, id, status, modifiedAt)
	if err != nil {
		return fmt.Errorf("update store status: %w", err)
	}
	return nil
}

// List devuelve todos los almacenes ordenados por fecha de creación.
func (r *StoreRepo) List() ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at DESC`
	return r.scanMany(query)
}

// ListByProject devuelve los almacenes de un proyecto. Proyecto sin almacenes
// produce slice vacío.
func (r *StoreRepo) ListByProject(projectCode int) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE project_code = $1 ORDER BY created_at DESC`
	return r.scanMany(query, projectCode)
}

func (r *StoreRepo) scanOne(query string, args ...any) (*entity.Store, error) {
	var st entity.Store
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&st.ID, &st.Name, &st.ProjectCode, &st.Address, &st.Status,
		&st.CreatedAt, &st.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &st, nil
}

func (r *StoreRepo) scanMany(query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Store, 0)
	for rows.Next() {
		var st entity.Store
		if err := rows.Scan(&st.ID, &st.Name, &st.ProjectCode, &st.Address, &st.Status, &st.CreatedAt, &st.ModifiedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &st)
	}
	return list, rows.Err()
}
