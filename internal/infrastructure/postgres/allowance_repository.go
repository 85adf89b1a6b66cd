package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

var _ repository.ContractAllowanceRepository = (*AllowanceRepo)(nil)

// AllowanceRepo implementación de ContractAllowanceRepository sobre PostgreSQL.
type AllowanceRepo struct {
	q Querier
}

// NewAllowanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAllowanceRepository(q Querier) *AllowanceRepo {
	return &AllowanceRepo{q: q}
}

const allowanceColumns = `id, employee_name, allowance_type, amount, effective_from, effective_to, created_at, updated_at`

// Create persiste una asignación contractual.
func (r *AllowanceRepo) Create(a *entity.ContractAllowance) error {
	query := `
		INSERT INTO contract_allowances (id, employee_name, allowance_type, amount, effective_from, effective_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.EmployeeName, a.AllowanceType, a.Amount,
		a.EffectiveFrom, a.EffectiveTo, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert allowance: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *AllowanceRepo) GetByID(id string) (*entity.ContractAllowance, error) {
	query := `SELECT ` + allowanceColumns + ` FROM contract_allowances WHERE id = $1`
	var a entity.ContractAllowance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.EmployeeName, &a.AllowanceType, &a.Amount,
		&a.EffectiveFrom, &a.EffectiveTo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allowance: %w", err)
	}
	return &a, nil
}

// Update actualiza una asignación existente.
func (r *AllowanceRepo) Update(a *entity.ContractAllowance) error {
	query := `
		UPDATE contract_allowances
		SET employee_name = $2, allowance_type = $3, amount = $4,
		    effective_from = $5, effective_to = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.EmployeeName, a.AllowanceType, a.Amount,
		a.EffectiveFrom, a.EffectiveTo, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update allowance: %w", err)
	}
	return nil
}

// List lista asignaciones con paginación.
func (r *AllowanceRepo) List(limit, offset int) ([]*entity.ContractAllowance, error) {
	query := `SELECT ` + allowanceColumns + ` FROM contract_allowances ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list allowances: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ContractAllowance, 0)
	for rows.Next() {
		var a entity.ContractAllowance
		if err := rows.Scan(&a.ID, &a.EmployeeName, &a.AllowanceType, &a.Amount, &a.EffectiveFrom, &a.EffectiveTo, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan allowance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una asignación por ID.
func (r *AllowanceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contract_allowances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete allowance: %w", err)
	}
	return nil
}
