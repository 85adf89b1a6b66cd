package repository

import "github.com/erp-suite/erp-backend/internal/domain/entity"

// ContractAllowanceRepository puerto de persistencia para asignaciones
// contractuales (módulo HR).
type ContractAllowanceRepository interface {
	Create(allowance *entity.ContractAllowance) error
	GetByID(id string) (*entity.ContractAllowance, error)
	Update(allowance *entity.ContractAllowance) error
	List(limit, offset int) ([]*entity.ContractAllowance, error)
	Delete(id string) error
}
