package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractAllowance representa una asignación contractual de un empleado
// (subsidio de transporte, vivienda, etc.). CRUD administrativo del módulo HR.
type ContractAllowance struct {
	ID            string
	EmployeeName  string
	AllowanceType string
	Amount        decimal.Decimal
	EffectiveFrom time.Time
	EffectiveTo   *time.Time // nil = vigente sin fecha de fin
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
