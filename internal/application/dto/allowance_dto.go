package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllowanceRequest entrada para crear o actualizar una asignación contractual.
type AllowanceRequest struct {
	EmployeeName  string          `json:"employeeName" validate:"required"`
	AllowanceType string          `json:"allowanceType" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	EffectiveFrom time.Time       `json:"effectiveFrom"`
	EffectiveTo   *time.Time      `json:"effectiveTo"`
}

// AllowanceResponse salida de una asignación contractual.
type AllowanceResponse struct {
	ID            string          `json:"id"`
	EmployeeName  string          `json:"employeeName"`
	AllowanceType string          `json:"allowanceType"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveFrom time.Time       `json:"effectiveFrom"`
	EffectiveTo   *time.Time      `json:"effectiveTo,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
