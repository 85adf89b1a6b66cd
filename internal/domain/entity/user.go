package entity

import "time"

// Roles válidos para User. El conjunto viene del módulo de roles del ERP;
// este subsistema solo los usa para autorización por endpoint.
const (
	RoleAdmin            = "ADMIN"
	RoleGeneralManager   = "GENERAL_MANAGER"
	RoleHRManager        = "HR_MANAGER"
	RoleFinanceManager   = "FINANCE_MANAGER"
	RoleProjectManager   = "PROJECT_MANAGER"
	RoleWarehouseManager = "WAREHOUSE_MANAGER"
	RoleEmployee         = "EMPLOYEE"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	Name         string
	Role         string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
