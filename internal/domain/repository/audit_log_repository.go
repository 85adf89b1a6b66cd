package repository

import "github.com/erp-suite/erp-backend/internal/domain/entity"

// AuditLogRepository puerto de persistencia para el registro de auditoría.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(entityFilter string, limit, offset int) ([]*entity.AuditLog, error)
}
