package usecase

import (
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// AuditUseCase consulta del registro de auditoría (solo lectura).
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List devuelve entradas de auditoría paginadas, opcionalmente filtradas por entidad.
func (uc *AuditUseCase) List(entityFilter string, limit, offset int) (*dto.AuditLogListResponse, error) {
	logs, err := uc.repo.List(entityFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, toAuditLogResponse(l))
	}
	return &dto.AuditLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAuditLogResponse(l *entity.AuditLog) dto.AuditLogResponse {
	return dto.AuditLogResponse{
		ID:        l.ID,
		ActorID:   l.ActorID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		Detail:    l.Detail,
		CreatedAt: l.CreatedAt,
	}
}
