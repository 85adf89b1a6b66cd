package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/domain"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// Acciones de auditoría del ciclo de vida de almacenes.
const (
	actionStoreCreated          = "STORE_CREATED"
	actionStoreUpdated          = "STORE_UPDATED"
	actionStoreDeactivated      = "STORE_DEACTIVATED"
	actionStoreForceDeactivated = "STORE_FORCE_DEACTIVATED"
)

// LifecycleUseCase implementa el ciclo de vida de almacenes de proyecto:
// creación, actualización (con propiedad de proyecto inmutable), lecturas y la
// máquina de estados ACTIVE -> INACTIVE con guardia de saldo.
//
// Desactivación suave: rechaza con ErrBalanceConflict si el almacén conserva
// saldo de inventario; desactivar un almacén con stock dejaría registros de
// saldo huérfanos sin contexto de almacén activo.
// Desactivación forzada: omite únicamente la guardia de saldo; el resto de
// validaciones se mantiene.
type LifecycleUseCase struct {
	storeRepo   repository.StoreRepository
	projectRepo repository.ProjectRepository
	auditRepo   repository.AuditLogRepository
	txRunner    TxRunner
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(
	storeRepo repository.StoreRepository,
	projectRepo repository.ProjectRepository,
	auditRepo repository.AuditLogRepository,
	txRunner TxRunner,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		storeRepo:   storeRepo,
		projectRepo: projectRepo,
		auditRepo:   auditRepo,
		txRunner:    txRunner,
	}
}

// Create valida la entrada, verifica que el proyecto exista y persiste el
// almacén con estado ACTIVE.
func (uc *LifecycleUseCase) Create(ctx context.Context, actorID string, in dto.StoreRequest) (*dto.StoreResponse, error) {
	if strings.TrimSpace(in.StoreName) == "" || in.ProjectCode <= 0 {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByCode(in.ProjectCode)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	now := time.Now()
	st := &entity.Store{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.StoreName),
		ProjectCode: in.ProjectCode,
		Address:     in.Address,
		Status:      entity.StoreStatusActive,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if err := uc.storeRepo.Create(st); err != nil {
		return nil, err
	}
	uc.audit(actorID, actionStoreCreated, st.ID, fmt.Sprintf("almacén %q creado en proyecto %d", st.Name, st.ProjectCode))
	return toStoreResponse(st), nil
}

// Update actualiza los campos mutables (nombre, dirección) y sella ModifiedAt.
// El proyecto es inmutable: si el request trae un ProjectCode distinto al
// actual, retorna ErrConflict sin importar el estado del almacén.
func (uc *LifecycleUseCase) Update(ctx context.Context, actorID, id string, in dto.StoreRequest) (*dto.StoreResponse, error) {
	if strings.TrimSpace(in.StoreName) == "" {
		return nil, domain.ErrInvalidInput
	}
	st, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProjectCode != 0 && in.ProjectCode != st.ProjectCode {
		return nil, domain.ErrConflict
	}

	st.Name = strings.TrimSpace(in.StoreName)
	st.Address = in.Address
	st.ModifiedAt = time.Now()
	if err := uc.storeRepo.Update(st); err != nil {
		return nil, err
	}
	uc.audit(actorID, actionStoreUpdated, st.ID, fmt.Sprintf("almacén %q actualizado", st.Name))
	return toStoreResponse(st), nil
}

// GetByID obtiene el detalle de un almacén.
func (uc *LifecycleUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	st, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(st), nil
}

// List devuelve todos los almacenes como resúmenes (proyección ligera).
func (uc *LifecycleUseCase) List(ctx context.Context) ([]dto.StoreSummary, error) {
	list, err := uc.storeRepo.List()
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.StoreSummary, 0, len(list))
	for _, st := range list {
		summaries = append(summaries, dto.StoreSummary{
			ID:          st.ID,
			StoreName:   st.Name,
			ProjectCode: st.ProjectCode,
			Status:      st.Status,
		})
	}
	return summaries, nil
}

// ListByProject devuelve el detalle de los almacenes de un proyecto.
// Un proyecto sin almacenes (o desconocido) produce lista vacía, no error.
func (uc *LifecycleUseCase) ListByProject(ctx context.Context, projectCode int) ([]dto.StoreResponse, error) {
	list, err := uc.storeRepo.ListByProject(projectCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, st := range list {
		out = append(out, *toStoreResponse(st))
	}
	return out, nil
}

// Deactivate ejecuta la transición ACTIVE -> INACTIVE dentro de una sola
// transacción: bloquea la fila del almacén (SELECT FOR UPDATE), re-verifica el
// saldo dentro de la misma tx y persiste el cambio de estado. Así dos
// desactivaciones suaves concurrentes no pueden observar ambas saldo cero y
// proceder las dos.
//
// force=true omite la guardia de saldo; el llamador asume el riesgo de dejar
// saldos huérfanos. Desactivar un almacén ya INACTIVE es un no-op exitoso
// (idempotente). Un id desconocido retorna ErrNotFound también en el camino
// forzado.
func (uc *LifecycleUseCase) Deactivate(ctx context.Context, actorID, id string, force bool) error {
	err := uc.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		balanceRepo repository.StockBalanceRepository,
	) error {
		st, err := storeRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if st == nil {
			return domain.ErrNotFound
		}
		if st.Status == entity.StoreStatusInactive {
			return nil // ya inactivo: no-op idempotente
		}
		if !force {
			has, err := balanceRepo.HasBalance(id)
			if err != nil {
				return err
			}
			if has {
				return domain.ErrBalanceConflict
			}
		}
		return storeRepo.UpdateStatus(id, entity.StoreStatusInactive, time.Now())
	})
	if err != nil {
		return err
	}

	action := actionStoreDeactivated
	detail := "desactivación con verificación de saldo"
	if force {
		action = actionStoreForceDeactivated
		detail = "desactivación forzada, guardia de saldo omitida"
	}
	uc.audit(actorID, action, id, detail)
	return nil
}

// audit registra la acción en el log de auditoría. Best-effort: un fallo en
// auditoría no revierte una operación ya confirmada.
func (uc *LifecycleUseCase) audit(actorID, action, entityID, detail string) {
	_ = uc.auditRepo.Create(&entity.AuditLog{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		Action:    action,
		Entity:    "store",
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
}

func toStoreResponse(st *entity.Store) *dto.StoreResponse {
	if st == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:          st.ID,
		StoreName:   st.Name,
		ProjectCode: st.ProjectCode,
		Address:     st.Address,
		Status:      st.Status,
		CreatedAt:   st.CreatedAt,
		ModifiedAt:  st.ModifiedAt,
	}
}
