package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/domain"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// AllowanceUseCase CRUD de asignaciones contractuales (módulo HR).
type AllowanceUseCase struct {
	repo repository.ContractAllowanceRepository
}

// NewAllowanceUseCase construye el caso de uso.
func NewAllowanceUseCase(repo repository.ContractAllowanceRepository) *AllowanceUseCase {
	return &AllowanceUseCase{repo: repo}
}

// Create crea una asignación contractual.
func (uc *AllowanceUseCase) Create(in dto.AllowanceRequest) (*dto.AllowanceResponse, error) {
	if err := validateAllowance(in); err != nil {
		return nil, err
	}
	now := time.Now()
	from := in.EffectiveFrom
	if from.IsZero() {
		from = now
	}
	a := &entity.ContractAllowance{
		ID:            uuid.New().String(),
		EmployeeName:  strings.TrimSpace(in.EmployeeName),
		AllowanceType: in.AllowanceType,
		Amount:        in.Amount,
		EffectiveFrom: from,
		EffectiveTo:   in.EffectiveTo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAllowanceResponse(a), nil
}

// GetByID obtiene una asignación por ID.
func (uc *AllowanceUseCase) GetByID(id string) (*dto.AllowanceResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toAllowanceResponse(a), nil
}

// Update actualiza una asignación existente.
func (uc *AllowanceUseCase) Update(id string, in dto.AllowanceRequest) (*dto.AllowanceResponse, error) {
	if err := validateAllowance(in); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	a.EmployeeName = strings.TrimSpace(in.EmployeeName)
	a.AllowanceType = in.AllowanceType
	a.Amount = in.Amount
	if !in.EffectiveFrom.IsZero() {
		a.EffectiveFrom = in.EffectiveFrom
	}
	a.EffectiveTo = in.EffectiveTo
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAllowanceResponse(a), nil
}

// List lista asignaciones con paginación.
func (uc *AllowanceUseCase) List(limit, offset int) ([]dto.AllowanceResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AllowanceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAllowanceResponse(a))
	}
	return out, nil
}

// Delete elimina una asignación por ID.
func (uc *AllowanceUseCase) Delete(id string) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validateAllowance(in dto.AllowanceRequest) error {
	if strings.TrimSpace(in.EmployeeName) == "" || strings.TrimSpace(in.AllowanceType) == "" {
		return domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.EffectiveTo != nil && !in.EffectiveFrom.IsZero() && in.EffectiveTo.Before(in.EffectiveFrom) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toAllowanceResponse(a *entity.ContractAllowance) *dto.AllowanceResponse {
	if a == nil {
		return nil
	}
	return &dto.AllowanceResponse{
		ID:            a.ID,
		EmployeeName:  a.EmployeeName,
		AllowanceType: a.AllowanceType,
		Amount:        a.Amount,
		EffectiveFrom: a.EffectiveFrom,
		EffectiveTo:   a.EffectiveTo,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
