package report

import (
	"context"

	"github.com/erp-suite/erp-backend/internal/domain"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// StoreReportPDFGenerator puerto de generación del PDF de reporte de almacén.
// Lo implementa infrastructure/pdf con Maroto.
type StoreReportPDFGenerator interface {
	GenerateStoreReport(ctx context.Context, store *entity.Store, balances []*entity.StockBalance) ([]byte, error)
}

// StoreReportUseCase genera el reporte de saldos de un almacén en PDF.
type StoreReportUseCase struct {
	storeRepo   repository.StoreRepository
	balanceRepo repository.StockBalanceRepository
	generator   StoreReportPDFGenerator
}

// NewStoreReportUseCase construye el caso de uso.
func NewStoreReportUseCase(
	storeRepo repository.StoreRepository,
	balanceRepo repository.StockBalanceRepository,
	generator StoreReportPDFGenerator,
) *StoreReportUseCase {
	return &StoreReportUseCase{
		storeRepo:   storeRepo,
		balanceRepo: balanceRepo,
		generator:   generator,
	}
}

// Generate arma el reporte: almacén + saldos actuales. El reporte también
// está disponible para almacenes INACTIVE (retención histórica).
func (uc *StoreReportUseCase) Generate(ctx context.Context, storeID string) ([]byte, error) {
	st, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	balances, err := uc.balanceRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStoreReport(ctx, st, balances)
}
