package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-suite/erp-backend/internal/application/dto"
	appstore "github.com/erp-suite/erp-backend/internal/application/store"
	"github.com/erp-suite/erp-backend/internal/domain"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
	"github.com/erp-suite/erp-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[string]*entity.Store)}
}

func (r *fakeStoreRepo) Create(st *entity.Store) error {
	cp := *st
	r.stores[st.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	st, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *fakeStoreRepo) GetByIDForUpdate(id string) (*entity.Store, error) {
	return r.GetByID(id)
}

func (r *fakeStoreRepo) Update(st *entity.Store) error {
	cp := *st
	r.stores[st.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) UpdateStatus(id, status string, modifiedAt time.Time) error {
	st, ok := r.stores[id]
	if !ok {
		return nil
	}
	if st.Status != status {
		st.Status = status
		st.ModifiedAt = modifiedAt
	}
	return nil
}

func (r *fakeStoreRepo) List() ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.stores))
	for _, st := range r.stores {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStoreRepo) ListByProject(projectCode int) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0)
	for _, st := range r.stores {
		if st.ProjectCode == projectCode {
			cp := *st
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProjectRepo struct {
	projects map[int]*entity.Project
}

func (r *fakeProjectRepo) GetByCode(code int) (*entity.Project, error) {
	return r.projects[code], nil
}

type fakeBalanceRepo struct {
	totals map[string]decimal.Decimal // storeID -> saldo
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{totals: make(map[string]decimal.Decimal)}
}

func (r *fakeBalanceRepo) HasBalance(storeID string) (bool, error) {
	return r.totals[storeID].GreaterThan(decimal.Zero), nil
}

func (r *fakeBalanceRepo) Get(itemID, storeID string) (*entity.StockBalance, error) {
	return &entity.StockBalance{ItemID: itemID, StoreID: storeID, Quantity: r.totals[storeID]}, nil
}

func (r *fakeBalanceRepo) GetForUpdate(itemID, storeID string) (*entity.StockBalance, error) {
	return r.Get(itemID, storeID)
}

func (r *fakeBalanceRepo) Upsert(b *entity.StockBalance) error {
	r.totals[b.StoreID] = b.Quantity
	return nil
}

func (r *fakeBalanceRepo) ListByStore(storeID string) ([]*entity.StockBalance, error) {
	return nil, nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(l *entity.AuditLog) error {
	r.entries = append(r.entries, l)
	return nil
}

func (r *fakeAuditRepo) List(entityFilter string, limit, offset int) ([]*entity.AuditLog, error) {
	return r.entries, nil
}

// fakeTxRunner ejecuta el callback directamente con los fakes (sin tx real).
type fakeTxRunner struct {
	storeRepo   *fakeStoreRepo
	balanceRepo *fakeBalanceRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	balanceRepo repository.StockBalanceRepository,
) error) error {
	return fn(t.storeRepo, t.balanceRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testActor = "00000000-0000-0000-0000-000000000099"

func buildUseCase() (*appstore.LifecycleUseCase, *fakeStoreRepo, *fakeBalanceRepo, *fakeAuditRepo) {
	storeRepo := newFakeStoreRepo()
	balanceRepo := newFakeBalanceRepo()
	auditRepo := &fakeAuditRepo{}
	projects := &fakeProjectRepo{projects: map[int]*entity.Project{
		42: {Code: 42, Name: "Obra Norte", Active: true},
	}}
	tx := &fakeTxRunner{storeRepo: storeRepo, balanceRepo: balanceRepo}
	uc := appstore.NewLifecycleUseCase(storeRepo, projects, auditRepo, tx)
	return uc, storeRepo, balanceRepo, auditRepo
}

func mustCreate(t *testing.T, uc *appstore.LifecycleUseCase) *dto.StoreResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), testActor, dto.StoreRequest{
		StoreName: "Site A", ProjectCode: 42,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y actualización
// ──────────────────────────────────────────────────────────────────────────────

// Todo almacén recién creado nace en estado ACTIVE.
func TestCreate_AlmacenNaceActivo(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	out := mustCreate(t, uc)

	assert.Equal(t, entity.StoreStatusActive, out.Status)
	assert.Equal(t, "Site A", out.StoreName)
	assert.Equal(t, 42, out.ProjectCode)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.ModifiedAt)
}

func TestCreate_NombreVacioRetornaValidacion(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	_, err := uc.Create(context.Background(), testActor, dto.StoreRequest{
		StoreName: "   ", ProjectCode: 42,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ProyectoInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	_, err := uc.Create(context.Background(), testActor, dto.StoreRequest{
		StoreName: "Site B", ProjectCode: 999,
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

// El proyecto dueño es inmutable: un ProjectCode distinto en el update se
// rechaza con conflicto, sin importar el estado del almacén.
func TestUpdate_CambioDeProyectoRetornaConflict(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	created := mustCreate(t, uc)

	_, err := uc.Update(context.Background(), testActor, created.ID, dto.StoreRequest{
		StoreName: "Site A renombrado", ProjectCode: 77,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Mismo proyecto: el update procede
	out, err := uc.Update(context.Background(), testActor, created.ID, dto.StoreRequest{
		StoreName: "Site A renombrado", ProjectCode: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "Site A renombrado", out.StoreName)
}

func TestUpdate_IdDesconocidoRetornaNotFound(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	_, err := uc.Update(context.Background(), testActor, "no-existe", dto.StoreRequest{
		StoreName: "X", ProjectCode: 42,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La inmutabilidad del proyecto se mantiene también sobre almacenes INACTIVE.
func TestUpdate_ProyectoInmutableConAlmacenInactivo(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	created := mustCreate(t, uc)
	require.NoError(t, uc.Deactivate(context.Background(), testActor, created.ID, true))

	_, err := uc.Update(context.Background(), testActor, created.ID, dto.StoreRequest{
		StoreName: "Site A", ProjectCode: 77,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desactivación suave y forzada
// ──────────────────────────────────────────────────────────────────────────────

// Con saldo cero la desactivación suave siempre transiciona a INACTIVE.
func TestDeactivate_SinSaldoTransicionaAInactivo(t *testing.T) {
	uc, storeRepo, _, _ := buildUseCase()
	created := mustCreate(t, uc)

	err := uc.Deactivate(context.Background(), testActor, created.ID, false)
	require.NoError(t, err)

	st, _ := storeRepo.GetByID(created.ID)
	assert.Equal(t, entity.StoreStatusInactive, st.Status)
}

// Con saldo pendiente la desactivación suave se rechaza y el almacén sigue ACTIVE.
func TestDeactivate_ConSaldoRetornaBalanceConflict(t *testing.T) {
	uc, storeRepo, balanceRepo, _ := buildUseCase()
	created := mustCreate(t, uc)
	balanceRepo.totals[created.ID] = decimal.NewFromInt(5)

	err := uc.Deactivate(context.Background(), testActor, created.ID, false)
	assert.ErrorIs(t, err, domain.ErrBalanceConflict)

	st, _ := storeRepo.GetByID(created.ID)
	assert.Equal(t, entity.StoreStatusActive, st.Status,
		"el rechazo por saldo no debe mutar el estado")
}

// La desactivación forzada omite la guardia de saldo: procede con saldo distinto de cero.
func TestForceDeactivate_ConSaldoTransicionaAInactivo(t *testing.T) {
	uc, storeRepo, balanceRepo, _ := buildUseCase()
	created := mustCreate(t, uc)
	balanceRepo.totals[created.ID] = decimal.NewFromInt(5)

	err := uc.Deactivate(context.Background(), testActor, created.ID, true)
	require.NoError(t, err)

	st, _ := storeRepo.GetByID(created.ID)
	assert.Equal(t, entity.StoreStatusInactive, st.Status)
}

// Id desconocido: NotFound en ambos caminos, sin mutar nada.
func TestDeactivate_IdDesconocidoRetornaNotFound(t *testing.T) {
	uc, storeRepo, _, _ := buildUseCase()
	mustCreate(t, uc)

	err := uc.Deactivate(context.Background(), testActor, "no-existe", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Deactivate(context.Background(), testActor, "no-existe", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, st := range storeRepo.stores {
		assert.Equal(t, entity.StoreStatusActive, st.Status)
	}
}

// Repetir la desactivación sobre un almacén ya INACTIVE es no-op exitoso.
func TestDeactivate_RepetidaEsIdempotente(t *testing.T) {
	uc, storeRepo, _, _ := buildUseCase()
	created := mustCreate(t, uc)

	require.NoError(t, uc.Deactivate(context.Background(), testActor, created.ID, false))
	require.NoError(t, uc.Deactivate(context.Background(), testActor, created.ID, false))
	require.NoError(t, uc.Deactivate(context.Background(), testActor, created.ID, true))

	st, _ := storeRepo.GetByID(created.ID)
	assert.Equal(t, entity.StoreStatusInactive, st.Status)
}

// Escenario completo del ciclo de vida: crear -> saldo 5 -> suave rechazada ->
// forzada exitosa -> update de proyecto rechazado.
func TestLifecycle_EscenarioCompleto(t *testing.T) {
	uc, storeRepo, balanceRepo, _ := buildUseCase()

	created := mustCreate(t, uc)
	assert.Equal(t, entity.StoreStatusActive, created.Status)

	balanceRepo.totals[created.ID] = decimal.NewFromInt(5)

	err := uc.Deactivate(context.Background(), testActor, created.ID, false)
	assert.ErrorIs(t, err, domain.ErrBalanceConflict)
	st, _ := storeRepo.GetByID(created.ID)
	assert.Equal(t, entity.StoreStatusActive, st.Status)

	require.NoError(t, uc.Deactivate(context.Background(), testActor, created.ID, true))
	st, _ = storeRepo.GetByID(created.ID)
	assert.Equal(t, entity.StoreStatusInactive, st.Status)

	_, err = uc.Update(context.Background(), testActor, created.ID, dto.StoreRequest{
		StoreName: "Site A", ProjectCode: 77,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_IdDesconocidoRetornaNotFound(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Proyecto sin almacenes: lista vacía, no error.
func TestListByProject_ProyectoDesconocidoRetornaListaVacia(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	mustCreate(t, uc)

	out, err := uc.ListByProject(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestList_RetornaResumenes(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	created := mustCreate(t, uc)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, created.ID, out[0].ID)
	assert.Equal(t, entity.StoreStatusActive, out[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivate_RegistraAuditoria(t *testing.T) {
	uc, _, _, auditRepo := buildUseCase()
	created := mustCreate(t, uc)

	require.NoError(t, uc.Deactivate(context.Background(), testActor, created.ID, true))

	require.GreaterOrEqual(t, len(auditRepo.entries), 2) // creación + desactivación
	last := auditRepo.entries[len(auditRepo.entries)-1]
	assert.Equal(t, "STORE_FORCE_DEACTIVATED", last.Action)
	assert.Equal(t, created.ID, last.EntityID)
	assert.Equal(t, testActor, last.ActorID)
}
