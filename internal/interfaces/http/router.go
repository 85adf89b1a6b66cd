package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/erp-suite/erp-backend/internal/application/auth"
	"github.com/erp-suite/erp-backend/internal/application/inventory"
	"github.com/erp-suite/erp-backend/internal/application/report"
	"github.com/erp-suite/erp-backend/internal/application/store"
	"github.com/erp-suite/erp-backend/internal/application/usecase"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC       *store.LifecycleUseCase
	StoreReportUC *report.StoreReportUseCase
	MovementUC    *inventory.RegisterMovementUseCase
	AllowanceUC   *usecase.AllowanceUseCase
	AuditUC       *usecase.AuditUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// managerRoles roles con visibilidad de almacenes (lecturas de listado).
var managerRoles = []string{
	entity.RoleAdmin,
	entity.RoleGeneralManager,
	entity.RoleHRManager,
	entity.RoleFinanceManager,
	entity.RoleProjectManager,
	entity.RoleWarehouseManager,
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Almacenes de proyecto (protegido, RBAC por operación)
	storeHandler := NewStoreHandler(deps.StoreUC, deps.StoreReportUC)
	stores := protected.Group("/warehouse/stores")

	detailRoles := append(append([]string{}, managerRoles...), entity.RoleEmployee)

	stores.Post("/",
		RequireRole(entity.RoleWarehouseManager, entity.RoleAdmin), storeHandler.Create)
	stores.Get("/",
		RequireRole(managerRoles...), storeHandler.List)
	// Registrar antes de "/:id" para que "project" no se capture como id.
	stores.Get("/project/:projectCode",
		RequireRole(managerRoles...), storeHandler.ListByProject)
	stores.Get("/:id/report",
		RequireRole(managerRoles...), storeHandler.Report)
	stores.Get("/:id",
		RequireRole(detailRoles...), storeHandler.GetByID)
	stores.Put("/:id",
		RequireRole(entity.RoleWarehouseManager, entity.RoleAdmin), storeHandler.Update)
	// force=true exige además rol ADMIN; lo verifica el handler.
	stores.Delete("/:id",
		RequireRole(entity.RoleWarehouseManager, entity.RoleAdmin), storeHandler.Deactivate)

	// Movimientos de inventario (protegido)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	protected.Post("/warehouse/stock/movements",
		RequireRole(entity.RoleWarehouseManager, entity.RoleAdmin), inventoryHandler.RegisterMovement)

	// Asignaciones contractuales HR (protegido)
	allowanceHandler := NewAllowanceHandler(deps.AllowanceUC)
	allowances := protected.Group("/hr/allowances",
		RequireRole(entity.RoleHRManager, entity.RoleAdmin))
	allowances.Post("/", allowanceHandler.Create)
	allowances.Get("/", allowanceHandler.List)
	allowances.Get("/:id", allowanceHandler.GetByID)
	allowances.Put("/:id", allowanceHandler.Update)
	allowances.Delete("/:id", allowanceHandler.Delete)

	// Auditoría (protegido)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/admin/audit-logs",
		RequireRole(entity.RoleAdmin, entity.RoleGeneralManager), auditHandler.List)
}
