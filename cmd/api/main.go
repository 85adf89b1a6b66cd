package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/erp-suite/erp-backend/internal/application/auth"
	"github.com/erp-suite/erp-backend/internal/application/inventory"
	"github.com/erp-suite/erp-backend/internal/application/report"
	appstore "github.com/erp-suite/erp-backend/internal/application/store"
	"github.com/erp-suite/erp-backend/internal/application/usecase"
	infrapdf "github.com/erp-suite/erp-backend/internal/infrastructure/pdf"
	"github.com/erp-suite/erp-backend/internal/infrastructure/postgres"
	httpRouter "github.com/erp-suite/erp-backend/internal/interfaces/http"
	"github.com/erp-suite/erp-backend/pkg/config"
	"github.com/erp-suite/erp-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	balanceRepo := postgres.NewStockBalanceRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	allowanceRepo := postgres.NewAllowanceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	storeUC := appstore.NewLifecycleUseCase(storeRepo, projectRepo, auditRepo, txRunner)
	movementUC := inventory.NewRegisterMovementUseCase(txRunner, itemRepo, storeRepo)
	allowanceUC := usecase.NewAllowanceUseCase(allowanceRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// PDF: reporte de saldos por almacén
	pdfGenerator := infrapdf.NewMarotoStoreReportGenerator()
	storeReportUC := report.NewStoreReportUseCase(storeRepo, balanceRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP Backend API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:       storeUC,
		StoreReportUC: storeReportUC,
		MovementUC:    movementUC,
		AllowanceUC:   allowanceUC,
		AuditUC:       auditUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
