package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/alset-systems/erp-api/docs"
	"github.com/alset-systems/erp-api/internal/application/analytics"
	"github.com/alset-systems/erp-api/internal/application/attendance"
	"github.com/alset-systems/erp-api/internal/application/backup"
	"github.com/alset-systems/erp-api/internal/application/billing"
	"github.com/alset-systems/erp-api/internal/application/directory"
	"github.com/alset-systems/erp-api/internal/application/inventory"
	"github.com/alset-systems/erp-api/internal/application/payroll"
	"github.com/alset-systems/erp-api/internal/application/reports"
	"github.com/alset-systems/erp-api/internal/application/sales"
	"github.com/alset-systems/erp-api/internal/application/settings"
	"github.com/alset-systems/erp-api/internal/infrastructure/jsonstore"
	infrapdf "github.com/alset-systems/erp-api/internal/infrastructure/pdf"
	httpRouter "github.com/alset-systems/erp-api/internal/interfaces/http"
	"github.com/alset-systems/erp-api/pkg/config"
	"github.com/alset-systems/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data", cfg.Data.Path).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(filepath.Dir(cfg.Data.Path), 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de datos")
	}

	store := jsonstore.New(cfg.Data.Path)
	if cfg.Data.Seed {
		if err := store.SeedIfEmpty(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de demostración")
		}
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(log.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ALSET ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DirectoryUC:  directory.NewUseCase(store),
		InventoryUC:  inventory.NewUseCase(store),
		SalesUC:      sales.NewUseCase(store),
		InvoiceUC:    billing.NewUseCase(store),
		InvoicePDF:   billing.NewPDFUseCase(store, pdfGenerator),
		PayrollUC:    payroll.NewUseCase(store),
		AttendanceUC: attendance.NewUseCase(store),
		ReportsUC:    reports.NewUseCase(store),
		AnalyticsUC:  analytics.NewUseCase(store),
		SettingsUC:   settings.NewUseCase(store),
		BackupUC:     backup.NewUseCase(store),
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
