package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	infrapdf "github.com/jhoicas/stock-alerts-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-alerts-api/internal/interfaces/http"
	"github.com/jhoicas/stock-alerts-api/pkg/config"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("window_days", cfg.Alerts.WindowDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	snapshotRepo := postgres.NewAlertSnapshotRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	alertsUC := alerts.NewLowStockAlertUseCase(snapshotRepo, alerts.Config{
		WindowDays:    cfg.Alerts.WindowDays,
		MaxWindowDays: cfg.Alerts.MaxWindowDays,
	}, log)
	reportUC := alerts.NewReportUseCase(alertsUC, companyRepo, infrapdf.NewRestockReportGenerator())
	createProductUC := inventory.NewCreateProductUseCase(txRunner, productRepo, warehouseRepo, cfg.Alerts.DefaultThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Stock Alerts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Alerts:        alertsUC,
		RestockReport: reportUC,
		Products:      createProductUC,
		Logger:        log,
	})

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(sigCtx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado con error")
	}
	log.Info().Msg("aplicación detenida")
}
