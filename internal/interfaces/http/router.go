package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// LowStockAlertsService lo implementa alerts.LowStockAlertUseCase.
type LowStockAlertsService interface {
	GetLowStockAlerts(ctx context.Context, q dto.LowStockAlertsQuery) (*dto.LowStockAlertsResponse, error)
}

// RestockReportService lo implementa alerts.ReportUseCase.
type RestockReportService interface {
	DownloadRestockReport(ctx context.Context, q dto.LowStockAlertsQuery) ([]byte, string, error)
}

// ProductCreator lo implementa inventory.CreateProductUseCase.
type ProductCreator interface {
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error)
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Alerts        LowStockAlertsService
	RestockReport RestockReportService
	Products      ProductCreator
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))

	// Alertas de bajo stock (solo lectura)
	alertHandler := NewAlertHandler(deps.Alerts, deps.RestockReport)
	companies := api.Group("/companies/:company_id")
	companies.Get("/alerts/low-stock", alertHandler.LowStock)
	companies.Get("/alerts/low-stock/report.pdf", alertHandler.RestockReportPDF)

	// Products
	productHandler := NewProductHandler(deps.Products)
	api.Post("/products", productHandler.Create)
}
