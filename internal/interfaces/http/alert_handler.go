package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

// AlertHandler expone las alertas de bajo stock de una empresa.
type AlertHandler struct {
	alerts LowStockAlertsService
	report RestockReportService
}

// NewAlertHandler construye el handler.
func NewAlertHandler(alerts LowStockAlertsService, report RestockReportService) *AlertHandler {
	return &AlertHandler{alerts: alerts, report: report}
}

// LowStock godoc
// @Summary      Alertas de bajo stock
// @Description  Productos en o bajo su umbral en las bodegas de la empresa, con proveedor y días estimados hasta quiebre.
// @Tags         alerts
// @Produce      json
// @Param        company_id   path   int     true   "ID de la empresa"
// @Param        window_days  query  int     false  "Ventana de ventas en días"  default(30)
// @Param        as_of        query  string  false  "Fecha de corte RFC3339"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	q, err := parseAlertsQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.alerts.GetLowStockAlerts(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RestockReportPDF godoc
// @Summary      Reporte de reposición (PDF)
// @Tags         alerts
// @Produce      application/pdf
// @Param        company_id   path   int     true   "ID de la empresa"
// @Param        window_days  query  int     false  "Ventana de ventas en días"
// @Param        as_of        query  string  false  "Fecha de corte RFC3339"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/report.pdf [get]
func (h *AlertHandler) RestockReportPDF(c *fiber.Ctx) error {
	q, err := parseAlertsQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	pdf, filename, err := h.report.DownloadRestockReport(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}

func parseAlertsQuery(c *fiber.Ctx) (dto.LowStockAlertsQuery, error) {
	var q dto.LowStockAlertsQuery

	companyID, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		return q, fmt.Errorf("company_id inválido")
	}
	q.CompanyID = companyID

	if raw := c.Query("window_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 {
			return q, fmt.Errorf("window_days debe ser un entero positivo")
		}
		q.WindowDays = days
	}
	if raw := c.Query("as_of"); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, fmt.Errorf("as_of debe tener formato RFC3339")
		}
		q.AsOf = &asOf
	}
	return q, nil
}
