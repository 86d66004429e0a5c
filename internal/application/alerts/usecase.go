package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// Config parámetros del cálculo de alertas.
type Config struct {
	WindowDays    int // ventana por defecto (días)
	MaxWindowDays int // ventana máxima aceptada en la consulta
}

// LowStockAlertUseCase calcula las alertas de bajo stock de una empresa.
// No guarda estado entre llamadas: cada invocación toma su propia foto.
type LowStockAlertUseCase struct {
	snapshots repository.AlertSnapshotRepository
	cfg       Config
	now       func() time.Time
	log       *logger.Logger
}

// NewLowStockAlertUseCase construye el caso de uso.
func NewLowStockAlertUseCase(snapshots repository.AlertSnapshotRepository, cfg Config, log *logger.Logger) *LowStockAlertUseCase {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = alerting.DefaultWindowDays
	}
	if cfg.MaxWindowDays < cfg.WindowDays {
		cfg.MaxWindowDays = cfg.WindowDays
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LowStockAlertUseCase{
		snapshots: snapshots,
		cfg:       cfg,
		now:       time.Now,
		log:       log,
	}
}

// WithClock reemplaza la fuente de "ahora" (tests y recálculos deterministas).
func (uc *LowStockAlertUseCase) WithClock(now func() time.Time) *LowStockAlertUseCase {
	uc.now = now
	return uc
}

// Window resuelve la ventana de la consulta aplicando defaults y límites.
func (uc *LowStockAlertUseCase) Window(q dto.LowStockAlertsQuery) (alerting.Window, error) {
	days := q.WindowDays
	if days == 0 {
		days = uc.cfg.WindowDays
	}
	if days < 1 || days > uc.cfg.MaxWindowDays {
		return alerting.Window{}, fmt.Errorf("%w: window_days debe estar entre 1 y %d", domain.ErrInvalidInput, uc.cfg.MaxWindowDays)
	}
	asOf := uc.now().UTC()
	if q.AsOf != nil {
		asOf = q.AsOf.UTC()
	}
	return alerting.NewWindow(asOf, days), nil
}

// Compute obtiene la foto y ejecuta el pipeline de alertas.
// Empresa inexistente devuelve domain.ErrNotFound; sin alertas devuelve un resultado vacío.
func (uc *LowStockAlertUseCase) Compute(ctx context.Context, q dto.LowStockAlertsQuery) (alerting.Result, alerting.Window, error) {
	w, err := uc.Window(q)
	if err != nil {
		return alerting.Result{}, w, err
	}
	snap, err := uc.snapshots.LowStockSnapshot(ctx, q.CompanyID, w)
	if err != nil {
		return alerting.Result{}, w, err
	}
	if snap == nil {
		return alerting.Result{}, w, domain.ErrNotFound
	}

	res := alerting.Compute(*snap, w)
	uc.log.Debug().
		Int64("company_id", q.CompanyID).
		Time("as_of", w.AsOf).
		Int("window_days", w.Days).
		Int("positions", len(snap.Positions)).
		Int("alerts", res.Total).
		Msg("alertas de bajo stock calculadas")
	return res, w, nil
}

// GetLowStockAlerts devuelve las alertas ordenadas por urgencia con el total.
func (uc *LowStockAlertUseCase) GetLowStockAlerts(ctx context.Context, q dto.LowStockAlertsQuery) (*dto.LowStockAlertsResponse, error) {
	res, _, err := uc.Compute(ctx, q)
	if err != nil {
		return nil, err
	}
	return toLowStockAlertsResponse(res), nil
}

func toLowStockAlertsResponse(res alerting.Result) *dto.LowStockAlertsResponse {
	items := make([]dto.LowStockAlertDTO, 0, len(res.Alerts))
	for _, a := range res.Alerts {
		items = append(items, dto.LowStockAlertDTO{
			ProductID:         a.ProductID,
			ProductName:       a.ProductName,
			SKU:               a.SKU,
			WarehouseID:       a.WarehouseID,
			WarehouseName:     a.WarehouseName,
			CurrentStock:      a.CurrentStock,
			Threshold:         a.Threshold,
			DaysUntilStockout: a.DaysUntilStockout,
			Supplier: dto.AlertSupplierDTO{
				ID:           a.Supplier.ID,
				Name:         a.Supplier.Name,
				ContactEmail: a.Supplier.ContactEmail,
			},
		})
	}
	return &dto.LowStockAlertsResponse{Alerts: items, TotalAlerts: res.Total}
}
