package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
)

// AlertSnapshotRepository provee la foto de solo lectura que consume el cálculo de alertas.
// Las implementaciones son read-only (no modifican datos).
type AlertSnapshotRepository interface {
	// LowStockSnapshot devuelve saldos de las bodegas de la empresa, vínculos de proveedores
	// de esos productos y el historial dentro de la ventana.
	// Devuelve domain.ErrNotFound si la empresa no existe.
	LowStockSnapshot(ctx context.Context, companyID int64, w alerting.Window) (*alerting.Snapshot, error)
}
