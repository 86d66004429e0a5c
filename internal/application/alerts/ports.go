package alerts

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// RestockReport datos que recibe el generador del reporte de reposición.
type RestockReport struct {
	ID      string
	Company *entity.Company
	Window  alerting.Window
	Result  alerting.Result
}

// RestockReportGenerator produce la representación imprimible (PDF) del reporte.
type RestockReportGenerator interface {
	GenerateRestockReport(ctx context.Context, report RestockReport) ([]byte, error)
}
