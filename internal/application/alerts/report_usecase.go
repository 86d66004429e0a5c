package alerts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// ReportUseCase genera el reporte imprimible de reposición con las mismas alertas del endpoint JSON.
type ReportUseCase struct {
	alerts      *LowStockAlertUseCase
	companyRepo repository.CompanyRepository
	generator   RestockReportGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	alerts *LowStockAlertUseCase,
	companyRepo repository.CompanyRepository,
	generator RestockReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{alerts: alerts, companyRepo: companyRepo, generator: generator}
}

// DownloadRestockReport devuelve (pdfBytes, filename, nil) o domain.ErrNotFound si la empresa no existe.
func (uc *ReportUseCase) DownloadRestockReport(ctx context.Context, q dto.LowStockAlertsQuery) ([]byte, string, error) {
	company, err := uc.companyRepo.GetByID(ctx, q.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	res, w, err := uc.alerts.Compute(ctx, q)
	if err != nil {
		return nil, "", err
	}

	report := RestockReport{
		ID:      uuid.New().String(),
		Company: company,
		Window:  w,
		Result:  res,
	}
	pdf, err := uc.generator.GenerateRestockReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("reposicion-%d-%s.pdf", company.ID, w.AsOf.Format("20060102"))
	return pdf, filename, nil
}
