// Package pdf genera el reporte imprimible de reposición de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + N° reporte │ Fecha de corte + Ventana    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Días | Proveedor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de alertas                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorUrgent  = &props.Color{Red: 170, Green: 20, Blue: 20}
)

// urgentDays proyecciones en o bajo este valor se resaltan.
const urgentDays = 7

const noValue = "—"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ alerts.RestockReportGenerator = (*RestockReportGenerator)(nil)

// RestockReportGenerator implementa alerts.RestockReportGenerator usando Maroto v2.
type RestockReportGenerator struct{}

// NewRestockReportGenerator construye el generador.
func NewRestockReportGenerator() *RestockReportGenerator { return &RestockReportGenerator{} }

// GenerateRestockReport genera el PDF y devuelve sus bytes.
func (g *RestockReportGenerator) GenerateRestockReport(_ context.Context, report alerts.RestockReport) ([]byte, error) {
	companyName := noValue
	if report.Company != nil {
		companyName = nonEmpty(report.Company.Name, noValue)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de reposición", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(report.Result.Alerts) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No hay productos en o bajo su umbral de stock.", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 4,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableAlertRows(report.Result.Alerts)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(report.Result.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + id del reporte (izq) y fecha de corte + ventana (der).
func headerRow(companyName string, report alerts.RestockReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte: "+nonEmpty(report.ID, noValue), props.Text{
				Size: 7, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ALERTAS DE BAJO STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+report.Window.AsOf.Format("02/01/2006 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Ventana de ventas: %d días", report.Window.Days), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 2, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock/Umbral", 1, align.Center),
		h("Días", 1, align.Center),
		h("Proveedor", 2, align.Left),
		h("Contacto", 2, align.Left),
	)
}

// tableAlertRows: una fila por alerta, en el orden ya rankeado.
func tableAlertRows(list []alerting.Alert) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, a := range list {
		daysProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if a.DaysUntilStockout != nil && *a.DaysUntilStockout <= urgentDays {
			daysProps.Style = fontstyle.Bold
			daysProps.Color = colorUrgent
		}
		cell := props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(a.SKU, cell)),
			col.New(2).Add(text.New(a.ProductName, cell)),
			col.New(2).Add(text.New(a.WarehouseName, cell)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d/%d", a.CurrentStock, a.Threshold),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(formatDays(a.DaysUntilStockout), daysProps)),
			col.New(2).Add(text.New(a.Supplier.Name, cell)),
			col.New(2).Add(text.New(formatEmail(a.Supplier.ContactEmail), cell)),
		))
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de alertas: %d", total),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDays(d *int) string {
	if d == nil {
		return noValue
	}
	return strconv.Itoa(*d)
}

func formatEmail(e *string) string {
	if e == nil {
		return noValue
	}
	return nonEmpty(*e, noValue)
}
