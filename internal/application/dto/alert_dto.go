package dto

import "time"

// LowStockAlertsQuery parámetros del cálculo de alertas de una empresa.
// WindowDays = 0 usa la ventana configurada; AsOf nil usa la hora actual.
type LowStockAlertsQuery struct {
	CompanyID  int64
	WindowDays int
	AsOf       *time.Time
}

// AlertSupplierDTO proveedor de contacto para reponer el producto.
type AlertSupplierDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlertDTO alerta por (producto, bodega, proveedor).
type LowStockAlertDTO struct {
	ProductID         int64            `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       int64            `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int              `json:"current_stock"`
	Threshold         int              `json:"threshold"`
	DaysUntilStockout *int             `json:"days_until_stockout"` // null = sin ventas recientes
	Supplier          AlertSupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta de GET /api/companies/:company_id/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
