// Package alerting calcula las alertas de bajo stock de una empresa a partir de
// una foto (snapshot) de solo lectura del inventario y del historial de ventas.
//
// Flujo: estimar velocidad de venta por (producto, bodega) → proyectar días hasta
// quiebre → ensamblar una alerta por (producto, bodega, proveedor) → ordenar por
// urgencia. El paquete no hace I/O ni muta la foto; es seguro llamarlo en paralelo.
package alerting

import "time"

// ChangeTypeSale es el tipo de movimiento del historial que cuenta como venta.
const ChangeTypeSale = "SALE"

// DefaultWindowDays ventana por defecto (días) para la velocidad de ventas.
const DefaultWindowDays = 30

// Window ventana de cálculo: termina en AsOf y cubre Days días hacia atrás.
type Window struct {
	AsOf time.Time
	Days int
}

// NewWindow construye la ventana; Days <= 0 usa DefaultWindowDays.
func NewWindow(asOf time.Time, days int) Window {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return Window{AsOf: asOf, Days: days}
}

// Start devuelve el inicio (inclusive) de la ventana.
func (w Window) Start() time.Time {
	return w.AsOf.AddDate(0, 0, -w.Days)
}

// Contains informa si t cae dentro de [Start, AsOf].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start()) && !t.After(w.AsOf)
}

// Position saldo de un producto en una bodega, ya unido con los datos del
// producto y de la bodega.
type Position struct {
	ProductID     int64
	ProductName   string
	SKU           string
	Threshold     int
	WarehouseID   int64
	WarehouseName string
	CurrentStock  int
}

// SupplierLink proveedor asociado a un producto.
type SupplierLink struct {
	ProductID    int64
	SupplierID   int64
	Name         string
	ContactEmail *string
	IsPrimary    bool
}

// HistoryEvent fila del historial de inventario. QuantityChange es negativo en ventas.
type HistoryEvent struct {
	ProductID      int64
	WarehouseID    int64
	ChangeType     string
	QuantityChange int
	ChangedAt      time.Time
}

// Snapshot datos de una empresa vistos en un instante. Positions solo contiene
// saldos de bodegas de la empresa; el orden de Positions y Suppliers define el
// orden de ensamblado.
type Snapshot struct {
	CompanyID int64
	Positions []Position
	Suppliers []SupplierLink
	History   []HistoryEvent
}

// SupplierInfo datos de contacto del proveedor en una alerta.
type SupplierInfo struct {
	ID           int64
	Name         string
	ContactEmail *string
}

// Alert señal de reposición para (producto, bodega, proveedor).
// DaysUntilStockout es nil cuando no hay velocidad de venta utilizable.
type Alert struct {
	ProductID         int64
	ProductName       string
	SKU               string
	WarehouseID       int64
	WarehouseName     string
	CurrentStock      int
	Threshold         int
	DaysUntilStockout *int
	Supplier          SupplierInfo
}

// pairKey agrupa por (producto, bodega).
type pairKey struct {
	productID   int64
	warehouseID int64
}
