package entity

import "time"

// Tipos de cambio registrados en el historial de inventario.
const (
	ChangeTypeSale       = "SALE"       // venta (quantity_change negativo)
	ChangeTypeRestock    = "RESTOCK"    // reposición
	ChangeTypeAdjustment = "ADJUSTMENT" // ajuste manual
)

// InventoryHistory registra cada cambio de saldo de un producto en una bodega.
type InventoryHistory struct {
	ID               int64
	ProductID        int64
	WarehouseID      int64
	ChangeType       string
	QuantityChange   int // negativo en ventas
	PreviousQuantity int
	NewQuantity      int
	ChangedAt        time.Time
	Notes            string
}
