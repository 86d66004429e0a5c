package entity

// Inventory saldo actual de un producto en una bodega (único por par).
// Solo el flujo de escritura lo modifica.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int
}
