package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// InventoryRepository define el puerto para los saldos por (producto, bodega).
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	Get(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error)
}

// InventoryHistoryRepository define el puerto para el historial de cambios de saldo.
type InventoryHistoryRepository interface {
	Create(ctx context.Context, h *entity.InventoryHistory) error
}
