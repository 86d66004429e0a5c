package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var (
	_ repository.InventoryRepository        = (*InventoryRepo)(nil)
	_ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)
)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta el saldo inicial de (producto, bodega).
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, inv.ProductID, inv.WarehouseID, inv.Quantity).Scan(&inv.ID); err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Get obtiene el saldo de (producto, bodega). Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) Get(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// InventoryHistoryRepo implementación de InventoryHistoryRepository sobre PostgreSQL.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador del historial.
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Create registra un cambio de saldo.
func (r *InventoryHistoryRepo) Create(ctx context.Context, h *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history
			(product_id, warehouse_id, change_type, quantity_change, previous_quantity, new_quantity, changed_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		h.ProductID, h.WarehouseID, h.ChangeType, h.QuantityChange,
		h.PreviousQuantity, h.NewQuantity, h.ChangedAt, h.Notes,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}
