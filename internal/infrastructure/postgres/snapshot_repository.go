package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.AlertSnapshotRepository = (*AlertSnapshotRepo)(nil)

// txBeginner lo implementa *pgxpool.Pool.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// AlertSnapshotRepo arma la foto de alertas de stock bajo. Solo lectura.
type AlertSnapshotRepo struct {
	db txBeginner
}

// NewAlertSnapshotRepository construye el proveedor de fotos sobre el pool.
func NewAlertSnapshotRepository(db txBeginner) *AlertSnapshotRepo {
	return &AlertSnapshotRepo{db: db}
}

// LowStockSnapshot lee saldos, proveedores e historial en una sola transacción
// REPEATABLE READ de solo lectura, así las tres lecturas ven el mismo estado confirmado.
func (r *AlertSnapshotRepo) LowStockSnapshot(ctx context.Context, companyID int64, w alerting.Window) (*alerting.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := NewCompanyRepository(tx).Exists(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: empresa %d", domain.ErrNotFound, companyID)
	}

	snap := &alerting.Snapshot{CompanyID: companyID}
	if snap.Positions, err = loadPositions(ctx, tx, companyID); err != nil {
		return nil, err
	}
	if snap.Suppliers, err = loadSupplierLinks(ctx, tx, companyID); err != nil {
		return nil, err
	}
	if snap.History, err = loadSales(ctx, tx, companyID, w); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return snap, nil
}

// loadPositions trae solo los saldos en o bajo el umbral; el filtro se repite en el dominio.
func loadPositions(ctx context.Context, q Querier, companyID int64) ([]alerting.Position, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.low_stock_threshold, w.id, w.name, i.quantity
		FROM inventory i
		JOIN products p   ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE w.company_id = $1 AND i.quantity <= p.low_stock_threshold
		ORDER BY p.id, w.id`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("query positions: %w", err)
	}
	defer rows.Close()

	positions := make([]alerting.Position, 0)
	for rows.Next() {
		var p alerting.Position
		if err := rows.Scan(
			&p.ProductID, &p.ProductName, &p.SKU, &p.Threshold,
			&p.WarehouseID, &p.WarehouseName, &p.CurrentStock,
		); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows positions: %w", err)
	}
	return positions, nil
}

// loadSupplierLinks ordena primero el proveedor principal de cada producto.
func loadSupplierLinks(ctx context.Context, q Querier, companyID int64) ([]alerting.SupplierLink, error) {
	query := `
		SELECT ps.product_id, s.id, s.name, s.contact_email, ps.is_primary
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id IN (
			SELECT i.product_id
			FROM inventory i
			JOIN warehouses w ON w.id = i.warehouse_id
			WHERE w.company_id = $1
		)
		ORDER BY ps.product_id, ps.is_primary DESC, s.id`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("query supplier links: %w", err)
	}
	defer rows.Close()

	links := make([]alerting.SupplierLink, 0)
	for rows.Next() {
		var l alerting.SupplierLink
		if err := rows.Scan(&l.ProductID, &l.SupplierID, &l.Name, &l.ContactEmail, &l.IsPrimary); err != nil {
			return nil, fmt.Errorf("scan supplier link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows supplier links: %w", err)
	}
	return links, nil
}

func loadSales(ctx context.Context, q Querier, companyID int64, w alerting.Window) ([]alerting.HistoryEvent, error) {
	query := `
		SELECT h.product_id, h.warehouse_id, h.change_type, h.quantity_change, h.changed_at
		FROM inventory_history h
		JOIN warehouses w ON w.id = h.warehouse_id
		WHERE w.company_id = $1
		  AND h.change_type = $2
		  AND h.changed_at >= $3 AND h.changed_at <= $4
		ORDER BY h.id`
	rows, err := q.Query(ctx, query, companyID, alerting.ChangeTypeSale, w.Start(), w.AsOf)
	if err != nil {
		return nil, fmt.Errorf("query sales history: %w", err)
	}
	defer rows.Close()

	events := make([]alerting.HistoryEvent, 0)
	for rows.Next() {
		var ev alerting.HistoryEvent
		if err := rows.Scan(&ev.ProductID, &ev.WarehouseID, &ev.ChangeType, &ev.QuantityChange, &ev.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan sales history: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows sales history: %w", err)
	}
	return events, nil
}
