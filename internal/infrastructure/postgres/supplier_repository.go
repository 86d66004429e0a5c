package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna supplier.ID.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact_email, contact_phone)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.Name, s.ContactEmail, s.ContactPhone).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Link asocia un proveedor a un producto; si ya existe actualiza is_primary.
func (r *SupplierRepo) Link(ctx context.Context, link entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id, is_primary)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET is_primary = EXCLUDED.is_primary`
	if _, err := r.q.Exec(ctx, query, link.ProductID, link.SupplierID, link.IsPrimary); err != nil {
		return fmt.Errorf("link product supplier: %w", err)
	}
	return nil
}
