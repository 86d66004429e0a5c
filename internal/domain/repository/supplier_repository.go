package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores y su vínculo con productos.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	Link(ctx context.Context, link entity.ProductSupplier) error
}
