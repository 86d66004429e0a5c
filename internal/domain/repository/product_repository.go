package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta el producto y asigna product.ID. SKU repetido devuelve domain.ErrDuplicate.
	Create(ctx context.Context, product *entity.Product) error
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
