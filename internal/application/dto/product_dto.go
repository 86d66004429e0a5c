package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
// Los campos son punteros para distinguir "ausente" de "cero".
type CreateProductRequest struct {
	Name              *string          `json:"name"`
	SKU               *string          `json:"sku"`
	Price             *decimal.Decimal `json:"price"`
	WarehouseID       *int64           `json:"warehouse_id"`
	InitialQuantity   *decimal.Decimal `json:"initial_quantity"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty"`
}

// CreateProductResponse salida de la creación de un producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}
