package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold punto de reorden cuando el producto no define uno.
const DefaultLowStockThreshold = 10

// Product representa un producto del catálogo. El SKU es único y se guarda en mayúsculas.
type Product struct {
	ID                int64
	SKU               string
	Name              string
	Price             decimal.Decimal
	LowStockThreshold int // punto de reorden
	IsBundle          bool
	CreatedAt         time.Time
}
