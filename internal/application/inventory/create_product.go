package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// CreateProductUseCase da de alta un producto con su saldo inicial en una bodega.
// Es el flujo de escritura; el cálculo de alertas solo lee lo que este deja confirmado.
type CreateProductUseCase struct {
	txRunner         TxRunner
	productRepo      repository.ProductRepository
	warehouseRepo    repository.WarehouseRepository
	defaultThreshold int
}

// NewCreateProductUseCase construye el caso de uso. defaultThreshold <= 0 usa entity.DefaultLowStockThreshold.
func NewCreateProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	defaultThreshold int,
) *CreateProductUseCase {
	if defaultThreshold <= 0 {
		defaultThreshold = entity.DefaultLowStockThreshold
	}
	return &CreateProductUseCase{
		txRunner:         txRunner,
		productRepo:      productRepo,
		warehouseRepo:    warehouseRepo,
		defaultThreshold: defaultThreshold,
	}
}

// CreateProduct valida la entrada, verifica bodega y SKU, y crea producto + inventario en una transacción.
//
// Retorna:
//   - domain.ErrInvalidInput  si faltan campos o los valores numéricos no son válidos.
//   - domain.ErrNotFound      si la bodega no existe.
//   - domain.ErrDuplicate     si el SKU ya existe.
func (uc *CreateProductUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if in.Name == nil || in.SKU == nil || in.Price == nil || in.WarehouseID == nil || in.InitialQuantity == nil {
		return nil, fmt.Errorf("%w: faltan campos requeridos", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(*in.Name)
	sku := strings.ToUpper(strings.TrimSpace(*in.SKU))
	if name == "" || sku == "" {
		return nil, fmt.Errorf("%w: faltan campos requeridos", domain.ErrInvalidInput)
	}
	if !in.InitialQuantity.IsInteger() {
		return nil, fmt.Errorf("%w: initial_quantity debe ser un entero", domain.ErrInvalidInput)
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if in.InitialQuantity.IsNegative() {
		return nil, fmt.Errorf("%w: initial_quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	threshold := uc.defaultThreshold
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, fmt.Errorf("%w: low_stock_threshold no puede ser negativo", domain.ErrInvalidInput)
		}
		threshold = *in.LowStockThreshold
	}

	wh, err := uc.warehouseRepo.GetByID(ctx, *in.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("obtener bodega: %w", err)
	}
	if wh == nil {
		return nil, fmt.Errorf("%w: bodega %d", domain.ErrNotFound, *in.WarehouseID)
	}

	existing, err := uc.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("buscar SKU: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: SKU '%s' ya existe", domain.ErrDuplicate, sku)
	}

	product := &entity.Product{
		SKU:               sku,
		Name:              name,
		Price:             in.Price.Round(2),
		LowStockThreshold: threshold,
		CreatedAt:         time.Now().UTC(),
	}
	quantity := int(in.InitialQuantity.IntPart())

	// El índice único de SKU es la última barrera ante altas concurrentes (ErrDuplicate).
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return inventoryRepo.Create(ctx, &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: wh.ID,
			Quantity:    quantity,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{Message: "Product created", ProductID: product.ID}, nil
}
