package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/inventory"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/postgres"
)

func runSeed(c *cli.Context) error {
	e, err := openEnv(c)
	if err != nil {
		return err
	}
	defer e.pool.Close()
	ctx := ctxOf(c)

	if err := postgres.Migrate(ctx, e.pool); err != nil {
		return err
	}

	company := &entity.Company{Name: c.String("company-name"), Email: c.String("company-email")}
	if err := postgres.NewCompanyRepository(e.pool).Create(ctx, company); err != nil {
		return err
	}
	wh := &entity.Warehouse{CompanyID: company.ID, Name: c.String("warehouse-name")}
	if err := postgres.NewWarehouseRepository(e.pool).Create(ctx, wh); err != nil {
		return err
	}

	e.log.Info().
		Int64("company_id", company.ID).
		Int64("warehouse_id", wh.ID).
		Msg("empresa y bodega por defecto creadas")
	return nil
}

// demoProduct producto de demostración: stock final, umbral, proveedores y venta diaria.
type demoProduct struct {
	name      string
	sku       string
	stock     int
	threshold int
	suppliers []int // índices en demoSuppliers; el primero es el principal
	dailySale int   // unidades vendidas por día; 0 = sin ventas
}

var demoSuppliers = []struct {
	name  string
	email string
}{
	{"Aceros del Norte", "ventas@acerosnorte.test"},
	{"Distribuidora Central", "pedidos@distcentral.test"},
	{"Importadora Sur", ""},
}

var demoProducts = []demoProduct{
	{name: "Tornillo hexagonal 3/8", sku: "TOR-38", stock: 6, threshold: 10, suppliers: []int{0, 1}, dailySale: 2},
	{name: "Cinta aislante", sku: "CIN-01", stock: 4, threshold: 10, suppliers: []int{1}},
	{name: "Guantes de nitrilo", sku: "GUA-NI", stock: 0, threshold: 5, suppliers: []int{2}, dailySale: 3},
	{name: "Taladro percutor", sku: "TAL-PR", stock: 50, threshold: 10, suppliers: []int{0}, dailySale: 1},
	{name: "Brocas para concreto", sku: "BRO-CO", stock: 8, threshold: 10, dailySale: 1},
}

func runDemo(c *cli.Context) error {
	e, err := openEnv(c)
	if err != nil {
		return err
	}
	defer e.pool.Close()
	ctx := ctxOf(c)

	historyDays := c.Int("history-days")
	if historyDays < 1 {
		return fmt.Errorf("history-days debe ser mayor que 0")
	}
	if err := postgres.Migrate(ctx, e.pool); err != nil {
		return err
	}

	// Sufijo para poder correr el demo varias veces sin chocar con SKUs únicos.
	run := strings.ToUpper(uuid.NewString()[:6])

	company := &entity.Company{Name: "Demo " + run}
	if err := postgres.NewCompanyRepository(e.pool).Create(ctx, company); err != nil {
		return err
	}
	wh := &entity.Warehouse{CompanyID: company.ID, Name: "Bodega Demo"}
	if err := postgres.NewWarehouseRepository(e.pool).Create(ctx, wh); err != nil {
		return err
	}

	supplierRepo := postgres.NewSupplierRepository(e.pool)
	supplierIDs := make([]int64, len(demoSuppliers))
	for i, s := range demoSuppliers {
		sup := &entity.Supplier{Name: s.name}
		if s.email != "" {
			email := s.email
			sup.ContactEmail = &email
		}
		if err := supplierRepo.Create(ctx, sup); err != nil {
			return err
		}
		supplierIDs[i] = sup.ID
	}

	createProduct := inventory.NewCreateProductUseCase(
		postgres.NewTxRunner(e.pool),
		postgres.NewProductRepository(e.pool),
		postgres.NewWarehouseRepository(e.pool),
		e.cfg.Alerts.DefaultThreshold,
	)
	historyRepo := postgres.NewInventoryHistoryRepository(e.pool)
	inventoryRepo := postgres.NewInventoryRepository(e.pool)
	now := time.Now().UTC()

	for _, p := range demoProducts {
		name, sku := p.name, p.sku+"-"+run
		price := decimal.NewFromInt(15000)
		qty := decimal.NewFromInt(int64(p.stock))
		threshold := p.threshold
		out, err := createProduct.CreateProduct(ctx, dto.CreateProductRequest{
			Name:              &name,
			SKU:               &sku,
			Price:             &price,
			WarehouseID:       &wh.ID,
			InitialQuantity:   &qty,
			LowStockThreshold: &threshold,
		})
		if err != nil {
			return fmt.Errorf("crear %s: %w", sku, err)
		}

		for i, idx := range p.suppliers {
			link := entity.ProductSupplier{ProductID: out.ProductID, SupplierID: supplierIDs[idx], IsPrimary: i == 0}
			if err := supplierRepo.Link(ctx, link); err != nil {
				return err
			}
		}

		// Historial retroactivo que termina en el saldo persistido.
		if p.dailySale > 0 {
			inv, err := inventoryRepo.Get(ctx, out.ProductID, wh.ID)
			if err != nil {
				return err
			}
			if inv == nil {
				return fmt.Errorf("inventario de %s no encontrado", sku)
			}
			running := inv.Quantity + p.dailySale*historyDays
			for d := historyDays; d >= 1; d-- {
				h := &entity.InventoryHistory{
					ProductID:        out.ProductID,
					WarehouseID:      wh.ID,
					ChangeType:       entity.ChangeTypeSale,
					QuantityChange:   -p.dailySale,
					PreviousQuantity: running,
					NewQuantity:      running - p.dailySale,
					ChangedAt:        now.AddDate(0, 0, -d+1).Add(-time.Hour),
				}
				if err := historyRepo.Create(ctx, h); err != nil {
					return err
				}
				running = h.NewQuantity
			}
		}
	}

	e.log.Info().
		Int64("company_id", company.ID).
		Int64("warehouse_id", wh.ID).
		Int("products", len(demoProducts)).
		Str("alerts_url", fmt.Sprintf("/api/companies/%d/alerts/low-stock", company.ID)).
		Msg("datos de demostración creados")
	return nil
}
