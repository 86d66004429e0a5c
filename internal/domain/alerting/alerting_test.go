package alerting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain/alerting"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var asOf = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func window() alerting.Window { return alerting.NewWindow(asOf, 30) }

func sale(productID, warehouseID int64, qty int, daysAgo int) alerting.HistoryEvent {
	return alerting.HistoryEvent{
		ProductID:      productID,
		WarehouseID:    warehouseID,
		ChangeType:     alerting.ChangeTypeSale,
		QuantityChange: qty,
		ChangedAt:      asOf.AddDate(0, 0, -daysAgo),
	}
}

func position(productID, warehouseID int64, stock, threshold int) alerting.Position {
	return alerting.Position{
		ProductID:     productID,
		ProductName:   "Producto",
		SKU:           "SKU-1",
		Threshold:     threshold,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega",
		CurrentStock:  stock,
	}
}

func supplier(productID, supplierID int64) alerting.SupplierLink {
	email := "ventas@proveedor.test"
	return alerting.SupplierLink{ProductID: productID, SupplierID: supplierID, Name: "Proveedor", ContactEmail: &email}
}

func days(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Velocidad de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestEstimateVelocities_PromedioConSigno(t *testing.T) {
	history := []alerting.HistoryEvent{
		sale(1, 10, -4, 1),
		sale(1, 10, -6, 2),
		sale(1, 20, -100, 1), // otra bodega
	}
	v := alerting.EstimateVelocities(history, window()).For(1, 10)

	require.True(t, v.Valid())
	assert.Equal(t, int64(2), v.Events())
	assert.Equal(t, "-5", v.Mean().Decimal.String())
}

func TestEstimateVelocities_SinVentas_EsAusente(t *testing.T) {
	history := []alerting.HistoryEvent{
		{ProductID: 1, WarehouseID: 10, ChangeType: "RESTOCK", QuantityChange: 50, ChangedAt: asOf},
		sale(1, 10, -3, 31), // fuera de ventana
	}
	v := alerting.EstimateVelocities(history, window()).For(1, 10)

	assert.False(t, v.Valid(), "sin ventas en la ventana no debe haber velocidad")
	assert.False(t, v.Mean().Valid, "el promedio debe ser nulo, no cero")
}

func TestEstimateVelocities_IncluyeVentasTrasReposicion(t *testing.T) {
	history := []alerting.HistoryEvent{
		sale(1, 10, -10, 20),
		{ProductID: 1, WarehouseID: 10, ChangeType: "RESTOCK", QuantityChange: 100, ChangedAt: asOf.AddDate(0, 0, -10)},
		sale(1, 10, -2, 5),
	}
	v := alerting.EstimateVelocities(history, window()).For(1, 10)

	assert.Equal(t, "-6", v.Mean().Decimal.String())
}

func TestWindow_LimitesInclusivos(t *testing.T) {
	w := window()
	assert.True(t, w.Contains(w.Start()))
	assert.True(t, w.Contains(asOf))
	assert.False(t, w.Contains(asOf.Add(time.Second)), "eventos posteriores a as_of quedan fuera")
	assert.False(t, w.Contains(w.Start().Add(-time.Second)))
}

func TestEstimateVelocity_CoincideConIndice(t *testing.T) {
	history := []alerting.HistoryEvent{sale(1, 10, -3, 1), sale(1, 10, -4, 3), sale(2, 10, -9, 1)}
	single := alerting.EstimateVelocity(history, 1, 10, window())
	indexed := alerting.EstimateVelocities(history, window()).For(1, 10)

	assert.Equal(t, indexed, single)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección de quiebre
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectStockout(t *testing.T) {
	cases := []struct {
		name  string
		stock int
		v     alerting.Velocity
		want  *int
	}{
		{"50 unidades a 5 por día", 50, alerting.NewVelocity(-10, 2), days(10)},
		{"stock cero con ventas", 0, alerting.NewVelocity(-5, 1), days(0)},
		{"floor del cociente", 7, alerting.NewVelocity(-2, 1), days(3)},
		{"promedio periódico sin error de redondeo", 5, alerting.NewVelocity(-5, 3), days(3)},
		{"sin datos", 50, alerting.NewVelocity(0, 0), nil},
		{"velocidad cero", 50, alerting.NewVelocity(0, 4), nil},
		{"magnitud que redondea a cero", 50, alerting.NewVelocity(-1, 100000), nil},
		{"magnitud positiva usa valor absoluto", 9, alerting.NewVelocity(3, 1), days(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := alerting.ProjectStockout(tc.stock, tc.v)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ensamblado
// ──────────────────────────────────────────────────────────────────────────────

func TestAssemble_FiltraPorUmbral(t *testing.T) {
	s := alerting.Snapshot{
		Positions: []alerting.Position{
			position(1, 10, 5, 10),  // bajo umbral
			position(2, 10, 10, 10), // igual al umbral
			position(3, 10, 11, 10), // sobre el umbral
		},
		Suppliers: []alerting.SupplierLink{supplier(1, 100), supplier(2, 100), supplier(3, 100)},
	}
	alerts := alerting.Assemble(s, window())

	require.Len(t, alerts, 2)
	assert.Equal(t, int64(1), alerts[0].ProductID)
	assert.Equal(t, int64(2), alerts[1].ProductID)
}

func TestAssemble_UnaFilaPorProveedor(t *testing.T) {
	s := alerting.Snapshot{
		Positions: []alerting.Position{position(1, 10, 20, 30)},
		Suppliers: []alerting.SupplierLink{supplier(1, 100), supplier(1, 101), supplier(1, 102)},
		History:   []alerting.HistoryEvent{sale(1, 10, -4, 1)},
	}
	alerts := alerting.Assemble(s, window())

	require.Len(t, alerts, 3)
	for i, a := range alerts {
		assert.Equal(t, int64(100+i), a.Supplier.ID)
		require.NotNil(t, a.DaysUntilStockout)
		assert.Equal(t, 5, *a.DaysUntilStockout, "todas las filas comparten la proyección")
	}
}

func TestAssemble_SinProveedorNoGeneraAlerta(t *testing.T) {
	s := alerting.Snapshot{
		Positions: []alerting.Position{position(1, 10, 0, 10)},
		Suppliers: []alerting.SupplierLink{supplier(2, 100)},
	}
	assert.Empty(t, alerting.Assemble(s, window()))
}

func TestAssemble_SinHistorial_DiasNulos(t *testing.T) {
	s := alerting.Snapshot{
		Positions: []alerting.Position{position(1, 10, 3, 10)},
		Suppliers: []alerting.SupplierLink{supplier(1, 100)},
	}
	alerts := alerting.Assemble(s, window())

	require.Len(t, alerts, 1)
	assert.Nil(t, alerts[0].DaysUntilStockout)
	require.NotNil(t, alerts[0].Supplier.ContactEmail)
	assert.Equal(t, "ventas@proveedor.test", *alerts[0].Supplier.ContactEmail)
}

func TestAssemble_VelocidadPorBodega(t *testing.T) {
	s := alerting.Snapshot{
		Positions: []alerting.Position{position(1, 10, 10, 10), position(1, 20, 10, 10)},
		Suppliers: []alerting.SupplierLink{supplier(1, 100)},
		History:   []alerting.HistoryEvent{sale(1, 10, -5, 1)},
	}
	alerts := alerting.Assemble(s, window())

	require.Len(t, alerts, 2)
	require.NotNil(t, alerts[0].DaysUntilStockout)
	assert.Equal(t, 2, *alerts[0].DaysUntilStockout)
	assert.Nil(t, alerts[1].DaysUntilStockout, "la bodega sin ventas no hereda la velocidad de otra")
}

func TestAssemble_FotoVacia_ListaVaciaNoNil(t *testing.T) {
	alerts := alerting.Assemble(alerting.Snapshot{}, window())
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking
// ──────────────────────────────────────────────────────────────────────────────

func TestRank_NulosAlFinalYOrdenEstable(t *testing.T) {
	in := []alerting.Alert{
		{ProductID: 1, DaysUntilStockout: nil},
		{ProductID: 2, DaysUntilStockout: days(5)},
		{ProductID: 3, DaysUntilStockout: days(0)},
		{ProductID: 4, DaysUntilStockout: nil},
		{ProductID: 5, DaysUntilStockout: days(5)},
		{ProductID: 6, DaysUntilStockout: days(1500)},
	}
	res := alerting.Rank(in)

	got := make([]int64, 0, len(res.Alerts))
	for _, a := range res.Alerts {
		got = append(got, a.ProductID)
	}
	assert.Equal(t, []int64{3, 2, 5, 6, 1, 4}, got)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, int64(1), in[0].ProductID, "la entrada no debe modificarse")
}

func TestCompute_Idempotente(t *testing.T) {
	s := alerting.Snapshot{
		Positions: []alerting.Position{position(1, 10, 4, 10), position(2, 10, 8, 10), position(3, 20, 1, 5)},
		Suppliers: []alerting.SupplierLink{supplier(1, 100), supplier(1, 101), supplier(2, 100), supplier(3, 102)},
		History:   []alerting.HistoryEvent{sale(1, 10, -2, 1), sale(2, 10, -8, 3), sale(2, 10, -4, 4)},
	}
	first := alerting.Compute(s, window())
	second := alerting.Compute(s, window())

	assert.Equal(t, first, second)
	assert.Equal(t, 4, first.Total)
}
