package alerting

// Assemble genera una alerta por cada (producto, bodega, proveedor) con
// stock actual <= umbral. Los productos sin proveedor no generan alertas.
// La proyección se calcula una vez por (producto, bodega) y se comparte entre
// las filas de sus proveedores.
func Assemble(s Snapshot, w Window) []Alert {
	suppliersByProduct := make(map[int64][]SupplierLink)
	for _, l := range s.Suppliers {
		suppliersByProduct[l.ProductID] = append(suppliersByProduct[l.ProductID], l)
	}
	velocities := EstimateVelocities(s.History, w)

	alerts := make([]Alert, 0)
	for _, p := range s.Positions {
		if p.CurrentStock > p.Threshold {
			continue
		}
		links := suppliersByProduct[p.ProductID]
		if len(links) == 0 {
			continue
		}
		days := ProjectStockout(p.CurrentStock, velocities.For(p.ProductID, p.WarehouseID))
		for _, l := range links {
			alerts = append(alerts, Alert{
				ProductID:         p.ProductID,
				ProductName:       p.ProductName,
				SKU:               p.SKU,
				WarehouseID:       p.WarehouseID,
				WarehouseName:     p.WarehouseName,
				CurrentStock:      p.CurrentStock,
				Threshold:         p.Threshold,
				DaysUntilStockout: copyInt(days),
				Supplier: SupplierInfo{
					ID:           l.SupplierID,
					Name:         l.Name,
					ContactEmail: copyString(l.ContactEmail),
				},
			})
		}
	}
	return alerts
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
