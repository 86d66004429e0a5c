package alerting

import "github.com/shopspring/decimal"

// rateScale decimales con los que se evalúa si |velocidad| es efectivamente cero.
const rateScale int32 = 4

// ProjectStockout estima los días hasta agotar el stock: floor(stock / |velocidad|).
// Devuelve nil si no hay velocidad o si su magnitud redondea a cero.
func ProjectStockout(currentStock int, v Velocity) *int {
	if !v.Valid() {
		return nil
	}
	mean := v.Mean()
	if mean.Decimal.Abs().Round(rateScale).Equal(decimal.Zero) {
		return nil
	}
	if currentStock < 0 {
		currentStock = 0
	}

	// stock / |total/events| = stock*events / |total|, en enteros para evitar
	// errores de redondeo en el floor.
	magnitude := v.total
	if magnitude < 0 {
		magnitude = -magnitude
	}
	days := int(int64(currentStock) * v.events / magnitude)
	return &days
}
