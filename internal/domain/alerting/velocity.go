package alerting

import "github.com/shopspring/decimal"

// Velocity promedio de ventas de un (producto, bodega) en la ventana.
// Se guarda como suma y conteo de eventos para proyectar sin pérdida de precisión.
// El valor cero (sin eventos) representa "sin datos", distinto de velocidad cero.
type Velocity struct {
	total  int64 // suma de quantity_change (negativa en ventas)
	events int64
}

// NewVelocity construye una velocidad a partir de la suma y el número de eventos.
func NewVelocity(total int64, events int64) Velocity {
	if events <= 0 {
		return Velocity{}
	}
	return Velocity{total: total, events: events}
}

// Valid informa si hubo al menos un evento SALE en la ventana.
func (v Velocity) Valid() bool { return v.events > 0 }

// Events número de eventos SALE promediados.
func (v Velocity) Events() int64 { return v.events }

// Mean promedio con signo de quantity_change; inválido cuando no hay datos.
func (v Velocity) Mean() decimal.NullDecimal {
	if !v.Valid() {
		return decimal.NullDecimal{}
	}
	mean := decimal.NewFromInt(v.total).Div(decimal.NewFromInt(v.events))
	return decimal.NullDecimal{Decimal: mean, Valid: true}
}

// VelocityIndex velocidades precalculadas por (producto, bodega).
type VelocityIndex struct {
	byPair map[pairKey]Velocity
}

// For devuelve la velocidad del par; sin eventos devuelve una Velocity inválida.
func (idx VelocityIndex) For(productID, warehouseID int64) Velocity {
	return idx.byPair[pairKey{productID: productID, warehouseID: warehouseID}]
}

// EstimateVelocities agrupa los eventos SALE dentro de la ventana por
// (producto, bodega) y calcula el promedio de cada grupo en una sola pasada.
// Se promedian todas las ventas aunque haya reposiciones en medio de la ventana.
func EstimateVelocities(history []HistoryEvent, w Window) VelocityIndex {
	byPair := make(map[pairKey]Velocity)
	for _, ev := range history {
		if ev.ChangeType != ChangeTypeSale || !w.Contains(ev.ChangedAt) {
			continue
		}
		k := pairKey{productID: ev.ProductID, warehouseID: ev.WarehouseID}
		v := byPair[k]
		v.total += int64(ev.QuantityChange)
		v.events++
		byPair[k] = v
	}
	return VelocityIndex{byPair: byPair}
}

// EstimateVelocity calcula la velocidad de un único (producto, bodega).
func EstimateVelocity(history []HistoryEvent, productID, warehouseID int64, w Window) Velocity {
	var v Velocity
	for _, ev := range history {
		if ev.ProductID != productID || ev.WarehouseID != warehouseID {
			continue
		}
		if ev.ChangeType != ChangeTypeSale || !w.Contains(ev.ChangedAt) {
			continue
		}
		v.total += int64(ev.QuantityChange)
		v.events++
	}
	return v
}
