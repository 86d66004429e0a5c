package alerting

import "sort"

// UnknownUrgency clave de orden para alertas sin proyección. Solo se usa al ordenar.
const UnknownUrgency = 999

// Result alertas ordenadas por urgencia y su total.
type Result struct {
	Alerts []Alert
	Total  int
}

// urgencyKey devuelve (grupo, días): las alertas con proyección van en el grupo 0
// y las desconocidas en el grupo 1 con UnknownUrgency, así quedan siempre al final.
func urgencyKey(a Alert) (int, int) {
	if a.DaysUntilStockout == nil {
		return 1, UnknownUrgency
	}
	return 0, *a.DaysUntilStockout
}

// Rank ordena ascendente por días hasta quiebre con sort estable; los empates
// conservan el orden del ensamblado. No modifica el slice de entrada.
func Rank(alerts []Alert) Result {
	ranked := make([]Alert, len(alerts))
	copy(ranked, alerts)
	sort.SliceStable(ranked, func(i, j int) bool {
		gi, di := urgencyKey(ranked[i])
		gj, dj := urgencyKey(ranked[j])
		if gi != gj {
			return gi < gj
		}
		return di < dj
	})
	return Result{Alerts: ranked, Total: len(ranked)}
}

// Compute ejecuta el pipeline completo sobre una foto: ensamblar y ordenar.
func Compute(s Snapshot, w Window) Result {
	return Rank(Assemble(s, w))
}
