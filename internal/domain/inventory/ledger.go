package inventory

import "github.com/glowdesk/salon-api/internal/domain/entity"

// ReplayQuantity aplica el historial completo sobre el stock inicial y
// devuelve la cantidad resultante. Para cualquier producto consistente:
//
//	Quantity == ReplayQuantity(0, historial completo)
//
// porque el alta siembra el stock inicial como entrada "restocked".
func ReplayQuantity(initial int64, entries []*entity.HistoryEntry) int64 {
	qty := initial
	for _, e := range entries {
		switch e.Action {
		case entity.ActionUsed:
			qty -= e.QuantityChanged
		case entity.ActionRestocked:
			qty += e.QuantityChanged
		}
	}
	return qty
}

// GroupByProduct agrupa entradas del ledger por ProductID conservando el
// orden cronológico de entrada.
func GroupByProduct(entries []*entity.HistoryEntry) map[string][]*entity.HistoryEntry {
	byProduct := make(map[string][]*entity.HistoryEntry)
	for _, e := range entries {
		byProduct[e.ProductID] = append(byProduct[e.ProductID], e)
	}
	return byProduct
}
