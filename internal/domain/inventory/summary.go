package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/glowdesk/salon-api/internal/domain/entity"
)

// LowStockThreshold es el umbral fijo de stock bajo (inclusive):
// un producto con Quantity <= 10 cuenta como stock bajo.
const LowStockThreshold = 10

// Summary agrega las métricas del dashboard sobre el conjunto de
// productos actual. Se calcula siempre desde un snapshot fresco; nunca
// se cachea un valor derivado que pueda divergir de la fuente de verdad.
type Summary struct {
	TotalItems int
	Categories int
	LowStock   int
	TotalValue decimal.Decimal // sum(quantity * price)
	UnitsUsed  int64           // sum(quantityChanged) de entradas "used"
}

// Summarize calcula el resumen del dashboard a partir de los productos y
// su historial agrupado por producto. Con conjunto vacío devuelve todos
// los campos en cero sin error.
func Summarize(products []*entity.Product, entriesByProduct map[string][]*entity.HistoryEntry) Summary {
	s := Summary{TotalValue: decimal.Zero}
	s.TotalItems = len(products)

	categories, _ := ListCategories(products)
	s.Categories = len(categories)

	for _, p := range products {
		if p.Quantity <= LowStockThreshold {
			s.LowStock++
		}
		s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(p.Quantity)))
		for _, e := range entriesByProduct[p.ID] {
			if e.Action == entity.ActionUsed {
				s.UnitsUsed += e.QuantityChanged
			}
		}
	}
	return s
}
