package inventory

import (
	"time"

	"github.com/glowdesk/salon-api/internal/domain/entity"
)

// FilterAll es el valor centinela que desactiva una dimensión del filtro
// (equivale a dejarla vacía).
const FilterAll = "all"

// UsageFilter acota el reporte de uso por categoría, producto y rango de
// fechas. From/To son inclusivos; nil desactiva el límite.
type UsageFilter struct {
	Category  string
	ProductID string
	From      *time.Time
	To        *time.Time
}

// UsageGroup es una fila del reporte: un producto con sus entradas "used"
// que pasaron el filtro, en orden cronológico del ledger.
type UsageGroup struct {
	Product *entity.Product
	Entries []*entity.HistoryEntry
}

// FilterUsage proyecta el reporte de uso sobre un snapshot de productos y
// su historial. Devuelve lista vacía (no error) cuando nada coincide: un
// reporte sin resultados es un estado válido y renderizable.
// Los productos conservan su orden natural del store.
func FilterUsage(products []*entity.Product, entriesByProduct map[string][]*entity.HistoryEntry, f UsageFilter) []UsageGroup {
	groups := make([]UsageGroup, 0, len(products))
	for _, p := range products {
		if !dimensionMatches(f.Category, p.Category) {
			continue
		}
		if !dimensionMatches(f.ProductID, p.ID) {
			continue
		}
		entries := make([]*entity.HistoryEntry, 0)
		for _, e := range entriesByProduct[p.ID] {
			if e.Action != entity.ActionUsed {
				continue
			}
			if f.From != nil && e.Timestamp.Before(*f.From) {
				continue
			}
			if f.To != nil && e.Timestamp.After(*f.To) {
				continue
			}
			entries = append(entries, e)
		}
		groups = append(groups, UsageGroup{Product: p, Entries: entries})
	}
	return groups
}

// dimensionMatches acepta todo con valor vacío o el centinela "all".
func dimensionMatches(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}
