// Package inventory contiene las reglas puras del ledger de stock del
// salón: categorías, resumen del dashboard, filtro del reporte de uso y
// replay del historial. Ninguna función de este paquete toca la BD.
package inventory

import (
	"sort"

	"github.com/glowdesk/salon-api/internal/domain/entity"
)

// PredefinedCategories es la lista fija de categorías del salón. La
// vista de categorías siempre la incluye aunque ningún producto la use.
var PredefinedCategories = []string{
	"Hair", "Nail", "Tattoo", "Piercings", "Bridal", "Skin",
}

// ListCategories devuelve la unión de las categorías observadas en los
// productos y las predefinidas, ordenada lexicográficamente.
// fallback es true cuando ningún producto aportó categoría, para que la
// UI pueda explicar que solo se muestra la lista predefinida.
// Función pura: mismo input, mismo output.
func ListCategories(products []*entity.Product) (categories []string, fallback bool) {
	seen := make(map[string]struct{}, len(PredefinedCategories))
	for _, c := range PredefinedCategories {
		seen[c] = struct{}{}
	}

	observed := false
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		observed = true
		seen[p.Category] = struct{}{}
	}

	categories = make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, !observed
}
