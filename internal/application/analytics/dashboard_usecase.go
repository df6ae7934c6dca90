// Package analytics contiene las proyecciones de lectura del inventario:
// resumen del dashboard y lista de categorías. Todo se recalcula con
// funciones puras sobre un snapshot fresco de la BD; no hay estado
// derivado cacheado que pueda divergir de la fuente de verdad.
package analytics

import (
	"context"
	"fmt"

	"github.com/glowdesk/salon-api/internal/application/dto"
	"github.com/glowdesk/salon-api/internal/domain/entity"
	"github.com/glowdesk/salon-api/internal/domain/inventory"
	"github.com/glowdesk/salon-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del inventario y las categorías.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	historyRepo repository.HistoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, historyRepo repository.HistoryRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, historyRepo: historyRepo}
}

// GetSummary construye el DashboardSummaryDTO desde el estado actual.
//
// Dos consultas en paralelo: snapshot de productos y ledger completo;
// el cálculo en sí es inventory.Summarize (función pura).
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type entriesResult struct {
		entries []*entity.HistoryEntry
		err     error
	}

	productsCh := make(chan productsResult, 1)
	entriesCh := make(chan entriesResult, 1)

	go func() {
		products, err := uc.productRepo.ListAll("")
		productsCh <- productsResult{products, err}
	}()
	go func() {
		entries, err := uc.historyRepo.ListAll(nil, nil)
		entriesCh <- entriesResult{entries, err}
	}()

	products := <-productsCh
	entries := <-entriesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot de productos: %w", products.err)
	}
	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: ledger: %w", entries.err)
	}

	s := inventory.Summarize(products.products, inventory.GroupByProduct(entries.entries))
	return &dto.DashboardSummaryDTO{
		TotalItems: s.TotalItems,
		Categories: s.Categories,
		LowStock:   s.LowStock,
		TotalValue: s.TotalValue.Round(2),
		UnitsUsed:  s.UnitsUsed,
	}, nil
}

// ListCategories deriva el conjunto de categorías del snapshot actual.
// Fallback=true cuando ningún producto aportó categoría.
func (uc *DashboardUseCase) ListCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	products, err := uc.productRepo.ListAll("")
	if err != nil {
		return nil, fmt.Errorf("categorías: snapshot de productos: %w", err)
	}
	categories, fallback := inventory.ListCategories(products)
	return &dto.CategoryListResponse{Categories: categories, Fallback: fallback}, nil
}
