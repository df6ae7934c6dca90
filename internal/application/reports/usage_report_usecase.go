// Package reports contiene los casos de uso de reportes de uso del
// inventario: el reporte filtrable (JSON) y el reporte de período (PDF).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/glowdesk/salon-api/internal/application/dto"
	"github.com/glowdesk/salon-api/internal/domain"
	"github.com/glowdesk/salon-api/internal/domain/entity"
	"github.com/glowdesk/salon-api/internal/domain/inventory"
	"github.com/glowdesk/salon-api/internal/domain/repository"
)

// dateLayout formato de fechas aceptado en los filtros.
const dateLayout = "2006-01-02"

// UsageReportUseCase proyecta el reporte de uso sobre un snapshot fresco.
type UsageReportUseCase struct {
	productRepo repository.ProductRepository
	historyRepo repository.HistoryRepository
}

// NewUsageReportUseCase construye el caso de uso.
func NewUsageReportUseCase(productRepo repository.ProductRepository, historyRepo repository.HistoryRepository) *UsageReportUseCase {
	return &UsageReportUseCase{productRepo: productRepo, historyRepo: historyRepo}
}

// GetUsageReport devuelve los productos que pasan el filtro con sus
// entradas "used". Cero resultados es un reporte válido, no un error.
func (uc *UsageReportUseCase) GetUsageReport(ctx context.Context, in dto.UsageReportRequest) (*dto.UsageReportResponse, error) {
	filter := inventory.UsageFilter{
		Category:  in.Category,
		ProductID: in.ProductID,
	}
	var err error
	if filter.From, err = parseDate(in.From, false); err != nil {
		return nil, err
	}
	if filter.To, err = parseDate(in.To, true); err != nil {
		return nil, err
	}

	groups, err := uc.filteredGroups(filter)
	if err != nil {
		return nil, err
	}

	out := &dto.UsageReportResponse{Groups: make([]dto.UsageReportGroup, 0, len(groups))}
	for _, g := range groups {
		out.Groups = append(out.Groups, toUsageReportGroup(g))
		out.Total += len(g.Entries)
	}
	return out, nil
}

// filteredGroups lee el snapshot de productos y el ledger y aplica el
// filtro puro del dominio. Los productos llegan en su orden natural del
// store y las entradas en orden cronológico.
func (uc *UsageReportUseCase) filteredGroups(filter inventory.UsageFilter) ([]inventory.UsageGroup, error) {
	products, err := uc.productRepo.ListAll("")
	if err != nil {
		return nil, fmt.Errorf("reporte de uso: snapshot de productos: %w", err)
	}
	entries, err := uc.historyRepo.ListAll(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("reporte de uso: ledger: %w", err)
	}
	return inventory.FilterUsage(products, inventory.GroupByProduct(entries), filter), nil
}

// parseDate interpreta una fecha 2006-01-02. endOfDay extiende el límite
// superior hasta 23:59:59.999... para que el rango sea inclusivo por día.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q (formato %s)", domain.ErrInvalidInput, s, dateLayout)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func toUsageReportGroup(g inventory.UsageGroup) dto.UsageReportGroup {
	out := dto.UsageReportGroup{
		Product: dto.ProductResponse{
			ID:          g.Product.ID,
			Name:        g.Product.Name,
			Quantity:    g.Product.Quantity,
			Price:       g.Product.Price,
			Supplier:    g.Product.Supplier,
			Category:    g.Product.Category,
			Description: g.Product.Description,
			CreatedAt:   g.Product.CreatedAt,
			UpdatedAt:   g.Product.UpdatedAt,
		},
		Entries: make([]dto.HistoryEntryResponse, 0, len(g.Entries)),
	}
	for _, e := range g.Entries {
		out.Entries = append(out.Entries, toHistoryEntryResponse(e))
	}
	return out
}

func toHistoryEntryResponse(e *entity.HistoryEntry) dto.HistoryEntryResponse {
	return dto.HistoryEntryResponse{
		ID:              e.ID,
		ProductID:       e.ProductID,
		Action:          e.Action,
		QuantityChanged: e.QuantityChanged,
		Reason:          e.Reason,
		Timestamp:       e.Timestamp,
	}
}
