package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/glowdesk/salon-api/internal/application/dto"
	"github.com/glowdesk/salon-api/internal/domain"
	"github.com/glowdesk/salon-api/internal/domain/inventory"
)

// Períodos aceptados por el reporte formateado.
const (
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
)

// PeriodReportData datos ya proyectados que recibe el generador PDF.
type PeriodReportData struct {
	Period    string
	From      time.Time
	To        time.Time
	Summary   inventory.Summary
	Groups    []inventory.UsageGroup
	Generated time.Time
}

// PeriodReportPDFGenerator puerto del generador del documento descargable.
type PeriodReportPDFGenerator interface {
	GeneratePeriodReport(ctx context.Context, data *PeriodReportData) ([]byte, error)
}

// PeriodReportUseCase arma el reporte de uso de un período (semanal,
// mensual o trimestral) y delega el documento al generador PDF.
type PeriodReportUseCase struct {
	usage *UsageReportUseCase
	pdf   PeriodReportPDFGenerator
}

// NewPeriodReportUseCase construye el caso de uso.
func NewPeriodReportUseCase(usage *UsageReportUseCase, pdf PeriodReportPDFGenerator) *PeriodReportUseCase {
	return &PeriodReportUseCase{usage: usage, pdf: pdf}
}

// Generate valida el período, calcula la ventana de fechas y produce los
// bytes del PDF. La ventana es inclusiva: [start, start+período).
func (uc *PeriodReportUseCase) Generate(ctx context.Context, in dto.PeriodReportRequest) ([]byte, error) {
	start, err := time.Parse(dateLayout, in.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start inválido %q (formato %s)", domain.ErrInvalidInput, in.Start, dateLayout)
	}
	end, err := PeriodWindowEnd(in.Period, start)
	if err != nil {
		return nil, err
	}

	groups, err := uc.usage.filteredGroups(inventory.UsageFilter{From: &start, To: &end})
	if err != nil {
		return nil, err
	}

	products, err := uc.usage.productRepo.ListAll("")
	if err != nil {
		return nil, fmt.Errorf("reporte de período: snapshot de productos: %w", err)
	}
	entries, err := uc.usage.historyRepo.ListAll(&start, &end)
	if err != nil {
		return nil, fmt.Errorf("reporte de período: ledger: %w", err)
	}

	data := &PeriodReportData{
		Period:    in.Period,
		From:      start,
		To:        end,
		Summary:   inventory.Summarize(products, inventory.GroupByProduct(entries)),
		Groups:    groups,
		Generated: time.Now(),
	}
	return uc.pdf.GeneratePeriodReport(ctx, data)
}

// PeriodWindowEnd devuelve el último instante de la ventana que empieza
// en start: 7 días (weekly), 1 mes (monthly) o 3 meses (quarterly).
func PeriodWindowEnd(period string, start time.Time) (time.Time, error) {
	var end time.Time
	switch period {
	case PeriodWeekly:
		end = start.AddDate(0, 0, 7)
	case PeriodMonthly:
		end = start.AddDate(0, 1, 0)
	case PeriodQuarterly:
		end = start.AddDate(0, 3, 0)
	default:
		return time.Time{}, fmt.Errorf("%w: período desconocido %q", domain.ErrInvalidInput, period)
	}
	return end.Add(-time.Nanosecond), nil
}
