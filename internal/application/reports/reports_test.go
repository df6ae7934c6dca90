package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/salon-api/internal/application/dto"
	"github.com/glowdesk/salon-api/internal/application/reports"
	"github.com/glowdesk/salon-api/internal/domain"
	"github.com/glowdesk/salon-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de lectura (las proyecciones solo consultan).
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct{ products []*entity.Product }

func (r *stubProductRepo) Create(*entity.Product) error                  { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *stubProductRepo) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                  { return nil }
func (r *stubProductRepo) UpdateQuantity(string, int64) error            { return nil }
func (r *stubProductRepo) Delete(string) error                           { return nil }
func (r *stubProductRepo) DeleteMany([]string) (int64, error)            { return 0, nil }
func (r *stubProductRepo) ExistingIDs(ids []string) ([]string, error)    { return nil, nil }
func (r *stubProductRepo) List(c string, _, _ int) ([]*entity.Product, error) {
	return r.ListAll(c)
}
func (r *stubProductRepo) ListAll(category string) ([]*entity.Product, error) {
	if category == "" {
		return r.products, nil
	}
	var out []*entity.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubHistoryRepo struct{ entries []*entity.HistoryEntry }

func (r *stubHistoryRepo) Append(*entity.HistoryEntry) error { return nil }
func (r *stubHistoryRepo) ListByProduct(id string, from, to *time.Time) ([]*entity.HistoryEntry, error) {
	var out []*entity.HistoryEntry
	for _, e := range r.entries {
		if e.ProductID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *stubHistoryRepo) ListAll(from, to *time.Time) ([]*entity.HistoryEntry, error) {
	var out []*entity.HistoryEntry
	for _, e := range r.entries {
		if from != nil && e.Timestamp.Before(*from) {
			continue
		}
		if to != nil && e.Timestamp.After(*to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type capturePDF struct{ data *reports.PeriodReportData }

func (g *capturePDF) GeneratePeriodReport(_ context.Context, data *reports.PeriodReportData) ([]byte, error) {
	g.data = data
	return []byte("%PDF-stub"), nil
}

var day = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func fixtures() (*stubProductRepo, *stubHistoryRepo) {
	shampoo := &entity.Product{ID: "p1", Name: "Shampoo", Category: "Hair", Quantity: 9, Price: decimal.NewFromInt(8)}
	esmalte := &entity.Product{ID: "p2", Name: "Esmalte", Category: "Nail", Quantity: 20, Price: decimal.NewFromInt(4)}
	entries := []*entity.HistoryEntry{
		{ProductID: "p1", Action: entity.ActionRestocked, QuantityChanged: 15, Timestamp: day.AddDate(0, 0, -30)},
		{ProductID: "p1", Action: entity.ActionUsed, QuantityChanged: 6, Timestamp: day},
		{ProductID: "p2", Action: entity.ActionUsed, QuantityChanged: 2, Timestamp: day.AddDate(0, 0, 20)},
	}
	return &stubProductRepo{products: []*entity.Product{shampoo, esmalte}},
		&stubHistoryRepo{entries: entries}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetUsageReport
// ──────────────────────────────────────────────────────────────────────────────

func TestGetUsageReport_FiltroCategoriaYFechas(t *testing.T) {
	products, history := fixtures()
	uc := reports.NewUsageReportUseCase(products, history)

	out, err := uc.GetUsageReport(context.Background(), dto.UsageReportRequest{
		Category: "Hair",
		From:     "2026-05-01",
		To:       "2026-05-10",
	})

	require.NoError(t, err)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "Shampoo", out.Groups[0].Product.Name)
	require.Len(t, out.Groups[0].Entries, 1, "la reposición y el uso fuera de rango se excluyen")
	assert.Equal(t, int64(6), out.Groups[0].Entries[0].QuantityChanged)
	assert.Equal(t, 1, out.Total)
}

// Cero coincidencias: reporte vacío renderizable, sin error.
func TestGetUsageReport_SinResultados(t *testing.T) {
	products, history := fixtures()
	uc := reports.NewUsageReportUseCase(products, history)

	out, err := uc.GetUsageReport(context.Background(), dto.UsageReportRequest{ProductID: "p2", From: "2027-01-01", To: "2027-02-01"})

	require.NoError(t, err)
	require.Len(t, out.Groups, 1)
	assert.Empty(t, out.Groups[0].Entries)
	assert.Zero(t, out.Total)
}

func TestGetUsageReport_FechaInvalida(t *testing.T) {
	products, history := fixtures()
	uc := reports.NewUsageReportUseCase(products, history)

	_, err := uc.GetUsageReport(context.Background(), dto.UsageReportRequest{From: "04/05/2026"})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Idempotencia de lectura: dos llamadas sin mutación intermedia, mismo resultado.
func TestGetUsageReport_Idempotente(t *testing.T) {
	products, history := fixtures()
	uc := reports.NewUsageReportUseCase(products, history)
	req := dto.UsageReportRequest{Category: "all"}

	a, err := uc.GetUsageReport(context.Background(), req)
	require.NoError(t, err)
	b, err := uc.GetUsageReport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de período
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodWindowEnd(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		period string
		want   time.Time
	}{
		{reports.PeriodWeekly, start.AddDate(0, 0, 7).Add(-time.Nanosecond)},
		{reports.PeriodMonthly, start.AddDate(0, 1, 0).Add(-time.Nanosecond)},
		{reports.PeriodQuarterly, start.AddDate(0, 3, 0).Add(-time.Nanosecond)},
	}
	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			end, err := reports.PeriodWindowEnd(tc.period, start)
			require.NoError(t, err)
			assert.Equal(t, tc.want, end)
		})
	}

	_, err := reports.PeriodWindowEnd("yearly", start)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGeneratePeriodReport_VentanaYDatos(t *testing.T) {
	products, history := fixtures()
	pdf := &capturePDF{}
	uc := reports.NewPeriodReportUseCase(reports.NewUsageReportUseCase(products, history), pdf)

	out, err := uc.Generate(context.Background(), dto.PeriodReportRequest{
		Period: reports.PeriodWeekly,
		Start:  "2026-05-04",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.NotNil(t, pdf.data)
	assert.Equal(t, reports.PeriodWeekly, pdf.data.Period)
	// Solo el uso del 4 de mayo cae en la semana; el del día 24 queda fuera.
	assert.Equal(t, int64(6), pdf.data.Summary.UnitsUsed)
	require.Len(t, pdf.data.Groups, 2)
	assert.Len(t, pdf.data.Groups[0].Entries, 1)
	assert.Empty(t, pdf.data.Groups[1].Entries)
}

func TestGeneratePeriodReport_PeriodoInvalido(t *testing.T) {
	products, history := fixtures()
	uc := reports.NewPeriodReportUseCase(reports.NewUsageReportUseCase(products, history), &capturePDF{})

	_, err := uc.Generate(context.Background(), dto.PeriodReportRequest{Period: "yearly", Start: "2026-05-04"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Generate(context.Background(), dto.PeriodReportRequest{Period: reports.PeriodWeekly, Start: "hoy"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
