// Package pdf implementa la generación del reporte de período del
// inventario (documento descargable).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de uso + período y rango de fechas          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: items / categorías / stock bajo / valor / usados   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Stock | Usos período | Uds    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/glowdesk/salon-api/internal/application/reports"
	"github.com/glowdesk/salon-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 62, Blue: 134}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PeriodReportPDFGenerator
// usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ reports.PeriodReportPDFGenerator = (*MarotoReportGenerator)(nil)

// GeneratePeriodReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePeriodReport(_ context.Context, data *reports.PeriodReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data.Groups) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período + rango (der).
func headerRow(data *reports.PeriodReportData) core.Row {
	rango := fmt.Sprintf("%s — %s",
		data.From.Format("02/01/2006"), data.To.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE USO DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(periodLabel(data.Period), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(rango, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: las cinco métricas del dashboard para el período.
func summaryRow(s inventory.Summary) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 6}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		metric("Productos", fmt.Sprintf("%d", s.TotalItems)),
		metric("Categorías", fmt.Sprintf("%d", s.Categories)),
		metric("Stock bajo", fmt.Sprintf("%d", s.LowStock)),
		metric("Valor total", "$"+s.TotalValue.StringFixed(2)),
		metric("Uds. usadas", fmt.Sprintf("%d", s.UnitsUsed)),
		col.New(1),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 2, align.Right),
		h("Usos en período", 2, align.Right),
		h("Uds. usadas", 2, align.Right),
	)
}

// tableRows: una fila por producto con sus usos del período.
func tableRows(groups []inventory.UsageGroup) []core.Row {
	result := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		var units int64
		for _, e := range g.Entries {
			units += e.QuantityChanged
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				g.Product.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(g.Product.Category, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", g.Product.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", len(g.Entries)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", units),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: fecha de generación.
func footerRow(data *reports.PeriodReportData) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(
			"Generado el "+data.Generated.Format("02/01/2006 15:04"),
			props.Text{Size: 7, Align: align.Right, Color: colorGray},
		)),
	)
}

func periodLabel(period string) string {
	switch period {
	case reports.PeriodWeekly:
		return "Período semanal"
	case reports.PeriodMonthly:
		return "Período mensual"
	case reports.PeriodQuarterly:
		return "Período trimestral"
	}
	return period
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
