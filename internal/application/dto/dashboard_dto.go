package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del inventario para el dashboard.
// Se recalcula sobre un snapshot fresco en cada lectura.
type DashboardSummaryDTO struct {
	TotalItems int             `json:"total_items"`
	Categories int             `json:"categories"`
	LowStock   int             `json:"low_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
	UnitsUsed  int64           `json:"units_used"`
}
