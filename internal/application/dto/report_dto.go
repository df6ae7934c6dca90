package dto

// UsageReportRequest filtros del reporte de uso (query params).
// Category y ProductID aceptan el centinela "all" o vacío para no filtrar;
// From/To en formato 2006-01-02 acotan el rango inclusivo.
type UsageReportRequest struct {
	Category  string `query:"category"`
	ProductID string `query:"product_id"`
	From      string `query:"from"`
	To        string `query:"to"`
}

// UsageReportGroup un producto con sus entradas "used" filtradas.
type UsageReportGroup struct {
	Product ProductResponse        `json:"product"`
	Entries []HistoryEntryResponse `json:"entries"`
}

// UsageReportResponse reporte completo; Groups vacío es un resultado válido.
type UsageReportResponse struct {
	Groups []UsageReportGroup `json:"groups"`
	Total  int                `json:"total"`
}

// PeriodReportRequest body para POST /api/reports/period.
// Period: weekly | monthly | quarterly. Start en formato 2006-01-02.
type PeriodReportRequest struct {
	Period string `json:"period"`
	Start  string `json:"start"`
}
