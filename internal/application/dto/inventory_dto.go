package dto

import "time"

// RecordUsageRequest body para POST /api/inventory/usage.
type RecordUsageRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// RestockRequest body para POST /api/inventory/restock.
type RestockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// HistoryEntryResponse una entrada del ledger de un producto.
type HistoryEntryResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Action          string    `json:"action"`
	QuantityChanged int64     `json:"quantity_changed"`
	Reason          string    `json:"reason,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// MovementResponse producto actualizado + entrada recién appendeada.
// Los dos cambian juntos o no cambia ninguno.
type MovementResponse struct {
	Product ProductResponse      `json:"product"`
	Entry   HistoryEntryResponse `json:"entry"`
}

// CategoryListResponse lista de categorías derivada del snapshot actual.
// Fallback indica que ningún producto aportó categoría y solo se muestra
// la lista predefinida (estado informativo, no error).
type CategoryListResponse struct {
	Categories []string `json:"categories"`
	Fallback   bool     `json:"fallback"`
}
