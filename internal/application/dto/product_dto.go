package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es el
// stock inicial: si es mayor que cero, el alta siembra el ledger con una
// entrada "restocked" equivalente.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// UpdateProductRequest entrada para actualizar metadatos (sin Quantity,
// que se maneja vía movimientos de uso/reposición).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Supplier    *string          `json:"supplier"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BulkDeleteRequest body para POST /api/products/bulk-delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResponse resultado del borrado masivo (todo-o-nada).
type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
