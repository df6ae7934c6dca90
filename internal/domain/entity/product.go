package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario del salón.
// Quantity solo se modifica vía movimientos de uso/reposición (ledger);
// los demás campos son metadatos editables por el CRUD.
type Product struct {
	ID          string
	Name        string
	Quantity    int64           // unidades en stock, nunca negativo
	Price       decimal.Decimal // precio unitario de venta
	Supplier    string
	Category    string // idealmente una de las categorías predefinidas
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
