package repository

import (
	"time"

	"github.com/glowdesk/salon-api/internal/domain/entity"
)

// HistoryRepository define el puerto del ledger append-only de un
// producto. No hay Update ni Delete: las entradas son inmutables y se
// eliminan solo en cascada al borrar el producto.
type HistoryRepository interface {
	Append(entry *entity.HistoryEntry) error
	// ListByProduct devuelve las entradas de un producto en orden
	// cronológico, opcionalmente acotadas por rango de fechas inclusivo.
	ListByProduct(productID string, from, to *time.Time) ([]*entity.HistoryEntry, error)
	// ListAll devuelve todas las entradas (para dashboard y reportes),
	// en orden cronológico.
	ListAll(from, to *time.Time) ([]*entity.HistoryEntry, error)
}
