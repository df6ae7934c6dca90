package entity

import "time"

// Acciones registradas en el historial de un producto.
const (
	ActionUsed      = "used"      // salida por uso en servicio
	ActionRestocked = "restocked" // entrada por reposición o stock inicial
)

// HistoryEntry es un registro inmutable del ledger de un producto:
// cada cambio de Quantity deja exactamente una entrada. Nunca se edita
// ni se reordena; la lectura es en orden cronológico de inserción.
type HistoryEntry struct {
	ID              string
	ProductID       string
	Action          string // used | restocked
	QuantityChanged int64  // magnitud del cambio, siempre positiva
	Reason          string
	Timestamp       time.Time
	CreatedBy       string // UserID
}
