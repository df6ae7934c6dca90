package inventory

import (
	"context"

	"github.com/glowdesk/salon-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de cantidad y el
// append al ledger se apliquen juntos o ninguno (Commit/Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		historyRepo repository.HistoryRepository,
	) error) error
}
