package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/salon-api/internal/domain"
	"github.com/glowdesk/salon-api/internal/domain/entity"
	"github.com/glowdesk/salon-api/internal/domain/repository"
)

// StockMovementUseCase es el único camino que modifica Quantity: registra
// usos y reposiciones de forma transaccional, con bloqueo de fila
// (SELECT FOR UPDATE) y append al ledger en la misma transacción.
type StockMovementUseCase struct {
	txRunner TxRunner
}

// NewStockMovementUseCase construye el caso de uso.
func NewStockMovementUseCase(txRunner TxRunner) *StockMovementUseCase {
	return &StockMovementUseCase{txRunner: txRunner}
}

// MovementResult producto actualizado más la entrada recién appendeada.
type MovementResult struct {
	Product *entity.Product
	Entry   *entity.HistoryEntry
}

// RecordUsage descuenta quantity unidades del producto y appendea la
// entrada "used" correspondiente, todo en una transacción.
//
// Política elegida: si quantity excede el stock actual la operación se
// rechaza con ErrInsufficientStock, nunca se recorta a cero ni se tolera
// stock negativo.
func (uc *StockMovementUseCase) RecordUsage(ctx context.Context, productID string, quantity int64, reason, userID string) (*MovementResult, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, historyRepo repository.HistoryRepository) error {
		// Bloquea la fila del producto para evitar carreras entre dos usos
		// concurrentes sobre el mismo stock.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		product.Quantity -= quantity
		product.UpdatedAt = now
		if err := productRepo.UpdateQuantity(product.ID, product.Quantity); err != nil {
			return err
		}

		entry := &entity.HistoryEntry{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			Action:          entity.ActionUsed,
			QuantityChanged: quantity,
			Reason:          reason,
			Timestamp:       now,
			CreatedBy:       userID,
		}
		if err := historyRepo.Append(entry); err != nil {
			return err
		}
		result = &MovementResult{Product: product, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Restock suma quantity unidades y appendea la entrada "restocked",
// con la misma disciplina transaccional que RecordUsage.
func (uc *StockMovementUseCase) Restock(ctx context.Context, productID string, quantity int64, reason, userID string) (*MovementResult, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, historyRepo repository.HistoryRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		product.Quantity += quantity
		product.UpdatedAt = now
		if err := productRepo.UpdateQuantity(product.ID, product.Quantity); err != nil {
			return err
		}

		entry := &entity.HistoryEntry{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			Action:          entity.ActionRestocked,
			QuantityChanged: quantity,
			Reason:          reason,
			Timestamp:       now,
			CreatedBy:       userID,
		}
		if err := historyRepo.Append(entry); err != nil {
			return err
		}
		result = &MovementResult{Product: product, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
