package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/salon-api/internal/domain/entity"
	"github.com/glowdesk/salon-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

const historyColumns = `id, product_id, action, quantity_changed, reason, "timestamp", created_by`

// HistoryRepo implementación del ledger sobre PostgreSQL: tabla
// product_history separada, append-only, con FK ON DELETE CASCADE hacia
// products. Sin Update ni Delete propios.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Append persiste una entrada del ledger.
func (r *HistoryRepo) Append(entry *entity.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO product_history (id, product_id, action, quantity_changed, reason, "timestamp", created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Action, entry.QuantityChanged,
		entry.Reason, entry.Timestamp, createdBy,
	)
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// ListByProduct entradas de un producto en orden cronológico, con rango
// de fechas opcional inclusivo.
func (r *HistoryRepo) ListByProduct(productID string, from, to *time.Time) ([]*entity.HistoryEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM product_history WHERE product_id = $1`
	args := []any{productID}
	query, args = appendDateRange(query, args, from, to)
	query += ` ORDER BY "timestamp", id`
	return r.scanMany(query, args...)
}

// ListAll todas las entradas en orden cronológico, con rango opcional.
func (r *HistoryRepo) ListAll(from, to *time.Time) ([]*entity.HistoryEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM product_history WHERE true`
	args := []any{}
	query, args = appendDateRange(query, args, from, to)
	query += ` ORDER BY "timestamp", id`
	return r.scanMany(query, args...)
}

func appendDateRange(query string, args []any, from, to *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND "timestamp" >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND "timestamp" <= $%d`, len(args))
	}
	return query, args
}

func (r *HistoryRepo) scanMany(query string, args ...any) ([]*entity.HistoryEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoryEntry
	for rows.Next() {
		var e entity.HistoryEntry
		var createdBy *string
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Action, &e.QuantityChanged,
			&e.Reason, &e.Timestamp, &createdBy); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if createdBy != nil {
			e.CreatedBy = *createdBy
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
