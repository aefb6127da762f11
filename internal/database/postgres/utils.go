package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// scanItem reads one row in domain.ItemColumns order.
func scanItem(row pgx.Row) (domain.MagicItem, error) {
	var item domain.MagicItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Level,
		&item.Type,
		&item.Category,
		&item.RarityValue,
		&item.Weight,
		&item.Value,
		&item.Durability,
		&item.Stock,
	)
	if err != nil {
		return domain.MagicItem{}, err
	}
	item.RarityCategory = domain.RarityCategoryFor(item.RarityValue)
	return item, nil
}

// scanItemRow adapts scanItem for pgx.CollectRows.
func scanItemRow(row pgx.CollectableRow) (domain.MagicItem, error) {
	return scanItem(row)
}

// scanOptionalItem maps pgx.ErrNoRows to (nil, nil).
func scanOptionalItem(row pgx.Row, op string) (*domain.MagicItem, error) {
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError(op, err)
	}
	return &item, nil
}
