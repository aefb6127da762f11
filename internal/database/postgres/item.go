package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/repository"
)

// ItemRepository implements repository.Item for PostgreSQL.
// Every method borrows one pooled connection for its statement and returns it
// before the method returns, on success and on error.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) repository.Item {
	return &ItemRepository{pool: pool}
}

// Create inserts the item with its generated fields and returns the stored row
func (r *ItemRepository) Create(ctx context.Context, item *domain.MagicItem) (*domain.MagicItem, error) {
	if item == nil || item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError(opBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	created, err := scanItem(tx.QueryRow(ctx, queryInsertItem,
		item.Name,
		item.Description,
		item.Level,
		item.Type,
		item.Category,
		item.RarityValue,
		item.Weight,
		item.Value,
		item.Durability,
		item.Stock,
	))
	if err != nil {
		return nil, domain.NewDatabaseError(opInsertItem, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.NewDatabaseError(opCommitTx, err)
	}

	return &created, nil
}

// GetAll returns every row; an empty table yields an empty slice
func (r *ItemRepository) GetAll(ctx context.Context) ([]domain.MagicItem, error) {
	return r.query(ctx, opListItems, querySelectItems)
}

// GetByID returns the item or nil when no row matches
func (r *ItemRepository) GetByID(ctx context.Context, id int) (*domain.MagicItem, error) {
	return scanOptionalItem(r.pool.QueryRow(ctx, querySelectItemByID, id), opGetItem)
}

// Update assigns the given columns and returns the updated row, or nil when
// the id does not exist. An empty field set is rejected before reaching the database.
func (r *ItemRepository) Update(ctx context.Context, id int, fields domain.ItemFields) (*domain.MagicItem, error) {
	query, args, err := buildUpdateQuery(id, fields)
	if err != nil {
		return nil, err
	}
	return scanOptionalItem(r.pool.QueryRow(ctx, query, args...), opUpdateItem)
}

// UpdateStock shifts stock by quantity in one atomic statement
func (r *ItemRepository) UpdateStock(ctx context.Context, id, quantity int, direction domain.StockDirection) (*domain.MagicItem, error) {
	var query string
	switch direction {
	case domain.StockIncrease:
		query = queryIncreaseStock
	case domain.StockDecrease:
		query = queryDecreaseStock
	default:
		return nil, fmt.Errorf("%w: unknown stock direction %q", domain.ErrInvalidInput, direction)
	}

	return scanOptionalItem(r.pool.QueryRow(ctx, query, quantity, id), opUpdateStock)
}

// Delete removes the row and returns it, or nil when the id does not exist
func (r *ItemRepository) Delete(ctx context.Context, id int) (*domain.MagicItem, error) {
	return scanOptionalItem(r.pool.QueryRow(ctx, queryDeleteItem, id), opDeleteItem)
}

// Search returns the rows matching every supplied predicate
func (r *ItemRepository) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.MagicItem, error) {
	query, args := buildSearchQuery(criteria)
	return r.query(ctx, opSearchItems, query, args...)
}

func (r *ItemRepository) query(ctx context.Context, op, sql string, args ...any) ([]domain.MagicItem, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, domain.NewDatabaseError(op, err)
	}

	items, err := pgx.CollectRows(rows, scanItemRow)
	if err != nil {
		return nil, domain.NewDatabaseError(op, err)
	}
	if items == nil {
		items = []domain.MagicItem{}
	}
	return items, nil
}
