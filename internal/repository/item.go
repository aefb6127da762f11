package repository

import (
	"context"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
)

// Item defines the persistence operations for magic items.
// Lookups by id return (nil, nil) when no row matches.
type Item interface {
	Create(ctx context.Context, item *domain.MagicItem) (*domain.MagicItem, error)
	GetAll(ctx context.Context) ([]domain.MagicItem, error)
	GetByID(ctx context.Context, id int) (*domain.MagicItem, error)
	Update(ctx context.Context, id int, fields domain.ItemFields) (*domain.MagicItem, error)
	UpdateStock(ctx context.Context, id, quantity int, direction domain.StockDirection) (*domain.MagicItem, error)
	Delete(ctx context.Context, id int) (*domain.MagicItem, error)
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.MagicItem, error)
}
