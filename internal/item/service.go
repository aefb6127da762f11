package item

import (
	"context"
	"fmt"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/logger"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/metrics"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/repository"
)

// Service defines the magic item operations exposed to the HTTP layer.
// Id-keyed operations return domain.ErrItemNotFound when no row matches.
type Service interface {
	CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.MagicItem, error)
	CreateItems(ctx context.Context, reqs []domain.CreateItemRequest) ([]domain.MagicItem, error)
	GetAllItems(ctx context.Context) ([]domain.MagicItem, error)
	GetItemByID(ctx context.Context, id int) (*domain.MagicItem, error)
	UpdateItem(ctx context.Context, id int, req domain.UpdateItemRequest) (*domain.MagicItem, error)
	DeleteItem(ctx context.Context, id int) (*domain.MagicItem, error)
	AdjustStock(ctx context.Context, id, quantity int, dir domain.StockDirection) (*domain.MagicItem, error)
	SearchItems(ctx context.Context, criteria domain.SearchCriteria) ([]domain.MagicItem, error)
	GetInventoryStatistics(ctx context.Context) (*domain.InventoryStatistics, error)
}

type service struct {
	repo repository.Item
	rng  RandomSource
}

// Option configures the service
type Option func(*service)

// WithRandomSource replaces the generator used for weight, durability and rarity.
func WithRandomSource(src RandomSource) Option {
	return func(s *service) {
		if src != nil {
			s.rng = src
		}
	}
}

// NewService creates a new item service
func NewService(repo repository.Item, opts ...Option) Service {
	s := &service{
		repo: repo,
		rng:  DefaultRandomSource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateItem stores a new item with freshly generated attributes
func (s *service) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.MagicItem, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf(ErrMsgCreateItemFailed, fmt.Errorf("%w: name is required", domain.ErrInvalidInput))
	}

	attrs := drawAttributes(s.rng)
	stock := domain.DefaultStock
	if req.Stock != nil {
		stock = *req.Stock
	}

	created, err := s.repo.Create(ctx, &domain.MagicItem{
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Type:        req.Type,
		Category:    req.Category,
		RarityValue: attrs.rarityValue,
		Weight:      attrs.weight,
		Value:       req.Value,
		Durability:  attrs.durability,
		Stock:       stock,
	})
	if err != nil {
		log.Error(LogMsgRepositoryFailed, "operation", "create", "error", err)
		return nil, fmt.Errorf(ErrMsgCreateItemFailed, err)
	}

	metrics.ItemsCreated.Inc()
	log.Info(LogMsgItemCreated, "item_id", created.ID, "name", created.Name,
		"rarity", created.RarityCategory)
	return created, nil
}

// CreateItems creates each request in order and stops at the first failure.
// Items created before the failure stay stored.
func (s *service) CreateItems(ctx context.Context, reqs []domain.CreateItemRequest) ([]domain.MagicItem, error) {
	created := make([]domain.MagicItem, 0, len(reqs))
	for i, req := range reqs {
		item, err := s.CreateItem(ctx, req)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCreateItemAtIndex, i, err)
		}
		created = append(created, *item)
	}

	logger.FromContext(ctx).Info(LogMsgItemsCreated, "count", len(created))
	return created, nil
}

// GetAllItems returns every item ordered by id
func (s *service) GetAllItems(ctx context.Context) ([]domain.MagicItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// GetItemByID returns one item
func (s *service) GetItemByID(ctx context.Context, id int) (*domain.MagicItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, id, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, id)
	}
	return item, nil
}

// UpdateItem applies the non-nil fields of req. A request with no fields
// leaves the row untouched and returns it as stored.
func (s *service) UpdateItem(ctx context.Context, id int, req domain.UpdateItemRequest) (*domain.MagicItem, error) {
	log := logger.FromContext(ctx)

	fields := req.Fields()
	if len(fields) == 0 {
		log.Debug(LogMsgEmptyUpdate, "item_id", id)
		return s.GetItemByID(ctx, id)
	}

	item, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		log.Error(LogMsgRepositoryFailed, "operation", "update", "item_id", id, "error", err)
		return nil, fmt.Errorf(ErrMsgUpdateItemFailed, id, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, id)
	}

	metrics.ItemsUpdated.Inc()
	log.Info(LogMsgItemUpdated, "item_id", id, "fields", len(fields))
	return item, nil
}

// DeleteItem removes an item and returns it as it was
func (s *service) DeleteItem(ctx context.Context, id int) (*domain.MagicItem, error) {
	log := logger.FromContext(ctx)

	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error(LogMsgRepositoryFailed, "operation", "delete", "item_id", id, "error", err)
		return nil, fmt.Errorf(ErrMsgDeleteItemFailed, id, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, id)
	}

	metrics.ItemsDeleted.Inc()
	log.Info(LogMsgItemDeleted, "item_id", id, "name", item.Name)
	return item, nil
}

// AdjustStock moves stock up or down by a positive quantity. Stock is not
// floored at zero.
func (s *service) AdjustStock(ctx context.Context, id, quantity int, dir domain.StockDirection) (*domain.MagicItem, error) {
	log := logger.FromContext(ctx)

	if !dir.IsValid() {
		return nil, fmt.Errorf(ErrFmtUnknownDirection, domain.ErrInvalidInput, dir)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf(ErrFmtQuantityNotPositive, domain.ErrInvalidInput, quantity)
	}

	item, err := s.repo.UpdateStock(ctx, id, quantity, dir)
	if err != nil {
		log.Error(LogMsgRepositoryFailed, "operation", "adjust_stock", "item_id", id, "error", err)
		return nil, fmt.Errorf(ErrMsgAdjustStockFailed, dir, id, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, id)
	}

	metrics.StockAdjustments.WithLabelValues(string(dir)).Inc()
	metrics.StockUnitsAdjusted.WithLabelValues(string(dir)).Add(float64(quantity))
	log.Info(LogMsgStockAdjusted, "item_id", id, "direction", dir, "quantity", quantity, "stock", item.Stock)
	if item.Stock < 0 {
		log.Warn(LogMsgNegativeStock, "item_id", id, "stock", item.Stock)
	}
	return item, nil
}

// SearchItems returns items matching every supplied criterion
func (s *service) SearchItems(ctx context.Context, criteria domain.SearchCriteria) ([]domain.MagicItem, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	items, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSearchItemsFailed, err)
	}

	metrics.SearchesPerformed.Inc()
	logger.FromContext(ctx).Debug(LogMsgSearchPerformed, "results", len(items), "filtered", !criteria.IsEmpty())
	return items, nil
}

// GetInventoryStatistics aggregates over the full inventory
func (s *service) GetInventoryStatistics(ctx context.Context) (*domain.InventoryStatistics, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgStatisticsFailed, err)
	}
	stats := ComputeStatistics(items)
	return &stats, nil
}
