package item

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.Item.
// It follows the same contract as the Postgres repository (ids from 1,
// rows ordered by id, nil for missing ids) so services and handlers can be
// exercised without a database.
type FakeRepository struct {
	mu     sync.Mutex
	items  map[int]domain.MagicItem
	nextID int

	// Err, when set, is returned by every call.
	Err error
}

// NewFakeRepository creates an empty FakeRepository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items:  make(map[int]domain.MagicItem),
		nextID: 1,
	}
}

func (f *FakeRepository) Create(ctx context.Context, item *domain.MagicItem) (*domain.MagicItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if item == nil || item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	stored := *item
	stored.ID = f.nextID
	stored.RarityCategory = domain.RarityCategoryFor(stored.RarityValue)
	f.nextID++
	f.items[stored.ID] = stored

	return &stored, nil
}

func (f *FakeRepository) GetAll(ctx context.Context) ([]domain.MagicItem, error) {
	return f.Search(ctx, domain.SearchCriteria{})
}

func (f *FakeRepository) GetByID(ctx context.Context, id int) (*domain.MagicItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *FakeRepository) Update(ctx context.Context, id int, fields domain.ItemFields) (*domain.MagicItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if len(fields) == 0 {
		return nil, domain.ErrEmptyUpdate
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}

	for _, field := range fields {
		if err := applyField(&item, field); err != nil {
			return nil, err
		}
	}
	f.items[id] = item

	return &item, nil
}

func (f *FakeRepository) UpdateStock(ctx context.Context, id, quantity int, direction domain.StockDirection) (*domain.MagicItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: unknown stock direction %q", domain.ErrInvalidInput, direction)
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}

	if direction == domain.StockIncrease {
		item.Stock += quantity
	} else {
		item.Stock -= quantity
	}
	f.items[id] = item

	return &item, nil
}

func (f *FakeRepository) Delete(ctx context.Context, id int) (*domain.MagicItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	delete(f.items, id)

	return &item, nil
}

func (f *FakeRepository) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.MagicItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	result := []domain.MagicItem{}
	for _, item := range f.items {
		if criteria.Matches(item) {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func applyField(item *domain.MagicItem, field domain.ItemField) error {
	if !domain.UpdatableColumns[field.Column] {
		return fmt.Errorf("%w: column %q cannot be updated", domain.ErrInvalidInput, field.Column)
	}

	str, isString := field.Value.(string)
	num, isInt := field.Value.(int)

	switch {
	case field.Column == domain.ColumnName && isString:
		item.Name = str
	case field.Column == domain.ColumnDescription && isString:
		item.Description = &str
	case field.Column == domain.ColumnType && isString:
		item.Type = &str
	case field.Column == domain.ColumnCategory && isString:
		item.Category = &str
	case field.Column == domain.ColumnLevel && isInt:
		item.Level = &num
	case field.Column == domain.ColumnValue && isInt:
		item.Value = &num
	case field.Column == domain.ColumnStock && isInt:
		item.Stock = num
	default:
		return fmt.Errorf("%w: column %q cannot hold %T", domain.ErrInvalidInput, field.Column, field.Value)
	}
	return nil
}
