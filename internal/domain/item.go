package domain

// MagicItem is a single inventory record. Weight, Durability and RarityValue
// are generated once at creation and never rewritten.
type MagicItem struct {
	ID             int            `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Description    *string        `json:"description" db:"description"`
	Level          *int           `json:"level" db:"level"`
	Type           *string        `json:"type" db:"type"`
	Category       *string        `json:"category" db:"category"`
	RarityValue    float64        `json:"rarity_value" db:"rarity_value"`
	RarityCategory RarityCategory `json:"rarity_category"` // Derived from RarityValue on read, not stored
	Weight         float64        `json:"weight" db:"weight"`
	Value          *int           `json:"value" db:"value"`
	Durability     float64        `json:"durability" db:"durability"`
	Stock          int            `json:"stock" db:"stock"`
}

// CreateItemRequest is the client payload for a new item.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
	Level       *int    `json:"level" validate:"omitempty,gte=0"`
	Type        *string `json:"type" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Value       *int    `json:"value" validate:"omitempty,gte=0"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
}

// UpdateItemRequest carries a partial update. A nil field is left untouched;
// an explicit JSON null decodes to nil as well, so both are dropped.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Level       *int    `json:"level" validate:"omitempty,gte=0"`
	Type        *string `json:"type" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Value       *int    `json:"value" validate:"omitempty,gte=0"`
	Stock       *int    `json:"stock"`
}

// Fields returns the supplied fields as allow-listed column assignments,
// in column order.
func (r UpdateItemRequest) Fields() ItemFields {
	var fields ItemFields
	if r.Name != nil {
		fields = append(fields, ItemField{Column: ColumnName, Value: *r.Name})
	}
	if r.Description != nil {
		fields = append(fields, ItemField{Column: ColumnDescription, Value: *r.Description})
	}
	if r.Level != nil {
		fields = append(fields, ItemField{Column: ColumnLevel, Value: *r.Level})
	}
	if r.Type != nil {
		fields = append(fields, ItemField{Column: ColumnType, Value: *r.Type})
	}
	if r.Category != nil {
		fields = append(fields, ItemField{Column: ColumnCategory, Value: *r.Category})
	}
	if r.Value != nil {
		fields = append(fields, ItemField{Column: ColumnValue, Value: *r.Value})
	}
	if r.Stock != nil {
		fields = append(fields, ItemField{Column: ColumnStock, Value: *r.Stock})
	}
	return fields
}

// ItemField is one column assignment of a partial update.
type ItemField struct {
	Column string
	Value  interface{}
}

// ItemFields is an ordered set of column assignments.
type ItemFields []ItemField

// Columns of the magic_items table in scan order.
const (
	ColumnID          = "id"
	ColumnName        = "name"
	ColumnDescription = "description"
	ColumnLevel       = "level"
	ColumnType        = "type"
	ColumnCategory    = "category"
	ColumnRarityValue = "rarity_value"
	ColumnWeight      = "weight"
	ColumnValue       = "value"
	ColumnDurability  = "durability"
	ColumnStock       = "stock"
)

// ItemColumns lists every column of magic_items in the order rows are scanned.
var ItemColumns = []string{
	ColumnID,
	ColumnName,
	ColumnDescription,
	ColumnLevel,
	ColumnType,
	ColumnCategory,
	ColumnRarityValue,
	ColumnWeight,
	ColumnValue,
	ColumnDurability,
	ColumnStock,
}

// UpdatableColumns is the allow-list for partial updates. Generated fields
// and the id are deliberately absent.
var UpdatableColumns = map[string]bool{
	ColumnName:        true,
	ColumnDescription: true,
	ColumnLevel:       true,
	ColumnType:        true,
	ColumnCategory:    true,
	ColumnValue:       true,
	ColumnStock:       true,
}

// DefaultStock is applied when a create request does not carry a stock count.
const DefaultStock = 1

// StockDirection selects whether a stock adjustment adds or removes units.
type StockDirection string

const (
	StockIncrease StockDirection = "increase"
	StockDecrease StockDirection = "decrease"
)

// IsValid reports whether d is a known direction.
func (d StockDirection) IsValid() bool {
	return d == StockIncrease || d == StockDecrease
}

// RarityCategory buckets a rarity value into a named tier.
type RarityCategory string

const (
	RarityCommon    RarityCategory = "common"
	RarityUncommon  RarityCategory = "uncommon"
	RarityRare      RarityCategory = "rare"
	RarityEpic      RarityCategory = "epic"
	RarityLegendary RarityCategory = "legendary"
)

// Lower bounds (inclusive) of each rarity tier above common
const (
	RarityThresholdUncommon  = 50.0
	RarityThresholdRare      = 75.0
	RarityThresholdEpic      = 90.0
	RarityThresholdLegendary = 98.0
)

// RarityCategoryFor maps a rarity value in [0, 100] to its tier.
func RarityCategoryFor(rarity float64) RarityCategory {
	switch {
	case rarity >= RarityThresholdLegendary:
		return RarityLegendary
	case rarity >= RarityThresholdEpic:
		return RarityEpic
	case rarity >= RarityThresholdRare:
		return RarityRare
	case rarity >= RarityThresholdUncommon:
		return RarityUncommon
	default:
		return RarityCommon
	}
}
