package item

// ==================== Generated Attribute Ranges ====================

// Bounds for the attributes drawn at creation. Weight and durability fall
// strictly inside their bounds; rarity value may equal its lower bound.
const (
	MinWeight = 0.1
	MaxWeight = 10.0

	MinDurability = 0.1
	MaxDurability = 0.9

	MinRarityValue = 0.0
	MaxRarityValue = 100.0
)

// ==================== Error Messages ====================

// Operation error messages
const (
	ErrMsgCreateItemFailed    = "failed to create item: %w"
	ErrMsgCreateItemAtIndex   = "failed to create item at index %d: %w"
	ErrMsgListItemsFailed     = "failed to list items: %w"
	ErrMsgGetItemFailed       = "failed to get item %d: %w"
	ErrMsgUpdateItemFailed    = "failed to update item %d: %w"
	ErrMsgDeleteItemFailed    = "failed to delete item %d: %w"
	ErrMsgAdjustStockFailed   = "failed to %s stock of item %d: %w"
	ErrMsgSearchItemsFailed   = "failed to search items: %w"
	ErrMsgStatisticsFailed    = "failed to compute statistics: %w"
	ErrFmtItemNotFound        = "%w: id %d"
	ErrFmtQuantityNotPositive = "%w: quantity must be greater than zero, got %d"
	ErrFmtUnknownDirection    = "%w: unknown stock direction %q"
)

// ==================== Log Messages ====================

const (
	LogMsgItemCreated      = "Item created"
	LogMsgItemsCreated     = "Items created"
	LogMsgItemUpdated      = "Item updated"
	LogMsgEmptyUpdate      = "Update carried no fields, returning current item"
	LogMsgItemDeleted      = "Item deleted"
	LogMsgStockAdjusted    = "Stock adjusted"
	LogMsgNegativeStock    = "Stock dropped below zero"
	LogMsgSearchPerformed  = "Item search performed"
	LogMsgRepositoryFailed = "Repository call failed"
)
