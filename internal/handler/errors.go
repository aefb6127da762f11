package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Request body messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgEmptyRequestBody      = "Request body is empty"

	// Parameter messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidIntParam   = "Invalid %s: must be an integer"
	ErrMsgInvalidQuantity   = "Quantity must be a positive integer"

	// Operation messages, logged with the underlying error
	ErrMsgCreateItemFailed    = "Failed to create item"
	ErrMsgListItemsFailed     = "Failed to list items"
	ErrMsgGetItemFailed       = "Failed to get item"
	ErrMsgUpdateItemFailed    = "Failed to update item"
	ErrMsgDeleteItemFailed    = "Failed to delete item"
	ErrMsgAdjustStockFailed   = "Failed to adjust stock"
	ErrMsgSearchItemsFailed   = "Failed to search items"
	ErrMsgGetStatisticsFailed = "Failed to compute statistics"
)

// Success messages
const (
	MsgWelcome     = "Welcome to my Magic Items inventory! "
	MsgItemDeleted = "Item deleted successfully"
)

// Parameter names
const (
	ParamID       = "id"
	ParamQuantity = "quantity"

	QueryName     = "name"
	QueryCategory = "category"
	QueryType     = "type"
	QueryMinLevel = "min_level"
	QueryMaxLevel = "max_level"
	QueryMinValue = "min_value"
	QueryMaxValue = "max_value"
	QueryMinStock = "min_stock"
	QueryMaxStock = "max_stock"
)
