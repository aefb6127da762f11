package postgres

// Table name for magic items
const tableMagicItems = "magic_items"

// Operation labels carried by domain.DatabaseError
const (
	opInsertItem  = "failed to insert item"
	opBeginTx     = "failed to begin transaction"
	opCommitTx    = "failed to commit transaction"
	opListItems   = "failed to list items"
	opGetItem     = "failed to get item"
	opUpdateItem  = "failed to update item"
	opUpdateStock = "failed to update stock"
	opDeleteItem  = "failed to delete item"
	opSearchItems = "failed to search items"
)
