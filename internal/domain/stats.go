package domain

// InventoryStatistics summarises every item in the store. Extremal items are
// nil when there is nothing to compare.
type InventoryStatistics struct {
	TotalItems        int        `json:"total_items"`
	TotalStock        int        `json:"total_stock"`
	TotalValue        int        `json:"total_value"`
	MostExpensiveItem *MagicItem `json:"most_expensive_item"`
	CheapestItem      *MagicItem `json:"cheapest_item"`
	MostStockedItem   *MagicItem `json:"most_stocked_item"`
	HighestLevelItem  *MagicItem `json:"highest_level_item"`
}
