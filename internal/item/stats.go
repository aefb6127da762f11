package item

import "github.com/AngelosGi/magical-inventory-systemApi/internal/domain"

// ComputeStatistics folds items into inventory totals and extremes in a
// single pass. Comparisons are strict, so the first of several equal items
// wins. Items without a value are left out of the value figures; items
// without a level are never the highest level item.
func ComputeStatistics(items []domain.MagicItem) domain.InventoryStatistics {
	stats := domain.InventoryStatistics{TotalItems: len(items)}

	for i := range items {
		it := &items[i]

		stats.TotalStock += it.Stock

		if it.Value != nil {
			stats.TotalValue += *it.Value * it.Stock
			if stats.MostExpensiveItem == nil || *it.Value > *stats.MostExpensiveItem.Value {
				stats.MostExpensiveItem = it
			}
			if stats.CheapestItem == nil || *it.Value < *stats.CheapestItem.Value {
				stats.CheapestItem = it
			}
		}

		if stats.MostStockedItem == nil || it.Stock > stats.MostStockedItem.Stock {
			stats.MostStockedItem = it
		}

		if it.Level != nil && (stats.HighestLevelItem == nil || *it.Level > *stats.HighestLevelItem.Level) {
			stats.HighestLevelItem = it
		}
	}

	return stats
}
