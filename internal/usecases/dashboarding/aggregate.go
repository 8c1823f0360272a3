package dashboarding

import (
	"sort"

	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

// CountLowStock counts items strictly below their safety stock.
func CountLowStock(items []domain.InventorySnapshot) int {
	count := 0
	for _, item := range items {
		if item.IsLowStock() {
			count++
		}
	}
	return count
}

// CountPending counts replenishment actions still waiting on the workflow.
func CountPending(actions []domain.ReplenishmentAction) int {
	count := 0
	for _, action := range actions {
		if action.IsOpen() {
			count++
		}
	}
	return count
}

// TopDemandSKUs sums safety_stock - on_hand_qty per SKU and returns the n largest.
// Equal scores keep the order in which the SKU first appeared.
func TopDemandSKUs(items []domain.InventorySnapshot, n int) []domain.SKUDemand {
	index := make(map[string]int)
	demand := make([]domain.SKUDemand, 0)

	for _, item := range items {
		i, seen := index[item.SKUID]
		if !seen {
			i = len(demand)
			index[item.SKUID] = i
			demand = append(demand, domain.SKUDemand{SKUID: item.SKUID})
		}
		demand[i].EstimatedSales += item.Shortfall()
	}

	sort.SliceStable(demand, func(a, b int) bool {
		return demand[a].EstimatedSales > demand[b].EstimatedSales
	})

	if n >= 0 && len(demand) > n {
		demand = demand[:n]
	}
	return demand
}
