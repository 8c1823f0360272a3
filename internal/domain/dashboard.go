package domain

// SKUDemand is a naive demand-pressure score: the summed safety shortfall of a SKU.
type SKUDemand struct {
	SKUID          string `json:"sku_id"`
	EstimatedSales int    `json:"estimated_sales"`
}

type DashboardMetrics struct {
	TotalStores           int `json:"total_stores"`
	TotalSKUs             int `json:"total_skus"`
	LowStockItems         int `json:"low_stock_items"`
	PendingReplenishments int `json:"pending_replenishments"`
}

type DashboardSummary struct {
	Metrics      DashboardMetrics `json:"metrics"`
	TopSKUs      []SKUDemand      `json:"top_skus"`
	WorkflowRuns []WorkflowRun    `json:"workflow_runs"`
}
