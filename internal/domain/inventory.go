package domain

// StockStatus is the three-tier badge shown for an inventory row.
type StockStatus string

const (
	StockStatusDanger  StockStatus = "danger"
	StockStatusWarning StockStatus = "warning"
	StockStatusSafe    StockStatus = "safe"
)

const warningStockLevel = 1.2

type Store struct {
	StoreID   string `json:"store_id" mapstructure:"store_id"`
	StoreName string `json:"store_name" mapstructure:"store_name"`
	City      string `json:"city" mapstructure:"city"`
	Region    string `json:"region" mapstructure:"region"`
}

type SKU struct {
	SKUID    string `json:"sku_id" mapstructure:"sku_id"`
	SKUName  string `json:"sku_name" mapstructure:"sku_name"`
	Category string `json:"category" mapstructure:"category"`
	UOM      string `json:"uom" mapstructure:"uom"`
}

// InventorySnapshot is the current stock position of a SKU in a store.
type InventorySnapshot struct {
	StoreID         string `json:"store_id" mapstructure:"store_id"`
	SKUID           string `json:"sku_id" mapstructure:"sku_id"`
	OnHandQty       int    `json:"on_hand_qty" mapstructure:"on_hand_qty"`
	SafetyStock     int    `json:"safety_stock" mapstructure:"safety_stock"`
	ReorderMultiple int    `json:"reorder_multiple" mapstructure:"reorder_multiple"`
	VendorEmail     string `json:"vendor_email" mapstructure:"vendor_email"`
}

// Key joins inventory with forecasts and replenishment actions.
func (i InventorySnapshot) Key() string {
	return InventoryKey(i.StoreID, i.SKUID)
}

func InventoryKey(storeID, skuID string) string {
	return storeID + "_" + skuID
}

// IsLowStock reports on_hand_qty < safety_stock. Equal quantities are not low stock.
func (i InventorySnapshot) IsLowStock() bool {
	return i.OnHandQty < i.SafetyStock
}

// Shortfall is safety_stock - on_hand_qty, negative when above the safety line.
func (i InventorySnapshot) Shortfall() int {
	return i.SafetyStock - i.OnHandQty
}

// StockLevel is on_hand / safety. A zero safety stock reports ok=false.
func (i InventorySnapshot) StockLevel() (float64, bool) {
	if i.SafetyStock == 0 {
		return 0, false
	}
	return float64(i.OnHandQty) / float64(i.SafetyStock), true
}

// Status maps the stock level into danger (<1.0), warning (<1.2) or safe.
// Items without a safety stock are always safe.
func (i InventorySnapshot) Status() StockStatus {
	level, ok := i.StockLevel()
	if !ok {
		return StockStatusSafe
	}

	switch {
	case level < 1:
		return StockStatusDanger
	case level < warningStockLevel:
		return StockStatusWarning
	default:
		return StockStatusSafe
	}
}

// InventoryUpdate carries the editable columns of a snapshot row. Nil fields are kept.
type InventoryUpdate struct {
	OnHandQty       *int    `json:"on_hand_qty"`
	SafetyStock     *int    `json:"safety_stock"`
	ReorderMultiple *int    `json:"reorder_multiple"`
	VendorEmail     *string `json:"vendor_email"`
}

// InventoryItemView is a snapshot row enriched for the inventory screen.
type InventoryItemView struct {
	InventorySnapshot
	StoreName string      `json:"store_name,omitempty"`
	SKUName   string      `json:"sku_name,omitempty"`
	Status    StockStatus `json:"status"`
}
