package bolticdomain

// Row is an untyped record as returned by the table store.
type Row map[string]any

// ListResponse is the envelope of table reads and workflow run listings.
type ListResponse struct {
	Result struct {
		Data []Row `json:"data"`
	} `json:"result"`
}

type RecordsRequest struct {
	Records any `json:"records"`
}

// UpsertResponse is returned by the bulk upsert endpoint.
type UpsertResponse struct {
	Success  bool  `json:"success"`
	Inserted int   `json:"inserted"`
	Updated  int   `json:"updated"`
	Errors   []any `json:"errors"`
}

// SalesRow is the wire shape of a sales_history record.
type SalesRow struct {
	Date      string `json:"date"`
	StoreID   string `json:"store_id"`
	SKUID     string `json:"sku_id"`
	UnitsSold int    `json:"units_sold"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SalesEntryRequest is the envelope accepted by the sales entry loop workflow.
type SalesEntryRequest struct {
	Payload SalesEntryPayload `json:"payload"`
}

type SalesEntryPayload struct {
	Sales []SalesRow `json:"sales"`
}

type InventoryRow struct {
	StoreID         string `json:"store_id"`
	SKUID           string `json:"sku_id"`
	OnHandQty       int    `json:"on_hand_qty"`
	SafetyStock     int    `json:"safety_stock"`
	ReorderMultiple int    `json:"reorder_multiple"`
	VendorEmail     string `json:"vendor_email"`
}

type ReplenishmentRow struct {
	ActionTS   string         `json:"action_ts"`
	StoreID    string         `json:"store_id"`
	SKUID      string         `json:"sku_id"`
	ActionType string         `json:"action_type"`
	Status     string         `json:"status"`
	Details    map[string]any `json:"details"`
}
