// Package domain contains the entities shared by the use cases, integrators and handlers.
package domain

import "time"

// SalesRecord is one day of sales for a SKU in a store. The uniqueness key in the
// table store is (date, store_id, sku_id).
type SalesRecord struct {
	Date      time.Time `json:"date"`
	StoreID   string    `json:"store_id"`
	SKUID     string    `json:"sku_id"`
	UnitsSold int       `json:"units_sold"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Key returns the uniqueness key used for upserts.
func (r SalesRecord) Key() string {
	return r.Date.Format(time.DateOnly) + "_" + r.StoreID + "_" + r.SKUID
}

// SalesEntry is a manually typed row, kept as raw strings until it is filtered.
type SalesEntry struct {
	Date      string `json:"date"`
	StoreID   string `json:"store_id"`
	SKUID     string `json:"sku_id"`
	UnitsSold int    `json:"units_sold"`
}

// ValidationError points at a single failing field of a CSV row.
// Row is 1-based and excludes the header.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UpsertResult mirrors the bulk upsert response of the table store.
type UpsertResult struct {
	Success  bool     `json:"success"`
	Inserted int      `json:"inserted"`
	Updated  int      `json:"updated"`
	Errors   []string `json:"errors"`
}

// Total is the number of rows the store accepted.
func (r UpsertResult) Total() int {
	return r.Inserted + r.Updated
}
