package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct is a product pushed to the Fynd catalog. Price is the selling price.
type CatalogProduct struct {
	Name        string          `json:"name" yaml:"name"`
	Brand       string          `json:"brand" yaml:"brand"`
	Category    string          `json:"category" yaml:"category"`
	ItemCode    string          `json:"item_code" yaml:"item_code"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Size        string          `json:"size" yaml:"size"`
	Department  string          `json:"department" yaml:"department"`
}

// PlatformEvent is a webhook event received from Fynd.
type PlatformEvent struct {
	Event     EventMeta      `json:"event"`
	CompanyID int64          `json:"company_id"`
	Payload   map[string]any `json:"payload"`
}

type EventMeta struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Version  string `json:"version"`
}

// Key renders the event as "category/name/type", e.g. "company/product/create".
func (e PlatformEvent) Key() string {
	return e.Event.Category + "/" + e.Event.Name + "/" + e.Event.Type
}

// ReceivedEvent is the in-memory trace of a webhook delivery.
type ReceivedEvent struct {
	Key        string    `json:"key"`
	CompanyID  int64     `json:"company_id"`
	Forwarded  bool      `json:"forwarded"`
	Error      string    `json:"error,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// WebhookStatus reports the webhook configuration and the latest deliveries.
type WebhookStatus struct {
	Configured bool            `json:"configured"`
	Events     []string        `json:"events"`
	Recent     []ReceivedEvent `json:"recent"`
}

// CostPriceMarkup is applied to the selling price to publish the MRP of a product.
var CostPriceMarkup = decimal.NewFromFloat(1.3)

// CostPrice is the marked-up list price, rounded to paise.
func (p CatalogProduct) CostPrice() decimal.Decimal {
	return p.Price.Mul(CostPriceMarkup).Round(2)
}

type CatalogItem struct {
	UID      int64  `json:"uid"`
	Name     string `json:"name"`
	ItemCode string `json:"item_code"`
	Slug     string `json:"slug"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	IsActive bool   `json:"is_active"`
}

type CatalogPage struct {
	Items    []CatalogItem `json:"items"`
	PageNo   int           `json:"page_no"`
	PageSize int           `json:"page_size"`
	HasNext  bool          `json:"has_next"`
	Total    int           `json:"total"`
}

// PopulateSummary counts the outcome of a bulk catalog push.
type PopulateSummary struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}
