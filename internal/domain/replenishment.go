package domain

import "time"

// ReplenishmentStatus is the lifecycle of an action. Transitions past "generated" are
// owned by the external workflow.
type ReplenishmentStatus string

const (
	ReplenishmentStatusGenerated ReplenishmentStatus = "generated"
	ReplenishmentStatusPending   ReplenishmentStatus = "pending"
	ReplenishmentStatusSent      ReplenishmentStatus = "sent"
)

const (
	ActionTypeOrderRequest = "order_request"
	ActionTypeEmail        = "email"
)

const UnknownVendor = "unknown"

type ReplenishmentAction struct {
	ActionTS   time.Time           `json:"action_ts" mapstructure:"action_ts"`
	StoreID    string              `json:"store_id" mapstructure:"store_id"`
	SKUID      string              `json:"sku_id" mapstructure:"sku_id"`
	ActionType string              `json:"action_type" mapstructure:"action_type"`
	Status     ReplenishmentStatus `json:"status" mapstructure:"status"`
	Details    map[string]any      `json:"details" mapstructure:"details"`
}

// IsOpen reports actions the workflow has not picked up yet.
func (a ReplenishmentAction) IsOpen() bool {
	return a.Status == ReplenishmentStatusGenerated || a.Status == ReplenishmentStatusPending
}

func (a ReplenishmentAction) Key() string {
	return InventoryKey(a.StoreID, a.SKUID)
}

// WorkflowRun is an execution record of a Boltic workflow.
type WorkflowRun struct {
	RunID         string     `json:"run_id" mapstructure:"run_id"`
	WorkflowSlug  string     `json:"workflow_slug" mapstructure:"workflow_slug"`
	Status        string     `json:"status" mapstructure:"status"`
	StartedAt     *time.Time `json:"started_at,omitempty" mapstructure:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" mapstructure:"completed_at"`
	DurationMs    int64      `json:"duration_ms" mapstructure:"duration_ms"`
	NodesExecuted int        `json:"nodes_executed" mapstructure:"nodes_executed"`
	RowsProcessed int        `json:"rows_processed,omitempty" mapstructure:"rows_processed"`
	Error         string     `json:"error,omitempty" mapstructure:"error"`
}
