package boltic

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/bolticclient"
	bolticdomain "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/domain"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator.go -package=mocks

const (
	TableStoreMaster          = "store_master"
	TableSKUMaster            = "sku_master"
	TableInventorySnapshot    = "inventory_snapshot"
	TableReplenishmentActions = "replenishment_actions"
	TableDemandForecast       = "demand_forecast"
	TableSalesHistory         = "sales_history"
)

type BolticIntegrator interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListSKUs(ctx context.Context) ([]domain.SKU, error)
	ListInventory(ctx context.Context) ([]domain.InventorySnapshot, error)
	ListReplenishmentActions(ctx context.Context) ([]domain.ReplenishmentAction, error)
	ListForecasts(ctx context.Context) ([]domain.Forecast, error)
	ListWorkflowRuns(ctx context.Context, workflow string, limit int) ([]domain.WorkflowRun, error)
	UpsertSales(ctx context.Context, records []domain.SalesRecord) (*domain.UpsertResult, error)
	UpsertInventory(ctx context.Context, items []domain.InventorySnapshot) (*domain.UpsertResult, error)
	InsertReplenishmentActions(ctx context.Context, actions []domain.ReplenishmentAction) error
	TriggerWorkflow(ctx context.Context, workflow string, payload map[string]any) error
	SubmitSalesEntries(ctx context.Context, entries []domain.SalesEntry) error
}

type BolticService struct {
	cfg    *config.Config
	Client bolticclient.Client
}

func New(cfg *config.Config, client bolticclient.Client) BolticIntegrator {
	return &BolticService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BolticService) ListStores(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	if err := s.listTable(ctx, TableStoreMaster, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (s *BolticService) ListSKUs(ctx context.Context) ([]domain.SKU, error) {
	var skus []domain.SKU
	if err := s.listTable(ctx, TableSKUMaster, &skus); err != nil {
		return nil, err
	}
	return skus, nil
}

func (s *BolticService) ListInventory(ctx context.Context) ([]domain.InventorySnapshot, error) {
	var items []domain.InventorySnapshot
	if err := s.listTable(ctx, TableInventorySnapshot, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *BolticService) ListReplenishmentActions(ctx context.Context) ([]domain.ReplenishmentAction, error) {
	var actions []domain.ReplenishmentAction
	if err := s.listTable(ctx, TableReplenishmentActions, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

func (s *BolticService) ListForecasts(ctx context.Context) ([]domain.Forecast, error) {
	var forecasts []domain.Forecast
	if err := s.listTable(ctx, TableDemandForecast, &forecasts); err != nil {
		return nil, err
	}
	return forecasts, nil
}

func (s *BolticService) ListWorkflowRuns(ctx context.Context, workflow string, limit int) ([]domain.WorkflowRun, error) {
	rows, err := s.Client.ListWorkflowRuns(ctx, workflow, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "list runs of workflow %s", workflow)
	}

	runs := make([]domain.WorkflowRun, 0, len(rows))
	if err := decodeRows(rows, &runs); err != nil {
		return nil, errors.Wrapf(err, "decode runs of workflow %s", workflow)
	}

	return runs, nil
}

func (s *BolticService) UpsertSales(ctx context.Context, records []domain.SalesRecord) (*domain.UpsertResult, error) {
	rows := make([]bolticdomain.SalesRow, 0, len(records))
	for _, record := range records {
		row := bolticdomain.SalesRow{
			Date:      record.Date.Format(time.DateOnly),
			StoreID:   record.StoreID,
			SKUID:     record.SKUID,
			UnitsSold: record.UnitsSold,
		}
		if !record.UpdatedAt.IsZero() {
			row.UpdatedAt = record.UpdatedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	return s.upsert(ctx, TableSalesHistory, rows)
}

func (s *BolticService) UpsertInventory(ctx context.Context, items []domain.InventorySnapshot) (*domain.UpsertResult, error) {
	rows := make([]bolticdomain.InventoryRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, bolticdomain.InventoryRow{
			StoreID:         item.StoreID,
			SKUID:           item.SKUID,
			OnHandQty:       item.OnHandQty,
			SafetyStock:     item.SafetyStock,
			ReorderMultiple: item.ReorderMultiple,
			VendorEmail:     item.VendorEmail,
		})
	}

	return s.upsert(ctx, TableInventorySnapshot, rows)
}

func (s *BolticService) InsertReplenishmentActions(ctx context.Context, actions []domain.ReplenishmentAction) error {
	rows := make([]bolticdomain.ReplenishmentRow, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, bolticdomain.ReplenishmentRow{
			ActionTS:   action.ActionTS.UTC().Format(time.RFC3339),
			StoreID:    action.StoreID,
			SKUID:      action.SKUID,
			ActionType: action.ActionType,
			Status:     string(action.Status),
			Details:    action.Details,
		})
	}

	if err := s.Client.InsertRows(ctx, TableReplenishmentActions, rows); err != nil {
		return errors.Wrap(err, "insert replenishment actions")
	}
	return nil
}

func (s *BolticService) TriggerWorkflow(ctx context.Context, workflow string, payload map[string]any) error {
	if err := s.Client.TriggerWorkflow(ctx, workflow, payload); err != nil {
		return errors.Wrapf(err, "trigger workflow %s", workflow)
	}
	return nil
}

func (s *BolticService) SubmitSalesEntries(ctx context.Context, entries []domain.SalesEntry) error {
	sales := make([]bolticdomain.SalesRow, 0, len(entries))
	for _, entry := range entries {
		sales = append(sales, bolticdomain.SalesRow{
			Date:      entry.Date,
			StoreID:   entry.StoreID,
			SKUID:     entry.SKUID,
			UnitsSold: entry.UnitsSold,
		})
	}

	request := bolticdomain.SalesEntryRequest{
		Payload: bolticdomain.SalesEntryPayload{Sales: sales},
	}

	if err := s.Client.PostSalesEntries(ctx, request); err != nil {
		return errors.Wrap(err, "submit sales entries")
	}
	return nil
}

func (s *BolticService) upsert(ctx context.Context, table string, rows any) (*domain.UpsertResult, error) {
	resp, err := s.Client.UpsertRows(ctx, table, rows)
	if err != nil {
		return nil, errors.Wrapf(err, "upsert %s", table)
	}

	result := &domain.UpsertResult{
		Success:  resp.Success,
		Inserted: resp.Inserted,
		Updated:  resp.Updated,
		Errors:   make([]string, 0, len(resp.Errors)),
	}
	for _, e := range resp.Errors {
		result.Errors = append(result.Errors, fmt.Sprint(e))
	}

	return result, nil
}

func (s *BolticService) listTable(ctx context.Context, table string, out any) error {
	rows, err := s.Client.ListRecords(ctx, table)
	if err != nil {
		return errors.Wrapf(err, "list %s", table)
	}

	if err := decodeRows(rows, out); err != nil {
		return errors.Wrapf(err, "decode %s", table)
	}
	return nil
}

// decodeRows maps untyped rows onto typed slices. Weak typing is on because the
// table store returns numeric columns as strings for some sources.
func decodeRows(rows []bolticdomain.Row, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return err
	}

	input := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		input = append(input, row)
	}

	return decoder.Decode(input)
}
