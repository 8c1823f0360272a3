package forecasting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/forecaster.go -package=mocks

const ForecastOrderReason = "AI forecast recommendation"

type Forecaster interface {
	List(ctx context.Context) ([]domain.ForecastView, error)
	CreatePurchaseOrder(ctx context.Context, storeID, skuID string) (*domain.ReplenishmentAction, error)
}

type Service struct {
	boltic boltic.BolticIntegrator
	now    func() time.Time
}

func NewService(bolticService boltic.BolticIntegrator) *Service {
	return &Service{
		boltic: bolticService,
		now:    time.Now,
	}
}

// List joins every forecast with its inventory row.
func (s *Service) List(ctx context.Context) ([]domain.ForecastView, error) {
	forecasts, inventory, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	byKey := indexInventory(inventory)

	views := make([]domain.ForecastView, 0, len(forecasts))
	for _, forecast := range forecasts {
		view := domain.ForecastView{
			Forecast: forecast,
			Insights: Insights(forecast),
		}
		if item, ok := byKey[forecast.Key()]; ok {
			view.Inventory = &item
			view.NeedsOrder = item.IsLowStock()
		}
		views = append(views, view)
	}

	return views, nil
}

// CreatePurchaseOrder records an order_request for the latest forecast of the item.
func (s *Service) CreatePurchaseOrder(ctx context.Context, storeID, skuID string) (*domain.ReplenishmentAction, error) {
	forecasts, inventory, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	key := domain.InventoryKey(storeID, skuID)
	forecast, ok := latestForecast(forecasts, key)
	if !ok {
		return nil, fmt.Errorf("forecast for %s: %w", key, domain.ErrNotFound)
	}
	if forecast.RecommendedOrderQty <= 0 {
		return nil, fmt.Errorf("%w: forecast for %s recommends no order", domain.ErrInvalidInput, key)
	}

	vendor := domain.UnknownVendor
	if item, ok := indexInventory(inventory)[key]; ok && item.VendorEmail != "" {
		vendor = item.VendorEmail
	}

	action := domain.ReplenishmentAction{
		ActionTS:   s.now().UTC(),
		StoreID:    forecast.StoreID,
		SKUID:      forecast.SKUID,
		ActionType: domain.ActionTypeOrderRequest,
		Status:     domain.ReplenishmentStatusGenerated,
		Details: map[string]any{
			"order_qty":    forecast.RecommendedOrderQty,
			"vendor":       vendor,
			"reason":       ForecastOrderReason,
			"forecast_run": forecast.RunTS,
		},
	}

	if err := s.boltic.InsertReplenishmentActions(ctx, []domain.ReplenishmentAction{action}); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store_id":  storeID,
		"sku_id":    skuID,
		"order_qty": forecast.RecommendedOrderQty,
	}).Info("forecast: purchase order created")

	return &action, nil
}

// Insights renders the reasoning of a forecast as display lines.
func Insights(f domain.Forecast) []string {
	promo := "No"
	if f.Reasoning.PromoActive {
		promo = "Yes"
	}

	weather := f.Reasoning.WeatherImpact
	if weather == "" {
		weather = "none"
	}

	boost := utils.RoundWithTwoDecimalPlace((f.Reasoning.WeekendBoost - 1) * 100)

	return []string{
		fmt.Sprintf("Avg daily sales: %s units", strconv.FormatFloat(f.Reasoning.AvgDailySales, 'f', -1, 64)),
		fmt.Sprintf("Weekend boost: %.0f%%", boost),
		fmt.Sprintf("Promo active: %s", promo),
		fmt.Sprintf("Weather impact: %s", weather),
		fmt.Sprintf("%d-day forecast total: %d units", f.HorizonDays, f.TotalUnits()),
	}
}

func (s *Service) load(ctx context.Context) ([]domain.Forecast, []domain.InventorySnapshot, error) {
	var (
		forecasts []domain.Forecast
		inventory []domain.InventorySnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		forecasts, err = s.boltic.ListForecasts(gctx)
		return err
	})
	g.Go(func() (err error) {
		inventory, err = s.boltic.ListInventory(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return forecasts, inventory, nil
}

func indexInventory(items []domain.InventorySnapshot) map[string]domain.InventorySnapshot {
	byKey := make(map[string]domain.InventorySnapshot, len(items))
	for _, item := range items {
		byKey[item.Key()] = item
	}
	return byKey
}

// latestForecast picks the forecast with the greatest run_ts for key. RFC3339
// timestamps in UTC compare correctly as strings.
func latestForecast(forecasts []domain.Forecast, key string) (domain.Forecast, bool) {
	var (
		latest domain.Forecast
		found  bool
	)
	for _, f := range forecasts {
		if f.Key() != key {
			continue
		}
		if !found || f.RunTS > latest.RunTS {
			latest = f
			found = true
		}
	}
	return latest, found
}
