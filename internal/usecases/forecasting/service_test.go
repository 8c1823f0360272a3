package forecasting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolticmocks "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/mocks"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var laysForecast = domain.Forecast{
	RunTS:               "2025-12-09T10:00:00Z",
	StoreID:             "STORE_DELHI_NCR_01",
	SKUID:               "SNK-LAYS-CLSC-52",
	HorizonDays:         7,
	RecommendedOrderQty: 48,
	DailyForecast: []domain.DailyForecast{
		{Day: "Mon", Units: 6}, {Day: "Tue", Units: 7}, {Day: "Wed", Units: 6},
		{Day: "Thu", Units: 7}, {Day: "Fri", Units: 8}, {Day: "Sat", Units: 10}, {Day: "Sun", Units: 9},
	},
	Reasoning: domain.Reasoning{AvgDailySales: 7.5, WeekendBoost: 1.3, PromoActive: false, WeatherImpact: "neutral"},
}

var laysStock = domain.InventorySnapshot{
	StoreID:         "STORE_DELHI_NCR_01",
	SKUID:           "SNK-LAYS-CLSC-52",
	OnHandQty:       24,
	SafetyStock:     30,
	ReorderMultiple: 24,
	VendorEmail:     "snacks-vendor@wholesale.com",
}

func TestInsights(t *testing.T) {
	assert.Equal(t, []string{
		"Avg daily sales: 7.5 units",
		"Weekend boost: 30%",
		"Promo active: No",
		"Weather impact: neutral",
		"7-day forecast total: 53 units",
	}, Insights(laysForecast))
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	other := laysForecast
	other.StoreID = "STORE_MUMBAI_01"

	bolticMock := bolticmocks.NewMockBolticIntegrator(ctrl)
	bolticMock.EXPECT().ListForecasts(gomock.Any()).Return([]domain.Forecast{laysForecast, other}, nil)
	bolticMock.EXPECT().ListInventory(gomock.Any()).Return([]domain.InventorySnapshot{laysStock}, nil)

	views, err := NewService(bolticMock).List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].NeedsOrder)
	require.NotNil(t, views[0].Inventory)
	assert.Equal(t, 24, views[0].Inventory.OnHandQty)
	assert.False(t, views[1].NeedsOrder)
	assert.Nil(t, views[1].Inventory)
	assert.Len(t, views[1].Insights, 5)
}

func TestService_CreatePurchaseOrder(t *testing.T) {
	now := time.Date(2025, 12, 9, 11, 0, 0, 0, time.UTC)
	older := laysForecast
	older.RunTS = "2025-12-02T10:00:00Z"
	older.RecommendedOrderQty = 24

	tests := []struct {
		name      string
		inventory []domain.InventorySnapshot
		forecasts []domain.Forecast
		setup     func(b *bolticmocks.MockBolticIntegrator)
		validate  func(t *testing.T, action *domain.ReplenishmentAction, err error)
	}{
		{
			name:      "uses the latest forecast and the vendor email",
			inventory: []domain.InventorySnapshot{laysStock},
			forecasts: []domain.Forecast{older, laysForecast},
			setup: func(b *bolticmocks.MockBolticIntegrator) {
				b.EXPECT().InsertReplenishmentActions(gomock.Any(), []domain.ReplenishmentAction{{
					ActionTS:   now,
					StoreID:    "STORE_DELHI_NCR_01",
					SKUID:      "SNK-LAYS-CLSC-52",
					ActionType: "order_request",
					Status:     domain.ReplenishmentStatusGenerated,
					Details: map[string]any{
						"order_qty":    48,
						"vendor":       "snacks-vendor@wholesale.com",
						"reason":       "AI forecast recommendation",
						"forecast_run": "2025-12-09T10:00:00Z",
					},
				}}).Return(nil)
			},
			validate: func(t *testing.T, action *domain.ReplenishmentAction, err error) {
				require.NoError(t, err)
				assert.Equal(t, 48, action.Details["order_qty"])
			},
		},
		{
			name:      "vendor falls back to unknown",
			inventory: nil,
			forecasts: []domain.Forecast{laysForecast},
			setup: func(b *bolticmocks.MockBolticIntegrator) {
				b.EXPECT().InsertReplenishmentActions(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, action *domain.ReplenishmentAction, err error) {
				require.NoError(t, err)
				assert.Equal(t, "unknown", action.Details["vendor"])
			},
		},
		{
			name:      "no forecast for the item",
			forecasts: []domain.Forecast{},
			setup:     func(_ *bolticmocks.MockBolticIntegrator) {},
			validate: func(t *testing.T, action *domain.ReplenishmentAction, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
		{
			name:      "insert failure",
			forecasts: []domain.Forecast{laysForecast},
			setup: func(b *bolticmocks.MockBolticIntegrator) {
				b.EXPECT().InsertReplenishmentActions(gomock.Any(), gomock.Any()).Return(errors.New("table store down"))
			},
			validate: func(t *testing.T, action *domain.ReplenishmentAction, err error) {
				assert.EqualError(t, err, "table store down")
				assert.Nil(t, action)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bolticMock := bolticmocks.NewMockBolticIntegrator(ctrl)
			bolticMock.EXPECT().ListForecasts(gomock.Any()).Return(tt.forecasts, nil)
			bolticMock.EXPECT().ListInventory(gomock.Any()).Return(tt.inventory, nil)
			tt.setup(bolticMock)

			service := NewService(bolticMock)
			service.now = func() time.Time { return now }

			action, err := service.CreatePurchaseOrder(context.Background(), "STORE_DELHI_NCR_01", "SNK-LAYS-CLSC-52")
			tt.validate(t, action, err)
		})
	}
}
