package dashboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolticmocks "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/mocks"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Boltic: config.Boltic{SalesSyncWorkflow: "A_sales_signals_sync"},
		Ingest: config.Ingest{TopSKUs: 5},
	}
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bolticMock := bolticmocks.NewMockBolticIntegrator(ctrl)
	bolticMock.EXPECT().ListStores(gomock.Any()).Return([]domain.Store{{StoreID: "S1"}, {StoreID: "S2"}}, nil)
	bolticMock.EXPECT().ListSKUs(gomock.Any()).Return([]domain.SKU{{SKUID: "A"}, {SKUID: "B"}, {SKUID: "C"}}, nil)
	bolticMock.EXPECT().ListInventory(gomock.Any()).Return([]domain.InventorySnapshot{
		item("S1", "A", 5, 10),
		item("S1", "B", 10, 10),
		item("S2", "C", 1, 8),
	}, nil)
	bolticMock.EXPECT().ListReplenishmentActions(gomock.Any()).Return([]domain.ReplenishmentAction{
		{Status: domain.ReplenishmentStatusGenerated},
		{Status: domain.ReplenishmentStatusSent},
	}, nil)
	bolticMock.EXPECT().ListWorkflowRuns(gomock.Any(), "A_sales_signals_sync", 5).
		Return([]domain.WorkflowRun{{RunID: "run_1", Status: "succeeded"}}, nil)

	summary, err := NewService(testConfig(), bolticMock).Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DashboardMetrics{
		TotalStores:           2,
		TotalSKUs:             3,
		LowStockItems:         2,
		PendingReplenishments: 1,
	}, summary.Metrics)
	assert.Equal(t, []domain.SKUDemand{
		{SKUID: "C", EstimatedSales: 7},
		{SKUID: "A", EstimatedSales: 5},
		{SKUID: "B", EstimatedSales: 0},
	}, summary.TopSKUs)
	assert.Len(t, summary.WorkflowRuns, 1)
}

func TestService_Summary_AnySourceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bolticMock := bolticmocks.NewMockBolticIntegrator(ctrl)
	bolticMock.EXPECT().ListStores(gomock.Any()).Return(nil, nil).AnyTimes()
	bolticMock.EXPECT().ListSKUs(gomock.Any()).Return(nil, nil).AnyTimes()
	bolticMock.EXPECT().ListInventory(gomock.Any()).Return(nil, errors.New("table store down")).AnyTimes()
	bolticMock.EXPECT().ListReplenishmentActions(gomock.Any()).Return(nil, nil).AnyTimes()
	bolticMock.EXPECT().ListWorkflowRuns(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	summary, err := NewService(testConfig(), bolticMock).Summary(context.Background())

	assert.EqualError(t, err, "table store down")
	assert.Nil(t, summary)
}
