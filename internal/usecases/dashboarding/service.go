package dashboarding

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/dashboarder.go -package=mocks

const recentWorkflowRuns = 5

type Dashboarder interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

type Service struct {
	cfg    *config.Config
	boltic boltic.BolticIntegrator
}

func NewService(cfg *config.Config, bolticService boltic.BolticIntegrator) *Service {
	return &Service{
		cfg:    cfg,
		boltic: bolticService,
	}
}

// Summary loads the five sources concurrently and fails if any of them fails.
func (s *Service) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	var (
		stores    []domain.Store
		skus      []domain.SKU
		inventory []domain.InventorySnapshot
		actions   []domain.ReplenishmentAction
		runs      []domain.WorkflowRun
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stores, err = s.boltic.ListStores(gctx)
		return err
	})
	g.Go(func() (err error) {
		skus, err = s.boltic.ListSKUs(gctx)
		return err
	})
	g.Go(func() (err error) {
		inventory, err = s.boltic.ListInventory(gctx)
		return err
	})
	g.Go(func() (err error) {
		actions, err = s.boltic.ListReplenishmentActions(gctx)
		return err
	})
	g.Go(func() (err error) {
		runs, err = s.boltic.ListWorkflowRuns(gctx, s.cfg.Boltic.SalesSyncWorkflow, recentWorkflowRuns)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("dashboard: failed to load data")
		return nil, err
	}

	topN := s.cfg.Ingest.TopSKUs
	if topN <= 0 {
		topN = 5
	}

	if runs == nil {
		runs = []domain.WorkflowRun{}
	}

	return &domain.DashboardSummary{
		Metrics: domain.DashboardMetrics{
			TotalStores:           len(stores),
			TotalSKUs:             len(skus),
			LowStockItems:         CountLowStock(inventory),
			PendingReplenishments: CountPending(actions),
		},
		TopSKUs:      TopDemandSKUs(inventory, topN),
		WorkflowRuns: runs,
	}, nil
}
