package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

const BelowSafetyStockReason = "Below safety stock"

type ReplenishmentScanConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReplenishmentScanService raises order requests for low-stock items that have no open action.
type ReplenishmentScanService struct {
	scheduler           *gocron.Scheduler
	config              ReplenishmentScanConfig
	boltic              boltic.BolticIntegrator
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastCreated         int
}

func NewReplenishmentScanService(bolticService boltic.BolticIntegrator, cfg *config.Config) *ReplenishmentScanService {
	scanConfig := ReplenishmentScanConfig{
		CronSchedule: cfg.ReplenishmentScan.CronSchedule,
		SyncEnabled:  cfg.ReplenishmentScan.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": scanConfig.CronSchedule,
		"sync_enabled":  scanConfig.SyncEnabled,
	}).Info("Replenishment scan scheduler configuration loaded")

	return &ReplenishmentScanService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    scanConfig,
		boltic:    bolticService,
		now:       time.Now,
	}
}

func (s *ReplenishmentScanService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Replenishment scan disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting replenishment scan scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Scan(context.Background()); err != nil {
			logrus.WithError(err).Error("Replenishment scan failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule replenishment scan: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping replenishment scan scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// Scan inserts one order request per uncovered low-stock item and returns how many were created.
func (s *ReplenishmentScanService) Scan(ctx context.Context) (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Replenishment scan already running, skipping")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	created, err := s.scan(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err == nil {
		s.lastCreated = created
	}
	s.syncMutex.Unlock()

	return created, err
}

func (s *ReplenishmentScanService) scan(ctx context.Context) (int, error) {
	var (
		inventory []domain.InventorySnapshot
		actions   []domain.ReplenishmentAction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		inventory, err = s.boltic.ListInventory(gctx)
		return err
	})
	g.Go(func() (err error) {
		actions, err = s.boltic.ListReplenishmentActions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, errors.Wrap(err, "load replenishment inputs")
	}

	orders := PlanOrders(inventory, actions, s.now().UTC())
	if len(orders) == 0 {
		logrus.Info("Replenishment scan found no uncovered low-stock items")
		return 0, nil
	}

	if err := s.boltic.InsertReplenishmentActions(ctx, orders); err != nil {
		return 0, errors.Wrap(err, "insert order requests")
	}

	logrus.WithField("orders", len(orders)).Info("Replenishment scan created order requests")
	return len(orders), nil
}

// PlanOrders builds an order request for each low-stock item without an open action.
func PlanOrders(inventory []domain.InventorySnapshot, actions []domain.ReplenishmentAction, now time.Time) []domain.ReplenishmentAction {
	covered := make(map[string]bool, len(actions))
	for _, a := range actions {
		if a.IsOpen() {
			covered[a.Key()] = true
		}
	}

	orders := make([]domain.ReplenishmentAction, 0)
	for _, item := range inventory {
		if !item.IsLowStock() || covered[item.Key()] {
			continue
		}
		covered[item.Key()] = true

		vendor := item.VendorEmail
		if vendor == "" {
			vendor = domain.UnknownVendor
		}

		orders = append(orders, domain.ReplenishmentAction{
			ActionTS:   now,
			StoreID:    item.StoreID,
			SKUID:      item.SKUID,
			ActionType: domain.ActionTypeOrderRequest,
			Status:     domain.ReplenishmentStatusGenerated,
			Details: map[string]any{
				"order_qty":    OrderQuantity(item.Shortfall(), item.ReorderMultiple),
				"vendor":       vendor,
				"reason":       BelowSafetyStockReason,
				"on_hand_qty":  item.OnHandQty,
				"safety_stock": item.SafetyStock,
			},
		})
	}

	return orders
}

// OrderQuantity rounds shortfall up to the next multiple. Multiples below 1 count as 1.
func OrderQuantity(shortfall, multiple int) int {
	if shortfall <= 0 {
		return 0
	}
	if multiple < 1 {
		multiple = 1
	}
	return ((shortfall + multiple - 1) / multiple) * multiple
}

func (s *ReplenishmentScanService) TriggerManualSync() {
	logrus.Info("Starting manual replenishment scan")
	go func() {
		if _, err := s.Scan(context.Background()); err != nil {
			logrus.WithError(err).Error("Manual replenishment scan failed")
		}
	}()
}

func (s *ReplenishmentScanService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_orders_created":    s.lastCreated,
	}
}
