// Package scheduler holds the cron jobs that keep the Boltic workflows fed.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/internal/config"
)

const (
	TriggerSourceCron   = "scheduler"
	TriggerSourceManual = "manual"
)

type SalesSignalsSyncConfig struct {
	CronSchedule string
	Workflow     string
	SyncEnabled  bool
}

// SalesSignalsSyncService periodically triggers the sales and signals workflow.
type SalesSignalsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesSignalsSyncConfig
	boltic              boltic.BolticIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

func NewSalesSignalsSyncService(bolticService boltic.BolticIntegrator, cfg *config.Config) *SalesSignalsSyncService {
	syncConfig := SalesSignalsSyncConfig{
		CronSchedule: cfg.SalesSignalsSync.CronSchedule,
		Workflow:     cfg.Boltic.SalesSyncWorkflow,
		SyncEnabled:  cfg.SalesSignalsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"workflow":      syncConfig.Workflow,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Sales signals sync scheduler configuration loaded")

	return &SalesSignalsSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		boltic:    bolticService,
	}
}

func (s *SalesSignalsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sales signals sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting sales signals sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Sync(context.Background(), TriggerSourceCron); err != nil {
			logrus.WithError(err).Error("Sales signals sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sales signals sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping sales signals sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync triggers the workflow once. Overlapping calls are skipped.
func (s *SalesSignalsSyncService) Sync(ctx context.Context, source string) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sales signals sync already running, skipping")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	err := s.boltic.TriggerWorkflow(ctx, s.config.Workflow, map[string]any{
		"source":       source,
		"triggered_at": s.lastSyncStartedAt.UTC().Format(time.RFC3339),
	})

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		return err
	}

	logrus.WithFields(logrus.Fields{
		"workflow": s.config.Workflow,
		"source":   source,
	}).Info("Sales signals workflow triggered")

	return nil
}

func (s *SalesSignalsSyncService) TriggerManualSync() {
	logrus.Info("Starting manual sales signals sync")
	go func() {
		if err := s.Sync(context.Background(), TriggerSourceManual); err != nil {
			logrus.WithError(err).Error("Manual sales signals sync failed")
		}
	}()
}

func (s *SalesSignalsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"workflow":               s.config.Workflow,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
	}
}
