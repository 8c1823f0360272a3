package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/database/postgres"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/bolticclient"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd/fyndclient"
	"github.com/vfg2006/smart-inventory-api/infrastructure/repository"
	"github.com/vfg2006/smart-inventory-api/internal/api"
	"github.com/vfg2006/smart-inventory-api/internal/api/handler"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/scheduler"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/authenticating"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/cataloging"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/dashboarding"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/eventing"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/forecasting"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/ingesting"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/salesentry"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/stocking"
	"github.com/vfg2006/smart-inventory-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cleanup []func() error

	var runsRepo repository.IngestionRunRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		cleanup = append(cleanup, pgConn.Close)
		runsRepo = repository.NewIngestionRunRepository(pgConn)
	} else {
		logrus.Info("ingestion audit log disabled, set DATABASE_ENABLED=true to record runs")
	}

	bolticService := boltic.New(cfg, bolticclient.NewClient(cfg))
	fyndService := fynd.New(cfg, fyndclient.NewClient(cfg))

	salesSignalsSyncService := scheduler.NewSalesSignalsSyncService(bolticService, cfg)
	replenishmentScanService := scheduler.NewReplenishmentScanService(bolticService, cfg)

	if err := salesSignalsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start sales signals sync scheduler")
	}

	if err := replenishmentScanService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start replenishment scan scheduler")
	}

	services := api.Services{
		Authenticator: authenticating.NewService(cfg),
		Dashboard:     dashboarding.NewService(cfg, bolticService),
		Inventory:     stocking.NewService(bolticService),
		Forecasts:     forecasting.NewService(bolticService),
		Ingest:        ingesting.NewService(cfg, bolticService, runsRepo, ingesting.NewSessionStore()),
		ManualEntry:   salesentry.NewService(bolticService, runsRepo),
		Catalog:       cataloging.NewService(fyndService),
		Webhooks:      eventing.NewService(cfg, fyndService, bolticService),
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeSalesSignalsSync:  salesSignalsSyncService,
			handler.CronJobTypeReplenishmentScan: replenishmentScanService,
		},
	}

	server, err := api.New(cfg, services, cleanup...)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn opens the audit log database or exits.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
