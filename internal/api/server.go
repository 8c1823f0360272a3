package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/internal/api/handler"
	"github.com/vfg2006/smart-inventory-api/internal/api/handler/router"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/authenticating"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/cataloging"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/dashboarding"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/eventing"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/forecasting"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/ingesting"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/salesentry"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/stocking"
	"github.com/vfg2006/smart-inventory-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services groups the use cases served over HTTP.
type Services struct {
	Authenticator authenticating.Authenticator
	Dashboard     dashboarding.Dashboarder
	Inventory     stocking.Stocker
	Forecasts     forecasting.Forecaster
	Ingest        ingesting.Ingester
	ManualEntry   salesentry.Submitter
	Catalog       cataloging.Cataloger
	Webhooks      eventing.Receiver
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
	cleanup    []func() error
}

// NewHandler builds the routed and middleware-wrapped HTTP handler.
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Inventory(services.Inventory)...),
		router.WithRoutes(handler.Forecasts(services.Forecasts)...),
		router.WithRoutes(handler.Ingest(services.Ingest)...),
		router.WithRoutes(handler.ManualEntry(services.ManualEntry)...),
		router.WithRoutes(handler.Products(services.Catalog)...),
		router.WithRoutes(handler.Webhooks(services.Webhooks)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// New builds the server. cleanup functions run after the HTTP server has stopped.
func New(cfg *config.Config, services Services, cleanup ...func() error) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		cleanup: cleanup,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("HTTP server stopped")

	for _, fn := range s.cleanup {
		if err := fn(); err != nil {
			logrus.WithError(err).Warn("Cleanup step failed")
		}
	}

	return nil
}
