package handler

import (
	"net/http"

	"github.com/vfg2006/smart-inventory-api/internal/api/handler/router"
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

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Inventory(service stocking.Stocker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/inventory",
			Method:      http.MethodGet,
			Handler:     ListInventory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/inventory/:store_id/:sku_id",
			Method:      http.MethodPut,
			Handler:     UpdateInventory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecasts(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecasts",
			Method:      http.MethodGet,
			Handler:     ListForecasts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecasts/:store_id/:sku_id/purchase-order",
			Method:      http.MethodPost,
			Handler:     CreatePurchaseOrder(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Ingest(service ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ingest/sessions",
			Method:      http.MethodPost,
			Handler:     StartIngestSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingest/sessions/:id",
			Method:      http.MethodGet,
			Handler:     GetIngestSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingest/sessions/:id/file",
			Method:      http.MethodPut,
			Handler:     ReplaceIngestFile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingest/sessions/:id/upload",
			Method:      http.MethodPost,
			Handler:     UploadIngestSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingest/sessions/:id",
			Method:      http.MethodDelete,
			Handler:     ClearIngestSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingest/upload",
			Method:      http.MethodPost,
			Handler:     IngestFile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingest/runs",
			Method:      http.MethodGet,
			Handler:     ListIngestionRuns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ManualEntry(service salesentry.Submitter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/manual",
			Method:      http.MethodPost,
			Handler:     SubmitManualEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Webhooks(service eventing.Receiver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhooks/fynd",
			Method:  http.MethodPost,
			Handler: ReceiveFyndWebhook(service),
		},
		{
			Path:        "/v1/webhooks/fynd/status",
			Method:      http.MethodGet,
			Handler:     GetWebhookStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
