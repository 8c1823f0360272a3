package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
)

const (
	CronJobTypeSalesSignalsSync  = "sales-signals-sync"
	CronJobTypeReplenishmentScan = "replenishment-scan"
	CronJobTypeAll               = "all"
)

// CronJob is a scheduler that can also be run on demand.
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices indexes the schedulers by their job type.
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: manual run requested")

		if cronType == CronJobTypeAll {
			for _, t := range services.types() {
				services[t].TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Invalid cron job type. Accepted values: "+strings.Join(append(services.types(), CronJobTypeAll), ", "), nil)
				return
			}
			job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for t, job := range services {
			status[t] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
