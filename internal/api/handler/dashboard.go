package handler

import (
	"net/http"

	"github.com/vfg2006/smart-inventory-api/internal/usecases/dashboarding"
)

func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to load dashboard data", nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
