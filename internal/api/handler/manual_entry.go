package handler

import (
	"net/http"

	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/salesentry"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
)

type ManualEntryRequest struct {
	Entries []domain.SalesEntry `json:"entries"`
}

func SubmitManualEntries(service salesentry.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ManualEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		result, err := service.Submit(r.Context(), req.Entries)
		if err != nil {
			writeServiceError(w, r, err, "Failed to submit sales entries", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
