package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/smart-inventory-api/internal/usecases/eventing"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
)

const (
	signatureHeader  = "x-fp-signature"
	maxWebhookBodyKB = 512
)

// ReceiveFyndWebhook answers 200 for forwarded events and 202 for events that are
// valid but not handled, so the platform does not retry them.
func ReceiveFyndWebhook(service eventing.Receiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyKB<<10))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not read request body", nil)
			return
		}

		received, err := service.Receive(r.Context(), body, r.Header.Get(signatureHeader))
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, received)
		case errors.Is(err, eventing.ErrUnsupportedEvent):
			writeJSON(w, http.StatusAccepted, received)
		default:
			writeServiceError(w, r, err, "Failed to process webhook", nil)
		}
	}
}

func GetWebhookStatus(service eventing.Receiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Status())
	}
}
