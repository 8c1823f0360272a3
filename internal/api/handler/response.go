package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/cataloging"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/eventing"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/ingesting"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("handler: failed to encode response")
	}
}

// errorCode maps use case errors to API error codes.
func errorCode(err error) string {
	var parseErr *domain.FileParseError
	var netErr *domain.NetworkError

	switch {
	case errors.Is(err, domain.ErrNoValidRows):
		return apiErrors.ErrNoValidRows
	case errors.Is(err, domain.ErrNoCompleteEntries):
		return apiErrors.ErrNoCompleteEntries
	case errors.Is(err, ingesting.ErrSessionNotFound):
		return apiErrors.ErrSessionNotFound
	case errors.Is(err, ingesting.ErrUploadNotAllowed):
		return apiErrors.ErrUploadNotAllowed
	case errors.Is(err, ingesting.ErrAuditDisabled):
		return apiErrors.ErrAuditLogDisabled
	case errors.As(err, &parseErr):
		return apiErrors.ErrFileParse
	case errors.Is(err, domain.ErrNotFound):
		return apiErrors.ErrNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, eventing.ErrInvalidPayload),
		errors.Is(err, cataloging.ErrEmptyCatalog):
		return apiErrors.ErrInvalidFormat
	case errors.Is(err, fynd.ErrInvalidSignature):
		return apiErrors.ErrInvalidSignature
	case errors.As(err, &netErr):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}

// writeServiceError logs err and answers with its mapped code. Internal errors hide
// their message behind fallback.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string, details any) {
	code := errorCode(err)

	entry := logrus.WithFields(logrus.Fields{
		"path":  r.URL.Path,
		"code":  code,
		"error": err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		entry.Error(fallback)
	} else {
		entry.Warn(fallback)
	}

	message := ingesting.UserMessage(err)
	if code == apiErrors.ErrInternalServer {
		message = fallback
	}

	apiErrors.WriteError(w, code, message, details)
}
