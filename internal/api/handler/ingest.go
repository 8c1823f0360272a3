package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/ingesting"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
)

const (
	maxUploadSize = 10 << 20
	uploadField   = "file"
)

type UploadResponse struct {
	Outcome *domain.UploadOutcome  `json:"outcome,omitempty"`
	Session *ingesting.SessionView `json:"session,omitempty"`
}

// readUpload returns the name and bytes of the multipart "file" field.
// Only .csv files are accepted.
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A CSV file is required in the \"file\" field", nil)
		return "", nil, false
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Only .csv files are accepted", nil)
		return "", nil, false
	}

	content, err := io.ReadAll(file)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Could not read uploaded file", nil)
		return "", nil, false
	}

	return header.Filename, content, true
}

func StartIngestSession(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileName, content, ok := readUpload(w, r)
		if !ok {
			return
		}

		view, err := service.StartSession(r.Context(), fileName, content)
		if err != nil {
			writeServiceError(w, r, err, "Failed to start ingest session", nil)
			return
		}

		writeJSON(w, http.StatusCreated, view)
	}
}

func ReplaceIngestFile(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		fileName, content, ok := readUpload(w, r)
		if !ok {
			return
		}

		view, err := service.ReplaceFile(r.Context(), id, fileName, content)
		if err != nil {
			writeServiceError(w, r, err, "Failed to replace file", nil)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func GetIngestSession(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		view, err := service.GetSession(id)
		if err != nil {
			writeServiceError(w, r, err, "Failed to load ingest session", nil)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// UploadIngestSession sends the session file to the table store. An upsert that
// reports success=false is still a 200: the outcome carries the row errors.
func UploadIngestSession(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		outcome, view, err := service.Upload(r.Context(), id)
		if err != nil {
			var details any
			if view != nil {
				details = view
			}
			writeServiceError(w, r, err, "Upload failed", details)
			return
		}

		writeJSON(w, http.StatusOK, UploadResponse{Outcome: outcome, Session: view})
	}
}

func ClearIngestSession(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		view, err := service.ClearSession(id)
		if err != nil {
			writeServiceError(w, r, err, "Failed to clear ingest session", nil)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// IngestFile parses and uploads a CSV in one request, without a session.
func IngestFile(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileName, content, ok := readUpload(w, r)
		if !ok {
			return
		}

		outcome, err := service.Ingest(r.Context(), fileName, bytes.NewReader(content))
		if err != nil {
			writeServiceError(w, r, err, "Upload failed", nil)
			return
		}

		writeJSON(w, http.StatusOK, UploadResponse{Outcome: outcome})
	}
}

func ListIngestionRuns(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := service.ListRuns(r.Context())
		if err != nil {
			if errors.Is(err, ingesting.ErrAuditDisabled) {
				apiErrors.WriteError(w, apiErrors.ErrAuditLogDisabled, "Ingestion audit log is disabled", nil)
				return
			}
			writeServiceError(w, r, err, "Failed to list ingestion runs", nil)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}
