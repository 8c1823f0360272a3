package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/smart-inventory-api/internal/usecases/cataloging"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
)

func ListProducts(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNo, err := intQuery(r, "page_no", 1)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page_no must be a number", nil)
			return
		}
		pageSize, err := intQuery(r, "page_size", cataloging.DefaultPageSize)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page_size must be a number", nil)
			return
		}

		page, err := service.ListProducts(r.Context(), pageNo, pageSize)
		if err != nil {
			writeServiceError(w, r, err, "Failed to list products", nil)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

func intQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
