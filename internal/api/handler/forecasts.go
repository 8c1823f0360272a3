package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/forecasting"
)

func ListForecasts(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forecasts, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to load forecasts", nil)
			return
		}

		writeJSON(w, http.StatusOK, forecasts)
	}
}

func CreatePurchaseOrder(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		action, err := service.CreatePurchaseOrder(r.Context(), params.ByName("store_id"), params.ByName("sku_id"))
		if err != nil {
			writeServiceError(w, r, err, "Failed to create purchase order", nil)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Purchase order created successfully!",
			"action":  action,
		})
	}
}
