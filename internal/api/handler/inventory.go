package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/stocking"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
)

func ListInventory(service stocking.Stocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to load inventory", nil)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func UpdateInventory(service stocking.Stocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		storeID, skuID := params.ByName("store_id"), params.ByName("sku_id")
		if storeID == "" || skuID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "store_id and sku_id are required", nil)
			return
		}

		var update domain.InventoryUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		item, err := service.Update(r.Context(), storeID, skuID, update)
		if err != nil {
			writeServiceError(w, r, err, "Failed to update inventory", nil)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}
