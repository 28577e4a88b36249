package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/renopilot/backend/internal/model"
	"github.com/renopilot/backend/internal/repository"
	"github.com/renopilot/backend/internal/service"
)

// ReferenceHandler serves the read-only reference-data endpoints the
// calculator loads before estimating.
type ReferenceHandler struct {
	svc service.ReferenceService
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(svc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

// ReferenceData handles GET /api/calculate/reference-data.
func (h *ReferenceHandler) ReferenceData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	data, err := h.svc.Snapshot(r.Context())
	if err != nil {
		writeCalcError(w, err, "reference data fetch failed")
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}

// PaintData handles GET /api/calculate/paint-data. Query parameters
// paintType, surfaceType, quality and maxCost filter the result.
func (h *ReferenceHandler) PaintData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := repository.PaintDataFilter{
		PaintTypeName:   r.URL.Query().Get("paintType"),
		SurfaceTypeName: r.URL.Query().Get("surfaceType"),
		QualityLevel:    r.URL.Query().Get("quality"),
	}
	if raw := r.URL.Query().Get("maxCost"); raw != "" {
		maxCost, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_max_cost"})
			return
		}
		filter.MaxCostPerM2 = &maxCost
	}

	results, err := h.svc.SearchPaintData(r.Context(), filter)
	if err != nil {
		writeCalcError(w, err, "paint data search failed")
		return
	}
	if results == nil {
		results = []*model.PaintData{}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"paintData": results})
}
