package handler

import (
	"encoding/json"
	"net/http"

	"github.com/renopilot/backend/internal/calc"
	"github.com/renopilot/backend/internal/service"
)

// CalculateHandler serves the calculation endpoints.
type CalculateHandler struct {
	svc service.EstimateService
}

// NewCalculateHandler creates a CalculateHandler.
func NewCalculateHandler(svc service.EstimateService) *CalculateHandler {
	return &CalculateHandler{svc: svc}
}

// Area handles POST /api/calculate/area.
func (h *CalculateHandler) Area(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		SurfaceType string          `json:"surfaceType"`
		Dimensions  calc.Dimensions `json:"dimensions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	result, err := h.svc.Area(req.SurfaceType, req.Dimensions)
	if err != nil {
		writeCalcError(w, err, "area calculation failed")
		return
	}

	_ = json.NewEncoder(w).Encode(result)
}

// ValidateDimensions handles POST /api/calculate/validate-dimensions.
// Validation failures are data, not errors, so the response is always 200.
func (h *CalculateHandler) ValidateDimensions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		SurfaceType string          `json:"surfaceType"`
		Dimensions  calc.Dimensions `json:"dimensions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	_ = json.NewEncoder(w).Encode(calc.ValidateDimensions(req.SurfaceType, req.Dimensions))
}

// SurfaceCost handles POST /api/calculate/surface-cost.
func (h *CalculateHandler) SurfaceCost(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req service.SurfaceEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	estimate, err := h.svc.SurfaceEstimate(r.Context(), req)
	if err != nil {
		writeCalcError(w, err, "surface cost failed")
		return
	}

	_ = json.NewEncoder(w).Encode(estimate)
}

// ProjectCost handles POST /api/calculate/project-cost.
func (h *CalculateHandler) ProjectCost(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req service.ProjectEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	estimate, err := h.svc.ProjectEstimate(r.Context(), req)
	if err != nil {
		writeCalcError(w, err, "project cost failed")
		return
	}

	_ = json.NewEncoder(w).Encode(estimate)
}
