package handler

import (
	"encoding/json"
	"net/http"

	"github.com/renopilot/backend/internal/service"
)

// ReportHandler serves downloadable project reports.
type ReportHandler struct {
	svc service.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Project handles POST /api/reports/project. The format query parameter
// selects pdf (default) or xlsx.
func (h *ReportHandler) Project(w http.ResponseWriter, r *http.Request) {
	var req service.ProjectEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "pdf":
		doc, err := h.svc.ProjectPDF(r.Context(), req)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			writeCalcError(w, err, "pdf report failed")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="estimate.pdf"`)
		_, _ = w.Write(doc)
	case "xlsx":
		doc, err := h.svc.ProjectXLSX(r.Context(), req)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			writeCalcError(w, err, "xlsx report failed")
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="estimate.xlsx"`)
		_, _ = w.Write(doc)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported_format"})
	}
}
