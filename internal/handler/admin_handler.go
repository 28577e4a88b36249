package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/renopilot/backend/internal/model"
	"github.com/renopilot/backend/internal/service"
)

// AdminHandler serves the reference-data maintenance endpoints. Lists here
// include inactive rows so retired entries stay editable.
type AdminHandler struct {
	svc service.ReferenceService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc service.ReferenceService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return false
	}
	return true
}

// --- paint types ---

func (h *AdminHandler) ListPaintTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.svc.ListPaintTypes(r.Context())
	if err != nil {
		writeCalcError(w, err, "paint type list failed")
		return
	}
	if items == nil {
		items = []*model.PaintType{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"paintTypes": items})
}

func (h *AdminHandler) SavePaintType(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var pt model.PaintType
	if !decodeBody(w, r, &pt) {
		return
	}
	created := pt.ID == 0
	if err := h.svc.SavePaintType(r.Context(), &pt); err != nil {
		writeCalcError(w, err, "paint type save failed")
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(&pt)
}

func (h *AdminHandler) DeletePaintType(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePaintType(r.Context(), id); err != nil {
		writeCalcError(w, err, "paint type delete failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --- surface types ---

func (h *AdminHandler) ListSurfaceTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.svc.ListSurfaceTypes(r.Context())
	if err != nil {
		writeCalcError(w, err, "surface type list failed")
		return
	}
	if items == nil {
		items = []*model.SurfaceType{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"surfaceTypes": items})
}

func (h *AdminHandler) SaveSurfaceType(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var st model.SurfaceType
	if !decodeBody(w, r, &st) {
		return
	}
	created := st.ID == 0
	if err := h.svc.SaveSurfaceType(r.Context(), &st); err != nil {
		writeCalcError(w, err, "surface type save failed")
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(&st)
}

func (h *AdminHandler) DeleteSurfaceType(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSurfaceType(r.Context(), id); err != nil {
		writeCalcError(w, err, "surface type delete failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --- paint qualities ---

func (h *AdminHandler) ListPaintQualities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.svc.ListPaintQualities(r.Context())
	if err != nil {
		writeCalcError(w, err, "paint quality list failed")
		return
	}
	if items == nil {
		items = []*model.PaintQuality{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"paintQualities": items})
}

func (h *AdminHandler) SavePaintQuality(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var pq model.PaintQuality
	if !decodeBody(w, r, &pq) {
		return
	}
	created := pq.ID == 0
	if err := h.svc.SavePaintQuality(r.Context(), &pq); err != nil {
		writeCalcError(w, err, "paint quality save failed")
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(&pq)
}

func (h *AdminHandler) DeletePaintQuality(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePaintQuality(r.Context(), id); err != nil {
		writeCalcError(w, err, "paint quality delete failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --- surface conditions ---

func (h *AdminHandler) ListSurfaceConditions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.svc.ListSurfaceConditions(r.Context())
	if err != nil {
		writeCalcError(w, err, "surface condition list failed")
		return
	}
	if items == nil {
		items = []*model.SurfaceCondition{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"surfaceConditions": items})
}

func (h *AdminHandler) SaveSurfaceCondition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var sc model.SurfaceCondition
	if !decodeBody(w, r, &sc) {
		return
	}
	created := sc.ID == 0
	if err := h.svc.SaveSurfaceCondition(r.Context(), &sc); err != nil {
		writeCalcError(w, err, "surface condition save failed")
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(&sc)
}

func (h *AdminHandler) DeleteSurfaceCondition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSurfaceCondition(r.Context(), id); err != nil {
		writeCalcError(w, err, "surface condition delete failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --- paint data ---

func (h *AdminHandler) ListPaintData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.svc.ListPaintData(r.Context())
	if err != nil {
		writeCalcError(w, err, "paint data list failed")
		return
	}
	if items == nil {
		items = []*model.PaintData{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"paintData": items})
}

func (h *AdminHandler) SavePaintData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var pd model.PaintData
	if !decodeBody(w, r, &pd) {
		return
	}
	created := pd.ID == 0
	if err := h.svc.SavePaintData(r.Context(), &pd); err != nil {
		writeCalcError(w, err, "paint data save failed")
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(&pd)
}

func (h *AdminHandler) DeletePaintData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePaintData(r.Context(), id); err != nil {
		writeCalcError(w, err, "paint data delete failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --- labor rates ---

func (h *AdminHandler) ListLaborRates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.svc.ListLaborRates(r.Context())
	if err != nil {
		writeCalcError(w, err, "labor rate list failed")
		return
	}
	if items == nil {
		items = []*model.LaborRate{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"laborRates": items})
}

func (h *AdminHandler) SaveLaborRate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var lr model.LaborRate
	if !decodeBody(w, r, &lr) {
		return
	}
	created := lr.ID == 0
	if err := h.svc.SaveLaborRate(r.Context(), &lr); err != nil {
		writeCalcError(w, err, "labor rate save failed")
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(&lr)
}

func (h *AdminHandler) DeleteLaborRate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteLaborRate(r.Context(), id); err != nil {
		writeCalcError(w, err, "labor rate delete failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// --- paint colors ---

func (h *AdminHandler) ListPaintColors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	items, err := h.svc.ListPaintColors(r.Context())
	if err != nil {
		writeCalcError(w, err, "paint color list failed")
		return
	}
	if items == nil {
		items = []*model.PaintColor{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"paintColors": items})
}

func (h *AdminHandler) CreatePaintColor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var pc model.PaintColor
	if !decodeBody(w, r, &pc) {
		return
	}
	if err := h.svc.CreatePaintColor(r.Context(), &pc); err != nil {
		writeCalcError(w, err, "paint color create failed")
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(&pc)
}

func (h *AdminHandler) DeletePaintColor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePaintColor(r.Context(), id); err != nil {
		writeCalcError(w, err, "paint color delete failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
