package http

import (
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type MaintenanceHandler struct {
	maintSvc service.MaintenanceService
}

func NewMaintenanceHandler(maintSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintSvc: maintSvc}
}

func (h *MaintenanceHandler) Open(w http.ResponseWriter, r *http.Request) {
	var m domain.MaintenanceRecord
	if err := decodeJSON(r, &m); err != nil {
		writeError(w, err)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}
	m.CreatedBy = userID

	if err := h.maintSvc.OpenMaintenance(r.Context(), &m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

type completeMaintenanceRequest struct {
	CostCents int64 `json:"cost_cents"`
}

func (h *MaintenanceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req completeMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.maintSvc.CompleteMaintenance(r.Context(), id, req.CostCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MaintenanceHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	records, err := h.maintSvc.ListOpenMaintenance(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	records, err := h.maintSvc.ListVehicleMaintenance(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *MaintenanceHandler) ReportDamage(w http.ResponseWriter, r *http.Request) {
	var d domain.DamageReport
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, err)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}
	d.ReportedBy = userID

	if err := h.maintSvc.ReportDamage(r.Context(), &d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

type updateDamageRequest struct {
	Severity           domain.DamageSeverity `json:"severity"`
	EstimatedCostCents int64                 `json:"estimated_cost_cents"`
	Status             domain.DamageStatus   `json:"status"`
}

// UpdateDamageAssessment is Admin-only; the router wraps it in RequireAdmin.
func (h *MaintenanceHandler) UpdateDamageAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateDamageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	d, err := h.maintSvc.UpdateDamageAssessment(r.Context(), id, req.Severity, req.EstimatedCostCents, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *MaintenanceHandler) GetDamageReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := h.maintSvc.GetDamageReport(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *MaintenanceHandler) ListDamageReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.maintSvc.ListDamageReports(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
