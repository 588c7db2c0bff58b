package http

import (
	"net/http"
	"time"

	"vehicle-rental-backend/internal/service"
)

type ReservationHandler struct {
	resvSvc service.ReservationService
}

func NewReservationHandler(resvSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{resvSvc: resvSvc}
}

type createReservationRequest struct {
	CustomerID             int64     `json:"customer_id"`
	CategoryID             int64     `json:"category_id"`
	VehicleID              int64     `json:"vehicle_id"`
	RateID                 *int64    `json:"rate_id"`
	DailyRateOverrideCents int64     `json:"daily_rate_override_cents"`
	PickupAt               time.Time `json:"pickup_at"`
	ReturnAt               time.Time `json:"return_at"`
	Notes                  string    `json:"notes"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	res, err := h.resvSvc.CreateReservation(r.Context(), service.CreateReservationInput{
		CustomerID:             req.CustomerID,
		CategoryID:             req.CategoryID,
		VehicleID:              req.VehicleID,
		RateID:                 req.RateID,
		DailyRateOverrideCents: req.DailyRateOverrideCents,
		PickupAt:               req.PickupAt,
		ReturnAt:               req.ReturnAt,
		Notes:                  req.Notes,
		CreatedBy:              userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.resvSvc.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.resvSvc.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.resvSvc.CancelReservation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
