package http

import (
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type RateHandler struct {
	rateSvc service.RateService
}

func NewRateHandler(rateSvc service.RateService) *RateHandler {
	return &RateHandler{rateSvc: rateSvc}
}

func (h *RateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rate domain.RentalRate
	if err := decodeJSON(r, &rate); err != nil {
		writeError(w, err)
		return
	}
	if err := h.rateSvc.CreateRate(r.Context(), &rate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rate)
}

func (h *RateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rate, err := h.rateSvc.GetRate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) List(w http.ResponseWriter, r *http.Request) {
	if categoryID := queryInt64(r, "category_id"); categoryID != 0 {
		rates, err := h.rateSvc.ListRatesByCategory(r.Context(), categoryID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rates)
		return
	}

	rates, err := h.rateSvc.ListRates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}
