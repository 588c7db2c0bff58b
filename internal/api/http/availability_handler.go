package http

import (
	"net/http"

	"vehicle-rental-backend/internal/service"
)

type AvailabilityHandler struct {
	availSvc service.AvailabilityService
}

func NewAvailabilityHandler(availSvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availSvc: availSvc}
}

// Search returns the free vehicles for a window, optionally narrowed to a
// category. Query: category_id, start, end.
func (h *AvailabilityHandler) Search(w http.ResponseWriter, r *http.Request) {
	start, err := queryTime(r, "start")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := queryTime(r, "end")
	if err != nil {
		writeError(w, err)
		return
	}

	vehicles, err := h.availSvc.Search(r.Context(), queryInt64(r, "category_id"), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Quote prices a window for a category without creating any booking.
func (h *AvailabilityHandler) Quote(w http.ResponseWriter, r *http.Request) {
	start, err := queryTime(r, "start")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := queryTime(r, "end")
	if err != nil {
		writeError(w, err)
		return
	}

	quote, err := h.availSvc.Quote(r.Context(), queryInt64(r, "category_id"), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
