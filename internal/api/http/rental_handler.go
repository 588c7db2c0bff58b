package http

import (
	"net/http"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc  service.RentalService
	paymentSvc service.PaymentService
}

func NewRentalHandler(rentalSvc service.RentalService, paymentSvc service.PaymentService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, paymentSvc: paymentSvc}
}

type startFromReservationRequest struct {
	ReservationID  int64  `json:"reservation_id"`
	InitialMileage int64  `json:"initial_mileage"`
	Notes          string `json:"notes"`
}

func (h *RentalHandler) StartFromReservation(w http.ResponseWriter, r *http.Request) {
	var req startFromReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	rt, err := h.rentalSvc.StartFromReservation(r.Context(), req.ReservationID, userID, req.InitialMileage, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

type startDirectRequest struct {
	CustomerID       int64     `json:"customer_id"`
	VehicleID        int64     `json:"vehicle_id"`
	PickupAt         time.Time `json:"pickup_at"`
	ExpectedReturnAt time.Time `json:"expected_return_at"`
	InitialMileage   int64     `json:"initial_mileage"`
	DiscountCents    int64     `json:"discount_cents"`
	Notes            string    `json:"notes"`
}

func (h *RentalHandler) StartDirect(w http.ResponseWriter, r *http.Request) {
	var req startDirectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	rt, err := h.rentalSvc.StartDirect(r.Context(), service.StartRentalInput{
		CustomerID:       req.CustomerID,
		VehicleID:        req.VehicleID,
		PickupAt:         req.PickupAt,
		ExpectedReturnAt: req.ExpectedReturnAt,
		InitialMileage:   req.InitialMileage,
		DiscountCents:    req.DiscountCents,
		Notes:            req.Notes,
		AgentID:          userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

type returnRentalRequest struct {
	ReturnedAt    time.Time           `json:"returned_at"`
	ReturnMileage int64               `json:"return_mileage"`
	Charges       domain.ChargeInputs `json:"charges"`
	Notes         string              `json:"notes"`
}

type returnRentalResponse struct {
	Rental  *domain.Rental  `json:"rental"`
	Invoice *domain.Invoice `json:"invoice"`
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req returnRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	rt, inv, err := h.rentalSvc.ReturnRental(r.Context(), service.ReturnRentalInput{
		RentalID:      id,
		ReturnedAt:    req.ReturnedAt,
		ReturnMileage: req.ReturnMileage,
		Charges:       req.Charges,
		Notes:         req.Notes,
		AgentID:       userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, returnRentalResponse{Rental: rt, Invoice: inv})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rt, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.RentalStatus(r.URL.Query().Get("status"))
	rentals, err := h.rentalSvc.ListRentals(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListCharges(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	charges, err := h.rentalSvc.ListCharges(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, charges)
}

func (h *RentalHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	inv, err := h.paymentSvc.GetInvoiceForRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}
