package http

import (
	"net/http"

	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Reservation  *ReservationHandler
	Rental       *RentalHandler
	Fleet        *FleetHandler
	Rate         *RateHandler
	Customer     *CustomerHandler
	Payment      *PaymentHandler
	Maintenance  *MaintenanceHandler
	Report       *ReportHandler
}

func NewHandlers(
	authSvc service.AuthService,
	availSvc service.AvailabilityService,
	resvSvc service.ReservationService,
	rentalSvc service.RentalService,
	fleetSvc service.FleetService,
	rateSvc service.RateService,
	customerSvc service.CustomerService,
	paymentSvc service.PaymentService,
	maintSvc service.MaintenanceService,
	reportSvc service.ReportService,
) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(authSvc),
		Availability: NewAvailabilityHandler(availSvc),
		Reservation:  NewReservationHandler(resvSvc),
		Rental:       NewRentalHandler(rentalSvc, paymentSvc),
		Fleet:        NewFleetHandler(fleetSvc),
		Rate:         NewRateHandler(rateSvc),
		Customer:     NewCustomerHandler(customerSvc),
		Payment:      NewPaymentHandler(paymentSvc),
		Maintenance:  NewMaintenanceHandler(maintSvc),
		Report:       NewReportHandler(reportSvc),
	}
}

// NewRouter wires all routes. Everything except login requires a valid access
// token; user management and damage assessment additionally require Admin.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/api/v1/auth/login", h.Auth.Login).Methods(http.MethodPost)

	auth := NewAuthMiddleware(tokens)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Handler)

	// Users (Admin only)
	api.HandleFunc("/users", RequireAdmin(h.Auth.CreateUser)).Methods(http.MethodPost)
	api.HandleFunc("/users", RequireAdmin(h.Auth.ListUsers)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/status", RequireAdmin(h.Auth.SetUserStatus)).Methods(http.MethodPut)

	// Availability
	api.HandleFunc("/availability", h.Availability.Search).Methods(http.MethodGet)
	api.HandleFunc("/availability/quote", h.Availability.Quote).Methods(http.MethodGet)

	// Reservations
	api.HandleFunc("/reservations", h.Reservation.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations", h.Reservation.ListPending).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", h.Reservation.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", h.Reservation.Cancel).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/start", h.Rental.StartFromReservation).Methods(http.MethodPost)

	// Rentals
	api.HandleFunc("/rentals", h.Rental.StartDirect).Methods(http.MethodPost)
	api.HandleFunc("/rentals", h.Rental.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", h.Rental.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", h.Rental.Return).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/charges", h.Rental.ListCharges).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/invoice", h.Rental.GetInvoice).Methods(http.MethodGet)

	// Fleet
	api.HandleFunc("/vehicles", h.Fleet.AddVehicle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", h.Fleet.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", h.Fleet.GetVehicle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", h.Fleet.UpdateVehicle).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}/status", h.Fleet.SetVehicleStatus).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}/maintenance", h.Maintenance.ListByVehicle).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.Fleet.AddCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories", h.Fleet.ListCategories).Methods(http.MethodGet)

	// Rates
	api.HandleFunc("/rates", h.Rate.Create).Methods(http.MethodPost)
	api.HandleFunc("/rates", h.Rate.List).Methods(http.MethodGet)
	api.HandleFunc("/rates/{id}", h.Rate.Get).Methods(http.MethodGet)

	// Customers
	api.HandleFunc("/customers", h.Customer.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customer.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customer.Update).Methods(http.MethodPut)

	// Payments and invoices
	api.HandleFunc("/payments", h.Payment.Record).Methods(http.MethodPost)
	api.HandleFunc("/payments/{id}/status", h.Payment.SetStatus).Methods(http.MethodPut)
	api.HandleFunc("/invoices/{id}", h.Payment.GetInvoice).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}/payments", h.Payment.ListByInvoice).Methods(http.MethodGet)

	// Maintenance and damage
	api.HandleFunc("/maintenance", h.Maintenance.Open).Methods(http.MethodPost)
	api.HandleFunc("/maintenance", h.Maintenance.ListOpen).Methods(http.MethodGet)
	api.HandleFunc("/maintenance/{id}/complete", h.Maintenance.Complete).Methods(http.MethodPost)
	api.HandleFunc("/damage-reports", h.Maintenance.ReportDamage).Methods(http.MethodPost)
	api.HandleFunc("/damage-reports", h.Maintenance.ListDamageReports).Methods(http.MethodGet)
	api.HandleFunc("/damage-reports/{id}", h.Maintenance.GetDamageReport).Methods(http.MethodGet)
	api.HandleFunc("/damage-reports/{id}", RequireAdmin(h.Maintenance.UpdateDamageAssessment)).Methods(http.MethodPut)

	// Reports
	api.HandleFunc("/reports/dashboard", h.Report.Dashboard).Methods(http.MethodGet)

	return r
}
