package service

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CreateUser(ctx context.Context, u *domain.User, password string) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserStatus(ctx context.Context, id int64, status domain.UserStatus) error
}

// Quote is a price estimate for a category and window, computed before any
// booking exists.
type Quote struct {
	RateID         int64 `json:"rate_id"`
	DailyRateCents int64 `json:"daily_rate_cents"`
	Days           int64 `json:"days"`
	TotalCents     int64 `json:"total_cents"`
}

type AvailabilityService interface {
	Search(ctx context.Context, categoryID int64, start, end time.Time) ([]domain.Vehicle, error)
	Quote(ctx context.Context, categoryID int64, start, end time.Time) (*Quote, error)
}

type CreateReservationInput struct {
	CustomerID int64
	CategoryID int64
	// VehicleID pins a specific vehicle; zero lets the service pick any free
	// vehicle in the category.
	VehicleID int64
	RateID    *int64
	// DailyRateOverrideCents, when positive, replaces the resolved rate's
	// daily amount for this reservation only. The rate is still resolved and
	// recorded for reference.
	DailyRateOverrideCents int64
	PickupAt               time.Time
	ReturnAt               time.Time
	Notes                  string
	CreatedBy              int64
}

type ReservationService interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	ListPending(ctx context.Context) ([]domain.Reservation, error)
	CancelReservation(ctx context.Context, id int64) error
}

type StartRentalInput struct {
	CustomerID       int64
	VehicleID        int64
	PickupAt         time.Time
	ExpectedReturnAt time.Time
	InitialMileage   int64
	DiscountCents    int64
	Notes            string
	AgentID          int64
}

type ReturnRentalInput struct {
	RentalID      int64
	ReturnedAt    time.Time
	ReturnMileage int64
	Charges       domain.ChargeInputs
	Notes         string
	AgentID       int64
}

type RentalService interface {
	StartFromReservation(ctx context.Context, reservationID, agentID, initialMileage int64, notes string) (*domain.Rental, error)
	StartDirect(ctx context.Context, in StartRentalInput) (*domain.Rental, error)
	ReturnRental(ctx context.Context, in ReturnRentalInput) (*domain.Rental, *domain.Invoice, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	ListRentals(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	ListCharges(ctx context.Context, rentalID int64) ([]domain.Charge, error)
}

type FleetService interface {
	AddVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	SetVehicleStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListCategories(ctx context.Context) ([]domain.VehicleCategory, error)
	AddCategory(ctx context.Context, c *domain.VehicleCategory) error
}

type RateService interface {
	CreateRate(ctx context.Context, r *domain.RentalRate) error
	GetRate(ctx context.Context, id int64) (*domain.RentalRate, error)
	ListRates(ctx context.Context) ([]domain.RentalRate, error)
	ListRatesByCategory(ctx context.Context, categoryID int64) ([]domain.RentalRate, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type RecordPaymentInput struct {
	InvoiceID   int64
	AmountCents int64
	Method      string
	Status      domain.PaymentStatus
	ReceivedBy  int64
}

type PaymentService interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error)
	SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error)
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	GetInvoiceForRental(ctx context.Context, rentalID int64) (*domain.Invoice, error)
	ListPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
}

type MaintenanceService interface {
	OpenMaintenance(ctx context.Context, m *domain.MaintenanceRecord) error
	CompleteMaintenance(ctx context.Context, id int64, costCents int64) error
	ListOpenMaintenance(ctx context.Context) ([]domain.MaintenanceRecord, error)
	ListVehicleMaintenance(ctx context.Context, vehicleID int64) ([]domain.MaintenanceRecord, error)

	ReportDamage(ctx context.Context, d *domain.DamageReport) error
	UpdateDamageAssessment(ctx context.Context, id int64, severity domain.DamageSeverity, estimatedCostCents int64, status domain.DamageStatus) (*domain.DamageReport, error)
	GetDamageReport(ctx context.Context, id int64) (*domain.DamageReport, error)
	ListDamageReports(ctx context.Context) ([]domain.DamageReport, error)
}

type ReportService interface {
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, email, name string, res *domain.Reservation) error
	SendReturnReceipt(ctx context.Context, email, name string, inv *domain.Invoice) error
	SendOverdueReminder(ctx context.Context, email, name string, rt *domain.Rental) error
}
