package repository

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
	List(ctx context.Context) ([]domain.Vehicle, error)

	ListCategories(ctx context.Context) ([]domain.VehicleCategory, error)
	CreateCategory(ctx context.Context, c *domain.VehicleCategory) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type RateRepository interface {
	Create(ctx context.Context, r *domain.RentalRate) error
	GetByID(ctx context.Context, id int64) (*domain.RentalRate, error)
	List(ctx context.Context) ([]domain.RentalRate, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.RentalRate, error)
}

// BookingRepository is the availability-calendar view: one query across
// reservations and rentals for everything touching a window.
type BookingRepository interface {
	ListOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
}

type ReservationRepository interface {
	// Create persists the reservation after re-validating, inside the same
	// transaction, that no open booking for the vehicle overlaps the window.
	// Returns domain.ErrConflict when a concurrent booking won.
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListPending(ctx context.Context) ([]domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
	// ExpireStale cancels Pending reservations whose pickup instant is before
	// the cutoff and reports how many were touched.
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type RentalRepository interface {
	// Create persists a direct rental with the same transactional conflict
	// re-validation as ReservationRepository.Create, and moves the vehicle to
	// Rented in the same transaction.
	Create(ctx context.Context, rt *domain.Rental) error
	// CreateFromReservation locks the reservation row, requires status
	// Pending (domain.ErrAlreadyStarted otherwise), marks it Fulfilled and
	// inserts the rental atomically.
	CreateFromReservation(ctx context.Context, rt *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	ListActivePastDue(ctx context.Context, asOf time.Time) ([]domain.Rental, error)
	// Complete performs the single Active -> Completed transition, persists
	// the rental's charge-inclusive total, posts the charges and the
	// invoice, and writes the vehicle's new mileage and
	// Available status, all in one transaction. The status guard is enforced
	// at commit point; a second call returns domain.ErrAlreadyCompleted.
	Complete(ctx context.Context, rt *domain.Rental, charges []domain.Charge, inv *domain.Invoice) error
	ListCharges(ctx context.Context, rentalID int64) ([]domain.Charge, error)
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByRental(ctx context.Context, rentalID int64) (*domain.Invoice, error)
}

type PaymentRepository interface {
	// Create inserts the payment and, when it is already Completed, reduces
	// the invoice balance in the same transaction.
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	// SetStatus transitions the payment and adjusts the invoice balance for
	// transitions into and out of Completed.
	SetStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.MaintenanceRecord) error
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceRecord, error)
	Complete(ctx context.Context, id int64, completedOn time.Time, costCents int64) error
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.MaintenanceRecord, error)
	ListOpen(ctx context.Context) ([]domain.MaintenanceRecord, error)
}

type DamageRepository interface {
	Create(ctx context.Context, d *domain.DamageReport) error
	GetByID(ctx context.Context, id int64) (*domain.DamageReport, error)
	Update(ctx context.Context, d *domain.DamageReport) error
	List(ctx context.Context) ([]domain.DamageReport, error)
}

type ReportRepository interface {
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
