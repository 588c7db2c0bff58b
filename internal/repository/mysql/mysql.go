package mysql

import (
	"database/sql"

	"vehicle-rental-backend/internal/repository"

	_ "github.com/go-sql-driver/mysql"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.CustomerRepository
	repository.RateRepository
	repository.BookingRepository
	repository.ReservationRepository
	repository.RentalRepository
	repository.InvoiceRepository
	repository.PaymentRepository
	repository.UserRepository
	repository.MaintenanceRepository
	repository.DamageRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		VehicleRepository:     NewVehicleRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		RateRepository:        NewRateRepository(db),
		BookingRepository:     NewBookingRepository(db),
		ReservationRepository: NewReservationRepository(db),
		RentalRepository:      NewRentalRepository(db),
		InvoiceRepository:     NewInvoiceRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		UserRepository:        NewUserRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		DamageRepository:      NewDamageRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}
