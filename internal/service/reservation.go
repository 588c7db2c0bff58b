package service

import (
	"context"
	"fmt"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/utils"
)

type reservationService struct {
	resvRepo     repository.ReservationRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
	rateRepo     repository.RateRepository
	bookingRepo  repository.BookingRepository
	emailSvc     EmailService
}

func NewReservationService(
	resvRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	rateRepo repository.RateRepository,
	bookingRepo repository.BookingRepository,
	emailSvc EmailService,
) ReservationService {
	return &reservationService{
		resvRepo:     resvRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		rateRepo:     rateRepo,
		bookingRepo:  bookingRepo,
		emailSvc:     emailSvc,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	if in.CustomerID == 0 {
		return nil, fmt.Errorf("%w: customer is required", domain.ErrValidation)
	}
	w, err := utils.NormalizeWindow(in.PickupAt, in.ReturnAt)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, fmt.Errorf("%w: customer account is inactive", domain.ErrValidation)
	}

	vehicle, err := s.pickVehicle(ctx, in, w)
	if err != nil {
		return nil, err
	}

	rate, err := s.resolveRate(ctx, in.RateID, vehicle.CategoryID, w)
	if err != nil {
		return nil, err
	}
	daily := rate.DailyRateCents
	if in.DailyRateOverrideCents > 0 {
		daily = in.DailyRateOverrideCents
	}

	res := &domain.Reservation{
		CustomerID:       in.CustomerID,
		VehicleID:        vehicle.ID,
		RateID:           &rate.ID,
		CreatedBy:        in.CreatedBy,
		PickupAt:         w.Start,
		ReturnAt:         w.End,
		TotalAmountCents: utils.CeilDays(w) * daily,
		Notes:            in.Notes,
		Status:           domain.ReservationStatusPending,
	}
	if err := s.resvRepo.Create(ctx, res); err != nil {
		return nil, err
	}

	// Confirmation mail is best effort; the booking stands either way.
	if customer.Email != "" {
		_ = s.emailSvc.SendReservationConfirmation(ctx, customer.Email, customer.FullName(), res)
	}
	return res, nil
}

// pickVehicle resolves the concrete vehicle for the reservation. A pinned
// vehicle is verified against its own calendar; otherwise the first free
// vehicle in the category wins.
func (s *reservationService) pickVehicle(ctx context.Context, in CreateReservationInput, w utils.Window) (*domain.Vehicle, error) {
	bookings, err := s.bookingRepo.ListOverlapping(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	if in.VehicleID != 0 {
		vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
		if err != nil {
			return nil, err
		}
		if !vehicle.Rentable() {
			return nil, fmt.Errorf("%w: vehicle %d is not in service", domain.ErrValidation, vehicle.ID)
		}
		if !utils.VehicleIsFree(vehicle.ID, w, bookings) {
			return nil, domain.ErrNoVehicleAvailable
		}
		return vehicle, nil
	}

	if in.CategoryID == 0 {
		return nil, fmt.Errorf("%w: vehicle or category is required", domain.ErrValidation)
	}
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	free := utils.FindAvailable(utils.FilterByCategory(vehicles, in.CategoryID), w, bookings)
	if len(free) == 0 {
		return nil, domain.ErrNoVehicleAvailable
	}
	return &free[0], nil
}

func (s *reservationService) resolveRate(ctx context.Context, rateID *int64, categoryID int64, w utils.Window) (*domain.RentalRate, error) {
	if rateID != nil {
		rate, err := s.rateRepo.GetByID(ctx, *rateID)
		if err != nil {
			return nil, err
		}
		if !rate.InEffect(w.Start) {
			return nil, domain.ErrNoApplicableRate
		}
		return rate, nil
	}
	rates, err := s.rateRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return utils.ResolveRate(rates, categoryID, w.Start)
}

func (s *reservationService) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.resvRepo.GetByID(ctx, id)
}

func (s *reservationService) ListPending(ctx context.Context) ([]domain.Reservation, error) {
	return s.resvRepo.ListPending(ctx)
}

func (s *reservationService) CancelReservation(ctx context.Context, id int64) error {
	return s.resvRepo.Cancel(ctx, id)
}
