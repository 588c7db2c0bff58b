package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/utils"

	"github.com/google/uuid"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	resvRepo     repository.ReservationRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
	rateRepo     repository.RateRepository
	bookingRepo  repository.BookingRepository
	emailSvc     EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	resvRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	rateRepo repository.RateRepository,
	bookingRepo repository.BookingRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		resvRepo:     resvRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		rateRepo:     rateRepo,
		bookingRepo:  bookingRepo,
		emailSvc:     emailSvc,
	}
}

func (s *rentalService) StartFromReservation(ctx context.Context, reservationID, agentID, initialMileage int64, notes string) (*domain.Rental, error) {
	res, err := s.resvRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusPending {
		return nil, domain.ErrAlreadyStarted
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, res.VehicleID)
	if err != nil {
		return nil, err
	}
	if initialMileage == 0 {
		initialMileage = vehicle.Mileage
	}

	rt := &domain.Rental{
		ReservationID:    &res.ID,
		CustomerID:       res.CustomerID,
		VehicleID:        res.VehicleID,
		PickedUpBy:       agentID,
		PickupAt:         res.PickupAt,
		ExpectedReturnAt: res.ReturnAt,
		InitialMileage:   initialMileage,
		TotalAmountCents: res.TotalAmountCents,
		Notes:            notes,
		Status:           domain.RentalStatusActive,
	}
	if err := s.rentalRepo.CreateFromReservation(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) StartDirect(ctx context.Context, in StartRentalInput) (*domain.Rental, error) {
	if in.CustomerID == 0 || in.VehicleID == 0 {
		return nil, fmt.Errorf("%w: customer and vehicle are required", domain.ErrValidation)
	}
	w, err := utils.NormalizeWindow(in.PickupAt, in.ExpectedReturnAt)
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

	vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, fmt.Errorf("%w: vehicle %d is not available", domain.ErrValidation, vehicle.ID)
	}

	bookings, err := s.bookingRepo.ListOverlapping(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	if !utils.VehicleIsFree(vehicle.ID, w, bookings) {
		return nil, domain.ErrNoVehicleAvailable
	}

	rates, err := s.rateRepo.ListByCategory(ctx, vehicle.CategoryID)
	if err != nil {
		return nil, err
	}
	daily, err := utils.ResolveDailyRate(rates, vehicle.CategoryID, w.Start)
	if err != nil {
		return nil, err
	}
	total := utils.CeilDays(w)*daily - in.DiscountCents
	if total < 0 {
		total = 0
	}

	initialMileage := in.InitialMileage
	if initialMileage == 0 {
		initialMileage = vehicle.Mileage
	}

	rt := &domain.Rental{
		CustomerID:       in.CustomerID,
		VehicleID:        in.VehicleID,
		PickedUpBy:       in.AgentID,
		PickupAt:         w.Start,
		ExpectedReturnAt: w.End,
		InitialMileage:   initialMileage,
		TotalAmountCents: total,
		Notes:            in.Notes,
		Status:           domain.RentalStatusActive,
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// ReturnRental completes the rental, posts its itemized charges and issues the
// invoice. The rental's total absorbs the charges in this one transition and
// is never touched again. The whole return commits atomically; a second
// return of the same rental fails with ErrAlreadyCompleted and leaves the
// first invoice untouched.
func (s *rentalService) ReturnRental(ctx context.Context, in ReturnRentalInput) (*domain.Rental, *domain.Invoice, error) {
	rt, err := s.rentalRepo.GetByID(ctx, in.RentalID)
	if err != nil {
		return nil, nil, err
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, nil, domain.ErrAlreadyCompleted
	}

	returnedAt := in.ReturnedAt
	if returnedAt.IsZero() {
		returnedAt = time.Now()
	}
	returnMileage := in.ReturnMileage
	if returnMileage == 0 {
		returnMileage = rt.InitialMileage
	}
	if returnMileage < rt.InitialMileage {
		return nil, nil, fmt.Errorf("%w: return mileage %d below initial %d", domain.ErrValidation, returnMileage, rt.InitialMileage)
	}

	charges, chargesTotal := utils.ComputeCharges(rt.InitialMileage, returnMileage, in.Charges)

	subtotal := rt.TotalAmountCents + chargesTotal
	inv := &domain.Invoice{
		RentalID:        rt.ID,
		Number:          newInvoiceNumber(),
		SubtotalCents:   subtotal,
		TotalCents:      subtotal,
		BalanceDueCents: subtotal,
		IssuedBy:        in.AgentID,
		IssuedOn:        returnedAt,
	}

	rt.ActualReturnAt = &returnedAt
	rt.ReturnMileage = &returnMileage
	rt.ReturnedTo = &in.AgentID
	rt.TotalAmountCents = subtotal
	if in.Notes != "" {
		rt.Notes = in.Notes
	}
	if err := s.rentalRepo.Complete(ctx, rt, charges, inv); err != nil {
		return nil, nil, err
	}

	if customer, err := s.customerRepo.GetByID(ctx, rt.CustomerID); err == nil && customer.Email != "" {
		_ = s.emailSvc.SendReturnReceipt(ctx, customer.Email, customer.FullName(), inv)
	}
	return rt, inv, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx, status)
}

func (s *rentalService) ListCharges(ctx context.Context, rentalID int64) ([]domain.Charge, error) {
	return s.rentalRepo.ListCharges(ctx, rentalID)
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
