package service

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/utils"
)

type availabilityService struct {
	vehicleRepo repository.VehicleRepository
	bookingRepo repository.BookingRepository
	rateRepo    repository.RateRepository
}

func NewAvailabilityService(
	vehicleRepo repository.VehicleRepository,
	bookingRepo repository.BookingRepository,
	rateRepo repository.RateRepository,
) AvailabilityService {
	return &availabilityService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		rateRepo:    rateRepo,
	}
}

func (s *availabilityService) Search(ctx context.Context, categoryID int64, start, end time.Time) ([]domain.Vehicle, error) {
	w, err := utils.NormalizeWindow(start, end)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categoryID != 0 {
		vehicles = utils.FilterByCategory(vehicles, categoryID)
	}

	bookings, err := s.bookingRepo.ListOverlapping(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return utils.FindAvailable(vehicles, w, bookings), nil
}

// Quote prices a window for a category without touching any booking. The rate
// is resolved against the pickup date.
func (s *availabilityService) Quote(ctx context.Context, categoryID int64, start, end time.Time) (*Quote, error) {
	w, err := utils.NormalizeWindow(start, end)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	rate, err := utils.ResolveRate(rates, categoryID, w.Start)
	if err != nil {
		return nil, err
	}

	days := utils.CeilDays(w)
	return &Quote{
		RateID:         rate.ID,
		DailyRateCents: rate.DailyRateCents,
		Days:           days,
		TotalCents:     days * rate.DailyRateCents,
	}, nil
}
