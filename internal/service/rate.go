package service

import (
	"context"
	"fmt"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type rateService struct {
	rateRepo repository.RateRepository
}

func NewRateService(rateRepo repository.RateRepository) RateService {
	return &rateService{rateRepo: rateRepo}
}

func (s *rateService) CreateRate(ctx context.Context, r *domain.RentalRate) error {
	if r.CategoryID == 0 {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if r.DailyRateCents <= 0 {
		return fmt.Errorf("%w: daily rate must be positive", domain.ErrValidation)
	}
	if r.WeeklyRateCents < 0 || r.MonthlyRateCents < 0 {
		return fmt.Errorf("%w: rates cannot be negative", domain.ErrValidation)
	}
	if r.EffectiveFrom.IsZero() {
		return fmt.Errorf("%w: effective start date is required", domain.ErrValidation)
	}
	if r.EffectiveTo != nil && !r.EffectiveTo.After(r.EffectiveFrom) {
		return fmt.Errorf("%w: effective range is empty", domain.ErrValidation)
	}
	return s.rateRepo.Create(ctx, r)
}

func (s *rateService) GetRate(ctx context.Context, id int64) (*domain.RentalRate, error) {
	return s.rateRepo.GetByID(ctx, id)
}

func (s *rateService) ListRates(ctx context.Context) ([]domain.RentalRate, error) {
	return s.rateRepo.List(ctx)
}

func (s *rateService) ListRatesByCategory(ctx context.Context, categoryID int64) ([]domain.RentalRate, error) {
	return s.rateRepo.ListByCategory(ctx, categoryID)
}
