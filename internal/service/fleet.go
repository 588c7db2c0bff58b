package service

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type fleetService struct {
	vehicleRepo repository.VehicleRepository
}

func NewFleetService(vehicleRepo repository.VehicleRepository) FleetService {
	return &fleetService{vehicleRepo: vehicleRepo}
}

func (s *fleetService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if v.Make == "" || v.Model == "" || v.LicensePlate == "" {
		return fmt.Errorf("%w: make, model and license plate are required", domain.ErrValidation)
	}
	if v.CategoryID == 0 {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if v.Year <= 0 || v.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: invalid year %d", domain.ErrValidation, v.Year)
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *fleetService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *fleetService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if _, err := s.vehicleRepo.GetByID(ctx, v.ID); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, v)
}

// SetVehicleStatus moves a vehicle between lifecycle states by hand. Rented is
// reserved for the rental flow, which sets and clears it transactionally.
func (s *fleetService) SetVehicleStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	if status == domain.VehicleStatusRented {
		return fmt.Errorf("%w: rented status is managed by the rental flow", domain.ErrValidation)
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle.Status == domain.VehicleStatusRented {
		return fmt.Errorf("%w: vehicle %d is out on a rental", domain.ErrConflict, id)
	}
	return s.vehicleRepo.UpdateStatus(ctx, id, status)
}

func (s *fleetService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *fleetService) ListCategories(ctx context.Context) ([]domain.VehicleCategory, error) {
	return s.vehicleRepo.ListCategories(ctx)
}

func (s *fleetService) AddCategory(ctx context.Context, c *domain.VehicleCategory) error {
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	return s.vehicleRepo.CreateCategory(ctx, c)
}
