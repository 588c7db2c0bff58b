package service

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type maintenanceService struct {
	maintRepo   repository.MaintenanceRepository
	damageRepo  repository.DamageRepository
	vehicleRepo repository.VehicleRepository
}

func NewMaintenanceService(
	maintRepo repository.MaintenanceRepository,
	damageRepo repository.DamageRepository,
	vehicleRepo repository.VehicleRepository,
) MaintenanceService {
	return &maintenanceService{
		maintRepo:   maintRepo,
		damageRepo:  damageRepo,
		vehicleRepo: vehicleRepo,
	}
}

// OpenMaintenance takes the vehicle out of the bookable fleet for the duration
// of the work. A vehicle that is out on a rental cannot enter maintenance.
func (s *maintenanceService) OpenMaintenance(ctx context.Context, m *domain.MaintenanceRecord) error {
	if m.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, m.VehicleID)
	if err != nil {
		return err
	}
	if vehicle.Status == domain.VehicleStatusRented {
		return fmt.Errorf("%w: vehicle %d is out on a rental", domain.ErrConflict, vehicle.ID)
	}

	if m.StartedOn.IsZero() {
		m.StartedOn = time.Now()
	}
	if err := s.maintRepo.Create(ctx, m); err != nil {
		return err
	}
	return s.vehicleRepo.UpdateStatus(ctx, m.VehicleID, domain.VehicleStatusMaintenance)
}

func (s *maintenanceService) CompleteMaintenance(ctx context.Context, id int64, costCents int64) error {
	if costCents < 0 {
		return fmt.Errorf("%w: cost cannot be negative", domain.ErrValidation)
	}
	m, err := s.maintRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.maintRepo.Complete(ctx, id, time.Now(), costCents); err != nil {
		return err
	}
	return s.vehicleRepo.UpdateStatus(ctx, m.VehicleID, domain.VehicleStatusAvailable)
}

func (s *maintenanceService) ListOpenMaintenance(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return s.maintRepo.ListOpen(ctx)
}

func (s *maintenanceService) ListVehicleMaintenance(ctx context.Context, vehicleID int64) ([]domain.MaintenanceRecord, error) {
	return s.maintRepo.ListByVehicle(ctx, vehicleID)
}

func (s *maintenanceService) ReportDamage(ctx context.Context, d *domain.DamageReport) error {
	if d.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if _, err := s.vehicleRepo.GetByID(ctx, d.VehicleID); err != nil {
		return err
	}
	if d.Severity == "" {
		d.Severity = domain.DamageSeverityMinor
	}
	d.Status = domain.DamageStatusReported
	return s.damageRepo.Create(ctx, d)
}

func (s *maintenanceService) UpdateDamageAssessment(ctx context.Context, id int64, severity domain.DamageSeverity, estimatedCostCents int64, status domain.DamageStatus) (*domain.DamageReport, error) {
	if estimatedCostCents < 0 {
		return nil, fmt.Errorf("%w: estimated cost cannot be negative", domain.ErrValidation)
	}
	d, err := s.damageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if severity != "" {
		d.Severity = severity
	}
	if status != "" {
		d.Status = status
	}
	d.EstimatedCostCents = estimatedCostCents
	if err := s.damageRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *maintenanceService) GetDamageReport(ctx context.Context, id int64) (*domain.DamageReport, error) {
	return s.damageRepo.GetByID(ctx, id)
}

func (s *maintenanceService) ListDamageReports(ctx context.Context) ([]domain.DamageReport, error) {
	return s.damageRepo.List(ctx)
}
