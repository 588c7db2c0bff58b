package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, vehicle_id, description, cost_cents, performed_by, started_on, completed_on, created_by, created_on`

func scanMaintenance(row interface{ Scan(...interface{}) error }) (*domain.MaintenanceRecord, error) {
	m := &domain.MaintenanceRecord{}
	err := row.Scan(&m.ID, &m.VehicleID, &m.Description, &m.CostCents, &m.PerformedBy, &m.StartedOn, &m.CompletedOn, &m.CreatedBy, &m.CreatedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRecord) error {
	query := `INSERT INTO maintenance_records (vehicle_id, description, cost_cents, performed_by, started_on, completed_on, created_by, created_on)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, m.VehicleID, m.Description, m.CostCents, m.PerformedBy, m.StartedOn, m.CompletedOn, m.CreatedBy, time.Now())
	if err != nil {
		return err
	}
	m.ID, err = res.LastInsertId()
	return err
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRecord, error) {
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_records WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return m, err
}

func (r *maintenanceRepository) Complete(ctx context.Context, id int64, completedOn time.Time, costCents int64) error {
	query := `UPDATE maintenance_records SET completed_on=?, cost_cents=? WHERE id=? AND completed_on IS NULL`
	result, err := r.db.ExecContext(ctx, query, completedOn, costCents, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE vehicle_id = ? ORDER BY started_on DESC`
	return r.list(ctx, query, vehicleID)
}

func (r *maintenanceRepository) ListOpen(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE completed_on IS NULL ORDER BY started_on`
	return r.list(ctx, query)
}

func (r *maintenanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MaintenanceRecord
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *m)
	}
	return records, rows.Err()
}

type damageRepository struct {
	db *sql.DB
}

func NewDamageRepository(db *sql.DB) repository.DamageRepository {
	return &damageRepository{db: db}
}

const damageColumns = `id, vehicle_id, rental_id, description, severity, estimated_cost_cents, status, reported_by, created_on, updated_on`

func scanDamage(row interface{ Scan(...interface{}) error }) (*domain.DamageReport, error) {
	d := &domain.DamageReport{}
	err := row.Scan(&d.ID, &d.VehicleID, &d.RentalID, &d.Description, &d.Severity, &d.EstimatedCostCents, &d.Status, &d.ReportedBy, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *damageRepository) Create(ctx context.Context, d *domain.DamageReport) error {
	query := `INSERT INTO damage_reports (vehicle_id, rental_id, description, severity, estimated_cost_cents, status, reported_by, created_on, updated_on)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, d.VehicleID, d.RentalID, d.Description, d.Severity, d.EstimatedCostCents, d.Status, d.ReportedBy, time.Now(), time.Now())
	if err != nil {
		return err
	}
	d.ID, err = res.LastInsertId()
	return err
}

func (r *damageRepository) GetByID(ctx context.Context, id int64) (*domain.DamageReport, error) {
	d, err := scanDamage(r.db.QueryRowContext(ctx, `SELECT `+damageColumns+` FROM damage_reports WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return d, err
}

func (r *damageRepository) Update(ctx context.Context, d *domain.DamageReport) error {
	query := `UPDATE damage_reports SET description=?, severity=?, estimated_cost_cents=?, status=?, updated_on=? WHERE id=?`
	_, err := r.db.ExecContext(ctx, query, d.Description, d.Severity, d.EstimatedCostCents, d.Status, time.Now(), d.ID)
	return err
}

func (r *damageRepository) List(ctx context.Context) ([]domain.DamageReport, error) {
	query := `SELECT ` + damageColumns + ` FROM damage_reports ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.DamageReport
	for rows.Next() {
		d, err := scanDamage(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *d)
	}
	return reports, rows.Err()
}
