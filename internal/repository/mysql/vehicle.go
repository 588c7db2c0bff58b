package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (category_id, make, model, year, license_plate, mileage, status, created_on, updated_on)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, v.CategoryID, v.Make, v.Model, v.Year, v.LicensePlate, v.Mileage, v.Status, time.Now(), time.Now())
	if err != nil {
		return err
	}
	v.ID, err = res.LastInsertId()
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, category_id, make, model, year, license_plate, mileage, status, created_on, updated_on FROM vehicles WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.CategoryID, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.Mileage, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET category_id=?, make=?, model=?, year=?, license_plate=?, mileage=?, status=?, updated_on=? WHERE id=?`
	_, err := r.db.ExecContext(ctx, query, v.CategoryID, v.Make, v.Model, v.Year, v.LicensePlate, v.Mileage, v.Status, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status=?, updated_on=? WHERE id=?`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT id, category_id, make, model, year, license_plate, mileage, status, created_on, updated_on FROM vehicles ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.CategoryID, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.Mileage, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) ListCategories(ctx context.Context) ([]domain.VehicleCategory, error) {
	query := `SELECT id, name FROM vehicle_categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.VehicleCategory
	for rows.Next() {
		var c domain.VehicleCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *vehicleRepository) CreateCategory(ctx context.Context, c *domain.VehicleCategory) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO vehicle_categories (name) VALUES (?)`, c.Name)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}
