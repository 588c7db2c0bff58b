package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type rateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) repository.RateRepository {
	return &rateRepository{db: db}
}

const rateColumns = `id, category_id, name, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, effective_from, effective_to, active, created_on`

func scanRate(row interface{ Scan(...interface{}) error }) (*domain.RentalRate, error) {
	rt := &domain.RentalRate{}
	err := row.Scan(&rt.ID, &rt.CategoryID, &rt.Name, &rt.DailyRateCents, &rt.WeeklyRateCents, &rt.MonthlyRateCents, &rt.EffectiveFrom, &rt.EffectiveTo, &rt.Active, &rt.CreatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rateRepository) Create(ctx context.Context, rt *domain.RentalRate) error {
	query := `INSERT INTO rental_rates (category_id, name, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, effective_from, effective_to, active, created_on)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, rt.CategoryID, rt.Name, rt.DailyRateCents, rt.WeeklyRateCents, rt.MonthlyRateCents, rt.EffectiveFrom, rt.EffectiveTo, rt.Active, time.Now())
	if err != nil {
		return err
	}
	rt.ID, err = res.LastInsertId()
	return err
}

func (r *rateRepository) GetByID(ctx context.Context, id int64) (*domain.RentalRate, error) {
	rt, err := scanRate(r.db.QueryRowContext(ctx, `SELECT `+rateColumns+` FROM rental_rates WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rt, err
}

func (r *rateRepository) List(ctx context.Context) ([]domain.RentalRate, error) {
	return r.list(ctx, `SELECT `+rateColumns+` FROM rental_rates ORDER BY category_id, effective_from`)
}

func (r *rateRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.RentalRate, error) {
	return r.list(ctx, `SELECT `+rateColumns+` FROM rental_rates WHERE category_id = ? ORDER BY effective_from`, categoryID)
}

func (r *rateRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.RentalRate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.RentalRate
	for rows.Next() {
		rt, err := scanRate(rows)
		if err != nil {
			return nil, err
		}
		rates = append(rates, *rt)
	}
	return rates, rows.Err()
}
