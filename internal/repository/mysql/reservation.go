package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, customer_id, vehicle_id, rate_id, created_by, pickup_at, return_at, total_amount_cents, notes, status, created_on, updated_on`

func scanReservation(row interface{ Scan(...interface{}) error }) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := row.Scan(&res.ID, &res.CustomerID, &res.VehicleID, &res.RateID, &res.CreatedBy, &res.PickupAt, &res.ReturnAt, &res.TotalAmountCents, &res.Notes, &res.Status, &res.CreatedOn, &res.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// countBlockingBookings re-checks the vehicle's calendar under row locks so a
// booking committed after the availability check is still caught before insert.
func countBlockingBookings(ctx context.Context, tx *sql.Tx, vehicleID int64, start, end time.Time) (int64, error) {
	var resvCount, rentalCount int64
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE vehicle_id = ? AND status = 'Pending' AND pickup_at < ? AND return_at > ? FOR UPDATE`,
		vehicleID, end, start).Scan(&resvCount)
	if err != nil {
		return 0, err
	}
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE vehicle_id = ? AND status = 'Active' AND pickup_at < ? AND expected_return_at > ? FOR UPDATE`,
		vehicleID, end, start).Scan(&rentalCount)
	if err != nil {
		return 0, err
	}
	return resvCount + rentalCount, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	blocking, err := countBlockingBookings(ctx, tx, res.VehicleID, res.PickupAt, res.ReturnAt)
	if err != nil {
		return err
	}
	if blocking > 0 {
		return domain.ErrConflict
	}

	query := `INSERT INTO reservations (customer_id, vehicle_id, rate_id, created_by, pickup_at, return_at, total_amount_cents, notes, status, created_on, updated_on)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, query, res.CustomerID, res.VehicleID, res.RateID, res.CreatedBy, res.PickupAt, res.ReturnAt, res.TotalAmountCents, res.Notes, res.Status, time.Now(), time.Now())
	if err != nil {
		return err
	}
	if res.ID, err = result.LastInsertId(); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := scanReservation(r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return res, err
}

func (r *reservationRepository) ListPending(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = 'Pending' ORDER BY pickup_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) Cancel(ctx context.Context, id int64) error {
	query := `UPDATE reservations SET status='Cancelled', updated_on=? WHERE id=? AND status='Pending'`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
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

func (r *reservationRepository) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE reservations SET status='Cancelled', updated_on=? WHERE status='Pending' AND pickup_at < ?`
	result, err := r.db.ExecContext(ctx, query, time.Now(), cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
