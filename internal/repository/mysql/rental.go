package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, reservation_id, customer_id, vehicle_id, picked_up_by, returned_to, pickup_at, expected_return_at, actual_return_at, initial_mileage, return_mileage, total_amount_cents, notes, status, created_on, updated_on`

func scanRental(row interface{ Scan(...interface{}) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.ReservationID, &rt.CustomerID, &rt.VehicleID, &rt.PickedUpBy, &rt.ReturnedTo, &rt.PickupAt, &rt.ExpectedReturnAt, &rt.ActualReturnAt, &rt.InitialMileage, &rt.ReturnMileage, &rt.TotalAmountCents, &rt.Notes, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func insertRental(ctx context.Context, tx *sql.Tx, rt *domain.Rental) error {
	query := `INSERT INTO rentals (reservation_id, customer_id, vehicle_id, picked_up_by, pickup_at, expected_return_at, initial_mileage, total_amount_cents, notes, status, created_on, updated_on)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, query, rt.ReservationID, rt.CustomerID, rt.VehicleID, rt.PickedUpBy, rt.PickupAt, rt.ExpectedReturnAt, rt.InitialMileage, rt.TotalAmountCents, rt.Notes, rt.Status, time.Now(), time.Now())
	if err != nil {
		return err
	}
	rt.ID, err = result.LastInsertId()
	return err
}

func markVehicleRented(ctx context.Context, tx *sql.Tx, vehicleID int64) error {
	_, err := tx.ExecContext(ctx, `UPDATE vehicles SET status='Rented', updated_on=? WHERE id=?`, time.Now(), vehicleID)
	return err
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	blocking, err := countBlockingBookings(ctx, tx, rt.VehicleID, rt.PickupAt, rt.ExpectedReturnAt)
	if err != nil {
		return err
	}
	if blocking > 0 {
		return domain.ErrConflict
	}
	if err := insertRental(ctx, tx, rt); err != nil {
		return err
	}
	if err := markVehicleRented(ctx, tx, rt.VehicleID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) CreateFromReservation(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.ReservationStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = ? FOR UPDATE`, rt.ReservationID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.ReservationStatusPending {
		return domain.ErrAlreadyStarted
	}

	_, err = tx.ExecContext(ctx, `UPDATE reservations SET status='Fulfilled', updated_on=? WHERE id=?`, time.Now(), rt.ReservationID)
	if err != nil {
		return err
	}
	if err := insertRental(ctx, tx, rt); err != nil {
		return err
	}
	if err := markVehicleRented(ctx, tx, rt.VehicleID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt, err := scanRental(r.db.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rt, err
}

func (r *rentalRepository) List(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY pickup_at DESC`
	return r.list(ctx, query, args...)
}

func (r *rentalRepository) ListActivePastDue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'Active' AND expected_return_at < ? ORDER BY expected_return_at`
	return r.list(ctx, query, asOf)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

// Complete performs the return in one transaction. The status predicate on the
// rental update is the idempotency guard: zero rows affected means another
// return already committed.
func (r *rentalRepository) Complete(ctx context.Context, rt *domain.Rental, charges []domain.Charge, inv *domain.Invoice) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE rentals SET status='Completed', actual_return_at=?, return_mileage=?, returned_to=?, notes=?, total_amount_cents=?, updated_on=?
	          WHERE id=? AND status='Active'`
	result, err := tx.ExecContext(ctx, query, rt.ActualReturnAt, rt.ReturnMileage, rt.ReturnedTo, rt.Notes, rt.TotalAmountCents, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyCompleted
	}

	for i := range charges {
		c := &charges[i]
		res, err := tx.ExecContext(ctx,
			`INSERT INTO rental_charges (rental_id, type, description, quantity, unit_amount_cents, created_on) VALUES (?, ?, ?, ?, ?, ?)`,
			rt.ID, c.Type, c.Description, c.Quantity, c.UnitAmountCents, time.Now())
		if err != nil {
			return err
		}
		if c.ID, err = res.LastInsertId(); err != nil {
			return err
		}
		c.RentalID = rt.ID
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO invoices (rental_id, number, subtotal_cents, taxes_cents, discounts_cents, total_cents, balance_due_cents, issued_by, issued_on)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.RentalID, inv.Number, inv.SubtotalCents, inv.TaxesCents, inv.DiscountsCents, inv.TotalCents, inv.BalanceDueCents, inv.IssuedBy, inv.IssuedOn)
	if err != nil {
		return err
	}
	if inv.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	if rt.ReturnMileage != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status='Available', mileage=?, updated_on=? WHERE id=?`,
			*rt.ReturnMileage, time.Now(), rt.VehicleID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status='Available', updated_on=? WHERE id=?`,
			time.Now(), rt.VehicleID)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	rt.Status = domain.RentalStatusCompleted
	return nil
}

func (r *rentalRepository) ListCharges(ctx context.Context, rentalID int64) ([]domain.Charge, error) {
	query := `SELECT id, rental_id, type, description, quantity, unit_amount_cents, created_on FROM rental_charges WHERE rental_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []domain.Charge
	for rows.Next() {
		var c domain.Charge
		if err := rows.Scan(&c.ID, &c.RentalID, &c.Type, &c.Description, &c.Quantity, &c.UnitAmountCents, &c.CreatedOn); err != nil {
			return nil, err
		}
		charges = append(charges, c)
	}
	return charges, rows.Err()
}
