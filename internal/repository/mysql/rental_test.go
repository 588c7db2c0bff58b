package mysql_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRentalRepository_CreateFromReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := mysql.NewRentalRepository(db)
	ctx := context.Background()

	pickup := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	resvID := int64(21)

	newRental := func() *domain.Rental {
		return &domain.Rental{
			ReservationID:    &resvID,
			CustomerID:       1,
			VehicleID:        11,
			PickedUpBy:       7,
			PickupAt:         pickup,
			ExpectedReturnAt: pickup.Add(48 * time.Hour),
			InitialMileage:   48000,
			TotalAmountCents: 12000,
			Status:           domain.RentalStatusActive,
		}
	}

	t.Run("Success", func(t *testing.T) {
		rt := newRental()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT status FROM reservations").
			WithArgs(rt.ReservationID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Pending"))
		mock.ExpectExec("UPDATE reservations SET status='Fulfilled'").
			WithArgs(sqlmock.AnyArg(), rt.ReservationID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(rt.ReservationID, rt.CustomerID, rt.VehicleID, rt.PickedUpBy, rt.PickupAt, rt.ExpectedReturnAt, rt.InitialMileage, rt.TotalAmountCents, rt.Notes, rt.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(31, 1))
		mock.ExpectExec("UPDATE vehicles SET status='Rented'").
			WithArgs(sqlmock.AnyArg(), rt.VehicleID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateFromReservation(ctx, rt)
		assert.NoError(t, err)
		assert.Equal(t, int64(31), rt.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Reservation already fulfilled", func(t *testing.T) {
		rt := newRental()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT status FROM reservations").
			WithArgs(rt.ReservationID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Fulfilled"))
		mock.ExpectRollback()

		err := repo.CreateFromReservation(ctx, rt)
		assert.ErrorIs(t, err, domain.ErrAlreadyStarted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_Complete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := mysql.NewRentalRepository(db)
	ctx := context.Background()

	returnedAt := time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC)
	returnMileage := int64(48120)
	agentID := int64(7)

	newReturn := func() (*domain.Rental, []domain.Charge, *domain.Invoice) {
		rt := &domain.Rental{
			ID:               31,
			VehicleID:        11,
			InitialMileage:   48000,
			TotalAmountCents: 14500,
			Status:           domain.RentalStatusActive,
			ActualReturnAt:   &returnedAt,
			ReturnMileage:    &returnMileage,
			ReturnedTo:       &agentID,
		}
		charges := []domain.Charge{
			{Type: domain.ChargeTypeLateFee, Description: "Late return", Quantity: 1, UnitAmountCents: 2500},
		}
		inv := &domain.Invoice{
			RentalID:        31,
			Number:          "INV-AB12CD34",
			SubtotalCents:   14500,
			TotalCents:      14500,
			BalanceDueCents: 14500,
			IssuedBy:        agentID,
			IssuedOn:        returnedAt,
		}
		return rt, charges, inv
	}

	t.Run("Success", func(t *testing.T) {
		rt, charges, inv := newReturn()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET status='Completed'").
			WithArgs(rt.ActualReturnAt, rt.ReturnMileage, rt.ReturnedTo, rt.Notes, rt.TotalAmountCents, sqlmock.AnyArg(), rt.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO rental_charges").
			WithArgs(rt.ID, charges[0].Type, charges[0].Description, charges[0].Quantity, charges[0].UnitAmountCents, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(101, 1))
		mock.ExpectExec("INSERT INTO invoices").
			WithArgs(inv.RentalID, inv.Number, inv.SubtotalCents, inv.TaxesCents, inv.DiscountsCents, inv.TotalCents, inv.BalanceDueCents, inv.IssuedBy, inv.IssuedOn).
			WillReturnResult(sqlmock.NewResult(55, 1))
		mock.ExpectExec("UPDATE vehicles SET status='Available'").
			WithArgs(returnMileage, sqlmock.AnyArg(), rt.VehicleID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Complete(ctx, rt, charges, inv)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCompleted, rt.Status)
		assert.Equal(t, int64(101), charges[0].ID)
		assert.Equal(t, int64(31), charges[0].RentalID)
		assert.Equal(t, int64(55), inv.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second return is rejected", func(t *testing.T) {
		rt, charges, inv := newReturn()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET status='Completed'").
			WithArgs(rt.ActualReturnAt, rt.ReturnMileage, rt.ReturnedTo, rt.Notes, rt.TotalAmountCents, sqlmock.AnyArg(), rt.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Complete(ctx, rt, charges, inv)
		assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := mysql.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "reservation_id", "customer_id", "vehicle_id", "picked_up_by", "returned_to", "pickup_at", "expected_return_at", "actual_return_at", "initial_mileage", "return_mileage", "total_amount_cents", "notes", "status", "created_on", "updated_on"}).
			AddRow(31, nil, 1, 11, 7, nil, now, now.Add(48*time.Hour), nil, 48000, nil, 12000, "", "Active", now, now)

		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \?`).
			WithArgs(int64(31)).
			WillReturnRows(rows)

		rt, err := repo.GetByID(ctx, 31)
		assert.NoError(t, err)
		assert.Equal(t, int64(31), rt.ID)
		assert.Equal(t, domain.RentalStatusActive, rt.Status)
		assert.Nil(t, rt.ReturnMileage)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \?`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
