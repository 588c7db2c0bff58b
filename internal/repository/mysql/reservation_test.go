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

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := mysql.NewReservationRepository(db)
	ctx := context.Background()

	pickup := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ret := pickup.Add(48 * time.Hour)

	newReservation := func() *domain.Reservation {
		return &domain.Reservation{
			CustomerID:       1,
			VehicleID:        11,
			CreatedBy:        7,
			PickupAt:         pickup,
			ReturnAt:         ret,
			TotalAmountCents: 12000,
			Status:           domain.ReservationStatusPending,
		}
	}

	t.Run("Success", func(t *testing.T) {
		res := newReservation()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
			WithArgs(res.VehicleID, ret, pickup).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentals`).
			WithArgs(res.VehicleID, ret, pickup).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO reservations").
			WithArgs(res.CustomerID, res.VehicleID, res.RateID, res.CreatedBy, pickup, ret, res.TotalAmountCents, res.Notes, res.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(21, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, res)
		assert.NoError(t, err)
		assert.Equal(t, int64(21), res.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflicting booking blocks insert", func(t *testing.T) {
		res := newReservation()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
			WithArgs(res.VehicleID, ret, pickup).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentals`).
			WithArgs(res.VehicleID, ret, pickup).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectRollback()

		err := repo.Create(ctx, res)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReservationRepository_Cancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := mysql.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status='Cancelled'").
			WithArgs(sqlmock.AnyArg(), int64(21)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Cancel(ctx, 21)
		assert.NoError(t, err)
	})

	t.Run("Not pending", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET status='Cancelled'").
			WithArgs(sqlmock.AnyArg(), int64(21)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(ctx, 21)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReservationRepository_ExpireStale(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := mysql.NewReservationRepository(db)
	ctx := context.Background()
	cutoff := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE reservations SET status='Cancelled'").
		WithArgs(sqlmock.AnyArg(), cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	expired, err := repo.ExpireStale(ctx, cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), expired)
}
