package mysql

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// ListOverlapping returns one row per pending reservation or active rental
// whose window overlaps [start, end). Closed records are excluded in SQL so
// the in-memory check only sees bookings that can actually block.
func (r *bookingRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	query := `SELECT vehicle_id, pickup_at, return_at FROM reservations
	          WHERE status = 'Pending' AND pickup_at < ? AND return_at > ?
	          UNION ALL
	          SELECT vehicle_id, pickup_at, expected_return_at FROM rentals
	          WHERE status = 'Active' AND pickup_at < ? AND expected_return_at > ?`
	rows, err := r.db.QueryContext(ctx, query, end, start, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b := domain.Booking{Blocks: true}
		if err := rows.Scan(&b.VehicleID, &b.Start, &b.End); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
