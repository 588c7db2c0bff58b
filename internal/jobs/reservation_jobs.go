package jobs

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/logger"
)

// ExpireStaleReservations cancels Pending reservations whose pickup time
// passed longer ago than the configured grace period. Cancelling frees the
// vehicle's calendar for new bookings.
func (jr *JobRunner) ExpireStaleReservations() {
	jr.runWithRecovery("ExpireStaleReservations", func() {
		ctx := context.Background()

		grace := time.Duration(jr.config.Booking.StaleReservationGraceHours) * time.Hour
		cutoff := time.Now().Add(-grace)

		count, err := jr.store.ExpireStale(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale reservations", "error", err)
			return
		}
		logger.Info("Expired stale reservations", "count", count, "cutoff", cutoff)
	})
}
