package jobs

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/logger"
)

// SendOverdueReminders emails customers whose active rentals are past their
// expected return time. Rentals stay Active until the vehicle actually comes
// back; this job only nags.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		rentals, err := jr.store.ListActivePastDue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}
		if len(rentals) == 0 {
			logger.Info("No overdue rentals found")
			return
		}

		sent := 0
		for i := range rentals {
			rt := &rentals[i]
			customer, err := jr.store.CustomerRepository.GetByID(ctx, rt.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for overdue rental",
					"rental_id", rt.ID, "customer_id", rt.CustomerID, "error", err)
				continue
			}
			if customer.Email == "" {
				logger.Debug("Customer has no email, skipping reminder",
					"rental_id", rt.ID, "customer_id", customer.ID)
				continue
			}
			if err := jr.services.Email.SendOverdueReminder(ctx, customer.Email, customer.FullName(), rt); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rt.ID, "email", customer.Email, "error", err)
				continue
			}
			sent++
			logger.Debug("Sent overdue reminder",
				"rental_id", rt.ID,
				"customer_id", customer.ID,
				"expected_return_at", rt.ExpectedReturnAt)
		}

		logger.Info("Overdue reminders sent", "overdue", len(rentals), "sent", sent)
	})
}
