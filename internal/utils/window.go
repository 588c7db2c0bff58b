package utils

import (
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Window is a half-open time interval [Start, End) during which a vehicle is
// held. Every overlap decision in the system goes through Window.Overlaps.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (one booking ending exactly when the next starts) do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// OverlapsBooking checks the window against a booking's held interval.
func (w Window) OverlapsBooking(b domain.Booking) bool {
	return w.Overlaps(Window{Start: b.Start, End: b.End})
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// NormalizeWindow applies the booking-form rule: a return instant at or before
// pickup is corrected to pickup plus one day. A zero pickup instant is invalid.
func NormalizeWindow(start, end time.Time) (Window, error) {
	if start.IsZero() {
		return Window{}, fmt.Errorf("%w: pickup time is required", domain.ErrValidation)
	}
	if !end.After(start) {
		end = start.Add(24 * time.Hour)
	}
	return Window{Start: start, End: end}, nil
}

// CeilDays converts a window's duration to billable days, rounding any
// partial day up, with a minimum of one day.
func CeilDays(w Window) int64 {
	d := w.Duration()
	if d <= 0 {
		return 1
	}
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
