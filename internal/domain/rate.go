package domain

import "time"

// RentalRate is a daily price for a vehicle category over an effective date
// range. Several rates may exist per category; RateResolver picks one
// deterministically. Weekly and monthly amounts are optional (zero = unset).
type RentalRate struct {
	ID               int64      `json:"id"`
	CategoryID       int64      `json:"category_id"`
	Name             string     `json:"name"`
	DailyRateCents   int64      `json:"daily_rate_cents"`
	WeeklyRateCents  int64      `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents int64      `json:"monthly_rate_cents,omitempty"`
	EffectiveFrom    time.Time  `json:"effective_from"`
	EffectiveTo      *time.Time `json:"effective_to,omitempty"`
	Active           bool       `json:"active"`
	CreatedOn        time.Time  `json:"created_on"`
}

// InEffect reports whether the rate applies on the given date.
func (r *RentalRate) InEffect(at time.Time) bool {
	if !r.Active {
		return false
	}
	if at.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && at.After(*r.EffectiveTo) {
		return false
	}
	return true
}
