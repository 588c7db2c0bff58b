package utils

import (
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
)

// ResolveRate picks the applicable rate for a category on a date. Candidates
// are active rates whose effective range contains the date. Ties resolve to
// the latest effective-from, then the lowest id, so the pick is deterministic
// regardless of input order.
func ResolveRate(rates []domain.RentalRate, categoryID int64, at time.Time) (*domain.RentalRate, error) {
	var best *domain.RentalRate
	for i := range rates {
		r := &rates[i]
		if r.CategoryID != categoryID || !r.InEffect(at) {
			continue
		}
		if best == nil || betterRate(r, best) {
			best = r
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: category %d on %s", domain.ErrNoApplicableRate, categoryID, at.Format("2006-01-02"))
	}
	return best, nil
}

// ResolveDailyRate is ResolveRate reduced to the daily amount.
func ResolveDailyRate(rates []domain.RentalRate, categoryID int64, at time.Time) (int64, error) {
	r, err := ResolveRate(rates, categoryID, at)
	if err != nil {
		return 0, err
	}
	return r.DailyRateCents, nil
}

func betterRate(candidate, current *domain.RentalRate) bool {
	if candidate.EffectiveFrom.After(current.EffectiveFrom) {
		return true
	}
	if candidate.EffectiveFrom.Equal(current.EffectiveFrom) {
		return candidate.ID < current.ID
	}
	return false
}

// ActiveRates lists the rates in effect for a category on a date, for
// callers that present choices rather than resolve one.
func ActiveRates(rates []domain.RentalRate, categoryID int64, at time.Time) []domain.RentalRate {
	out := make([]domain.RentalRate, 0, len(rates))
	for _, r := range rates {
		if r.CategoryID == categoryID && r.InEffect(at) {
			out = append(out, r)
		}
	}
	return out
}
