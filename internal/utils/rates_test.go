package utils

import (
	"testing"
	"time"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestResolveDailyRate(t *testing.T) {
	rates := []domain.RentalRate{
		{ID: 1, CategoryID: 10, DailyRateCents: 4000, EffectiveFrom: date("2024-01-01"), Active: true},
		{ID: 2, CategoryID: 10, DailyRateCents: 5000, EffectiveFrom: date("2024-06-01"), Active: true},
		{ID: 3, CategoryID: 20, DailyRateCents: 9000, EffectiveFrom: date("2024-01-01"), Active: true},
	}

	t.Run("latest effective rate wins", func(t *testing.T) {
		cents, err := ResolveDailyRate(rates, 10, date("2024-07-01"))
		assert.NoError(t, err)
		assert.Equal(t, int64(5000), cents)
	})

	t.Run("earlier date picks the older rate", func(t *testing.T) {
		cents, err := ResolveDailyRate(rates, 10, date("2024-03-01"))
		assert.NoError(t, err)
		assert.Equal(t, int64(4000), cents)
	})

	t.Run("no rate before any effective-from", func(t *testing.T) {
		_, err := ResolveDailyRate(rates, 10, date("2023-01-01"))
		assert.ErrorIs(t, err, domain.ErrNoApplicableRate)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := ResolveDailyRate(rates, 99, date("2024-07-01"))
		assert.ErrorIs(t, err, domain.ErrNoApplicableRate)
	})
}

func TestResolveRate_TieBreaks(t *testing.T) {
	t.Run("same effective-from resolves to lowest id", func(t *testing.T) {
		rates := []domain.RentalRate{
			{ID: 7, CategoryID: 10, DailyRateCents: 4500, EffectiveFrom: date("2024-01-01"), Active: true},
			{ID: 4, CategoryID: 10, DailyRateCents: 4200, EffectiveFrom: date("2024-01-01"), Active: true},
		}
		r, err := ResolveRate(rates, 10, date("2024-02-01"))
		assert.NoError(t, err)
		assert.Equal(t, int64(4), r.ID)
	})

	t.Run("result is order independent", func(t *testing.T) {
		a := domain.RentalRate{ID: 1, CategoryID: 10, DailyRateCents: 4000, EffectiveFrom: date("2024-01-01"), Active: true}
		b := domain.RentalRate{ID: 2, CategoryID: 10, DailyRateCents: 5000, EffectiveFrom: date("2024-06-01"), Active: true}

		r1, err := ResolveRate([]domain.RentalRate{a, b}, 10, date("2024-07-01"))
		assert.NoError(t, err)
		r2, err := ResolveRate([]domain.RentalRate{b, a}, 10, date("2024-07-01"))
		assert.NoError(t, err)
		assert.Equal(t, r1.ID, r2.ID)
	})
}

func TestResolveRate_EffectiveRange(t *testing.T) {
	to := date("2024-05-31")
	rates := []domain.RentalRate{
		{ID: 1, CategoryID: 10, DailyRateCents: 4000, EffectiveFrom: date("2024-01-01"), EffectiveTo: &to, Active: true},
		{ID: 2, CategoryID: 10, DailyRateCents: 5000, EffectiveFrom: date("2024-06-01"), Active: false},
	}

	t.Run("expired rate is not a candidate", func(t *testing.T) {
		_, err := ResolveRate(rates, 10, date("2024-07-01"))
		assert.ErrorIs(t, err, domain.ErrNoApplicableRate)
	})

	t.Run("inactive rate is not a candidate", func(t *testing.T) {
		r, err := ResolveRate(rates, 10, date("2024-03-01"))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), r.ID)
	})
}

func TestActiveRates(t *testing.T) {
	rates := []domain.RentalRate{
		{ID: 1, CategoryID: 10, EffectiveFrom: date("2024-01-01"), Active: true},
		{ID: 2, CategoryID: 10, EffectiveFrom: date("2024-06-01"), Active: true},
		{ID: 3, CategoryID: 10, EffectiveFrom: date("2024-01-01"), Active: false},
	}
	assert.Len(t, ActiveRates(rates, 10, date("2024-07-01")), 2)
	assert.Len(t, ActiveRates(rates, 10, date("2024-02-01")), 1)
}
