package utils

import (
	"testing"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testFleet() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: 1, CategoryID: 10, Status: domain.VehicleStatusAvailable},
		{ID: 2, CategoryID: 10, Status: domain.VehicleStatusAvailable},
		{ID: 3, CategoryID: 20, Status: domain.VehicleStatusAvailable},
	}
}

func TestFindAvailable(t *testing.T) {
	w := mkWindow("2025-03-01T09:00:00Z", "2025-03-03T09:00:00Z")

	t.Run("no bookings returns full candidate set", func(t *testing.T) {
		free := FindAvailable(testFleet(), w, nil)
		assert.Len(t, free, 3)
	})

	t.Run("overlapping blocking booking excludes its vehicle", func(t *testing.T) {
		overlap := mkWindow("2025-03-02T00:00:00Z", "2025-03-04T00:00:00Z")
		bookings := []domain.Booking{
			{VehicleID: 1, Start: overlap.Start, End: overlap.End, Blocks: true},
		}
		free := FindAvailable(testFleet(), w, bookings)
		assert.Len(t, free, 2)
		for _, v := range free {
			assert.NotEqual(t, int64(1), v.ID)
		}
	})

	t.Run("non-blocking bookings never exclude", func(t *testing.T) {
		overlap := mkWindow("2025-03-02T00:00:00Z", "2025-03-04T00:00:00Z")
		bookings := []domain.Booking{
			{VehicleID: 1, Start: overlap.Start, End: overlap.End, Blocks: false},
			{VehicleID: 2, Start: overlap.Start, End: overlap.End, Blocks: false},
		}
		free := FindAvailable(testFleet(), w, bookings)
		assert.Len(t, free, 3)
	})

	t.Run("adjacent booking does not exclude", func(t *testing.T) {
		adjacent := mkWindow("2025-03-03T09:00:00Z", "2025-03-05T09:00:00Z")
		bookings := []domain.Booking{
			{VehicleID: 1, Start: adjacent.Start, End: adjacent.End, Blocks: true},
		}
		free := FindAvailable(testFleet(), w, bookings)
		assert.Len(t, free, 3)
	})

	t.Run("out-of-service vehicles never offered", func(t *testing.T) {
		fleet := []domain.Vehicle{
			{ID: 1, CategoryID: 10, Status: domain.VehicleStatusMaintenance},
			{ID: 2, CategoryID: 10, Status: domain.VehicleStatusRetired},
			{ID: 3, CategoryID: 10, Status: domain.VehicleStatusOutOfService},
			{ID: 4, CategoryID: 10, Status: domain.VehicleStatusAvailable},
		}
		free := FindAvailable(fleet, w, nil)
		assert.Len(t, free, 1)
		assert.Equal(t, int64(4), free[0].ID)
	})

	t.Run("rented vehicle free for a future window", func(t *testing.T) {
		fleet := []domain.Vehicle{
			{ID: 1, CategoryID: 10, Status: domain.VehicleStatusRented},
		}
		free := FindAvailable(fleet, w, nil)
		assert.Len(t, free, 1)
	})

	t.Run("all vehicles busy", func(t *testing.T) {
		bookings := []domain.Booking{
			{VehicleID: 1, Start: w.Start, End: w.End, Blocks: true},
			{VehicleID: 2, Start: w.Start, End: w.End, Blocks: true},
			{VehicleID: 3, Start: w.Start, End: w.End, Blocks: true},
		}
		free := FindAvailable(testFleet(), w, bookings)
		assert.Empty(t, free)
	})
}

func TestFilterByCategory(t *testing.T) {
	suvs := FilterByCategory(testFleet(), 10)
	assert.Len(t, suvs, 2)
	assert.Empty(t, FilterByCategory(testFleet(), 99))
}

func TestVehicleIsFree(t *testing.T) {
	w := mkWindow("2025-03-01T09:00:00Z", "2025-03-03T09:00:00Z")
	bookings := []domain.Booking{
		{VehicleID: 1, Start: w.Start, End: w.End, Blocks: true},
		{VehicleID: 2, Start: w.Start, End: w.End, Blocks: false},
	}
	assert.False(t, VehicleIsFree(1, w, bookings))
	assert.True(t, VehicleIsFree(2, w, bookings))
	assert.True(t, VehicleIsFree(3, w, bookings))
}
