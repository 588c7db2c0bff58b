package utils

import "vehicle-rental-backend/internal/domain"

// FindAvailable returns the rentable vehicles from the candidate set with no
// blocking booking overlapping the window. Vehicles in Maintenance,
// OutOfService or Retired are never offered, even with an empty calendar.
// Cancelled, completed and fulfilled bookings arrive with Blocks=false and
// never exclude a vehicle. The scan is O(vehicles + bookings); bookings are
// bucketed by vehicle first.
func FindAvailable(vehicles []domain.Vehicle, w Window, bookings []domain.Booking) []domain.Vehicle {
	busy := make(map[int64]bool)
	for _, b := range bookings {
		if !b.Blocks || busy[b.VehicleID] {
			continue
		}
		if w.OverlapsBooking(b) {
			busy[b.VehicleID] = true
		}
	}

	free := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Rentable() && !busy[v.ID] {
			free = append(free, v)
		}
	}
	return free
}

// FilterByCategory narrows a candidate set to one category.
func FilterByCategory(vehicles []domain.Vehicle, categoryID int64) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.CategoryID == categoryID {
			out = append(out, v)
		}
	}
	return out
}

// VehicleIsFree checks a single vehicle against the booking snapshot.
func VehicleIsFree(vehicleID int64, w Window, bookings []domain.Booking) bool {
	for _, b := range bookings {
		if b.VehicleID != vehicleID || !b.Blocks {
			continue
		}
		if w.OverlapsBooking(b) {
			return false
		}
	}
	return true
}
