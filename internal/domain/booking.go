package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusFulfilled ReservationStatus = "Fulfilled"
	ReservationStatusCompleted ReservationStatus = "Completed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

type Reservation struct {
	ID               int64             `json:"id"`
	CustomerID       int64             `json:"customer_id"`
	VehicleID        int64             `json:"vehicle_id"`
	RateID           *int64            `json:"rate_id,omitempty"`
	CreatedBy        int64             `json:"created_by"`
	PickupAt         time.Time         `json:"pickup_at"`
	ReturnAt         time.Time         `json:"return_at"`
	TotalAmountCents int64             `json:"total_amount_cents"`
	Notes            string            `json:"notes"`
	Status           ReservationStatus `json:"status"`
	CreatedOn        time.Time         `json:"created_on"`
	UpdatedOn        time.Time         `json:"updated_on"`
}

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCompleted RentalStatus = "Completed"
)

type Rental struct {
	ID               int64        `json:"id"`
	ReservationID    *int64       `json:"reservation_id,omitempty"`
	CustomerID       int64        `json:"customer_id"`
	VehicleID        int64        `json:"vehicle_id"`
	PickedUpBy       int64        `json:"picked_up_by"`
	ReturnedTo       *int64       `json:"returned_to,omitempty"`
	PickupAt         time.Time    `json:"pickup_at"`
	ExpectedReturnAt time.Time    `json:"expected_return_at"`
	ActualReturnAt   *time.Time   `json:"actual_return_at,omitempty"`
	InitialMileage   int64        `json:"initial_mileage"`
	ReturnMileage    *int64       `json:"return_mileage,omitempty"`
	TotalAmountCents int64        `json:"total_amount_cents"`
	Notes            string       `json:"notes"`
	Status           RentalStatus `json:"status"`
	CreatedOn        time.Time    `json:"created_on"`
	UpdatedOn        time.Time    `json:"updated_on"`
}

// Booking is the umbrella view of a reservation or rental used for
// window-conflict checks. Blocks is derived from the source record's status:
// pending reservations and active rentals hold the vehicle, everything else
// does not.
type Booking struct {
	VehicleID int64
	Start     time.Time
	End       time.Time
	Blocks    bool
}

func (r *Reservation) Booking() Booking {
	return Booking{
		VehicleID: r.VehicleID,
		Start:     r.PickupAt,
		End:       r.ReturnAt,
		Blocks:    r.Status == ReservationStatusPending,
	}
}

func (r *Rental) Booking() Booking {
	return Booking{
		VehicleID: r.VehicleID,
		Start:     r.PickupAt,
		End:       r.ExpectedReturnAt,
		Blocks:    r.Status == RentalStatusActive,
	}
}
