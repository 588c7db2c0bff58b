package domain

import "errors"

// Error taxonomy surfaced by the services. Handlers translate these with
// errors.Is; repository failures outside the taxonomy propagate unchanged.
var (
	// ErrValidation: a required field is missing or invalid. Caller-correctable.
	ErrValidation = errors.New("validation failed")

	// ErrNoApplicableRate: no active rate covers the category and date.
	// Never defaulted to a zero rate.
	ErrNoApplicableRate = errors.New("no applicable rental rate")

	// ErrNoVehicleAvailable: no vehicle in the requested category is free for
	// the window. A normal negative result, not a fault.
	ErrNoVehicleAvailable = errors.New("no vehicle available for the requested window")

	// ErrConflict: a concurrent booking for the same vehicle and an
	// overlapping window was committed between the availability check and
	// this commit. Caller may re-check availability and retry once.
	ErrConflict = errors.New("booking conflicts with an existing booking")

	// ErrAlreadyStarted: a rental already references the reservation.
	ErrAlreadyStarted = errors.New("rental already started for this reservation")

	// ErrAlreadyCompleted: the rental has already been returned.
	ErrAlreadyCompleted = errors.New("rental already completed")

	// ErrNotFound: the referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized: the acting user may not perform the operation.
	ErrUnauthorized = errors.New("unauthorized")
)
