package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "Available"
	VehicleStatusRented       VehicleStatus = "Rented"
	VehicleStatusMaintenance  VehicleStatus = "Maintenance"
	VehicleStatusOutOfService VehicleStatus = "OutOfService"
	VehicleStatusRetired      VehicleStatus = "Retired"
)

type Vehicle struct {
	ID           int64         `json:"id"`
	CategoryID   int64         `json:"category_id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	LicensePlate string        `json:"license_plate"`
	Mileage      int64         `json:"mileage"`
	Status       VehicleStatus `json:"status"`
	CreatedOn    time.Time     `json:"created_on"`
	UpdatedOn    time.Time     `json:"updated_on"`
}

// Rentable reports whether the vehicle can be offered for a new booking at all.
// Per-window conflicts are a separate check.
func (v *Vehicle) Rentable() bool {
	return v.Status == VehicleStatusAvailable || v.Status == VehicleStatusRented
}

type VehicleCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
