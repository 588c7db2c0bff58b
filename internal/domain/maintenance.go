package domain

import "time"

type MaintenanceRecord struct {
	ID          int64      `json:"id"`
	VehicleID   int64      `json:"vehicle_id"`
	Description string     `json:"description"`
	CostCents   int64      `json:"cost_cents"`
	PerformedBy string     `json:"performed_by"`
	StartedOn   time.Time  `json:"started_on"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	CreatedBy   int64      `json:"created_by"`
	CreatedOn   time.Time  `json:"created_on"`
}

type DamageSeverity string

const (
	DamageSeverityMinor    DamageSeverity = "Minor"
	DamageSeverityModerate DamageSeverity = "Moderate"
	DamageSeveritySevere   DamageSeverity = "Severe"
)

type DamageStatus string

const (
	DamageStatusReported DamageStatus = "Reported"
	DamageStatusAssessed DamageStatus = "Assessed"
	DamageStatusRepaired DamageStatus = "Repaired"
)

type DamageReport struct {
	ID                 int64          `json:"id"`
	VehicleID          int64          `json:"vehicle_id"`
	RentalID           *int64         `json:"rental_id,omitempty"`
	Description        string         `json:"description"`
	Severity           DamageSeverity `json:"severity"`
	EstimatedCostCents int64          `json:"estimated_cost_cents"`
	Status             DamageStatus   `json:"status"`
	ReportedBy         int64          `json:"reported_by"`
	CreatedOn          time.Time      `json:"created_on"`
	UpdatedOn          time.Time      `json:"updated_on"`
}

// DashboardSummary is the aggregate view behind the reports screen.
type DashboardSummary struct {
	VehiclesByStatus  map[VehicleStatus]int64 `json:"vehicles_by_status"`
	ActiveRentals     int64                   `json:"active_rentals"`
	PendingResv       int64                   `json:"pending_reservations"`
	RevenueCents      int64                   `json:"revenue_cents"`
	OutstandingCents  int64                   `json:"outstanding_cents"`
	OpenDamageReports int64                   `json:"open_damage_reports"`
}
