package domain

import "time"

type ChargeType string

const (
	ChargeTypeLateFee        ChargeType = "LateFee"
	ChargeTypeMileageOverage ChargeType = "MileageOverage"
	ChargeTypeFuel           ChargeType = "Fuel"
	ChargeTypeCleaning       ChargeType = "Cleaning"
	ChargeTypeDamage         ChargeType = "Damage"
	ChargeTypeToll           ChargeType = "Toll"
	ChargeTypeOther          ChargeType = "Other"
)

// Charge is one itemized line posted at return time. Charges are append-only:
// once posted they are never edited, even if the maintenance or damage record
// that motivated them is later removed.
type Charge struct {
	ID              int64      `json:"id"`
	RentalID        int64      `json:"rental_id"`
	Type            ChargeType `json:"type"`
	Description     string     `json:"description"`
	Quantity        int64      `json:"quantity"`
	UnitAmountCents int64      `json:"unit_amount_cents"`
	CreatedOn       time.Time  `json:"created_on"`
}

// AmountCents is the derived line value.
func (c *Charge) AmountCents() int64 {
	return c.Quantity * c.UnitAmountCents
}

// ChargeInputs are the named, independently optional amounts collected at
// return. Zero or negative values are treated as absent. MileageOverageRateCents
// is a per-mile rate; everything else is a flat amount with quantity 1.
type ChargeInputs struct {
	LateFeeCents            int64 `json:"late_fee_cents"`
	MileageOverageRateCents int64 `json:"mileage_overage_rate_cents"`
	FuelCents               int64 `json:"fuel_cents"`
	CleaningCents           int64 `json:"cleaning_cents"`
	DamageCents             int64 `json:"damage_cents"`
	TollCents               int64 `json:"toll_cents"`
	OtherCents              int64 `json:"other_cents"`
}
