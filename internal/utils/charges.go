package utils

import (
	"fmt"

	"vehicle-rental-backend/internal/domain"
)

// ComputeCharges builds the itemized charge list for a return. Inputs with a
// non-positive amount are omitted entirely rather than recorded as zero lines.
// Mileage overage is the only quantity-driven line: quantity is the miles
// driven past the pickup reading (floored at zero), and the line is included
// only when both the quantity and the per-mile rate are positive. Returns the
// lines and their summed derived value.
func ComputeCharges(initialMileage, returnMileage int64, in domain.ChargeInputs) ([]domain.Charge, int64) {
	var charges []domain.Charge
	var total int64

	add := func(t domain.ChargeType, desc string, qty, unit int64) {
		if unit <= 0 || qty == 0 {
			return
		}
		charges = append(charges, domain.Charge{
			Type:            t,
			Description:     desc,
			Quantity:        qty,
			UnitAmountCents: unit,
		})
		total += qty * unit
	}

	add(domain.ChargeTypeLateFee, "Late return", 1, in.LateFeeCents)

	overage := returnMileage - initialMileage
	if overage < 0 {
		overage = 0
	}
	add(domain.ChargeTypeMileageOverage, fmt.Sprintf("Mileage overage (%d mi)", overage), overage, in.MileageOverageRateCents)

	add(domain.ChargeTypeFuel, "Fuel charge", 1, in.FuelCents)
	add(domain.ChargeTypeCleaning, "Cleaning", 1, in.CleaningCents)
	add(domain.ChargeTypeDamage, "Damage", 1, in.DamageCents)
	add(domain.ChargeTypeToll, "Toll/violation", 1, in.TollCents)
	add(domain.ChargeTypeOther, "Other", 1, in.OtherCents)

	return charges, total
}
