// Package billing computes the check-out settlement: room charges, add-on
// services, tax, overstay penalties and the exact amount still due.
package billing

import (
	"math"
	"time"
)

// Settlement is the final bill presented at check-out. All amounts are rupiah.
type Settlement struct {
	RoomTotal       int64
	ServiceTotal    int64
	ServiceTax      int64
	OverstayPenalty int64
	GrandTotal      int64
	AmountDue       int64
}

// OverstayPenalty charges started hours past the departure-day check-in
// cutoff, per room, capped at capRate of the room total and rounded up to the
// nearest hundred.
func OverstayPenalty(now, cutoff time.Time, ratePerHour int64, rooms int, roomTotal int64, capRate float64) int64 {
	if !now.After(cutoff) {
		return 0
	}
	hours := int64(math.Ceil(now.Sub(cutoff).Hours()))
	penalty := hours * ratePerHour * int64(rooms)

	maxPenalty := int64(math.Round(capRate * float64(roomTotal)))
	if penalty > maxPenalty {
		penalty = maxPenalty
	}
	return RoundUp100(penalty)
}

// RoundUp100 rounds a rupiah amount up to the nearest hundred.
func RoundUp100(amount int64) int64 {
	if amount%100 == 0 {
		return amount
	}
	return (amount/100 + 1) * 100
}

// ComputeSettlement builds the bill. Tax applies to services only; room rates
// are already tax-inclusive. paid is the sum of the booking deposit and any
// check-in deposit.
func ComputeSettlement(roomTotal, serviceTotal int64, taxRate float64, overstayPenalty, paid int64) Settlement {
	tax := int64(math.Round(taxRate * float64(serviceTotal)))
	grand := roomTotal + serviceTotal + tax + overstayPenalty
	return Settlement{
		RoomTotal:       roomTotal,
		ServiceTotal:    serviceTotal,
		ServiceTax:      tax,
		OverstayPenalty: overstayPenalty,
		GrandTotal:      grand,
		AmountDue:       grand - paid,
	}
}
