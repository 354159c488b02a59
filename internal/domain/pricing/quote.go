package pricing

import (
	"math"
	"time"
)

const (
	earlyBirdMaxDays    = 7
	earlyBirdDailyRate  = 0.02
	scarcityUnitRate    = 0.035
	extendedStayRate    = 0.02
	extendedStayMaxDays = 10
	bulkRoomRate        = 0.015
	bulkMaxRooms        = 10
)

type Input struct {
	BaseRate       int64 // seasonal tariff if one covers arrival, else the room type's base rate
	Now            time.Time
	Arrival        time.Time
	Departure      time.Time
	AvailableRooms int
	TotalRooms     int
	RequestedRooms int // across all room types in the booking
}

type Quote struct {
	// Nightly is the quoted rate with every adjustment applied.
	Nightly int64
	// Reference is the rack rate: base plus scarcity premium, without the
	// early-bird, extended-stay, or bulk discounts.
	Reference int64
}

// Compute applies the four independent adjustments to the base rate. Callers
// own sanity-checking the result; an implausible negative value indicates bad
// tariff data upstream, not a pricing bug.
func Compute(in Input) Quote {
	base := float64(in.BaseRate)

	// The rate decays 2% for each day under the 7-day horizon, so last-minute
	// bookings get the deepest cut. Counted in calendar days, not elapsed
	// hours: a booking made any time today for tomorrow is one day out.
	daysLeft := int(midnight(in.Arrival).Sub(midnight(in.Now)).Hours() / 24)
	if daysLeft > earlyBirdMaxDays {
		daysLeft = earlyBirdMaxDays
	}
	if daysLeft < 0 {
		daysLeft = 0
	}
	quoted := base - float64(earlyBirdMaxDays-daysLeft)*earlyBirdDailyRate*base

	// 3.5% of base per room under half capacity.
	reference := base
	threshold := int(math.Round(float64(in.TotalRooms) / 2))
	if in.AvailableRooms < threshold {
		premium := float64(threshold-in.AvailableRooms) * scarcityUnitRate * base
		quoted += premium
		reference += premium
	}

	// 2% off per night beyond the third, at most 10 extra nights.
	nights := int(in.Departure.Sub(in.Arrival).Hours() / 24)
	if nights > 2 {
		extraNights := min(nights-3, extendedStayMaxDays)
		quoted -= float64(extraNights) * extendedStayRate * base
	}

	// 1.5% off per room beyond the third, at most 10 extra rooms.
	if in.RequestedRooms > 2 {
		extraRooms := min(in.RequestedRooms-3, bulkMaxRooms)
		quoted -= float64(extraRooms) * bulkRoomRate * base
	}

	return Quote{
		Nightly:   int64(math.Round(quoted)),
		Reference: int64(math.Round(reference)),
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WithinTolerance reports whether a client-locked price is close enough to a
// freshly computed one. Guards against quoting drift between search and
// booking, not against malicious input.
func WithinTolerance(clientRate, freshRate int64, tolerance float64) bool {
	if freshRate == 0 {
		return clientRate == 0
	}
	drift := math.Abs(float64(clientRate)-float64(freshRate)) / float64(freshRate)
	return drift <= tolerance
}
