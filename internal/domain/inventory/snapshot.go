package inventory

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange  = errors.New("departure must be after arrival")
	ErrTooManyNights = errors.New("stay exceeds the maximum number of nights")
)

// Stay is an existing allocation of rooms of one type over [Arrival, Departure).
// Cancelled and expired reservations must be filtered out before building.
type Stay struct {
	Arrival   time.Time
	Departure time.Time
	Rooms     int
}

type Snapshot struct {
	TotalRooms     int
	AvailableRooms int
	// OccupiedPerNight[i] covers the night starting at arrival+i days.
	OccupiedPerNight []int
}

// Nights returns the number of nights in [arrival, departure), truncating
// partial days the way the booking flow treats calendar dates.
func Nights(arrival, departure time.Time) int {
	return int(departure.Sub(arrival).Hours() / 24)
}

// Build computes per-night occupancy and the bookable remainder for one room
// type. Deliberately O(nights × stays): stay ranges are short and room counts
// small, so the exact scan beats maintaining an interval index.
func Build(totalRooms int, stays []Stay, arrival, departure time.Time, maxNights int) (Snapshot, error) {
	nights := Nights(arrival, departure)
	if nights <= 0 {
		return Snapshot{}, ErrInvalidRange
	}
	if maxNights > 0 && nights > maxNights {
		return Snapshot{}, ErrTooManyNights
	}

	occupied := make([]int, nights)
	for i := 0; i < nights; i++ {
		nightStart := arrival.AddDate(0, 0, i)
		nightEnd := arrival.AddDate(0, 0, i+1)

		for _, s := range stays {
			if overlapsNight(s, nightStart, nightEnd) {
				occupied[i] += s.Rooms
			}
		}
	}

	maxOccupied := 0
	for _, n := range occupied {
		if n > maxOccupied {
			maxOccupied = n
		}
	}

	return Snapshot{
		TotalRooms:       totalRooms,
		AvailableRooms:   totalRooms - maxOccupied,
		OccupiedPerNight: occupied,
	}, nil
}

// Three-clause interval test: straddles the night start, straddles the night
// end, or sits fully inside the night.
func overlapsNight(s Stay, nightStart, nightEnd time.Time) bool {
	if s.Arrival.Before(nightStart) && s.Departure.After(nightStart) {
		return true
	}
	if s.Arrival.Before(nightEnd) && s.Departure.After(nightEnd) {
		return true
	}
	return !s.Arrival.Before(nightStart) && !s.Departure.After(nightEnd)
}
