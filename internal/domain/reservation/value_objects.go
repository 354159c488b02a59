package reservation

import (
	"time"

	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

// StayRange is the half-open [arrival, departure) interval of a stay, with
// both endpoints normalized to local midnight.
type StayRange struct {
	arrival   time.Time
	departure time.Time
}

func NewStayRange(arrival, departure, now time.Time) (StayRange, error) {
	arrival = Midnight(arrival)
	departure = Midnight(departure)

	if !arrival.After(Midnight(now)) {
		return StayRange{}, errs.FieldError("arrival_date", "arrival must be after today")
	}
	if !departure.After(arrival) {
		return StayRange{}, errs.FieldError("departure_date", "departure must be after arrival")
	}

	return StayRange{arrival: arrival, departure: departure}, nil
}

func ReconstructStayRange(arrival, departure time.Time) StayRange {
	return StayRange{arrival: Midnight(arrival), departure: Midnight(departure)}
}

func (s StayRange) Arrival() time.Time   { return s.arrival }
func (s StayRange) Departure() time.Time { return s.departure }

func (s StayRange) Nights() int {
	return int(s.departure.Sub(s.arrival).Hours() / 24)
}

// ExtendedBy returns the range with the departure pushed out, leaving the
// arrival untouched.
func (s StayRange) ExtendedBy(nights int) StayRange {
	return StayRange{arrival: s.arrival, departure: s.departure.AddDate(0, 0, nights)}
}

// CheckoutCutoff is the instant on departure day after which cancellation and
// check-in are no longer possible.
func (s StayRange) CheckoutCutoff(checkoutHour int) time.Time {
	d := s.departure
	return time.Date(d.Year(), d.Month(), d.Day(), checkoutHour, 0, 0, 0, d.Location())
}

// NextCheckInCutoff is the instant on departure day from which overstay hours
// are counted.
func (s StayRange) NextCheckInCutoff(checkinHour int) time.Time {
	d := s.departure
	return time.Date(d.Year(), d.Month(), d.Day(), checkinHour, 0, 0, 0, d.Location())
}

func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type GuestCount struct {
	Adults   int
	Children int
}

func (g GuestCount) Total() int {
	return g.Adults + g.Children
}

func (g GuestCount) Validate() error {
	if g.Adults < 1 {
		return errs.FieldError("jumlah_dewasa", "at least one adult is required")
	}
	if g.Children < 0 {
		return errs.FieldError("jumlah_anak", "child count cannot be negative")
	}
	return nil
}

// RoomLine is one room allocation intent: a single physical room of a given
// type for the whole stay, at an agreed nightly rate. The concrete room
// number is assigned at check-in.
type RoomLine struct {
	ID         uuid.UUID
	RoomTypeID uuid.UUID
	RoomNumber *string
	Nightly    int64
}
