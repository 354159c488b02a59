package builder

import (
	"time"

	"stayops/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationBuilder assembles a valid personal reservation two rooms wide,
// three nights long, arriving in five days. Tests mutate from there.
type ReservationBuilder struct {
	channel       reservation.Channel
	customerID    uuid.UUID
	staffID       *uuid.UUID
	now           time.Time
	arrival       time.Time
	departure     time.Time
	guests        reservation.GuestCount
	lines         []reservation.RoomLine
	stageDeadline time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	roomTypeID := uuid.New()
	return &ReservationBuilder{
		channel:    reservation.ChannelPersonal,
		customerID: uuid.New(),
		now:        now,
		arrival:    now.AddDate(0, 0, 5),
		departure:  now.AddDate(0, 0, 8),
		guests:     reservation.GuestCount{Adults: 2, Children: 1},
		lines: []reservation.RoomLine{
			{ID: uuid.New(), RoomTypeID: roomTypeID, Nightly: 500_000},
			{ID: uuid.New(), RoomTypeID: roomTypeID, Nightly: 500_000},
		},
		stageDeadline: time.Hour,
	}
}

func (b *ReservationBuilder) WithChannel(c reservation.Channel) *ReservationBuilder {
	b.channel = c
	if c == reservation.ChannelGroup && b.staffID == nil {
		id := uuid.New()
		b.staffID = &id
	}
	return b
}

func (b *ReservationBuilder) WithStaffID(id *uuid.UUID) *ReservationBuilder {
	b.staffID = id
	return b
}

func (b *ReservationBuilder) WithCustomerID(id uuid.UUID) *ReservationBuilder {
	b.customerID = id
	return b
}

func (b *ReservationBuilder) CustomerID() uuid.UUID {
	return b.customerID
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.now = now
	return b
}

func (b *ReservationBuilder) WithStay(arrival, departure time.Time) *ReservationBuilder {
	b.arrival = arrival
	b.departure = departure
	return b
}

func (b *ReservationBuilder) WithGuests(adults, children int) *ReservationBuilder {
	b.guests = reservation.GuestCount{Adults: adults, Children: children}
	return b
}

func (b *ReservationBuilder) WithLines(lines []reservation.RoomLine) *ReservationBuilder {
	b.lines = lines
	return b
}

func (b *ReservationBuilder) WithStageDeadline(d time.Duration) *ReservationBuilder {
	b.stageDeadline = d
	return b
}

func (b *ReservationBuilder) Now() time.Time {
	return b.now
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStayRange(b.arrival, b.departure, b.now)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.channel, b.customerID, b.staffID, stay, b.guests, b.lines, b.now, b.stageDeadline)
}

// BuildPaid walks a fresh reservation through the pending stages to lunas.
func (b *ReservationBuilder) BuildPaid() (*reservation.Reservation, error) {
	r, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if err := r.SubmitStayDetails("", b.now, b.stageDeadline); err != nil {
		return nil, err
	}
	code := b.channel.CodePrefix() + b.now.Format("020106") + "-001"
	if err := r.AssignBookingCode(code, b.now, b.stageDeadline); err != nil {
		return nil, err
	}
	if b.channel == reservation.ChannelGroup {
		if err := r.ConfirmGroupPayment(r.Total(), b.now); err != nil {
			return nil, err
		}
	} else {
		if err := r.ConfirmPersonalPayment("proofs/transfer.jpg", b.now); err != nil {
			return nil, err
		}
	}
	return r, nil
}
