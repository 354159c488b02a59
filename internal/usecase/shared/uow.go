package shared

import (
	"context"
	"time"

	"stayops/internal/domain/inventory"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/room"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction for ordinary write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction with retry, for the
	// quote-and-reserve path where read-then-write must be atomic
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads: command-side reads outside any transaction
	Reads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Stays() StayRepository
	Invoices() InvoiceRepository
	Rooms() RoomRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the snapshot reads commands need for validation. Inside a
// transaction they observe its isolation level.
type CommandReads interface {
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	// EffectiveRate resolves the nightly base for an arrival date: the
	// seasonal tariff covering it, or the room type's base rate.
	EffectiveRate(ctx context.Context, roomTypeID uuid.UUID, arrival time.Time) (int64, error)
	// ActiveStays returns current room allocations of one type overlapping
	// [arrival, departure), excluding batal/expired/selesai reservations.
	ActiveStays(ctx context.Context, roomTypeID uuid.UUID, arrival, departure time.Time) ([]inventory.Stay, error)
	FacilityByID(ctx context.Context, id uuid.UUID) (*FacilitySnapshot, error)
	ServiceTotal(ctx context.Context, reservationID uuid.UUID) (int64, error)
}

type RoomTypeSnapshot struct {
	ID         uuid.UUID
	Name       string
	BaseRate   int64
	Capacity   int
	TotalRooms int
}

type FacilitySnapshot struct {
	ID    uuid.UUID
	Name  string
	Price int64
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// LastBookingCode returns the highest code under the daily prefix, or ""
	// when none exists. Must be called inside the creating transaction.
	LastBookingCode(ctx context.Context, dailyPrefix string) (string, error)
	// ExpireOverduePending flips pending reservations whose stage deadline
	// has lapsed to expired; returns the affected IDs.
	ExpireOverduePending(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	// CancelNoShows flips paid reservations that were never checked in and
	// whose departure-day checkout cutoff has passed to batal; returns the
	// affected IDs.
	CancelNoShows(ctx context.Context, now time.Time, checkoutHour int) ([]uuid.UUID, error)
}

type ServiceLine struct {
	FacilityID uuid.UUID
	Quantity   int
	UnitPrice  int64
}

type CheckInRecord struct {
	ID               uuid.UUID
	ReservationID    uuid.UUID
	Deposit          int64
	IdentityImageRef string
	CheckedInAt      time.Time
	CheckedOutAt     *time.Time
}

type StayRepository interface {
	CreateCheckIn(ctx context.Context, rec *CheckInRecord) error
	FindCheckIn(ctx context.Context, reservationID uuid.UUID) (*CheckInRecord, error)
	CloseCheckIn(ctx context.Context, reservationID uuid.UUID, at time.Time) error
	AddServices(ctx context.Context, reservationID uuid.UUID, lines []ServiceLine) error
}

type Invoice struct {
	ID              uuid.UUID
	Number          string
	ReservationID   uuid.UUID
	RoomTotal       int64
	ServiceTotal    int64
	ServiceTax      int64
	OverstayPenalty int64
	GrandTotal      int64
	AmountPaid      int64
	IssuedAt        time.Time
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *Invoice) error
	// LastNumber mirrors LastBookingCode for invoice numbers.
	LastNumber(ctx context.Context, dailyPrefix string) (string, error)
}

type RoomRepository interface {
	// AssignableRooms lists physical rooms of a type free over the range and
	// in an assignable occupancy status.
	AssignableRooms(ctx context.Context, roomTypeID uuid.UUID, arrival, departure time.Time) ([]room.Room, error)
	SetOccupancyStatus(ctx context.Context, number string, status room.OccupancyStatus) error
}
