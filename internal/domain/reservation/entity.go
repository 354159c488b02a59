package reservation

import (
	"fmt"
	"time"

	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

// Reservation is the aggregate root of one stay. All state-machine moves go
// through its methods; repositories only persist what the methods decided.
type Reservation struct {
	id              uuid.UUID
	channel         Channel
	customerID      uuid.UUID
	staffID         *uuid.UUID // sales & marketing staff-of-record, group channel only
	bookingCode     *string
	stay            StayRange
	guests          GuestCount
	specialRequest  string
	status          Status
	stageDeadline   *time.Time
	total           int64
	depositDP       int64
	paymentProofRef *string
	lines           []RoomLine
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(
	channel Channel,
	customerID uuid.UUID,
	staffID *uuid.UUID,
	stay StayRange,
	guests GuestCount,
	lines []RoomLine,
	now time.Time,
	stageDeadline time.Duration,
) (*Reservation, error) {
	if err := guests.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.FieldError("jenis_kamar", "at least one room is required")
	}
	if channel == ChannelGroup && staffID == nil {
		return nil, errs.FieldError("id_sm", "group bookings require a staff of record")
	}

	deadline := now.Add(stageDeadline)
	r := &Reservation{
		id:            uuid.New(),
		channel:       channel,
		customerID:    customerID,
		staffID:       staffID,
		stay:          stay,
		guests:        guests,
		status:        StatusPending1,
		stageDeadline: &deadline,
		lines:         lines,
		createdAt:     now,
		updatedAt:     now,
	}
	r.RecomputeTotal()
	return r, nil
}

func ReconstructReservation(
	id uuid.UUID,
	channel Channel,
	customerID uuid.UUID,
	staffID *uuid.UUID,
	bookingCode *string,
	stay StayRange,
	guests GuestCount,
	specialRequest string,
	status Status,
	stageDeadline *time.Time,
	total int64,
	depositDP int64,
	paymentProofRef *string,
	lines []RoomLine,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		channel:         channel,
		customerID:      customerID,
		staffID:         staffID,
		bookingCode:     bookingCode,
		stay:            stay,
		guests:          guests,
		specialRequest:  specialRequest,
		status:          status,
		stageDeadline:   stageDeadline,
		total:           total,
		depositDP:       depositDP,
		paymentProofRef: paymentProofRef,
		lines:           lines,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) Channel() Channel          { return r.channel }
func (r *Reservation) CustomerID() uuid.UUID     { return r.customerID }
func (r *Reservation) StaffID() *uuid.UUID       { return r.staffID }
func (r *Reservation) BookingCode() *string      { return r.bookingCode }
func (r *Reservation) Stay() StayRange           { return r.stay }
func (r *Reservation) Guests() GuestCount        { return r.guests }
func (r *Reservation) SpecialRequest() string    { return r.specialRequest }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) StageDeadline() *time.Time { return r.stageDeadline }
func (r *Reservation) Total() int64              { return r.total }
func (r *Reservation) DepositDP() int64          { return r.depositDP }
func (r *Reservation) PaymentProofRef() *string  { return r.paymentProofRef }
func (r *Reservation) Lines() []RoomLine         { return r.lines }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }

// RecomputeTotal keeps the stored total equal to the sum of nightly rates
// times nights. Must be called after every room-line mutation; the original
// system hid this in a database trigger.
func (r *Reservation) RecomputeTotal() {
	nights := int64(r.stay.Nights())
	var total int64
	for _, l := range r.lines {
		total += l.Nightly * nights
	}
	r.total = total
}

// ensureStage rejects a transition attempted from the wrong state or after
// the stage deadline: either way the client is acting on stale data.
func (r *Reservation) ensureStage(expected Status, now time.Time) error {
	if r.status != expected {
		return errs.Mark(
			errs.Newf("reservation is %s, expected %s", r.status, expected),
			errs.ErrStateConflict,
		)
	}
	if r.stageDeadline != nil && now.After(*r.stageDeadline) {
		return errs.Mark(errs.New("stage deadline has passed"), errs.ErrStateConflict)
	}
	return nil
}

func (r *Reservation) touch(now time.Time) {
	r.updatedAt = now
}

func (r *Reservation) renewDeadline(now time.Time, d time.Duration) {
	deadline := now.Add(d)
	r.stageDeadline = &deadline
}

// SubmitStayDetails records the special request; add-on service lines are
// persisted by the caller alongside. pending-1 -> pending-2.
func (r *Reservation) SubmitStayDetails(specialRequest string, now time.Time, stageDeadline time.Duration) error {
	if err := r.ensureStage(StatusPending1, now); err != nil {
		return err
	}
	r.specialRequest = specialRequest
	r.status = StatusPending2
	r.renewDeadline(now, stageDeadline)
	r.touch(now)
	return nil
}

// AssignBookingCode moves pending-2 -> pending-3. The code must be derived in
// the same transaction that persists it.
func (r *Reservation) AssignBookingCode(code string, now time.Time, stageDeadline time.Duration) error {
	if err := r.ensureStage(StatusPending2, now); err != nil {
		return err
	}
	r.bookingCode = &code
	r.status = StatusPending3
	r.renewDeadline(now, stageDeadline)
	r.touch(now)
	return nil
}

// ConfirmPersonalPayment settles an individual booking with an uploaded
// payment proof; personal bookings always pay in full.
func (r *Reservation) ConfirmPersonalPayment(proofRef string, now time.Time) error {
	if err := r.ensureStage(StatusPending3, now); err != nil {
		return err
	}
	if r.channel != ChannelPersonal {
		return errs.Mark(errs.New("payment proof applies to personal bookings only"), errs.ErrStateConflict)
	}
	r.paymentProofRef = &proofRef
	r.status = StatusLunas
	r.stageDeadline = nil
	r.touch(now)
	return nil
}

// ConfirmGroupPayment records a deposit of at least half the total; a full
// deposit settles the booking outright.
func (r *Reservation) ConfirmGroupPayment(deposit int64, now time.Time) error {
	if err := r.ensureStage(StatusPending3, now); err != nil {
		return err
	}
	if r.channel != ChannelGroup {
		return errs.Mark(errs.New("deposits apply to group bookings only"), errs.ErrStateConflict)
	}
	if deposit*2 < r.total {
		return errs.FieldError("jumlah_dp", fmt.Sprintf("deposit must be at least 50%% of the total (%d)", r.total))
	}
	r.depositDP = deposit
	if deposit >= r.total {
		r.status = StatusLunas
	} else {
		r.status = StatusDP
	}
	r.stageDeadline = nil
	r.touch(now)
	return nil
}

// CancellationOutcome is informational only; no refund movement is recorded.
type CancellationOutcome struct {
	Message string
}

// Cancel is allowed from any pending or paid state until the departure-day
// checkout cutoff has passed.
func (r *Reservation) Cancel(now time.Time, checkoutHour int) (CancellationOutcome, error) {
	if !r.status.IsCancellable() {
		return CancellationOutcome{}, errs.Mark(
			errs.Newf("reservation is %s and can no longer be cancelled", r.status),
			errs.ErrStateConflict,
		)
	}
	if now.After(r.stay.CheckoutCutoff(checkoutHour)) {
		return CancellationOutcome{}, errs.Mark(errs.New("the stay has already ended"), errs.ErrStateConflict)
	}

	wasPending := r.status.IsPending()
	r.status = StatusBatal
	r.stageDeadline = nil
	r.touch(now)

	if wasPending {
		return CancellationOutcome{Message: "unfinished booking draft cancelled"}, nil
	}
	if r.stay.Arrival().Sub(now) > 7*24*time.Hour {
		return CancellationOutcome{Message: "reservation cancelled, payment fully refundable"}, nil
	}
	return CancellationOutcome{Message: "reservation cancelled, payment is not refundable"}, nil
}

// CheckIn finalizes room assignments recorded on the lines and opens the stay.
func (r *Reservation) CheckIn(now time.Time) error {
	if !r.status.IsPaid() {
		return errs.Mark(
			errs.Newf("reservation is %s, check-in requires dp or lunas", r.status),
			errs.ErrStateConflict,
		)
	}
	r.status = StatusCheckin
	r.touch(now)
	return nil
}

// Extend pushes the departure out; pricing of the extra nights is settled at
// check-out through the room total, not re-itemized here.
func (r *Reservation) Extend(nights int, now time.Time) error {
	if r.status != StatusCheckin {
		return errs.Mark(errs.New("only in-house stays can be extended"), errs.ErrStateConflict)
	}
	if nights < 1 || nights > 7 {
		return errs.FieldError("jumlah_malam", "extension must be between 1 and 7 nights")
	}
	r.stay = r.stay.ExtendedBy(nights)
	r.RecomputeTotal()
	r.touch(now)
	return nil
}

// Complete closes the reservation at check-out settlement time.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusCheckin {
		return errs.Mark(errs.New("only in-house stays can be checked out"), errs.ErrStateConflict)
	}
	r.status = StatusSelesai
	r.touch(now)
	return nil
}

// AssignRoom binds a physical room (and optionally a substituted room type)
// to one line. Substitution availability is the caller's responsibility.
func (r *Reservation) AssignRoom(lineID uuid.UUID, roomNumber string, newRoomTypeID *uuid.UUID) error {
	for i := range r.lines {
		if r.lines[i].ID == lineID {
			r.lines[i].RoomNumber = &roomNumber
			if newRoomTypeID != nil {
				r.lines[i].RoomTypeID = *newRoomTypeID
			}
			return nil
		}
	}
	return errs.Mark(errs.Newf("room line %s not found", lineID), errs.ErrNotFound)
}
