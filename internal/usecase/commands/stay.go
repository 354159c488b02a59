package commands

import (
	"context"

	"stayops/internal/domain/billing"
	"stayops/internal/domain/inventory"
	"stayops/internal/domain/refcode"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/room"
	"stayops/internal/domain/user"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

const invoicePrefix = "INV"

var (
	ErrStaffOnly       = errs.New("front-office staff only")
	ErrRoomUnavailable = errs.New("room is not assignable")
)

type RoomAssignment struct {
	LineID     uuid.UUID
	RoomNumber string
	// RoomTypeID is set when the guest is moved to a different room type;
	// nil keeps the booked type.
	RoomTypeID *uuid.UUID
}

type CheckInInput struct {
	Assignments   []RoomAssignment
	Deposit       int64
	IdentityImage ImageUpload
}

type StayCommands interface {
	// CheckIn assigns a physical room to every line, all-or-nothing: one
	// unassignable room aborts the whole call with nothing persisted.
	CheckIn(ctx context.Context, actor user.Principal, reservationID uuid.UUID, input CheckInInput) error
	OrderServices(ctx context.Context, actor user.Principal, reservationID uuid.UUID, orders []ServiceOrder) error
	Extend(ctx context.Context, actor user.Principal, reservationID uuid.UUID, nights int) error
	// CheckOut settles the stay. amountPaid must equal the computed balance
	// exactly; partial settlement is not supported.
	CheckOut(ctx context.Context, actor user.Principal, reservationID uuid.UUID, amountPaid int64) (*shared.Invoice, error)
}

type stayCommandsImpl struct {
	uow      shared.UnitOfWork
	settings shared.SettingsReader
	images   shared.ImageStore
	clock    clock.Clock
}

func NewStayCommands(
	uow shared.UnitOfWork,
	settings shared.SettingsReader,
	images shared.ImageStore,
	clock clock.Clock,
) StayCommands {
	return &stayCommandsImpl{
		uow:      uow,
		settings: settings,
		images:   images,
		clock:    clock,
	}
}

func (c *stayCommandsImpl) CheckIn(ctx context.Context, actor user.Principal, reservationID uuid.UUID, input CheckInInput) error {
	if !actor.IsStaff() {
		return errs.Mark(ErrStaffOnly, errs.ErrNotFound)
	}
	now := c.clock.Now()

	minDeposit, err := c.settings.Int64(ctx, shared.KeyMinCheckInDeposit)
	if err != nil {
		return err
	}
	if input.Deposit < minDeposit {
		return errs.FieldError("jumlah_deposit", "check-in deposit is below the minimum")
	}

	identityRef, err := c.images.Save(ctx, "identity-documents", input.IdentityImage.Filename, input.IdentityImage.Data)
	if err != nil {
		return err
	}

	return c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}

		if err := c.assignRooms(ctx, tx, r, input.Assignments); err != nil {
			return err
		}
		if err := r.CheckIn(now); err != nil {
			return err
		}

		rec := &shared.CheckInRecord{
			ID:               uuid.New(),
			ReservationID:    r.ID(),
			Deposit:          input.Deposit,
			IdentityImageRef: identityRef,
			CheckedInAt:      now,
		}
		if err := tx.Stays().CreateCheckIn(ctx, rec); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, r)
	})
}

// assignRooms validates every requested room against the assignable set of
// its (possibly substituted) type before touching any state.
func (c *stayCommandsImpl) assignRooms(ctx context.Context, tx shared.Tx, r *reservation.Reservation, assignments []RoomAssignment) error {
	if len(assignments) != len(r.Lines()) {
		return errs.FieldError("kamar", "every booked room needs an assignment")
	}

	stay := r.Stay()
	assignable := map[uuid.UUID]map[string]bool{}
	for _, a := range assignments {
		line, err := findLine(r, a.LineID)
		if err != nil {
			return err
		}
		typeID := line.RoomTypeID
		if a.RoomTypeID != nil {
			typeID = *a.RoomTypeID
		}

		if assignable[typeID] == nil {
			rooms, err := tx.Rooms().AssignableRooms(ctx, typeID, stay.Arrival(), stay.Departure())
			if err != nil {
				return err
			}
			set := make(map[string]bool, len(rooms))
			for _, rm := range rooms {
				set[rm.Number] = true
			}
			assignable[typeID] = set
		}

		if !assignable[typeID][a.RoomNumber] {
			return errs.Mark(errs.Wrapf(ErrRoomUnavailable, "room %s", a.RoomNumber), errs.ErrCapacity)
		}
		// One physical room serves one line.
		assignable[typeID][a.RoomNumber] = false

		if err := r.AssignRoom(a.LineID, a.RoomNumber, a.RoomTypeID); err != nil {
			return err
		}
		if err := tx.Rooms().SetOccupancyStatus(ctx, a.RoomNumber, room.StatusOccupied); err != nil {
			return err
		}
	}
	return nil
}

func (c *stayCommandsImpl) OrderServices(ctx context.Context, actor user.Principal, reservationID uuid.UUID, orders []ServiceOrder) error {
	if len(orders) == 0 {
		return errs.FieldError("layanan", "at least one service is required")
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if !actor.IsStaff() && r.CustomerID() != actor.ID {
			return errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
		}
		if r.Status() != reservation.StatusCheckin {
			return errs.Mark(errs.New("services can only be ordered while checked in"), errs.ErrStateConflict)
		}

		lines, err := resolveServices(ctx, tx, orders)
		if err != nil {
			return err
		}
		return tx.Stays().AddServices(ctx, r.ID(), lines)
	})
}

func (c *stayCommandsImpl) Extend(ctx context.Context, actor user.Principal, reservationID uuid.UUID, nights int) error {
	if !actor.IsStaff() {
		return errs.Mark(ErrStaffOnly, errs.ErrNotFound)
	}
	now := c.clock.Now()

	return c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if r.Status() != reservation.StatusCheckin {
			return errs.Mark(errs.New("only in-house stays can be extended"), errs.ErrStateConflict)
		}
		if nights < 1 || nights > 7 {
			return errs.FieldError("jumlah_malam", "extension must be between 1 and 7 nights")
		}

		// The extension window opens at the current departure, so the stay's
		// own allocations never collide with it.
		winStart := r.Stay().Departure()
		winEnd := winStart.AddDate(0, 0, nights)

		needed := map[uuid.UUID]int{}
		for _, l := range r.Lines() {
			needed[l.RoomTypeID]++
		}
		for typeID, count := range needed {
			rt, err := tx.Reads().RoomTypeByID(ctx, typeID)
			if err != nil {
				return err
			}
			stays, err := tx.Reads().ActiveStays(ctx, typeID, winStart, winEnd)
			if err != nil {
				return err
			}
			snap, err := inventory.Build(rt.TotalRooms, stays, winStart, winEnd, 0)
			if err != nil {
				return err
			}
			if snap.AvailableRooms < count {
				return errs.Mark(ErrNotEnoughRooms, errs.ErrCapacity)
			}
		}

		if err := r.Extend(nights, now); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, r)
	})
}

func (c *stayCommandsImpl) CheckOut(ctx context.Context, actor user.Principal, reservationID uuid.UUID, amountPaid int64) (*shared.Invoice, error) {
	if !actor.IsStaff() {
		return nil, errs.Mark(ErrStaffOnly, errs.ErrNotFound)
	}
	now := c.clock.Now()

	taxRate, err := c.settings.Float(ctx, shared.KeyServiceTaxRate)
	if err != nil {
		return nil, err
	}
	overstayRate, err := c.settings.Int64(ctx, shared.KeyOverstayRatePerHour)
	if err != nil {
		return nil, err
	}
	overstayCap, err := c.settings.Float(ctx, shared.KeyOverstayPenaltyCap)
	if err != nil {
		return nil, err
	}
	checkinHour, err := c.settings.Int(ctx, shared.KeyCheckInHour)
	if err != nil {
		return nil, err
	}

	var invoice *shared.Invoice
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		rec, err := tx.Stays().FindCheckIn(ctx, r.ID())
		if err != nil {
			return err
		}
		serviceTotal, err := tx.Reads().ServiceTotal(ctx, r.ID())
		if err != nil {
			return err
		}

		cutoff := r.Stay().NextCheckInCutoff(checkinHour)
		penalty := billing.OverstayPenalty(now, cutoff, overstayRate, len(r.Lines()), r.Total(), overstayCap)
		settlement := billing.ComputeSettlement(r.Total(), serviceTotal, taxRate, penalty, r.DepositDP()+rec.Deposit)

		if amountPaid != settlement.AmountDue {
			return errs.FieldError("total_dibayar", "settlement amount must equal the outstanding balance exactly")
		}

		if err := r.Complete(now); err != nil {
			return err
		}

		prefix := refcode.DailyPrefix(invoicePrefix, now)
		last, err := tx.Invoices().LastNumber(ctx, prefix)
		if err != nil {
			return err
		}
		invoice = &shared.Invoice{
			ID:              uuid.New(),
			Number:          refcode.Next(prefix, last),
			ReservationID:   r.ID(),
			RoomTotal:       settlement.RoomTotal,
			ServiceTotal:    settlement.ServiceTotal,
			ServiceTax:      settlement.ServiceTax,
			OverstayPenalty: settlement.OverstayPenalty,
			GrandTotal:      settlement.GrandTotal,
			AmountPaid:      amountPaid,
			IssuedAt:        now,
		}
		if err := tx.Invoices().Create(ctx, invoice); err != nil {
			return err
		}
		if err := tx.Stays().CloseCheckIn(ctx, r.ID(), now); err != nil {
			return err
		}
		if err := c.releaseRooms(ctx, tx, r); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (c *stayCommandsImpl) releaseRooms(ctx context.Context, tx shared.Tx, r *reservation.Reservation) error {
	for _, l := range r.Lines() {
		if l.RoomNumber == nil {
			continue
		}
		if err := tx.Rooms().SetOccupancyStatus(ctx, *l.RoomNumber, room.StatusCheckOutToday); err != nil {
			return err
		}
	}
	return nil
}

func findLine(r *reservation.Reservation, lineID uuid.UUID) (reservation.RoomLine, error) {
	for _, l := range r.Lines() {
		if l.ID == lineID {
			return l, nil
		}
	}
	return reservation.RoomLine{}, errs.Mark(errs.Newf("room line %s not found", lineID), errs.ErrNotFound)
}
