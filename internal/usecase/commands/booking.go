package commands

import (
	"context"
	"time"

	"stayops/internal/domain/inventory"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/refcode"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/user"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/config"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

// Locked prices may drift up to 5% from a fresh computation before the
// booking is rejected.
const priceTolerance = 0.05

var (
	ErrRoomTypeNotFound = errs.New("room type not found")
	ErrNotEnoughRooms   = errs.New("requested quantity exceeds current availability")
	ErrPriceDrift       = errs.New("locked price no longer matches the current rate")
)

type RoomRequest struct {
	RoomTypeID uuid.UUID
	Quantity   int
	// LockedRate is the nightly rate the client saw when searching.
	LockedRate int64
}

type CreateBookingInput struct {
	CustomerID uuid.UUID // ignored for self-service bookings; the actor books for themselves
	Arrival    time.Time
	Departure  time.Time
	Adults     int
	Children   int
	Rooms      []RoomRequest
}

type StayDetailsInput struct {
	SpecialRequest string
	Services       []ServiceOrder
}

type ServiceOrder struct {
	FacilityID uuid.UUID
	Quantity   int
}

type BookingCommands interface {
	// CreateBooking re-derives availability and pricing inside a serializable
	// transaction so two concurrent bookings can never oversell a room type.
	CreateBooking(ctx context.Context, actor user.Principal, input CreateBookingInput) (uuid.UUID, error)
	SubmitStayDetails(ctx context.Context, actor user.Principal, reservationID uuid.UUID, input StayDetailsInput) error
	AssignBookingCode(ctx context.Context, actor user.Principal, reservationID uuid.UUID) (string, error)
	ConfirmPersonalPayment(ctx context.Context, actor user.Principal, reservationID uuid.UUID, proof ImageUpload) error
	ConfirmGroupPayment(ctx context.Context, actor user.Principal, reservationID uuid.UUID, deposit int64) error
	Cancel(ctx context.Context, actor user.Principal, reservationID uuid.UUID) (string, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	settings shared.SettingsReader
	images   shared.ImageStore
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	settings shared.SettingsReader,
	images shared.ImageStore,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		settings: settings,
		images:   images,
		clock:    clock,
		cfg:      cfg,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, actor user.Principal, input CreateBookingInput) (uuid.UUID, error) {
	now := c.clock.Now()

	channel := reservation.ChannelPersonal
	customerID := actor.ID
	var staffID *uuid.UUID
	if actor.IsStaff() {
		channel = reservation.ChannelGroup
		customerID = input.CustomerID
		staffID = &actor.ID
	}

	stay, err := reservation.NewStayRange(input.Arrival, input.Departure, now)
	if err != nil {
		return uuid.Nil, err
	}

	totalRooms := 0
	for _, rr := range input.Rooms {
		if rr.Quantity < 1 {
			return uuid.Nil, errs.FieldError("jumlah_kamar", "room quantity must be positive")
		}
		totalRooms += rr.Quantity
	}
	if totalRooms == 0 {
		return uuid.Nil, errs.FieldError("jenis_kamar", "at least one room is required")
	}
	if totalRooms > channel.MaxRooms() {
		return uuid.Nil, errs.FieldError("jumlah_kamar", "booking exceeds the channel room cap")
	}
	if stay.Nights() > channel.MaxNights() {
		return uuid.Nil, errs.FieldError("departure_date", "booking exceeds the channel night cap")
	}

	var reservationID uuid.UUID
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := c.buildRoomLines(ctx, tx, input.Rooms, stay, totalRooms, now)
		if err != nil {
			return err
		}

		guests := reservation.GuestCount{Adults: input.Adults, Children: input.Children}
		r, err := reservation.NewReservation(channel, customerID, staffID, stay, guests, lines, now, c.cfg.StageDeadline)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, r); err != nil {
			return err
		}
		reservationID = r.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

// buildRoomLines re-quotes every requested room type against availability
// observed inside the transaction. Any failure aborts the whole booking, so
// no draft survives a capacity or price rejection.
func (c *bookingCommandsImpl) buildRoomLines(
	ctx context.Context,
	tx shared.Tx,
	requests []RoomRequest,
	stay reservation.StayRange,
	totalRooms int,
	now time.Time,
) ([]reservation.RoomLine, error) {
	var lines []reservation.RoomLine
	for _, rr := range requests {
		rt, err := tx.Reads().RoomTypeByID(ctx, rr.RoomTypeID)
		if err != nil {
			return nil, errs.Mark(err, ErrRoomTypeNotFound)
		}

		stays, err := tx.Reads().ActiveStays(ctx, rt.ID, stay.Arrival(), stay.Departure())
		if err != nil {
			return nil, err
		}
		snap, err := inventory.Build(rt.TotalRooms, stays, stay.Arrival(), stay.Departure(), 0)
		if err != nil {
			return nil, err
		}
		if snap.AvailableRooms < rr.Quantity {
			return nil, errs.Mark(ErrNotEnoughRooms, errs.ErrCapacity)
		}

		baseRate, err := tx.Reads().EffectiveRate(ctx, rt.ID, stay.Arrival())
		if err != nil {
			return nil, err
		}
		fresh := pricing.Compute(pricing.Input{
			BaseRate:       baseRate,
			Now:            now,
			Arrival:        stay.Arrival(),
			Departure:      stay.Departure(),
			AvailableRooms: snap.AvailableRooms,
			TotalRooms:     snap.TotalRooms,
			RequestedRooms: totalRooms,
		})
		if !pricing.WithinTolerance(rr.LockedRate, fresh.Nightly, priceTolerance) {
			return nil, errs.Mark(ErrPriceDrift, errs.ErrCapacity)
		}

		for i := 0; i < rr.Quantity; i++ {
			lines = append(lines, reservation.RoomLine{
				ID:         uuid.New(),
				RoomTypeID: rt.ID,
				Nightly:    fresh.Nightly,
			})
		}
	}
	return lines, nil
}

func (c *bookingCommandsImpl) SubmitStayDetails(ctx context.Context, actor user.Principal, reservationID uuid.UUID, input StayDetailsInput) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadOwned(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}

		serviceLines, err := resolveServices(ctx, tx, input.Services)
		if err != nil {
			return err
		}

		if err := r.SubmitStayDetails(input.SpecialRequest, now, c.cfg.StageDeadline); err != nil {
			return err
		}
		if len(serviceLines) > 0 {
			if err := tx.Stays().AddServices(ctx, r.ID(), serviceLines); err != nil {
				return err
			}
		}
		return tx.Reservations().Update(ctx, r)
	})
}

func (c *bookingCommandsImpl) AssignBookingCode(ctx context.Context, actor user.Principal, reservationID uuid.UUID) (string, error) {
	now := c.clock.Now()
	var code string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadOwned(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}

		prefix := refcode.DailyPrefix(r.Channel().CodePrefix(), now)
		last, err := tx.Reservations().LastBookingCode(ctx, prefix)
		if err != nil {
			return err
		}
		code = refcode.Next(prefix, last)

		if err := r.AssignBookingCode(code, now, c.cfg.StageDeadline); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, r)
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

func (c *bookingCommandsImpl) ConfirmPersonalPayment(ctx context.Context, actor user.Principal, reservationID uuid.UUID, proof ImageUpload) error {
	now := c.clock.Now()

	ref, err := c.images.Save(ctx, "payment-proofs", proof.Filename, proof.Data)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadOwned(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}
		if err := r.ConfirmPersonalPayment(ref, now); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, r)
	})
}

func (c *bookingCommandsImpl) ConfirmGroupPayment(ctx context.Context, actor user.Principal, reservationID uuid.UUID, deposit int64) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadOwned(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}
		if err := r.ConfirmGroupPayment(deposit, now); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, r)
	})
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor user.Principal, reservationID uuid.UUID) (string, error) {
	now := c.clock.Now()

	checkoutHour, err := c.settings.Int(ctx, shared.KeyCheckOutHour)
	if err != nil {
		return "", err
	}

	var message string
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadOwned(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}
		outcome, err := r.Cancel(now, checkoutHour)
		if err != nil {
			return err
		}
		message = outcome.Message
		return tx.Reservations().Update(ctx, r)
	})
	if err != nil {
		return "", err
	}
	return message, nil
}

// loadOwned fetches a reservation and hides it from customers who do not own
// it; staff can act on any booking.
func (c *bookingCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, actor user.Principal, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && r.CustomerID() != actor.ID {
		return nil, errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	}
	return r, nil
}

func resolveServices(ctx context.Context, tx shared.Tx, orders []ServiceOrder) ([]shared.ServiceLine, error) {
	var lines []shared.ServiceLine
	for _, o := range orders {
		if o.Quantity < 1 {
			return nil, errs.FieldError("jumlah", "service quantity must be positive")
		}
		f, err := tx.Reads().FacilityByID(ctx, o.FacilityID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, shared.ServiceLine{
			FacilityID: f.ID,
			Quantity:   o.Quantity,
			UnitPrice:  f.Price,
		})
	}
	return lines, nil
}
