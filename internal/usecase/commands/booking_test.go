//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"stayops/internal/domain/inventory"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/user"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/config"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/shared"
	"stayops/tests/common/builder"
	"stayops/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	uow      *fake.UoW
	settings *fake.Settings
	images   *fake.ImageStore
	clk      *clock.MockClock
	cmds     commands.BookingCommands

	now        time.Time
	customer   user.Principal
	staff      user.Principal
	roomTypeID uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.uow = fake.NewUoW()
	s.settings = fake.DefaultSettings()
	s.images = &fake.ImageStore{}
	s.clk = clock.NewMockClock(s.now)
	s.cmds = commands.NewBookingCommands(s.uow, s.settings, s.images, s.clk, config.BookingConfig{StageDeadline: time.Hour})

	s.customer = user.Principal{ID: uuid.New(), Kind: user.KindCustomer}
	s.staff = user.Principal{ID: uuid.New(), Kind: user.KindStaff, Role: user.RoleSales}

	s.roomTypeID = uuid.New()
	s.uow.ReadStore.RoomTypes[s.roomTypeID] = &shared.RoomTypeSnapshot{
		ID:         s.roomTypeID,
		Name:       "Deluxe",
		BaseRate:   500_000,
		Capacity:   2,
		TotalRooms: 10,
	}
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// validInput books two Deluxe rooms five days out for three nights. The fresh
// quote on an empty hotel is 480,000: base 500,000 minus the two-day
// early-bird decay, no scarcity premium, no length or bulk discount.
func (s *BookingCommandsTestSuite) validInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Arrival:   s.now.AddDate(0, 0, 5),
		Departure: s.now.AddDate(0, 0, 8),
		Adults:    2,
		Children:  1,
		Rooms: []commands.RoomRequest{
			{RoomTypeID: s.roomTypeID, Quantity: 2, LockedRate: 480_000},
		},
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("persists a draft priced from availability inside the transaction", func() {
		id, err := s.cmds.CreateBooking(context.Background(), s.customer, s.validInput())
		s.Require().NoError(err)

		r := s.uow.ReservationRepo.Store[id]
		s.Require().NotNil(r)
		s.Equal(reservation.StatusPending1, r.Status())
		s.Equal(reservation.ChannelPersonal, r.Channel())
		s.Equal(s.customer.ID, r.CustomerID())
		s.Require().Len(r.Lines(), 2)
		s.Equal(int64(480_000), r.Lines()[0].Nightly)
		s.Equal(int64(2_880_000), r.Total())
		s.Require().NotNil(r.StageDeadline())
		s.Equal(s.now.Add(time.Hour), *r.StageDeadline())
	})

	s.Run("staff bookings go through the group channel", func() {
		input := s.validInput()
		input.CustomerID = uuid.New()

		id, err := s.cmds.CreateBooking(context.Background(), s.staff, input)
		s.Require().NoError(err)

		r := s.uow.ReservationRepo.Store[id]
		s.Equal(reservation.ChannelGroup, r.Channel())
		s.Equal(input.CustomerID, r.CustomerID())
		s.Require().NotNil(r.StaffID())
		s.Equal(s.staff.ID, *r.StaffID())
	})

	s.Run("scarcity premium raises the fresh quote", func() {
		// 7 of 10 rooms taken: 2 units under the half-capacity threshold,
		// 480,000 + 2 × 3.5% × 500,000 = 515,000.
		input := s.validInput()
		s.uow.ReadStore.Stays[s.roomTypeID] = occupy(input.Arrival, input.Departure, 7)
		defer delete(s.uow.ReadStore.Stays, s.roomTypeID)
		input.Rooms[0].LockedRate = 515_000

		id, err := s.cmds.CreateBooking(context.Background(), s.customer, input)
		s.Require().NoError(err)
		s.Equal(int64(515_000), s.uow.ReservationRepo.Store[id].Lines()[0].Nightly)
	})

	s.Run("rejects when availability is short and persists nothing", func() {
		s.uow.ReadStore.Stays[s.roomTypeID] = occupy(s.now.AddDate(0, 0, 5), s.now.AddDate(0, 0, 8), 9)
		defer delete(s.uow.ReadStore.Stays, s.roomTypeID)
		before := len(s.uow.ReservationRepo.Store)

		_, err := s.cmds.CreateBooking(context.Background(), s.customer, s.validInput())

		s.Require().ErrorIs(err, commands.ErrNotEnoughRooms)
		s.ErrorIs(err, errs.ErrCapacity)
		s.Len(s.uow.ReservationRepo.Store, before)
	})

	s.Run("rejects a locked price that drifted beyond tolerance", func() {
		input := s.validInput()
		input.Rooms[0].LockedRate = 400_000
		before := len(s.uow.ReservationRepo.Store)

		_, err := s.cmds.CreateBooking(context.Background(), s.customer, input)

		s.Require().ErrorIs(err, commands.ErrPriceDrift)
		s.ErrorIs(err, errs.ErrCapacity)
		s.Len(s.uow.ReservationRepo.Store, before)
	})

	s.Run("tolerates a locked price within five percent", func() {
		input := s.validInput()
		input.Rooms[0].LockedRate = 470_000

		id, err := s.cmds.CreateBooking(context.Background(), s.customer, input)
		s.Require().NoError(err)
		// The fresh quote wins; the locked rate only gates acceptance.
		s.Equal(int64(480_000), s.uow.ReservationRepo.Store[id].Lines()[0].Nightly)
	})

	s.Run("enforces the personal room cap", func() {
		input := s.validInput()
		input.Rooms[0].Quantity = 6

		_, err := s.cmds.CreateBooking(context.Background(), s.customer, input)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "jumlah_kamar")
	})

	s.Run("enforces the personal night cap", func() {
		input := s.validInput()
		input.Departure = input.Arrival.AddDate(0, 0, 8)

		_, err := s.cmds.CreateBooking(context.Background(), s.customer, input)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "departure_date")
	})

	s.Run("unknown room type aborts the booking", func() {
		input := s.validInput()
		input.Rooms[0].RoomTypeID = uuid.New()

		before := len(s.uow.ReservationRepo.Store)
		_, err := s.cmds.CreateBooking(context.Background(), s.customer, input)

		s.ErrorIs(err, commands.ErrRoomTypeNotFound)
		s.Len(s.uow.ReservationRepo.Store, before)
	})
}

func (s *BookingCommandsTestSuite) TestSubmitStayDetails() {
	facilityID := uuid.New()
	s.uow.ReadStore.Facilities[facilityID] = &shared.FacilitySnapshot{
		ID:    facilityID,
		Name:  "Breakfast",
		Price: 75_000,
	}

	s.Run("records the request and moves the draft forward", func() {
		r := s.seedDraft(s.customer.ID)

		err := s.cmds.SubmitStayDetails(context.Background(), s.customer, r.ID(), commands.StayDetailsInput{
			SpecialRequest: "late arrival, around 10pm",
			Services:       []commands.ServiceOrder{{FacilityID: facilityID, Quantity: 2}},
		})
		s.Require().NoError(err)

		s.Equal(reservation.StatusPending2, r.Status())
		s.Equal("late arrival, around 10pm", r.SpecialRequest())

		lines := s.uow.StayRepo.Services[r.ID()]
		s.Require().Len(lines, 1)
		s.Equal(int64(75_000), lines[0].UnitPrice)
	})

	s.Run("hides other customers' reservations", func() {
		r := s.seedDraft(uuid.New())

		err := s.cmds.SubmitStayDetails(context.Background(), s.customer, r.ID(), commands.StayDetailsInput{})
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("rejects after the stage deadline lapses", func() {
		r := s.seedDraft(s.customer.ID)
		s.clk.Set(s.now.Add(2 * time.Hour))
		defer s.clk.Set(s.now)

		err := s.cmds.SubmitStayDetails(context.Background(), s.customer, r.ID(), commands.StayDetailsInput{})
		s.ErrorIs(err, errs.ErrStateConflict)
	})
}

func (s *BookingCommandsTestSuite) TestAssignBookingCode() {
	s.Run("assigns day-scoped sequential codes", func() {
		first := s.seedDraft(s.customer.ID)
		second := s.seedDraft(s.customer.ID)
		s.Require().NoError(first.SubmitStayDetails("", s.now, time.Hour))
		s.Require().NoError(second.SubmitStayDetails("", s.now, time.Hour))

		code, err := s.cmds.AssignBookingCode(context.Background(), s.customer, first.ID())
		s.Require().NoError(err)
		s.Equal("P100326-001", code)

		code, err = s.cmds.AssignBookingCode(context.Background(), s.customer, second.ID())
		s.Require().NoError(err)
		s.Equal("P100326-002", code)

		s.Equal(reservation.StatusPending3, first.Status())
	})

	s.Run("rejects a draft that has not submitted details", func() {
		r := s.seedDraft(s.customer.ID)

		_, err := s.cmds.AssignBookingCode(context.Background(), s.customer, r.ID())
		s.ErrorIs(err, errs.ErrStateConflict)
	})
}

func (s *BookingCommandsTestSuite) TestConfirmPersonalPayment() {
	s.Run("stores the proof and settles the booking", func() {
		r := s.seedPersonalPending3()

		err := s.cmds.ConfirmPersonalPayment(context.Background(), s.customer, r.ID(), commands.ImageUpload{
			Filename: "transfer.jpg",
			Data:     strings.NewReader("fake image bytes"),
		})
		s.Require().NoError(err)

		s.Equal(reservation.StatusLunas, r.Status())
		s.Require().NotNil(r.PaymentProofRef())
		s.Equal("payment-proofs/transfer.jpg", *r.PaymentProofRef())
		s.Equal([]string{"payment-proofs/transfer.jpg"}, s.images.Saved)
	})

	s.Run("rejects a proof on a group booking", func() {
		r := s.seedGroupPending3()

		err := s.cmds.ConfirmPersonalPayment(context.Background(), s.staff, r.ID(), commands.ImageUpload{
			Filename: "transfer.jpg",
			Data:     strings.NewReader("fake image bytes"),
		})
		s.ErrorIs(err, errs.ErrStateConflict)
	})
}

func (s *BookingCommandsTestSuite) TestConfirmGroupPayment() {
	s.Run("a half deposit moves the booking to dp", func() {
		r := s.seedGroupPending3()

		err := s.cmds.ConfirmGroupPayment(context.Background(), s.staff, r.ID(), 1_500_000)
		s.Require().NoError(err)

		s.Equal(reservation.StatusDP, r.Status())
		s.Equal(int64(1_500_000), r.DepositDP())
	})

	s.Run("a full deposit settles outright", func() {
		r := s.seedGroupPending3()

		err := s.cmds.ConfirmGroupPayment(context.Background(), s.staff, r.ID(), r.Total())
		s.Require().NoError(err)
		s.Equal(reservation.StatusLunas, r.Status())
	})

	s.Run("rejects a deposit under half the total", func() {
		r := s.seedGroupPending3()

		err := s.cmds.ConfirmGroupPayment(context.Background(), s.staff, r.ID(), 1_000_000)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "jumlah_dp")
		s.Equal(reservation.StatusPending3, r.Status())
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	s.Run("a pending draft cancels without refund talk", func() {
		r := s.seedDraft(s.customer.ID)

		msg, err := s.cmds.Cancel(context.Background(), s.customer, r.ID())
		s.Require().NoError(err)

		s.Equal("unfinished booking draft cancelled", msg)
		s.Equal(reservation.StatusBatal, r.Status())
	})

	s.Run("a paid booking more than a week out refunds fully", func() {
		b := builder.NewReservationBuilder().
			WithCustomerID(s.customer.ID).
			WithStay(s.now.AddDate(0, 0, 10), s.now.AddDate(0, 0, 13))
		r, err := b.BuildPaid()
		s.Require().NoError(err)
		s.uow.ReservationRepo.Store[r.ID()] = r

		msg, err := s.cmds.Cancel(context.Background(), s.customer, r.ID())
		s.Require().NoError(err)
		s.Equal("reservation cancelled, payment fully refundable", msg)
	})

	s.Run("a paid booking inside a week keeps the payment", func() {
		b := builder.NewReservationBuilder().WithCustomerID(s.customer.ID)
		r, err := b.BuildPaid()
		s.Require().NoError(err)
		s.uow.ReservationRepo.Store[r.ID()] = r

		msg, err := s.cmds.Cancel(context.Background(), s.customer, r.ID())
		s.Require().NoError(err)
		s.Equal("reservation cancelled, payment is not refundable", msg)
	})

	s.Run("cancelling twice conflicts", func() {
		r := s.seedDraft(s.customer.ID)
		_, err := s.cmds.Cancel(context.Background(), s.customer, r.ID())
		s.Require().NoError(err)

		_, err = s.cmds.Cancel(context.Background(), s.customer, r.ID())
		s.ErrorIs(err, errs.ErrStateConflict)
	})
}

// seedDraft stores a fresh pending-1 reservation owned by customerID.
func (s *BookingCommandsTestSuite) seedDraft(customerID uuid.UUID) *reservation.Reservation {
	r, err := builder.NewReservationBuilder().WithCustomerID(customerID).BuildDomain()
	s.Require().NoError(err)
	s.uow.ReservationRepo.Store[r.ID()] = r
	return r
}

func (s *BookingCommandsTestSuite) seedPersonalPending3() *reservation.Reservation {
	r := s.seedDraft(s.customer.ID)
	s.Require().NoError(r.SubmitStayDetails("", s.now, time.Hour))
	s.Require().NoError(r.AssignBookingCode("P100326-001", s.now, time.Hour))
	return r
}

// occupy blankets [arrival, departure) with a single allocation of rooms.
func occupy(arrival, departure time.Time, rooms int) []inventory.Stay {
	return []inventory.Stay{{Arrival: arrival, Departure: departure, Rooms: rooms}}
}

func (s *BookingCommandsTestSuite) seedGroupPending3() *reservation.Reservation {
	b := builder.NewReservationBuilder().WithChannel(reservation.ChannelGroup)
	r, err := b.BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(r.SubmitStayDetails("", s.now, time.Hour))
	s.Require().NoError(r.AssignBookingCode("G100326-001", s.now, time.Hour))
	s.uow.ReservationRepo.Store[r.ID()] = r
	return r
}
