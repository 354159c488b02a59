//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"stayops/internal/domain/reservation"
	"stayops/internal/domain/room"
	"stayops/internal/domain/user"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/shared"
	"stayops/tests/common/builder"
	"stayops/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type StayCommandsTestSuite struct {
	suite.Suite
	uow      *fake.UoW
	settings *fake.Settings
	images   *fake.ImageStore
	clk      *clock.MockClock
	cmds     commands.StayCommands

	now      time.Time
	customer user.Principal
	staff    user.Principal
}

func (s *StayCommandsTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.uow = fake.NewUoW()
	s.settings = fake.DefaultSettings()
	s.images = &fake.ImageStore{}
	s.clk = clock.NewMockClock(s.now)
	s.cmds = commands.NewStayCommands(s.uow, s.settings, s.images, s.clk)

	s.customer = user.Principal{ID: uuid.New(), Kind: user.KindCustomer}
	s.staff = user.Principal{ID: uuid.New(), Kind: user.KindStaff, Role: user.RoleFrontOffice}
}

func TestStayCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(StayCommandsTestSuite))
}

// seedPaid stores a lunas two-room reservation arriving 15 Mar, leaving
// 18 Mar, and registers assignable rooms 101 and 102 of its type.
func (s *StayCommandsTestSuite) seedPaid() *reservation.Reservation {
	r, err := builder.NewReservationBuilder().WithCustomerID(s.customer.ID).BuildPaid()
	s.Require().NoError(err)
	s.uow.ReservationRepo.Store[r.ID()] = r

	typeID := r.Lines()[0].RoomTypeID
	s.uow.RoomRepo.Assignable[typeID] = []room.Room{
		{Number: "101", RoomTypeID: typeID, Floor: 1},
		{Number: "102", RoomTypeID: typeID, Floor: 1},
	}
	s.uow.ReadStore.RoomTypes[typeID] = &shared.RoomTypeSnapshot{
		ID:         typeID,
		Name:       "Deluxe",
		BaseRate:   500_000,
		Capacity:   2,
		TotalRooms: 10,
	}
	return r
}

// seedInHouse walks a paid reservation through check-in with a 300,000
// deposit and rooms 101/102 assigned.
func (s *StayCommandsTestSuite) seedInHouse() *reservation.Reservation {
	r := s.seedPaid()
	numbers := []string{"101", "102"}
	for i, l := range r.Lines() {
		s.Require().NoError(r.AssignRoom(l.ID, numbers[i], nil))
		s.uow.RoomRepo.Statuses[numbers[i]] = room.StatusOccupied
	}
	s.Require().NoError(r.CheckIn(s.now))
	s.uow.StayRepo.Records[r.ID()] = &shared.CheckInRecord{
		ID:               uuid.New(),
		ReservationID:    r.ID(),
		Deposit:          300_000,
		IdentityImageRef: "identity-documents/ktp.jpg",
		CheckedInAt:      s.now,
	}
	return r
}

func (s *StayCommandsTestSuite) checkInInput(r *reservation.Reservation) commands.CheckInInput {
	return commands.CheckInInput{
		Assignments: []commands.RoomAssignment{
			{LineID: r.Lines()[0].ID, RoomNumber: "101"},
			{LineID: r.Lines()[1].ID, RoomNumber: "102"},
		},
		Deposit: 300_000,
		IdentityImage: commands.ImageUpload{
			Filename: "ktp.jpg",
			Data:     strings.NewReader("fake scan"),
		},
	}
}

func (s *StayCommandsTestSuite) TestCheckIn() {
	s.Run("assigns rooms, records the deposit and opens the stay", func() {
		r := s.seedPaid()

		err := s.cmds.CheckIn(context.Background(), s.staff, r.ID(), s.checkInInput(r))
		s.Require().NoError(err)

		s.Equal(reservation.StatusCheckin, r.Status())
		s.Require().NotNil(r.Lines()[0].RoomNumber)
		s.Equal("101", *r.Lines()[0].RoomNumber)
		s.Equal(room.StatusOccupied, s.uow.RoomRepo.Statuses["101"])
		s.Equal(room.StatusOccupied, s.uow.RoomRepo.Statuses["102"])

		rec := s.uow.StayRepo.Records[r.ID()]
		s.Require().NotNil(rec)
		s.Equal(int64(300_000), rec.Deposit)
		s.Equal("identity-documents/ktp.jpg", rec.IdentityImageRef)
	})

	s.Run("is hidden from customers", func() {
		r := s.seedPaid()

		err := s.cmds.CheckIn(context.Background(), s.customer, r.ID(), s.checkInInput(r))
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("rejects a deposit under the minimum", func() {
		r := s.seedPaid()
		input := s.checkInInput(r)
		input.Deposit = 200_000

		err := s.cmds.CheckIn(context.Background(), s.staff, r.ID(), input)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "jumlah_deposit")
	})

	s.Run("one unassignable room aborts the whole check-in", func() {
		r := s.seedPaid()
		input := s.checkInInput(r)
		// Both lines fight over the same physical room.
		input.Assignments[1].RoomNumber = "101"
		statusesBefore := map[string]room.OccupancyStatus{}
		for k, v := range s.uow.RoomRepo.Statuses {
			statusesBefore[k] = v
		}

		err := s.cmds.CheckIn(context.Background(), s.staff, r.ID(), input)

		s.Require().ErrorIs(err, errs.ErrCapacity)
		s.ErrorIs(err, commands.ErrRoomUnavailable)
		s.Equal(reservation.StatusLunas, r.Status())
		s.NotContains(s.uow.StayRepo.Records, r.ID())
		s.Equal(statusesBefore, s.uow.RoomRepo.Statuses)
	})

	s.Run("requires an assignment for every line", func() {
		r := s.seedPaid()
		input := s.checkInInput(r)
		input.Assignments = input.Assignments[:1]

		err := s.cmds.CheckIn(context.Background(), s.staff, r.ID(), input)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "kamar")
	})

	s.Run("an in-house reservation cannot check in again", func() {
		r := s.seedInHouse()

		err := s.cmds.CheckIn(context.Background(), s.staff, r.ID(), s.checkInInput(r))
		s.ErrorIs(err, errs.ErrStateConflict)
	})
}

func (s *StayCommandsTestSuite) TestOrderServices() {
	facilityID := uuid.New()

	s.Run("adds priced service lines to the open stay", func() {
		r := s.seedInHouse()
		s.uow.ReadStore.Facilities[facilityID] = &shared.FacilitySnapshot{
			ID:    facilityID,
			Name:  "Laundry",
			Price: 40_000,
		}

		err := s.cmds.OrderServices(context.Background(), s.customer, r.ID(),
			[]commands.ServiceOrder{{FacilityID: facilityID, Quantity: 3}})
		s.Require().NoError(err)

		lines := s.uow.StayRepo.Services[r.ID()]
		s.Require().Len(lines, 1)
		s.Equal(3, lines[0].Quantity)
		s.Equal(int64(40_000), lines[0].UnitPrice)
	})

	s.Run("rejects orders before check-in", func() {
		r := s.seedPaid()

		err := s.cmds.OrderServices(context.Background(), s.customer, r.ID(),
			[]commands.ServiceOrder{{FacilityID: facilityID, Quantity: 1}})
		s.ErrorIs(err, errs.ErrStateConflict)
	})

	s.Run("rejects an empty order", func() {
		r := s.seedInHouse()

		err := s.cmds.OrderServices(context.Background(), s.customer, r.ID(), nil)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "layanan")
	})
}

func (s *StayCommandsTestSuite) TestExtend() {
	s.Run("pushes the departure out and reprices the room total", func() {
		r := s.seedInHouse()

		err := s.cmds.Extend(context.Background(), s.staff, r.ID(), 2)
		s.Require().NoError(err)

		s.Equal(5, r.Stay().Nights())
		// Two rooms at the locked 500,000 nightly over five nights.
		s.Equal(int64(5_000_000), r.Total())
	})

	s.Run("rejects when the extension window is full", func() {
		r := s.seedInHouse()
		typeID := r.Lines()[0].RoomTypeID
		winStart := r.Stay().Departure()
		s.uow.ReadStore.Stays[typeID] = occupy(winStart, winStart.AddDate(0, 0, 2), 9)
		defer delete(s.uow.ReadStore.Stays, typeID)

		err := s.cmds.Extend(context.Background(), s.staff, r.ID(), 2)

		s.ErrorIs(err, errs.ErrCapacity)
		s.Equal(3, r.Stay().Nights())
	})

	s.Run("caps the extension at seven nights", func() {
		r := s.seedInHouse()

		err := s.cmds.Extend(context.Background(), s.staff, r.ID(), 8)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "jumlah_malam")
	})

	s.Run("is staff only", func() {
		r := s.seedInHouse()

		err := s.cmds.Extend(context.Background(), s.customer, r.ID(), 1)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("rejects stays that are not in-house", func() {
		r := s.seedPaid()

		err := s.cmds.Extend(context.Background(), s.staff, r.ID(), 1)
		s.ErrorIs(err, errs.ErrStateConflict)
	})
}

func (s *StayCommandsTestSuite) TestCheckOut() {
	// seedInHouseDP prepares a group reservation on dp: total 3,000,000,
	// booking deposit 1,500,000, check-in deposit 300,000, services 200,000.
	seedInHouseDP := func() *reservation.Reservation {
		b := builder.NewReservationBuilder().WithChannel(reservation.ChannelGroup)
		r, err := b.BuildDomain()
		s.Require().NoError(err)
		s.Require().NoError(r.SubmitStayDetails("", s.now, time.Hour))
		s.Require().NoError(r.AssignBookingCode("G100326-001", s.now, time.Hour))
		s.Require().NoError(r.ConfirmGroupPayment(1_500_000, s.now))

		numbers := []string{"101", "102"}
		for i, l := range r.Lines() {
			s.Require().NoError(r.AssignRoom(l.ID, numbers[i], nil))
			s.uow.RoomRepo.Statuses[numbers[i]] = room.StatusOccupied
		}
		s.Require().NoError(r.CheckIn(s.now))

		s.uow.ReservationRepo.Store[r.ID()] = r
		s.uow.StayRepo.Records[r.ID()] = &shared.CheckInRecord{
			ID:            uuid.New(),
			ReservationID: r.ID(),
			Deposit:       300_000,
			CheckedInAt:   s.now,
		}
		s.uow.ReadStore.Totals[r.ID()] = 200_000
		return r
	}

	// Departure day is 18 Mar; overstay hours start at the 14:00 check-in
	// cutoff. Grand total before penalties:
	// 3,000,000 + 200,000 + 20,000 tax = 3,220,000, of which 1,800,000 is
	// already held as deposits.
	departureDay := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 18, hour, minute, 0, 0, time.UTC)
	}

	s.Run("settles on time and issues the invoice", func() {
		r := seedInHouseDP()
		s.clk.Set(departureDay(10, 0))

		inv, err := s.cmds.CheckOut(context.Background(), s.staff, r.ID(), 1_420_000)
		s.Require().NoError(err)

		s.Equal("INV180326-001", inv.Number)
		s.Equal(int64(3_000_000), inv.RoomTotal)
		s.Equal(int64(200_000), inv.ServiceTotal)
		s.Equal(int64(20_000), inv.ServiceTax)
		s.Equal(int64(0), inv.OverstayPenalty)
		s.Equal(int64(3_220_000), inv.GrandTotal)
		s.Equal(int64(1_420_000), inv.AmountPaid)

		s.Equal(reservation.StatusSelesai, r.Status())
		s.Contains(s.uow.InvoiceRepo.Store, inv.ID)
		s.Require().NotNil(s.uow.StayRepo.Records[r.ID()].CheckedOutAt)
		s.Equal(room.StatusCheckOutToday, s.uow.RoomRepo.Statuses["101"])
		s.Equal(room.StatusCheckOutToday, s.uow.RoomRepo.Statuses["102"])
	})

	s.Run("bills started overstay hours per room", func() {
		r := seedInHouseDP()
		// 2h30m past the cutoff: three started hours × 50,000 × 2 rooms.
		s.clk.Set(departureDay(16, 30))

		inv, err := s.cmds.CheckOut(context.Background(), s.staff, r.ID(), 1_720_000)
		s.Require().NoError(err)

		s.Equal(int64(300_000), inv.OverstayPenalty)
		s.Equal(int64(3_520_000), inv.GrandTotal)
	})

	s.Run("continues the daily invoice sequence", func() {
		r := seedInHouseDP()
		s.clk.Set(departureDay(10, 0))
		s.uow.InvoiceRepo.LastNum = "INV180326-004"

		inv, err := s.cmds.CheckOut(context.Background(), s.staff, r.ID(), 1_420_000)
		s.Require().NoError(err)
		s.Equal("INV180326-005", inv.Number)
	})

	s.Run("rejects a settlement that does not match the balance", func() {
		r := seedInHouseDP()
		s.clk.Set(departureDay(10, 0))
		before := len(s.uow.InvoiceRepo.Store)

		_, err := s.cmds.CheckOut(context.Background(), s.staff, r.ID(), 1_000_000)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Contains(verr.Fields, "total_dibayar")
		s.Equal(reservation.StatusCheckin, r.Status())
		s.Len(s.uow.InvoiceRepo.Store, before)
	})

	s.Run("is staff only", func() {
		r := seedInHouseDP()

		_, err := s.cmds.CheckOut(context.Background(), s.customer, r.ID(), 1_420_000)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}
