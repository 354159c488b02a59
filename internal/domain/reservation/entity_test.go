//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stayops/internal/domain/reservation"
	"stayops/internal/pkg/errs"
	"stayops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, reservation.StatusPending1, r.Status())
		require.NotNil(t, r.StageDeadline())
		assert.Equal(t, b.Now().Add(time.Hour), *r.StageDeadline())
		// 2 rooms × 500,000 × 3 nights
		assert.Equal(t, int64(3_000_000), r.Total())
		assert.Nil(t, r.BookingCode())
	})

	t.Run("rejects a booking without rooms", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithLines(nil).BuildDomain()
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "jenis_kamar")
	})

	t.Run("rejects a booking without adults", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithGuests(0, 2).BuildDomain()
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "jumlah_dewasa")
	})

	t.Run("group bookings require a staff of record", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			WithChannel(reservation.ChannelGroup).
			WithStaffID(nil).
			BuildDomain()
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "id_sm")
	})
}

func TestStageTransitions(t *testing.T) {
	b := builder.NewReservationBuilder()
	now := b.Now()

	t.Run("happy path through to full payment", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.SubmitStayDetails("late arrival", now, time.Hour))
		assert.Equal(t, reservation.StatusPending2, r.Status())
		assert.Equal(t, "late arrival", r.SpecialRequest())

		require.NoError(t, r.AssignBookingCode("P100326-001", now, time.Hour))
		assert.Equal(t, reservation.StatusPending3, r.Status())
		require.NotNil(t, r.BookingCode())
		assert.Equal(t, "P100326-001", *r.BookingCode())

		require.NoError(t, r.ConfirmPersonalPayment("proofs/transfer.jpg", now))
		assert.Equal(t, reservation.StatusLunas, r.Status())
		assert.Nil(t, r.StageDeadline())
	})

	t.Run("skipping a stage is a state conflict", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.AssignBookingCode("P100326-001", now, time.Hour)
		assert.ErrorIs(t, err, errs.ErrStateConflict)

		err = r.ConfirmPersonalPayment("proofs/transfer.jpg", now)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("a lapsed stage deadline blocks the transition", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.SubmitStayDetails("", now.Add(2*time.Hour), time.Hour)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("each stage entry renews the deadline", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		later := now.Add(50 * time.Minute)
		require.NoError(t, r.SubmitStayDetails("", later, time.Hour))
		require.NotNil(t, r.StageDeadline())
		assert.Equal(t, later.Add(time.Hour), *r.StageDeadline())
	})
}

func TestPayments(t *testing.T) {
	now := builder.NewReservationBuilder().Now()

	toStage3 := func(t *testing.T, b *builder.ReservationBuilder) *reservation.Reservation {
		t.Helper()
		r, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.SubmitStayDetails("", now, time.Hour))
		require.NoError(t, r.AssignBookingCode("G100326-001", now, time.Hour))
		return r
	}

	t.Run("group deposit below half the total is rejected", func(t *testing.T) {
		r := toStage3(t, builder.NewReservationBuilder().WithChannel(reservation.ChannelGroup))

		err := r.ConfirmGroupPayment(r.Total()/2-1, now)
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "jumlah_dp")
	})

	t.Run("half deposit parks the booking at dp", func(t *testing.T) {
		r := toStage3(t, builder.NewReservationBuilder().WithChannel(reservation.ChannelGroup))

		require.NoError(t, r.ConfirmGroupPayment(r.Total()/2, now))
		assert.Equal(t, reservation.StatusDP, r.Status())
		assert.Equal(t, r.Total()/2, r.DepositDP())
	})

	t.Run("full deposit settles the booking outright", func(t *testing.T) {
		r := toStage3(t, builder.NewReservationBuilder().WithChannel(reservation.ChannelGroup))

		require.NoError(t, r.ConfirmGroupPayment(r.Total(), now))
		assert.Equal(t, reservation.StatusLunas, r.Status())
	})

	t.Run("payment kinds are channel-bound", func(t *testing.T) {
		group := toStage3(t, builder.NewReservationBuilder().WithChannel(reservation.ChannelGroup))
		err := group.ConfirmPersonalPayment("proofs/x.jpg", now)
		assert.ErrorIs(t, err, errs.ErrStateConflict)

		personal := toStage3(t, builder.NewReservationBuilder())
		err = personal.ConfirmGroupPayment(personal.Total(), now)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestCancel(t *testing.T) {
	const checkoutHour = 12

	t.Run("paid booking more than a week out is refundable", func(t *testing.T) {
		b := builder.NewReservationBuilder().
			WithStay(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC))
		r, err := b.BuildPaid()
		require.NoError(t, err)

		out, err := r.Cancel(b.Now(), checkoutHour)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusBatal, r.Status())
		assert.Contains(t, out.Message, "fully refundable")
	})

	t.Run("paid booking three days out forfeits the payment", func(t *testing.T) {
		b := builder.NewReservationBuilder().
			WithStay(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC))
		r, err := b.BuildPaid()
		require.NoError(t, err)

		out, err := r.Cancel(b.Now(), checkoutHour)
		require.NoError(t, err)
		assert.Contains(t, out.Message, "not refundable")
	})

	t.Run("pending drafts cancel without refund talk", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		out, err := r.Cancel(b.Now(), checkoutHour)
		require.NoError(t, err)
		assert.Contains(t, out.Message, "draft")
	})

	t.Run("in-house stays cannot be cancelled", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r, err := b.BuildPaid()
		require.NoError(t, err)
		require.NoError(t, r.CheckIn(b.Now()))

		_, err = r.Cancel(b.Now(), checkoutHour)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("cancellation closes after the checkout cutoff", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r, err := b.BuildPaid()
		require.NoError(t, err)

		afterStay := r.Stay().Departure().Add(13 * time.Hour)
		_, err = r.Cancel(afterStay, checkoutHour)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestStayLifecycle(t *testing.T) {
	b := builder.NewReservationBuilder()
	now := b.Now()

	t.Run("check-in requires a paid booking", func(t *testing.T) {
		r, err := b.BuildDomain()
		require.NoError(t, err)

		err = r.CheckIn(now)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("extension moves the departure and the total", func(t *testing.T) {
		r, err := b.BuildPaid()
		require.NoError(t, err)
		require.NoError(t, r.CheckIn(now))

		before := r.Stay().Departure()
		require.NoError(t, r.Extend(2, now))
		assert.Equal(t, before.AddDate(0, 0, 2), r.Stay().Departure())
		// 2 rooms × 500,000 × 5 nights
		assert.Equal(t, int64(5_000_000), r.Total())
	})

	t.Run("extension length is bounded", func(t *testing.T) {
		r, err := b.BuildPaid()
		require.NoError(t, err)
		require.NoError(t, r.CheckIn(now))

		var verr *errs.ValidationError
		require.ErrorAs(t, r.Extend(0, now), &verr)
		require.ErrorAs(t, r.Extend(8, now), &verr)
	})

	t.Run("check-out completes an in-house stay only", func(t *testing.T) {
		r, err := b.BuildPaid()
		require.NoError(t, err)

		err = r.Complete(now)
		assert.ErrorIs(t, err, errs.ErrStateConflict)

		require.NoError(t, r.CheckIn(now))
		require.NoError(t, r.Complete(now))
		assert.Equal(t, reservation.StatusSelesai, r.Status())
	})

	t.Run("room assignment targets one line", func(t *testing.T) {
		r, err := b.BuildPaid()
		require.NoError(t, err)

		line := r.Lines()[0]
		substitute := uuid.New()
		require.NoError(t, r.AssignRoom(line.ID, "204", &substitute))

		assigned := r.Lines()[0]
		require.NotNil(t, assigned.RoomNumber)
		assert.Equal(t, "204", *assigned.RoomNumber)
		assert.Equal(t, substitute, assigned.RoomTypeID)

		err = r.AssignRoom(uuid.New(), "205", nil)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
