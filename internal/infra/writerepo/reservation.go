package writerepo

import (
	"context"
	"time"

	"stayops/internal/domain/reservation"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const insertReservation = `
		INSERT INTO reservations (
			id, channel, customer_id, staff_id, booking_code,
			arrival_date, departure_date, adults, children,
			special_request, status, stage_deadline, total, deposit_dp,
			payment_proof_ref, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`

	_, err := r.db.Exec(ctx, insertReservation,
		res.ID(),
		string(res.Channel()),
		res.CustomerID(),
		pgconv.UUIDPtrToPgtype(res.StaffID()),
		pgconv.StringPtrToPgtype(res.BookingCode()),
		res.Stay().Arrival(),
		res.Stay().Departure(),
		res.Guests().Adults,
		res.Guests().Children,
		res.SpecialRequest(),
		string(res.Status()),
		pgconv.TimePtrToPgtype(res.StageDeadline()),
		res.Total(),
		res.DepositDP(),
		pgconv.StringPtrToPgtype(res.PaymentProofRef()),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}

	const insertLine = `
		INSERT INTO reservation_rooms (id, reservation_id, room_type_id, room_number, nightly_rate)
		VALUES ($1,$2,$3,$4,$5)`
	for _, l := range res.Lines() {
		_, err := r.db.Exec(ctx, insertLine,
			l.ID, res.ID(), l.RoomTypeID, pgconv.StringPtrToPgtype(l.RoomNumber), l.Nightly)
		if err != nil {
			return infra.WrapRepoErr("failed to insert reservation room line", err)
		}
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const updateReservation = `
		UPDATE reservations SET
			booking_code = $2,
			arrival_date = $3,
			departure_date = $4,
			special_request = $5,
			status = $6,
			stage_deadline = $7,
			total = $8,
			deposit_dp = $9,
			payment_proof_ref = $10,
			updated_at = $11
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, updateReservation,
		res.ID(),
		pgconv.StringPtrToPgtype(res.BookingCode()),
		res.Stay().Arrival(),
		res.Stay().Departure(),
		res.SpecialRequest(),
		string(res.Status()),
		pgconv.TimePtrToPgtype(res.StageDeadline()),
		res.Total(),
		res.DepositDP(),
		pgconv.StringPtrToPgtype(res.PaymentProofRef()),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	const updateLine = `
		UPDATE reservation_rooms SET room_type_id = $2, room_number = $3
		WHERE id = $1`
	for _, l := range res.Lines() {
		if _, err := r.db.Exec(ctx, updateLine,
			l.ID, l.RoomTypeID, pgconv.StringPtrToPgtype(l.RoomNumber)); err != nil {
			return infra.WrapRepoErr("failed to update reservation room line", err)
		}
	}
	return nil
}

// FindByID locks the row so concurrent stage transitions on one reservation
// serialize instead of both passing the optimistic state check.
func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, channel, customer_id, staff_id, booking_code,
		       arrival_date, departure_date, adults, children,
		       special_request, status, stage_deadline, total, deposit_dp,
		       payment_proof_ref, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	row := reservationRow{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Channel, &row.CustomerID, &row.StaffID, &row.BookingCode,
		&row.Arrival, &row.Departure, &row.Adults, &row.Children,
		&row.SpecialRequest, &row.Status, &row.StageDeadline, &row.Total, &row.DepositDP,
		&row.PaymentProofRef, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return row.toDomain(lines), nil
}

func (r *ReservationRepository) findLines(ctx context.Context, reservationID uuid.UUID) ([]reservation.RoomLine, error) {
	const query = `
		SELECT id, room_type_id, room_number, nightly_rate
		FROM reservation_rooms
		WHERE reservation_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation room lines", err)
	}
	defer rows.Close()

	var lines []reservation.RoomLine
	for rows.Next() {
		var l reservation.RoomLine
		var number pgtype.Text
		if err := rows.Scan(&l.ID, &l.RoomTypeID, &number, &l.Nightly); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation room line", err)
		}
		l.RoomNumber = pgconv.StringPtrFromPgtype(number)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation room lines", err)
	}
	return lines, nil
}

func (r *ReservationRepository) LastBookingCode(ctx context.Context, dailyPrefix string) (string, error) {
	const query = `
		SELECT booking_code FROM reservations
		WHERE booking_code LIKE $1 || '%'
		ORDER BY booking_code DESC
		LIMIT 1`

	var code string
	err := r.db.QueryRow(ctx, query, dailyPrefix).Scan(&code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to find last booking code", err)
	}
	return code, nil
}

func (r *ReservationRepository) ExpireOverduePending(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	const query = `
		UPDATE reservations
		SET status = 'expired', stage_deadline = NULL, updated_at = $1
		WHERE status IN ('pending-1','pending-2','pending-3')
		  AND stage_deadline < $1
		RETURNING id`

	return r.collectIDs(ctx, query, now)
}

func (r *ReservationRepository) CancelNoShows(ctx context.Context, now time.Time, checkoutHour int) ([]uuid.UUID, error) {
	const query = `
		UPDATE reservations res
		SET status = 'batal', updated_at = $1
		WHERE res.status IN ('dp','lunas')
		  AND res.departure_date + make_interval(hours => $2) < $1
		  AND NOT EXISTS (
			SELECT 1 FROM check_in_records cir WHERE cir.reservation_id = res.id
		  )
		RETURNING res.id`

	return r.collectIDs(ctx, query, now, checkoutHour)
}

func (r *ReservationRepository) collectIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to run reservation sweep", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan swept reservation id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate swept reservations", err)
	}
	return ids, nil
}
