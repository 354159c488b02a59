package writerepo

import (
	"context"
	"time"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StayRepository struct {
	db db.DBTX
}

func NewStayRepository(dbtx db.DBTX) *StayRepository {
	return &StayRepository{db: dbtx}
}

func (r *StayRepository) CreateCheckIn(ctx context.Context, rec *shared.CheckInRecord) error {
	const query = `
		INSERT INTO check_in_records (id, reservation_id, deposit, identity_image_ref, checked_in_at, checked_out_at)
		VALUES ($1,$2,$3,$4,$5,$6)`

	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.ReservationID, rec.Deposit, rec.IdentityImageRef,
		rec.CheckedInAt, pgconv.TimePtrToPgtype(rec.CheckedOutAt))
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("reservation is already checked in", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert check-in record", err)
	}
	return nil
}

func (r *StayRepository) FindCheckIn(ctx context.Context, reservationID uuid.UUID) (*shared.CheckInRecord, error) {
	const query = `
		SELECT id, reservation_id, deposit, identity_image_ref, checked_in_at, checked_out_at
		FROM check_in_records
		WHERE reservation_id = $1`

	rec := shared.CheckInRecord{}
	var checkedOut pgtype.Timestamptz
	err := r.db.QueryRow(ctx, query, reservationID).Scan(
		&rec.ID, &rec.ReservationID, &rec.Deposit, &rec.IdentityImageRef,
		&rec.CheckedInAt, &checkedOut)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("check-in record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find check-in record", err)
	}
	rec.CheckedOutAt = pgconv.TimePtrFromPgtype(checkedOut)
	return &rec, nil
}

func (r *StayRepository) CloseCheckIn(ctx context.Context, reservationID uuid.UUID, at time.Time) error {
	const query = `
		UPDATE check_in_records SET checked_out_at = $2
		WHERE reservation_id = $1 AND checked_out_at IS NULL`

	tag, err := r.db.Exec(ctx, query, reservationID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to close check-in record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("open check-in record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StayRepository) AddServices(ctx context.Context, reservationID uuid.UUID, lines []shared.ServiceLine) error {
	const query = `
		INSERT INTO reservation_facilities (id, reservation_id, facility_id, quantity, unit_price)
		VALUES ($1,$2,$3,$4,$5)`

	for _, l := range lines {
		_, err := r.db.Exec(ctx, query, uuid.New(), reservationID, l.FacilityID, l.Quantity, l.UnitPrice)
		if err != nil {
			return infra.WrapRepoErr("failed to insert service line", err)
		}
	}
	return nil
}
