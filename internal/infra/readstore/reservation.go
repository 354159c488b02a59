package readstore

import (
	"context"
	"time"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationListQuery = `
	SELECT res.id, res.booking_code, res.channel, res.status,
	       res.arrival_date, res.departure_date,
	       (SELECT COUNT(*) FROM reservation_rooms rr WHERE rr.reservation_id = res.id),
	       res.total, res.created_at
	FROM reservations res`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT res.id, res.booking_code, res.channel, res.status,
		       res.customer_id, u.name,
		       res.arrival_date, res.departure_date,
		       res.adults, res.children, res.special_request,
		       res.total, res.deposit_dp, res.stage_deadline,
		       res.created_at, res.updated_at
		FROM reservations res
		JOIN users u ON u.id = res.customer_id
		WHERE res.id = $1`

	view := queries.ReservationView{}
	var bookingCode, specialRequest pgtype.Text
	var deadline pgtype.Timestamptz
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &bookingCode, &view.Channel, &view.Status,
		&view.CustomerID, &view.CustomerName,
		&view.Arrival, &view.Departure,
		&view.Adults, &view.Children, &specialRequest,
		&view.Total, &view.DepositDP, &deadline,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}
	view.BookingCode = pgconv.StringPtrFromPgtype(bookingCode)
	view.StageDeadline = pgconv.TimePtrFromPgtype(deadline)
	if specialRequest.Valid && specialRequest.String != "" {
		view.SpecialRequest = &specialRequest.String
	}
	view.Nights = int(view.Departure.Sub(view.Arrival).Hours() / 24)

	if err := r.loadRooms(ctx, &view); err != nil {
		return nil, err
	}
	if err := r.loadServices(ctx, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *ReservationReadStore) loadRooms(ctx context.Context, view *queries.ReservationView) error {
	const query = `
		SELECT rr.id, rr.room_type_id, rt.name, rr.room_number, rr.nightly_rate
		FROM reservation_rooms rr
		JOIN room_types rt ON rt.id = rr.room_type_id
		WHERE rr.reservation_id = $1
		ORDER BY rr.id`

	rows, err := r.db.Query(ctx, query, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to find reservation rooms", err)
	}
	defer rows.Close()

	for rows.Next() {
		line := queries.RoomLineView{}
		var number pgtype.Text
		if err := rows.Scan(&line.ID, &line.RoomTypeID, &line.RoomTypeName, &number, &line.NightlyRate); err != nil {
			return infra.WrapRepoErr("failed to scan reservation room", err)
		}
		line.RoomNumber = pgconv.StringPtrFromPgtype(number)
		view.Rooms = append(view.Rooms, line)
	}
	return rows.Err()
}

func (r *ReservationReadStore) loadServices(ctx context.Context, view *queries.ReservationView) error {
	const query = `
		SELECT rf.facility_id, f.name, rf.quantity, rf.unit_price
		FROM reservation_facilities rf
		JOIN facilities f ON f.id = rf.facility_id
		WHERE rf.reservation_id = $1
		ORDER BY rf.id`

	rows, err := r.db.Query(ctx, query, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to find reservation services", err)
	}
	defer rows.Close()

	for rows.Next() {
		sv := queries.ServiceView{}
		if err := rows.Scan(&sv.FacilityID, &sv.Name, &sv.Quantity, &sv.UnitPrice); err != nil {
			return infra.WrapRepoErr("failed to scan reservation service", err)
		}
		sv.Subtotal = int64(sv.Quantity) * sv.UnitPrice
		view.Services = append(view.Services, sv)
	}
	return rows.Err()
}

func (r *ReservationReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.ReservationListItem, error) {
	query := reservationListQuery + `
	WHERE res.customer_id = $1
	ORDER BY res.created_at DESC`
	return r.list(ctx, query, customerID)
}

func (r *ReservationReadStore) FindArrivals(ctx context.Context, date time.Time) ([]*queries.ReservationListItem, error) {
	query := reservationListQuery + `
	WHERE res.status IN ('dp','lunas')
	  AND res.arrival_date = $1::date
	ORDER BY res.booking_code`
	return r.list(ctx, query, date)
}

func (r *ReservationReadStore) FindInHouse(ctx context.Context) ([]*queries.ReservationListItem, error) {
	query := reservationListQuery + `
	WHERE res.status = 'checkin'
	ORDER BY res.departure_date`
	return r.list(ctx, query)
}

func (r *ReservationReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		item := queries.ReservationListItem{}
		var bookingCode pgtype.Text
		if err := rows.Scan(&item.ID, &bookingCode, &item.Channel, &item.Status,
			&item.Arrival, &item.Departure, &item.RoomCount, &item.Total, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		item.BookingCode = pgconv.StringPtrFromPgtype(bookingCode)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}
