package readstore

import (
	"context"
	"time"

	"stayops/internal/domain/inventory"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads backs validation reads for the write side. Constructed over a
// pool for standalone reads or over a transaction to share its isolation.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) RoomTypeByID(ctx context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	const query = `
		SELECT rt.id, rt.name, rt.base_rate, rt.capacity,
		       (SELECT COUNT(*) FROM rooms rm WHERE rm.room_type_id = rt.id AND rm.status <> 'UNV')
		FROM room_types rt
		WHERE rt.id = $1`

	snap := shared.RoomTypeSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.BaseRate, &snap.Capacity, &snap.TotalRooms)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return &snap, nil
}

// EffectiveRate resolves the nightly base rate for an arrival date: a
// seasonal tariff covering the date wins over the room type's base rate.
func (r *CommandReads) EffectiveRate(ctx context.Context, roomTypeID uuid.UUID, arrival time.Time) (int64, error) {
	const query = `
		SELECT COALESCE(
			(SELECT st.rate
			 FROM season_tariffs st
			 JOIN seasons s ON s.id = st.season_id
			 WHERE st.room_type_id = $1
			   AND s.start_date <= $2 AND s.end_date >= $2
			 ORDER BY s.start_date DESC
			 LIMIT 1),
			(SELECT rt.base_rate FROM room_types rt WHERE rt.id = $1)
		)`

	var rate *int64
	if err := r.db.QueryRow(ctx, query, roomTypeID, arrival).Scan(&rate); err != nil {
		return 0, infra.WrapRepoErr("failed to resolve effective rate", err)
	}
	if rate == nil {
		return 0, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return *rate, nil
}

func (r *CommandReads) ActiveStays(ctx context.Context, roomTypeID uuid.UUID, arrival, departure time.Time) ([]inventory.Stay, error) {
	const query = `
		SELECT res.arrival_date, res.departure_date, COUNT(*)
		FROM reservation_rooms rr
		JOIN reservations res ON res.id = rr.reservation_id
		WHERE rr.room_type_id = $1
		  AND res.status NOT IN ('batal','expired','selesai')
		  AND res.arrival_date < $3
		  AND res.departure_date > $2
		GROUP BY res.id, res.arrival_date, res.departure_date`

	rows, err := r.db.Query(ctx, query, roomTypeID, arrival, departure)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active stays", err)
	}
	defer rows.Close()

	var stays []inventory.Stay
	for rows.Next() {
		var s inventory.Stay
		if err := rows.Scan(&s.Arrival, &s.Departure, &s.Rooms); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active stay", err)
		}
		stays = append(stays, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active stays", err)
	}
	return stays, nil
}

func (r *CommandReads) FacilityByID(ctx context.Context, id uuid.UUID) (*shared.FacilitySnapshot, error) {
	const query = `SELECT id, name, price FROM facilities WHERE id = $1`

	snap := shared.FacilitySnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find facility", err)
	}
	return &snap, nil
}

func (r *CommandReads) ServiceTotal(ctx context.Context, reservationID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(quantity * unit_price), 0)
		FROM reservation_facilities
		WHERE reservation_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, query, reservationID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum service lines", err)
	}
	return total, nil
}
