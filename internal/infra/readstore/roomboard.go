package readstore

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBoardReadStore struct {
	db db.DBTX
}

func NewRoomBoardReadStore(dbtx db.DBTX) *RoomBoardReadStore {
	return &RoomBoardReadStore{db: dbtx}
}

func (r *RoomBoardReadStore) FindBoard(ctx context.Context) ([]*queries.RoomBoardEntry, error) {
	const query = `
		SELECT rm.number, rm.floor, rt.id, rt.name, rm.bed_type, rm.smoking, rm.status,
		       res.booking_code, res.departure_date
		FROM rooms rm
		JOIN room_types rt ON rt.id = rm.room_type_id
		LEFT JOIN reservation_rooms rr
		  ON rr.room_number = rm.number
		 AND rr.reservation_id = (
			SELECT res2.id FROM reservations res2
			JOIN reservation_rooms rr2 ON rr2.reservation_id = res2.id
			WHERE rr2.room_number = rm.number AND res2.status = 'checkin'
			LIMIT 1
		 )
		LEFT JOIN reservations res ON res.id = rr.reservation_id
		ORDER BY rm.number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room board", err)
	}
	defer rows.Close()

	var result []*queries.RoomBoardEntry
	for rows.Next() {
		entry := queries.RoomBoardEntry{}
		var code pgtype.Text
		var departure pgtype.Date
		if err := rows.Scan(&entry.Number, &entry.Floor, &entry.RoomTypeID, &entry.RoomTypeName,
			&entry.BedType, &entry.Smoking, &entry.Status, &code, &departure); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room board entry", err)
		}
		entry.BookingCode = pgconv.StringPtrFromPgtype(code)
		if departure.Valid {
			entry.Departure = &departure.Time
		}
		result = append(result, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room board", err)
	}
	return result, nil
}
