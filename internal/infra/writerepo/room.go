package writerepo

import (
	"context"
	"time"

	"stayops/internal/domain/room"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

// AssignableRooms returns rooms of the type that are on-board assignable and
// not bound to another active reservation overlapping the range.
func (r *RoomRepository) AssignableRooms(ctx context.Context, roomTypeID uuid.UUID, arrival, departure time.Time) ([]room.Room, error) {
	const query = `
		SELECT rm.number, rm.room_type_id, rm.floor, rm.bed_type, rm.smoking
		FROM rooms rm
		WHERE rm.room_type_id = $1
		  AND rm.status = 'TSD'
		  AND NOT EXISTS (
			SELECT 1
			FROM reservation_rooms rr
			JOIN reservations res ON res.id = rr.reservation_id
			WHERE rr.room_number = rm.number
			  AND res.status NOT IN ('batal','expired','selesai')
			  AND res.arrival_date < $3
			  AND res.departure_date > $2
		  )
		ORDER BY rm.number`

	rows, err := r.db.Query(ctx, query, roomTypeID, arrival, departure)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find assignable rooms", err)
	}
	defer rows.Close()

	var result []room.Room
	for rows.Next() {
		var rm room.Room
		if err := rows.Scan(&rm.Number, &rm.RoomTypeID, &rm.Floor, &rm.BedType, &rm.Smoking); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return result, nil
}

func (r *RoomRepository) SetOccupancyStatus(ctx context.Context, number string, status room.OccupancyStatus) error {
	const query = `UPDATE rooms SET status = $2 WHERE number = $1`

	tag, err := r.db.Exec(ctx, query, number, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
