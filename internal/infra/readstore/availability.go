package readstore

import (
	"context"
	"time"

	"stayops/internal/domain/inventory"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityReadStore serves the public room search; it reuses the command
// reads so the search and the booking command price identically.
type AvailabilityReadStore struct {
	db    db.DBTX
	reads *CommandReads
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx, reads: NewCommandReads(dbtx)}
}

func (r *AvailabilityReadStore) RoomTypes(ctx context.Context) ([]*shared.RoomTypeSnapshot, error) {
	const query = `
		SELECT rt.id, rt.name, rt.base_rate, rt.capacity,
		       (SELECT COUNT(*) FROM rooms rm WHERE rm.room_type_id = rt.id AND rm.status <> 'UNV')
		FROM room_types rt
		ORDER BY rt.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room types", err)
	}
	defer rows.Close()

	var result []*shared.RoomTypeSnapshot
	for rows.Next() {
		snap := shared.RoomTypeSnapshot{}
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.BaseRate, &snap.Capacity, &snap.TotalRooms); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type", err)
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room types", err)
	}
	return result, nil
}

func (r *AvailabilityReadStore) EffectiveRate(ctx context.Context, roomTypeID uuid.UUID, arrival time.Time) (int64, error) {
	return r.reads.EffectiveRate(ctx, roomTypeID, arrival)
}

func (r *AvailabilityReadStore) ActiveStays(ctx context.Context, roomTypeID uuid.UUID, arrival, departure time.Time) ([]inventory.Stay, error) {
	return r.reads.ActiveStays(ctx, roomTypeID, arrival, departure)
}
