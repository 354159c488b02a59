package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoomBoardEntry is one row of the front-office room board: every physical
// room with its occupancy status and, when occupied, the in-house booking.
type RoomBoardEntry struct {
	Number       string     `json:"nomor_kamar"`
	Floor        int        `json:"lantai"`
	RoomTypeID   uuid.UUID  `json:"id_jenis_kamar"`
	RoomTypeName string     `json:"jenis_kamar"`
	BedType      string     `json:"tipe_bed"`
	Smoking      bool       `json:"smoking"`
	Status       string     `json:"status"`
	BookingCode  *string    `json:"kode_booking,omitempty"`
	Departure    *time.Time `json:"departure_date,omitempty"`
}

type RoomBoardQueries interface {
	Board(ctx context.Context) ([]*RoomBoardEntry, error)
}

type RoomBoardRepo interface {
	FindBoard(ctx context.Context) ([]*RoomBoardEntry, error)
}

type roomBoardQueriesImpl struct {
	repo RoomBoardRepo
}

func NewRoomBoardQueries(repo RoomBoardRepo) RoomBoardQueries {
	return &roomBoardQueriesImpl{repo: repo}
}

func (q *roomBoardQueriesImpl) Board(ctx context.Context) ([]*RoomBoardEntry, error) {
	return q.repo.FindBoard(ctx)
}
