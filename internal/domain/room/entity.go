package room

import "github.com/google/uuid"

// RoomType is immutable reference data; mutated only by administrative
// tooling outside this service.
type RoomType struct {
	ID       uuid.UUID
	Name     string
	BaseRate int64 // nightly, in rupiah
	Capacity int   // guests per room
}

type Room struct {
	Number     string
	RoomTypeID uuid.UUID
	Floor      int
	BedType    string
	Smoking    bool
}

// OccupancyStatus is the front-office board state of a physical room.
type OccupancyStatus string

const (
	StatusAvailable     OccupancyStatus = "TSD" // tersedia
	StatusOccupied      OccupancyStatus = "TRS" // terisi
	StatusCheckOutToday OccupancyStatus = "COT"
	StatusUnavailable   OccupancyStatus = "UNV" // maintenance
)

func (s OccupancyStatus) Assignable() bool {
	return s == StatusAvailable
}
