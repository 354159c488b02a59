package queries

import (
	"context"
	"sort"
	"strconv"
	"time"

	"stayops/internal/domain/inventory"
	"stayops/internal/domain/pricing"
	"stayops/internal/domain/reservation"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

type Remark struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type RoomTypeQuote struct {
	RoomTypeID     uuid.UUID `json:"id_jenis_kamar"`
	Name           string    `json:"nama"`
	Capacity       int       `json:"kapasitas"`
	TotalRooms     int       `json:"jumlah_kamar"`
	AvailableRooms int       `json:"kamar_tersedia"`
	NightlyRate    int64     `json:"harga"`
	ReferenceRate  int64     `json:"harga_sebelum_diskon"`
	Remarks        []Remark  `json:"remarks,omitempty"`
}

type AvailabilitySearch struct {
	Channel   reservation.Channel
	Arrival   time.Time
	Departure time.Time
	Rooms     int
	Adults    int
	Children  int
}

type AvailabilityQueries interface {
	Search(ctx context.Context, req AvailabilitySearch) ([]*RoomTypeQuote, error)
}

// AvailabilityReads is the read surface the quote flow needs; the booking
// command reuses the same computation inside its serializable transaction
// through shared.CommandReads.
type AvailabilityReads interface {
	RoomTypes(ctx context.Context) ([]*shared.RoomTypeSnapshot, error)
	EffectiveRate(ctx context.Context, roomTypeID uuid.UUID, arrival time.Time) (int64, error)
	ActiveStays(ctx context.Context, roomTypeID uuid.UUID, arrival, departure time.Time) ([]inventory.Stay, error)
}

type availabilityQueriesImpl struct {
	reads AvailabilityReads
	clock clock.Clock
}

func NewAvailabilityQueries(reads AvailabilityReads, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: reads, clock: clock}
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, req AvailabilitySearch) ([]*RoomTypeQuote, error) {
	now := q.clock.Now()

	stay, err := reservation.NewStayRange(req.Arrival, req.Departure, now)
	if err != nil {
		return nil, err
	}
	if err := validateSearch(req, stay); err != nil {
		return nil, err
	}

	roomTypes, err := q.reads.RoomTypes(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]*RoomTypeQuote, 0, len(roomTypes))
	for _, rt := range roomTypes {
		quote, err := q.quoteRoomType(ctx, rt, req, stay, now)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	// Sold-out types sink to the bottom; everything else keeps its order.
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].AvailableRooms > 0 && quotes[j].AvailableRooms <= 0
	})

	return quotes, nil
}

func (q *availabilityQueriesImpl) quoteRoomType(
	ctx context.Context,
	rt *shared.RoomTypeSnapshot,
	req AvailabilitySearch,
	stay reservation.StayRange,
	now time.Time,
) (*RoomTypeQuote, error) {
	stays, err := q.reads.ActiveStays(ctx, rt.ID, stay.Arrival(), stay.Departure())
	if err != nil {
		return nil, err
	}

	snap, err := inventory.Build(rt.TotalRooms, stays, stay.Arrival(), stay.Departure(), 0)
	if err != nil {
		return nil, err
	}

	baseRate, err := q.reads.EffectiveRate(ctx, rt.ID, stay.Arrival())
	if err != nil {
		return nil, err
	}

	price := pricing.Compute(pricing.Input{
		BaseRate:       baseRate,
		Now:            now,
		Arrival:        stay.Arrival(),
		Departure:      stay.Departure(),
		AvailableRooms: snap.AvailableRooms,
		TotalRooms:     snap.TotalRooms,
		RequestedRooms: req.Rooms,
	})

	quote := &RoomTypeQuote{
		RoomTypeID:     rt.ID,
		Name:           rt.Name,
		Capacity:       rt.Capacity,
		TotalRooms:     snap.TotalRooms,
		AvailableRooms: snap.AvailableRooms,
		NightlyRate:    price.Nightly,
		ReferenceRate:  price.Reference,
	}
	quote.Remarks = buildRemarks(snap, rt.Capacity, req)
	return quote, nil
}

func buildRemarks(snap inventory.Snapshot, capacity int, req AvailabilitySearch) []Remark {
	var remarks []Remark

	if snap.AvailableRooms <= 0 {
		remarks = append(remarks, Remark{Severity: SeverityError, Message: "no rooms available"})
	} else if snap.AvailableRooms < req.Rooms {
		remarks = append(remarks, Remark{
			Severity: SeverityWarning,
			Message:  "only " + strconv.Itoa(snap.AvailableRooms) + " available",
		})
	}

	if req.Rooms*capacity < req.Adults+req.Children {
		remarks = append(remarks, Remark{
			Severity: SeverityWarning,
			Message:  "capacity may be insufficient for guest count",
		})
	}

	return remarks
}

func validateSearch(req AvailabilitySearch, stay reservation.StayRange) error {
	if req.Rooms < 1 {
		return errs.FieldError("jumlah_kamar", "at least one room is required")
	}
	if err := (reservation.GuestCount{Adults: req.Adults, Children: req.Children}).Validate(); err != nil {
		return err
	}
	if req.Rooms > req.Channel.MaxRooms() {
		return errs.FieldError("jumlah_kamar",
			"at most "+strconv.Itoa(req.Channel.MaxRooms())+" rooms per booking")
	}
	if stay.Nights() > req.Channel.MaxNights() {
		return errs.FieldError("departure_date",
			"at most "+strconv.Itoa(req.Channel.MaxNights())+" nights per booking")
	}
	return nil
}
