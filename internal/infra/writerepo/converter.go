package writerepo

import (
	"time"

	"stayops/internal/domain/reservation"
	"stayops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type reservationRow struct {
	ID              uuid.UUID
	Channel         string
	CustomerID      uuid.UUID
	StaffID         pgtype.UUID
	BookingCode     pgtype.Text
	Arrival         time.Time
	Departure       time.Time
	Adults          int
	Children        int
	SpecialRequest  string
	Status          string
	StageDeadline   pgtype.Timestamptz
	Total           int64
	DepositDP       int64
	PaymentProofRef pgtype.Text
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (row reservationRow) toDomain(lines []reservation.RoomLine) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		reservation.Channel(row.Channel),
		row.CustomerID,
		pgconv.UUIDPtrFromPgtype(row.StaffID),
		pgconv.StringPtrFromPgtype(row.BookingCode),
		reservation.ReconstructStayRange(row.Arrival, row.Departure),
		reservation.GuestCount{Adults: row.Adults, Children: row.Children},
		row.SpecialRequest,
		reservation.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.StageDeadline),
		row.Total,
		row.DepositDP,
		pgconv.StringPtrFromPgtype(row.PaymentProofRef),
		lines,
		row.CreatedAt,
		row.UpdatedAt,
	)
}
