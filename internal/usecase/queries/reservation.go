package queries

import (
	"context"
	"time"

	"stayops/internal/domain/user"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID      `json:"id"`
	BookingCode    *string        `json:"kode_booking,omitempty"`
	Channel        string         `json:"channel"`
	Status         string         `json:"status"`
	CustomerID     uuid.UUID      `json:"id_customer"`
	CustomerName   string         `json:"nama_customer"`
	Arrival        time.Time      `json:"arrival_date"`
	Departure      time.Time      `json:"departure_date"`
	Nights         int            `json:"jumlah_malam"`
	Adults         int            `json:"jumlah_dewasa"`
	Children       int            `json:"jumlah_anak"`
	SpecialRequest *string        `json:"permintaan_khusus,omitempty"`
	Total          int64          `json:"total"`
	DepositDP      int64          `json:"jumlah_dp"`
	StageDeadline  *time.Time     `json:"deadline,omitempty"`
	Rooms          []RoomLineView `json:"kamar"`
	Services       []ServiceView  `json:"layanan,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type RoomLineView struct {
	ID           uuid.UUID `json:"id"`
	RoomTypeID   uuid.UUID `json:"id_jenis_kamar"`
	RoomTypeName string    `json:"jenis_kamar"`
	RoomNumber   *string   `json:"nomor_kamar,omitempty"`
	NightlyRate  int64     `json:"harga_per_malam"`
}

type ServiceView struct {
	FacilityID uuid.UUID `json:"id_fasilitas"`
	Name       string    `json:"nama"`
	Quantity   int       `json:"jumlah"`
	UnitPrice  int64     `json:"harga_satuan"`
	Subtotal   int64     `json:"subtotal"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	BookingCode *string   `json:"kode_booking,omitempty"`
	Channel     string    `json:"channel"`
	Status      string    `json:"status"`
	Arrival     time.Time `json:"arrival_date"`
	Departure   time.Time `json:"departure_date"`
	RoomCount   int       `json:"jumlah_kamar"`
	Total       int64     `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error)
	// ListArrivals is the front-office worklist: paid bookings due to arrive
	// on the given date.
	ListArrivals(ctx context.Context, date time.Time) ([]*ReservationListItem, error)
	// ListInHouse lists reservations currently checked in.
	ListInHouse(ctx context.Context) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error)
	FindArrivals(ctx context.Context, date time.Time) ([]*ReservationListItem, error)
	FindInHouse(ctx context.Context) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Customers only ever see their own bookings; leak nothing about others.
	if !actor.IsStaff() && view.CustomerID != actor.ID {
		return nil, errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error) {
	return q.repo.FindByCustomer(ctx, customerID)
}

func (q *reservationQueriesImpl) ListArrivals(ctx context.Context, date time.Time) ([]*ReservationListItem, error) {
	return q.repo.FindArrivals(ctx, date)
}

func (q *reservationQueriesImpl) ListInHouse(ctx context.Context) ([]*ReservationListItem, error) {
	return q.repo.FindInHouse(ctx)
}
