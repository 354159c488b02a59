// Package fake provides in-memory ports for command unit tests. Every
// repository keeps its writes visible so tests assert on persisted state, and
// transaction rollback is simulated by snapshotting stores around each Within.
package fake

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"stayops/internal/domain/inventory"
	"stayops/internal/domain/reservation"
	"stayops/internal/domain/room"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type UoW struct {
	ReservationRepo *ReservationRepo
	StayRepo        *StayRepo
	InvoiceRepo     *InvoiceRepo
	RoomRepo        *RoomRepo
	ReadStore       *Reads

	// ForcedErr aborts any transaction before the callback runs.
	ForcedErr error
}

func NewUoW() *UoW {
	return &UoW{
		ReservationRepo: NewReservationRepo(),
		StayRepo:        NewStayRepo(),
		InvoiceRepo:     NewInvoiceRepo(),
		RoomRepo:        NewRoomRepo(),
		ReadStore:       NewReads(),
	}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runTx(ctx, fn)
}

func (u *UoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runTx(ctx, fn)
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	if u.ForcedErr != nil {
		return u.ForcedErr
	}
	return fn(ctx, nil)
}

func (u *UoW) Reads() shared.CommandReads {
	return u.ReadStore
}

func (u *UoW) runTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.ForcedErr != nil {
		return u.ForcedErr
	}

	resSnap := u.ReservationRepo.snapshot()
	staySnap := u.StayRepo.snapshot()
	invSnap := u.InvoiceRepo.snapshot()
	roomSnap := u.RoomRepo.snapshot()

	if err := fn(ctx, &fakeTx{uow: u}); err != nil {
		u.ReservationRepo.restore(resSnap)
		u.StayRepo.restore(staySnap)
		u.InvoiceRepo.restore(invSnap)
		u.RoomRepo.restore(roomSnap)
		return err
	}
	return nil
}

type fakeTx struct {
	uow *UoW
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return t.uow.ReservationRepo }
func (t *fakeTx) Stays() shared.StayRepository               { return t.uow.StayRepo }
func (t *fakeTx) Invoices() shared.InvoiceRepository         { return t.uow.InvoiceRepo }
func (t *fakeTx) Rooms() shared.RoomRepository               { return t.uow.RoomRepo }
func (t *fakeTx) Reads() shared.CommandReads                 { return t.uow.ReadStore }
func (t *fakeTx) DB() db.DBTX                                { return nil }

// ---------------------------------------------------------------------------
// Reservations

type ReservationRepo struct {
	Store map[uuid.UUID]*reservation.Reservation

	CreateErr error
	UpdateErr error

	// Sweep results are preset; the fake records the arguments it saw.
	ExpiredIDs      []uuid.UUID
	NoShowIDs       []uuid.UUID
	SweepNow        time.Time
	SweepCheckoutHr int
}

func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{Store: make(map[uuid.UUID]*reservation.Reservation)}
}

func (r *ReservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.Store[res.ID()] = res
	return nil
}

func (r *ReservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	if _, ok := r.Store[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.Store[res.ID()] = res
	return nil
}

func (r *ReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.Store[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r *ReservationRepo) LastBookingCode(_ context.Context, dailyPrefix string) (string, error) {
	var codes []string
	for _, res := range r.Store {
		if c := res.BookingCode(); c != nil && strings.HasPrefix(*c, dailyPrefix) {
			codes = append(codes, *c)
		}
	}
	if len(codes) == 0 {
		return "", nil
	}
	sort.Strings(codes)
	return codes[len(codes)-1], nil
}

func (r *ReservationRepo) ExpireOverduePending(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	r.SweepNow = now
	return r.ExpiredIDs, nil
}

func (r *ReservationRepo) CancelNoShows(_ context.Context, now time.Time, checkoutHour int) ([]uuid.UUID, error) {
	r.SweepNow = now
	r.SweepCheckoutHr = checkoutHour
	return r.NoShowIDs, nil
}

func (r *ReservationRepo) snapshot() map[uuid.UUID]*reservation.Reservation {
	snap := make(map[uuid.UUID]*reservation.Reservation, len(r.Store))
	for k, v := range r.Store {
		snap[k] = v
	}
	return snap
}

func (r *ReservationRepo) restore(snap map[uuid.UUID]*reservation.Reservation) {
	r.Store = snap
}

// ---------------------------------------------------------------------------
// Stays

type StayRepo struct {
	Records  map[uuid.UUID]*shared.CheckInRecord // keyed by reservation ID
	Services map[uuid.UUID][]shared.ServiceLine
}

func NewStayRepo() *StayRepo {
	return &StayRepo{
		Records:  make(map[uuid.UUID]*shared.CheckInRecord),
		Services: make(map[uuid.UUID][]shared.ServiceLine),
	}
}

func (s *StayRepo) CreateCheckIn(_ context.Context, rec *shared.CheckInRecord) error {
	if _, ok := s.Records[rec.ReservationID]; ok {
		return infra.WrapRepoErr("reservation is already checked in", nil, infra.KindDuplicateKey)
	}
	s.Records[rec.ReservationID] = rec
	return nil
}

func (s *StayRepo) FindCheckIn(_ context.Context, reservationID uuid.UUID) (*shared.CheckInRecord, error) {
	rec, ok := s.Records[reservationID]
	if !ok {
		return nil, infra.WrapRepoErr("check-in record not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func (s *StayRepo) CloseCheckIn(_ context.Context, reservationID uuid.UUID, at time.Time) error {
	rec, ok := s.Records[reservationID]
	if !ok || rec.CheckedOutAt != nil {
		return infra.WrapRepoErr("open check-in record not found", nil, infra.KindNotFound)
	}
	rec.CheckedOutAt = &at
	return nil
}

func (s *StayRepo) AddServices(_ context.Context, reservationID uuid.UUID, lines []shared.ServiceLine) error {
	s.Services[reservationID] = append(s.Services[reservationID], lines...)
	return nil
}

func (s *StayRepo) snapshot() map[uuid.UUID]*shared.CheckInRecord {
	snap := make(map[uuid.UUID]*shared.CheckInRecord, len(s.Records))
	for k, v := range s.Records {
		copied := *v
		snap[k] = &copied
	}
	return snap
}

func (s *StayRepo) restore(snap map[uuid.UUID]*shared.CheckInRecord) {
	s.Records = snap
}

// ---------------------------------------------------------------------------
// Invoices

type InvoiceRepo struct {
	Store   map[uuid.UUID]*shared.Invoice
	LastNum string
}

func NewInvoiceRepo() *InvoiceRepo {
	return &InvoiceRepo{Store: make(map[uuid.UUID]*shared.Invoice)}
}

func (r *InvoiceRepo) Create(_ context.Context, inv *shared.Invoice) error {
	r.Store[inv.ID] = inv
	return nil
}

func (r *InvoiceRepo) LastNumber(_ context.Context, dailyPrefix string) (string, error) {
	if strings.HasPrefix(r.LastNum, dailyPrefix) {
		return r.LastNum, nil
	}
	return "", nil
}

func (r *InvoiceRepo) snapshot() map[uuid.UUID]*shared.Invoice {
	snap := make(map[uuid.UUID]*shared.Invoice, len(r.Store))
	for k, v := range r.Store {
		snap[k] = v
	}
	return snap
}

func (r *InvoiceRepo) restore(snap map[uuid.UUID]*shared.Invoice) {
	r.Store = snap
}

// ---------------------------------------------------------------------------
// Rooms

type RoomRepo struct {
	Assignable map[uuid.UUID][]room.Room // keyed by room type
	Statuses   map[string]room.OccupancyStatus
}

func NewRoomRepo() *RoomRepo {
	return &RoomRepo{
		Assignable: make(map[uuid.UUID][]room.Room),
		Statuses:   make(map[string]room.OccupancyStatus),
	}
}

func (r *RoomRepo) AssignableRooms(_ context.Context, roomTypeID uuid.UUID, _, _ time.Time) ([]room.Room, error) {
	return r.Assignable[roomTypeID], nil
}

func (r *RoomRepo) SetOccupancyStatus(_ context.Context, number string, status room.OccupancyStatus) error {
	r.Statuses[number] = status
	return nil
}

func (r *RoomRepo) snapshot() map[string]room.OccupancyStatus {
	snap := make(map[string]room.OccupancyStatus, len(r.Statuses))
	for k, v := range r.Statuses {
		snap[k] = v
	}
	return snap
}

func (r *RoomRepo) restore(snap map[string]room.OccupancyStatus) {
	r.Statuses = snap
}

// ---------------------------------------------------------------------------
// Command reads

type Reads struct {
	RoomTypes  map[uuid.UUID]*shared.RoomTypeSnapshot
	Rates      map[uuid.UUID]int64
	Stays      map[uuid.UUID][]inventory.Stay
	Facilities map[uuid.UUID]*shared.FacilitySnapshot
	Totals     map[uuid.UUID]int64 // service totals by reservation
}

func NewReads() *Reads {
	return &Reads{
		RoomTypes:  make(map[uuid.UUID]*shared.RoomTypeSnapshot),
		Rates:      make(map[uuid.UUID]int64),
		Stays:      make(map[uuid.UUID][]inventory.Stay),
		Facilities: make(map[uuid.UUID]*shared.FacilitySnapshot),
		Totals:     make(map[uuid.UUID]int64),
	}
}

func (r *Reads) RoomTypeByID(_ context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	rt, ok := r.RoomTypes[id]
	if !ok {
		return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return rt, nil
}

func (r *Reads) EffectiveRate(_ context.Context, roomTypeID uuid.UUID, _ time.Time) (int64, error) {
	rate, ok := r.Rates[roomTypeID]
	if !ok {
		if rt, found := r.RoomTypes[roomTypeID]; found {
			return rt.BaseRate, nil
		}
		return 0, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return rate, nil
}

func (r *Reads) ActiveStays(_ context.Context, roomTypeID uuid.UUID, _, _ time.Time) ([]inventory.Stay, error) {
	return r.Stays[roomTypeID], nil
}

func (r *Reads) FacilityByID(_ context.Context, id uuid.UUID) (*shared.FacilitySnapshot, error) {
	f, ok := r.Facilities[id]
	if !ok {
		return nil, infra.WrapRepoErr("facility not found", nil, infra.KindNotFound)
	}
	return f, nil
}

func (r *Reads) ServiceTotal(_ context.Context, reservationID uuid.UUID) (int64, error) {
	return r.Totals[reservationID], nil
}

// ---------------------------------------------------------------------------
// Settings and images

type Settings struct {
	Floats map[string]float64
	Ints   map[string]int
	Int64s map[string]int64
}

// DefaultSettings mirrors the seeded operational values.
func DefaultSettings() *Settings {
	return &Settings{
		Floats: map[string]float64{
			shared.KeyServiceTaxRate:     0.10,
			shared.KeyOverstayPenaltyCap: 0.50,
		},
		Ints: map[string]int{
			shared.KeyCheckInHour:  14,
			shared.KeyCheckOutHour: 12,
		},
		Int64s: map[string]int64{
			shared.KeyOverstayRatePerHour: 50_000,
			shared.KeyMinCheckInDeposit:   300_000,
		},
	}
}

func (s *Settings) Float(_ context.Context, key string) (float64, error) {
	return s.Floats[key], nil
}

func (s *Settings) Int(_ context.Context, key string) (int, error) {
	return s.Ints[key], nil
}

func (s *Settings) Int64(_ context.Context, key string) (int64, error) {
	return s.Int64s[key], nil
}

type ImageStore struct {
	Saved []string // "kind/filename" refs in save order
}

func (s *ImageStore) Save(_ context.Context, kind, filename string, data io.Reader) (string, error) {
	_, _ = io.ReadAll(data)
	ref := kind + "/" + filename
	s.Saved = append(s.Saved, ref)
	return ref, nil
}
