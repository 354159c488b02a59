package request

import (
	"stayops/internal/usecase/commands"

	"github.com/google/uuid"
)

type RoomLineRequest struct {
	RoomTypeID uuid.UUID `json:"id_jenis_kamar" binding:"required"`
	Quantity   int       `json:"jumlah" binding:"required,min=1"`
	Rate       int64     `json:"harga" binding:"required,min=0"`
}

type CreateBookingRequest struct {
	// CustomerID identifies the guest on staff-assisted group bookings;
	// self-service bookings ignore it.
	CustomerID *uuid.UUID        `json:"id_customer,omitempty"`
	Arrival    string            `json:"arrival_date" binding:"required"`
	Departure  string            `json:"departure_date" binding:"required"`
	Adults     int               `json:"jumlah_dewasa" binding:"required,min=1"`
	Children   int               `json:"jumlah_anak"`
	Rooms      []RoomLineRequest `json:"kamar" binding:"required,min=1,dive"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	arrival, err := ParseDate("arrival_date", r.Arrival)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	departure, err := ParseDate("departure_date", r.Departure)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	in := commands.CreateBookingInput{
		Arrival:   arrival,
		Departure: departure,
		Adults:    r.Adults,
		Children:  r.Children,
	}
	if r.CustomerID != nil {
		in.CustomerID = *r.CustomerID
	}
	for _, room := range r.Rooms {
		in.Rooms = append(in.Rooms, commands.RoomRequest{
			RoomTypeID: room.RoomTypeID,
			Quantity:   room.Quantity,
			LockedRate: room.Rate,
		})
	}
	return in, nil
}

type ServiceOrderRequest struct {
	FacilityID uuid.UUID `json:"id_fasilitas" binding:"required"`
	Quantity   int       `json:"jumlah" binding:"required,min=1"`
}

type StayDetailsRequest struct {
	SpecialRequest string                `json:"permintaan_khusus"`
	Services       []ServiceOrderRequest `json:"layanan,omitempty" binding:"omitempty,dive"`
}

func (r StayDetailsRequest) ToInput() commands.StayDetailsInput {
	in := commands.StayDetailsInput{SpecialRequest: r.SpecialRequest}
	for _, s := range r.Services {
		in.Services = append(in.Services, commands.ServiceOrder{
			FacilityID: s.FacilityID,
			Quantity:   s.Quantity,
		})
	}
	return in
}

type GroupPaymentRequest struct {
	Deposit int64 `json:"jumlah_dp" binding:"required,min=1"`
}
