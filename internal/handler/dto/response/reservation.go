package response

import (
	"time"

	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID             `json:"id"`
	BookingCode    *string               `json:"kodeBooking,omitempty"`
	Channel        string                `json:"channel"`
	Status         string                `json:"status"`
	CustomerID     uuid.UUID             `json:"idCustomer"`
	CustomerName   string                `json:"namaCustomer"`
	Arrival        time.Time             `json:"arrivalDate"`
	Departure      time.Time             `json:"departureDate"`
	Nights         int                   `json:"jumlahMalam"`
	Adults         int                   `json:"jumlahDewasa"`
	Children       int                   `json:"jumlahAnak"`
	SpecialRequest *string               `json:"permintaanKhusus,omitempty"`
	Total          int64                 `json:"total"`
	DepositDP      int64                 `json:"jumlahDP"`
	StageDeadline  *time.Time            `json:"deadline,omitempty"`
	Rooms          []RoomLineResponse    `json:"kamar"`
	Services       []ServiceLineResponse `json:"layanan,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type RoomLineResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomTypeID   uuid.UUID `json:"idJenisKamar"`
	RoomTypeName string    `json:"jenisKamar"`
	RoomNumber   *string   `json:"nomorKamar,omitempty"`
	NightlyRate  int64     `json:"hargaPerMalam"`
}

type ServiceLineResponse struct {
	FacilityID uuid.UUID `json:"idFasilitas"`
	Name       string    `json:"nama"`
	Quantity   int       `json:"jumlah"`
	UnitPrice  int64     `json:"hargaSatuan"`
	Subtotal   int64     `json:"subtotal"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingCode *string   `json:"kodeBooking,omitempty"`
	Channel     string    `json:"channel"`
	Status      string    `json:"status"`
	Arrival     time.Time `json:"arrivalDate"`
	Departure   time.Time `json:"departureDate"`
	RoomCount   int       `json:"jumlahKamar"`
	Total       int64     `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{
		ID:             view.ID,
		BookingCode:    view.BookingCode,
		Channel:        view.Channel,
		Status:         view.Status,
		CustomerID:     view.CustomerID,
		CustomerName:   view.CustomerName,
		Arrival:        view.Arrival,
		Departure:      view.Departure,
		Nights:         view.Nights,
		Adults:         view.Adults,
		Children:       view.Children,
		SpecialRequest: view.SpecialRequest,
		Total:          view.Total,
		DepositDP:      view.DepositDP,
		StageDeadline:  view.StageDeadline,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
	for _, room := range view.Rooms {
		resp.Rooms = append(resp.Rooms, RoomLineResponse{
			ID:           room.ID,
			RoomTypeID:   room.RoomTypeID,
			RoomTypeName: room.RoomTypeName,
			RoomNumber:   room.RoomNumber,
			NightlyRate:  room.NightlyRate,
		})
	}
	for _, sv := range view.Services {
		resp.Services = append(resp.Services, ServiceLineResponse{
			FacilityID: sv.FacilityID,
			Name:       sv.Name,
			Quantity:   sv.Quantity,
			UnitPrice:  sv.UnitPrice,
			Subtotal:   sv.Subtotal,
		})
	}
	return resp
}

func FromReservationListItems(items []*queries.ReservationListItem) []ReservationListResponse {
	result := make([]ReservationListResponse, 0, len(items))
	for _, item := range items {
		result = append(result, ReservationListResponse{
			ID:          item.ID,
			BookingCode: item.BookingCode,
			Channel:     item.Channel,
			Status:      item.Status,
			Arrival:     item.Arrival,
			Departure:   item.Departure,
			RoomCount:   item.RoomCount,
			Total:       item.Total,
			CreatedAt:   item.CreatedAt,
		})
	}
	return result
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookingCodeResponse struct {
	BookingCode string `json:"kodeBooking"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
