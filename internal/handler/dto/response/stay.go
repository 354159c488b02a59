package response

import (
	"time"

	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Number          string    `json:"nomorInvoice"`
	ReservationID   uuid.UUID `json:"idReservasi"`
	RoomTotal       int64     `json:"totalKamar"`
	ServiceTotal    int64     `json:"totalLayanan"`
	ServiceTax      int64     `json:"pajakLayanan"`
	OverstayPenalty int64     `json:"dendaOverstay"`
	GrandTotal      int64     `json:"grandTotal"`
	AmountPaid      int64     `json:"totalDibayar"`
	IssuedAt        time.Time `json:"issuedAt"`
}

func FromInvoice(inv *shared.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		ReservationID:   inv.ReservationID,
		RoomTotal:       inv.RoomTotal,
		ServiceTotal:    inv.ServiceTotal,
		ServiceTax:      inv.ServiceTax,
		OverstayPenalty: inv.OverstayPenalty,
		GrandTotal:      inv.GrandTotal,
		AmountPaid:      inv.AmountPaid,
		IssuedAt:        inv.IssuedAt,
	}
}
