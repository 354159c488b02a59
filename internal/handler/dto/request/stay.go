package request

import (
	"encoding/json"

	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/commands"

	"github.com/google/uuid"
)

type RoomAssignmentRequest struct {
	LineID     uuid.UUID  `json:"id_line" binding:"required"`
	RoomNumber string     `json:"nomor_kamar" binding:"required"`
	RoomTypeID *uuid.UUID `json:"id_jenis_kamar,omitempty"`
}

// ParseAssignments decodes the multipart "assignments" field, a JSON array
// sent alongside the identity-document upload.
func ParseAssignments(raw string) ([]commands.RoomAssignment, error) {
	if raw == "" {
		return nil, errs.FieldError("assignments", "room assignments are required")
	}
	var reqs []RoomAssignmentRequest
	if err := json.Unmarshal([]byte(raw), &reqs); err != nil {
		return nil, errs.FieldError("assignments", "must be a JSON array of room assignments")
	}

	assignments := make([]commands.RoomAssignment, 0, len(reqs))
	for _, r := range reqs {
		if r.LineID == uuid.Nil || r.RoomNumber == "" {
			return nil, errs.FieldError("assignments", "each assignment needs id_line and nomor_kamar")
		}
		assignments = append(assignments, commands.RoomAssignment{
			LineID:     r.LineID,
			RoomNumber: r.RoomNumber,
			RoomTypeID: r.RoomTypeID,
		})
	}
	return assignments, nil
}

type ServiceOrdersRequest struct {
	Services []ServiceOrderRequest `json:"layanan" binding:"required,min=1,dive"`
}

func (r ServiceOrdersRequest) ToOrders() []commands.ServiceOrder {
	orders := make([]commands.ServiceOrder, 0, len(r.Services))
	for _, s := range r.Services {
		orders = append(orders, commands.ServiceOrder{
			FacilityID: s.FacilityID,
			Quantity:   s.Quantity,
		})
	}
	return orders
}

type ExtendStayRequest struct {
	Nights int `json:"jumlah_malam" binding:"required,min=1,max=7"`
}

type CheckOutRequest struct {
	AmountPaid int64 `json:"total_dibayar"`
}
