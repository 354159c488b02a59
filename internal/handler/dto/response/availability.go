package response

import (
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
)

type RemarkResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type RoomTypeQuoteResponse struct {
	RoomTypeID     uuid.UUID        `json:"idJenisKamar"`
	Name           string           `json:"nama"`
	Capacity       int              `json:"kapasitas"`
	TotalRooms     int              `json:"jumlahKamar"`
	AvailableRooms int              `json:"kamarTersedia"`
	NightlyRate    int64            `json:"harga"`
	ReferenceRate  int64            `json:"hargaSebelumDiskon"`
	Remarks        []RemarkResponse `json:"remarks,omitempty"`
}

func FromRoomTypeQuotes(quotes []*queries.RoomTypeQuote) []RoomTypeQuoteResponse {
	result := make([]RoomTypeQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		resp := RoomTypeQuoteResponse{
			RoomTypeID:     q.RoomTypeID,
			Name:           q.Name,
			Capacity:       q.Capacity,
			TotalRooms:     q.TotalRooms,
			AvailableRooms: q.AvailableRooms,
			NightlyRate:    q.NightlyRate,
			ReferenceRate:  q.ReferenceRate,
		}
		for _, r := range q.Remarks {
			resp.Remarks = append(resp.Remarks, RemarkResponse{Severity: r.Severity, Message: r.Message})
		}
		result = append(result, resp)
	}
	return result
}
