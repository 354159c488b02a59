package api

import (
	"net/http"

	"stayops/internal/domain/reservation"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/handler/middleware"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Search availability
// @Description Quote availability and nightly rates per room type for a stay
// @Tags availability
// @Produce json
// @Param arrival_date query string true "Arrival date (YYYY-MM-DD)"
// @Param departure_date query string true "Departure date (YYYY-MM-DD)"
// @Param jumlah_kamar query int true "Rooms requested"
// @Param jumlah_dewasa query int true "Adults"
// @Param jumlah_anak query int false "Children"
// @Success 200 {array} resdto.RoomTypeQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	var req reqdto.AvailabilitySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	arrival, departure, err := req.Dates()
	if err != nil {
		respondError(c, err)
		return
	}

	// Anonymous and customer searches quote against the self-service caps;
	// an authenticated staff member searches with the group-booking caps.
	channel := reservation.ChannelPersonal
	if p, ok := middleware.GetPrincipal(c); ok && p.IsStaff() {
		channel = reservation.ChannelGroup
	}

	quotes, err := h.q.Search(c.Request.Context(), queries.AvailabilitySearch{
		Channel:   channel,
		Arrival:   arrival,
		Departure: departure,
		Rooms:     req.Rooms,
		Adults:    req.Adults,
		Children:  req.Children,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeQuotes(quotes))
}
