package api

import (
	"net/http"
	"time"

	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/handler/middleware"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	q queries.ReservationQueries
}

func NewReservationHandler(q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{q: q}
}

// @Summary Get reservation
// @Description Get a reservation by ID; customers only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the authenticated customer's reservations
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingPrincipal, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByCustomer(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}

// @Summary Arrivals worklist
// @Description Paid reservations due to arrive on the given date (default today)
// @Tags front-desk
// @Produce json
// @Security BearerAuth
// @Param date query string false "Arrival date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Router /front-desk/arrivals [get]
func (h *ReservationHandler) Arrivals(c *gin.Context) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if v := c.Query("date"); v != "" {
		parsed, err := reqdto.ParseDate("date", v)
		if err != nil {
			respondError(c, err)
			return
		}
		date = parsed
	}
	items, err := h.q.ListArrivals(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}

// @Summary In-house worklist
// @Description Reservations currently checked in
// @Tags front-desk
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Router /front-desk/in-house [get]
func (h *ReservationHandler) InHouse(c *gin.Context) {
	items, err := h.q.ListInHouse(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}
