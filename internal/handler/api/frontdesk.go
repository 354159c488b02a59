package api

import (
	"net/http"

	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FrontDeskHandler struct {
	facilities queries.FacilityQueries
	board      queries.RoomBoardQueries
}

func NewFrontDeskHandler(facilities queries.FacilityQueries, board queries.RoomBoardQueries) *FrontDeskHandler {
	return &FrontDeskHandler{facilities: facilities, board: board}
}

// @Summary List facilities
// @Description List orderable facilities with their prices
// @Tags facilities
// @Produce json
// @Success 200 {array} queries.FacilityView
// @Router /facilities [get]
func (h *FrontDeskHandler) ListFacilities(c *gin.Context) {
	items, err := h.facilities.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Room board
// @Description Per-room occupancy board for the front desk
// @Tags front-desk
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RoomBoardEntry
// @Router /front-desk/rooms [get]
func (h *FrontDeskHandler) RoomBoard(c *gin.Context) {
	entries, err := h.board.Board(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
