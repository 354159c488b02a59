package api

import (
	"net/http"
	"strconv"

	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type StayHandler struct {
	cmds commands.StayCommands
}

func NewStayHandler(cmds commands.StayCommands) *StayHandler {
	return &StayHandler{cmds: cmds}
}

// @Summary Check in
// @Description Assign physical rooms, collect the deposit and the identity document
// @Tags stays
// @Accept multipart/form-data
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param deposit formData int true "Check-in deposit"
// @Param assignments formData string true "JSON array of room assignments"
// @Param identity_image formData file true "Identity document image"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/check-in [post]
func (h *StayHandler) CheckIn(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}

	deposit, err := strconv.ParseInt(c.PostForm("deposit"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "deposit must be an integer amount", nil)
		return
	}
	assignments, err := reqdto.ParseAssignments(c.PostForm("assignments"))
	if err != nil {
		respondError(c, err)
		return
	}
	header, err := c.FormFile("identity_image")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "identity_image file is required", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot read identity_image", nil)
		return
	}
	defer file.Close()

	input := commands.CheckInInput{
		Assignments:   assignments,
		Deposit:       deposit,
		IdentityImage: commands.ImageUpload{Filename: header.Filename, Data: file},
	}
	if err := h.cmds.CheckIn(c.Request.Context(), actor, id, input); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Order services
// @Description Add facility orders to an in-house stay
// @Tags stays
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ServiceOrdersRequest true "Service orders"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/services [post]
func (h *StayHandler) OrderServices(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	var req reqdto.ServiceOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.OrderServices(c.Request.Context(), actor, id, req.ToOrders()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Extend stay
// @Description Push the departure date out for an in-house stay
// @Tags stays
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ExtendStayRequest true "Extra nights"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/extend [post]
func (h *StayHandler) Extend(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	var req reqdto.ExtendStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Extend(c.Request.Context(), actor, id, req.Nights); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check out
// @Description Settle the stay and issue the invoice
// @Tags stays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckOutRequest true "Amount paid"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/check-out [post]
func (h *StayHandler) CheckOut(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	var req reqdto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	invoice, err := h.cmds.CheckOut(c.Request.Context(), actor, id, req.AmountPaid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(invoice))
}
