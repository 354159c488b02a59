package api

import (
	"net/http"

	"stayops/internal/domain/user"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/handler/middleware"
	"stayops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Create booking
// @Description Start a reservation draft with locked room rates
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingPrincipal, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := h.cmds.CreateBooking(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Submit stay details
// @Description Record the special request and ordered services for a draft
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.StayDetailsRequest true "Stay details"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/details [put]
func (h *BookingHandler) SubmitDetails(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	var req reqdto.StayDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SubmitStayDetails(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Assign booking code
// @Description Issue the human-readable booking code for a draft
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.BookingCodeResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/code [post]
func (h *BookingHandler) AssignCode(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	code, err := h.cmds.AssignBookingCode(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingCodeResponse{BookingCode: code})
}

// @Summary Confirm personal payment
// @Description Upload the transfer proof and confirm full payment
// @Tags bookings
// @Accept multipart/form-data
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param payment_proof formData file true "Transfer proof image"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment [post]
func (h *BookingHandler) ConfirmPersonalPayment(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	header, err := c.FormFile("payment_proof")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "payment_proof file is required", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot read payment_proof", nil)
		return
	}
	defer file.Close()

	proof := commands.ImageUpload{Filename: header.Filename, Data: file}
	if err := h.cmds.ConfirmPersonalPayment(c.Request.Context(), actor, id, proof); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm group deposit
// @Description Record the down payment for a staff-assisted group booking
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.GroupPaymentRequest true "Deposit amount"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/deposit [post]
func (h *BookingHandler) ConfirmGroupPayment(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	var req reqdto.GroupPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ConfirmGroupPayment(c.Request.Context(), actor, id, req.Deposit); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Description Cancel a reservation; the response states the refund outcome
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, id, ok := bindActorAndID(c)
	if !ok {
		return
	}
	message, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: message})
}

var errMissingPrincipal = errMissing("principal missing from context")

type errMissing string

func (e errMissing) Error() string { return string(e) }

// bindActorAndID pulls the authenticated principal and the :id path
// parameter, aborting with the right status when either is absent.
func bindActorAndID(c *gin.Context) (actor user.Principal, id uuid.UUID, ok bool) {
	actor, found := middleware.GetPrincipal(c)
	if !found {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingPrincipal, "Unauthorized", nil)
		return actor, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return actor, uuid.Nil, false
	}
	return actor, id, true
}
