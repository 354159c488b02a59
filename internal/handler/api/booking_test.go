//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayops/internal/domain/user"
	"stayops/internal/handler/api"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/pkg/errs"
	"stayops/internal/usecase/shared"
	commandsmock "stayops/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	bookings *commandsmock.MockBookingCommands
	stays    *commandsmock.MockStayCommands

	customer user.Principal
	staff    user.Principal
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.bookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.stays = commandsmock.NewMockStayCommands(s.mockCtrl)

	bookingHandler := api.NewBookingHandler(s.bookings)
	stayHandler := api.NewStayHandler(s.stays)

	s.customer = user.Principal{ID: uuid.New(), Kind: user.KindCustomer}
	s.staff = user.Principal{ID: uuid.New(), Kind: user.KindStaff, Role: user.RoleFrontOffice}

	// Stub auth middleware: X-Actor selects the injected principal.
	authStub := func(c *gin.Context) {
		switch c.GetHeader("X-Actor") {
		case "customer":
			c.Set("principal", s.customer)
		case "staff":
			c.Set("principal", s.staff)
		}
		c.Next()
	}

	s.router.POST("/bookings", authStub, bookingHandler.Create)
	s.router.POST("/bookings/:id/cancel", authStub, bookingHandler.Cancel)
	s.router.POST("/bookings/:id/deposit", authStub, bookingHandler.ConfirmGroupPayment)
	s.router.POST("/bookings/:id/check-out", authStub, stayHandler.CheckOut)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url, actor string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set("X-Actor", actor)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) TestCreate() {
	roomTypeID := uuid.New()
	validBody := reqdto.CreateBookingRequest{
		Arrival:   "2026-04-01",
		Departure: "2026-04-04",
		Adults:    2,
		Rooms:     []reqdto.RoomLineRequest{{RoomTypeID: roomTypeID, Quantity: 2, Rate: 500_000}},
	}

	s.Run("creates a booking draft", func() {
		reservationID := uuid.New()
		s.bookings.EXPECT().
			CreateBooking(gomock.Any(), s.customer, gomock.Any()).
			Return(reservationID, nil)

		w := s.perform(http.MethodPost, "/bookings", "customer", validBody)

		s.Equal(http.StatusCreated, w.Code)
		var resp resdto.CreatedResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(reservationID, resp.ID)
	})

	s.Run("rejects unauthenticated requests", func() {
		w := s.perform(http.MethodPost, "/bookings", "", validBody)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects malformed dates", func() {
		body := validBody
		body.Arrival = "01-04-2026"
		w := s.perform(http.MethodPost, "/bookings", "customer", body)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("maps capacity exhaustion to conflict", func() {
		s.bookings.EXPECT().
			CreateBooking(gomock.Any(), s.customer, gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("not enough rooms"), errs.ErrCapacity))

		w := s.perform(http.MethodPost, "/bookings", "customer", validBody)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("maps field errors to bad request", func() {
		s.bookings.EXPECT().
			CreateBooking(gomock.Any(), s.customer, gomock.Any()).
			Return(uuid.Nil, errs.FieldError("jumlah_kamar", "at most 5 rooms per booking"))

		w := s.perform(http.MethodPost, "/bookings", "customer", validBody)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	reservationID := uuid.New()

	s.Run("returns the refund outcome message", func() {
		s.bookings.EXPECT().
			Cancel(gomock.Any(), s.customer, reservationID).
			Return("fully refundable", nil)

		w := s.perform(http.MethodPost, "/bookings/"+reservationID.String()+"/cancel", "customer", nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.MessageResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("fully refundable", resp.Message)
	})

	s.Run("maps state conflicts to 409", func() {
		s.bookings.EXPECT().
			Cancel(gomock.Any(), s.customer, reservationID).
			Return("", errs.Mark(errs.New("already checked in"), errs.ErrStateConflict))

		w := s.perform(http.MethodPost, "/bookings/"+reservationID.String()+"/cancel", "customer", nil)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("rejects a malformed id", func() {
		w := s.perform(http.MethodPost, "/bookings/not-a-uuid/cancel", "customer", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestConfirmGroupPayment() {
	reservationID := uuid.New()

	s.Run("records the deposit", func() {
		s.bookings.EXPECT().
			ConfirmGroupPayment(gomock.Any(), s.staff, reservationID, int64(1_500_000)).
			Return(nil)

		w := s.perform(http.MethodPost, "/bookings/"+reservationID.String()+"/deposit", "staff",
			reqdto.GroupPaymentRequest{Deposit: 1_500_000})
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("rejects a zero deposit at binding", func() {
		w := s.perform(http.MethodPost, "/bookings/"+reservationID.String()+"/deposit", "staff",
			map[string]any{"jumlah_dp": 0})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCheckOut() {
	reservationID := uuid.New()

	s.Run("settles and returns the invoice", func() {
		invoice := &shared.Invoice{
			ID:            uuid.New(),
			Number:        "INV010426-001",
			ReservationID: reservationID,
			RoomTotal:     3_000_000,
			ServiceTotal:  200_000,
			ServiceTax:    20_000,
			GrandTotal:    3_220_000,
			AmountPaid:    3_220_000,
		}
		s.stays.EXPECT().
			CheckOut(gomock.Any(), s.staff, reservationID, int64(720_000)).
			Return(invoice, nil)

		w := s.perform(http.MethodPost, "/bookings/"+reservationID.String()+"/check-out", "staff",
			reqdto.CheckOutRequest{AmountPaid: 720_000})

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.InvoiceResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("INV010426-001", resp.Number)
		s.Equal(int64(3_220_000), resp.GrandTotal)
	})

	s.Run("maps a mismatched settlement amount to 400", func() {
		s.stays.EXPECT().
			CheckOut(gomock.Any(), s.staff, reservationID, int64(100)).
			Return(nil, errs.FieldError("total_dibayar", "amount does not match the balance due"))

		w := s.perform(http.MethodPost, "/bookings/"+reservationID.String()+"/check-out", "staff",
			reqdto.CheckOutRequest{AmountPaid: 100})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
