//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayops/internal/domain/reservation"
	"stayops/internal/domain/user"
	"stayops/internal/handler/api"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/usecase/queries"
	queriesmock "stayops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	queries  *queriesmock.MockAvailabilityQueries
	staff    user.Principal
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.queries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.staff = user.Principal{ID: uuid.New(), Kind: user.KindStaff, Role: user.RoleSales}

	handler := api.NewAvailabilityHandler(s.queries)
	authStub := func(c *gin.Context) {
		if c.GetHeader("X-Actor") == "staff" {
			c.Set("principal", s.staff)
		}
		c.Next()
	}
	s.router.GET("/availability", authStub, handler.Search)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

const searchURL = "/availability?arrival_date=2026-04-01&departure_date=2026-04-03&jumlah_kamar=2&jumlah_dewasa=3&jumlah_anak=1"

func (s *AvailabilityHandlerTestSuite) TestSearch() {
	s.Run("returns quotes with remarks", func() {
		quote := &queries.RoomTypeQuote{
			RoomTypeID:     uuid.New(),
			Name:           "Deluxe",
			Capacity:       2,
			TotalRooms:     10,
			AvailableRooms: 1,
			NightlyRate:    500_000,
			ReferenceRate:  535_000,
			Remarks: []queries.Remark{
				{Severity: queries.SeverityWarning, Message: "only 1 available"},
			},
		}
		s.queries.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req queries.AvailabilitySearch) ([]*queries.RoomTypeQuote, error) {
				s.Equal(reservation.ChannelPersonal, req.Channel)
				s.Equal(2, req.Rooms)
				return []*queries.RoomTypeQuote{quote}, nil
			})

		w := s.perform(searchURL, "")

		s.Equal(http.StatusOK, w.Code)
		var resp []resdto.RoomTypeQuoteResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Require().Len(resp, 1)
		s.Equal("Deluxe", resp[0].Name)
		s.Require().Len(resp[0].Remarks, 1)
		s.Equal("only 1 available", resp[0].Remarks[0].Message)
	})

	s.Run("staff searches quote against group caps", func() {
		s.queries.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req queries.AvailabilitySearch) ([]*queries.RoomTypeQuote, error) {
				s.Equal(reservation.ChannelGroup, req.Channel)
				return nil, nil
			})

		w := s.perform(searchURL, "staff")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects missing required params", func() {
		w := s.perform("/availability?arrival_date=2026-04-01", "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("rejects malformed dates", func() {
		w := s.perform("/availability?arrival_date=bad&departure_date=2026-04-03&jumlah_kamar=1&jumlah_dewasa=1", "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AvailabilityHandlerTestSuite) perform(url, actor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if actor != "" {
		req.Header.Set("X-Actor", actor)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
