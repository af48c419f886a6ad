//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tour-booking-api/internal/handler/api"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"
	"tour-booking-api/tests/common/builder"
	"tour-booking-api/tests/common/httptest"
	commandsmock "tour-booking-api/tests/mock/commands"
	queriesmock "tour-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TourHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockTourQueries
	mockCommands *commandsmock.MockTicketCommands
	handler      *api.TourHandler
	userID       uuid.UUID
}

func (s *TourHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTourQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockTicketCommands(s.mockCtrl)
	s.handler = api.NewTourHandler(s.mockQueries, s.mockCommands)
	s.userID = uuid.New()

	s.router.GET("/tours", s.handler.ListTours)
	s.router.GET("/tours/:id/availability", s.handler.CheckAvailability)
	s.router.POST("/tours/:id/tickets", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		s.handler.PurchaseTicket(c)
	})
}

func (s *TourHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTourHandlerSuite(t *testing.T) {
	suite.Run(t, new(TourHandlerTestSuite))
}

func (s *TourHandlerTestSuite) TestListTours() {
	s.Run("success: returns open tours", func() {
		views := []*queries.TourView{
			builder.NewTourBuilder().BuildView(),
			builder.NewTourBuilder().WithTitle("Harbor Lights Cruise").BuildView(),
		}
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), 50).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours", nil, "")

		var response []resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: honors the limit query", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), 5).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours?limit=5", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *TourHandlerTestSuite) TestCheckAvailability() {
	tourID := uuid.New()
	url := "/tours/" + tourID.String() + "/availability"

	s.Run("success: reports remaining seats", func() {
		view := builder.NewTourBuilder().BuildAvailabilityView(tourID, 12)
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), tourID, int32(1)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal(int32(12), response.Remaining)
	})

	s.Run("success: passes an explicit quantity", func() {
		view := builder.NewTourBuilder().BuildAvailabilityView(tourID, 2)
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), tourID, int32(4)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?quantity=4", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a non-positive quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?quantity=0", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Quantity must be a positive integer")
	})

	s.Run("error: 400 on a malformed tour ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours/not-a-uuid/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid tour ID")
	})

	s.Run("error: 404 when the tour does not exist", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), tourID, int32(1)).
			Return(nil, infra.WrapRepoErr("tour not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour not found")
	})
}

func (s *TourHandlerTestSuite) TestPurchaseTicket() {
	tourID := uuid.New()
	url := "/tours/" + tourID.String() + "/tickets"
	reqBody := builder.NewTourBuilder().BuildPurchaseRequestDTO(2)

	s.Run("success: returns 201 with the ticket", func() {
		s.mockCommands.EXPECT().
			PurchaseTicket(gomock.Any(), commands.PurchaseTicketParams{TourID: tourID, Quantity: 2}, s.userID).
			Return(&commands.PurchaseTicketResult{
				TicketID:       uuid.New(),
				TourID:         tourID,
				Quantity:       2,
				AmountCents:    17000,
				SeatsRemaining: 16,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(tourID, response.TourID)
		s.Equal(int32(16), response.SeatsRemaining)
		s.Equal(int64(17000), response.AmountCents)
	})

	s.Run("error: 400 on a zero quantity body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			builder.NewTourBuilder().BuildPurchaseRequestDTO(0), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps purchase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "tour not found",
				commandsError:  errs.ErrTourNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Tour not found",
			},
			{
				name:           "tour not open",
				commandsError:  commands.ErrTourNotOpen,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Tour is not open for booking",
			},
			{
				name:           "sold out",
				commandsError:  errs.ErrTourSoldOut,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Tour is sold out",
			},
			{
				name:           "not enough seats",
				commandsError:  errs.ErrInsufficientCapacity,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Not enough seats remaining",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					PurchaseTicket(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
