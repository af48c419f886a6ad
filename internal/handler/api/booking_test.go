//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/handler/api"
	resdto "tour-booking-api/internal/handler/dto/response"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authenticated-customer middleware behavior
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}
	s.router.POST("/bookings", authed, s.handler.CreateBooking)
	s.router.GET("/bookings", authed, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authed, s.handler.GetBooking)
	s.router.POST("/bookings/:id/recalculate", authed, s.handler.RecalculateBooking)
	s.router.POST("/bookings/:id/deposit-intent", authed, s.handler.CreateDepositIntent)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	idempotencyKey := uuid.New()
	headers := map[string]string{"Idempotency-Key": idempotencyKey.String()}

	s.Run("success: returns 201 Created for a fresh booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.userID, idempotencyKey).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: false}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", headers)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(int64(110000), response.TotalCents)
	})

	s.Run("success: returns 200 OK when the key replays a completed booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.userID, idempotencyKey).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", headers)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when the Idempotency-Key header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when the Idempotency-Key is not a UUID", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed tour date", func() {
		bad := reqBody
		bad.TourDate = "03-10-2026"
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, bad, "", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid tour date format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "rate config not found",
				commandsError:  errs.ErrRateConfigNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rate configuration not found",
			},
			{
				name:           "same key different parameters",
				commandsError:  commands.ErrDuplicateRequest,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Duplicate request with different parameters",
			},
			{
				name:           "key still processing",
				commandsError:  errs.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Request is currently being processed",
			},
			{
				name:           "tour date in the past",
				commandsError:  booking.ErrDateInPast,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Tour date cannot be in the past",
			},
			{
				name:           "no matching rate tier",
				commandsError:  errs.ErrNoMatchingTier,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No rate tier matches the party size",
			},
			{
				name:           "malformed rate config stays opaque",
				commandsError:  errs.ErrRateConfigMalformed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
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
					CreateBooking(gomock.Any(), gomock.Any(), s.userID, idempotencyKey).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, false, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, false, view.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on a malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns the user's bookings", func() {
		first := builder.NewBookingBuilder().BuildListItem()
		second := builder.NewBookingBuilder().AsCancelled().BuildListItem()
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, 50).
			Return([]*queries.BookingListItem{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *BookingHandlerTestSuite) TestRecalculateBooking() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String() + "/recalculate"

	s.Run("success: returns the repriced booking", func() {
		s.mockCommands.EXPECT().
			RecalculateBooking(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when the booking is cancelled", func() {
		s.mockCommands.EXPECT().
			RecalculateBooking(gomock.Any(), view.ID).
			Return(nil, booking.ErrBookingCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cancelled bookings cannot be repriced")
	})
}

func (s *BookingHandlerTestSuite) TestCreateDepositIntent() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String() + "/deposit-intent"

	s.Run("success: returns 201 with the client secret", func() {
		s.mockCommands.EXPECT().
			CreateDepositIntent(gomock.Any(), view.ID, s.userID, false).
			Return(&commands.PaymentIntent{
				ID:           "pi_123",
				ClientSecret: "pi_123_secret",
				AmountCents:  22000,
				Currency:     "usd",
				Status:       "requires_payment_method",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.DepositIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("pi_123", response.PaymentIntentID)
		s.Equal(int64(22000), response.AmountCents)
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockCommands.EXPECT().
			CreateDepositIntent(gomock.Any(), view.ID, s.userID, false).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
