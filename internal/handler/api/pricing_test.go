//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tour-booking-api/internal/domain/pricing"
	"tour-booking-api/internal/handler/api"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/queries"
	"tour-booking-api/tests/common/builder"
	"tour-booking-api/tests/common/httptest"
	"tour-booking-api/tests/common/testutil"
	queriesmock "tour-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries)

	s.router.POST("/pricing/quote", s.handler.Quote)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestQuote() {
	url := "/pricing/quote"
	reqBody := builder.NewBookingBuilder().BuildQuoteRequestDTO()

	sampleQuote := &pricing.Quote{
		Category:        "wine_tours",
		Currency:        "USD",
		DayType:         pricing.DayTypeWeekend,
		RateTier:        "standard",
		RequestedHours:  4,
		BillableHours:   4,
		HoursLabel:      "4hr",
		HourlyRateCents: 25000,
		SubtotalCents:   100000,
		TaxCents:        10000,
		TotalCents:      110000,
		DepositCents:    22000,
	}

	s.Run("success: returns the full breakdown", func() {
		s.mockQueries.EXPECT().
			CalculateQuote(gomock.Any(), gomock.Any()).
			Return(sampleQuote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("weekend", response.DayType)
		s.Equal(int64(110000), response.TotalCents)
		s.Equal("4hr", response.HoursLabel)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing category", mutate: testutil.Field("category_key", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "malformed date", mutate: testutil.Field("date", "10/03/2026")},
			{name: "zero duration", mutate: testutil.Field("duration_hours", 0)},
			{name: "zero party size", mutate: testutil.Field("party_size", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps pricing errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown category",
				queriesError:   infra.WrapRepoErr("rate config not found", errors.New("no rows"), infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rate configuration not found",
			},
			{
				name:           "no matching tier",
				queriesError:   fmt.Errorf("%w: party size 20 in category wine_tours", pricing.ErrNoMatchingTier),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No rate tier matches the party size",
			},
			{
				name:           "malformed rate config stays opaque",
				queriesError:   errs.ErrRateConfigMalformed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "duration out of range",
				queriesError:   pricing.ErrInvalidDuration,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "duration hours out of range",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().
					CalculateQuote(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("passes the parsed date through to the query", func() {
		s.mockQueries.EXPECT().
			CalculateQuote(gomock.Any(), gomock.Cond(func(req queries.QuoteRequest) bool {
				return req.CategoryKey == "wine_tours" && req.Date.Format("2006-01-02") == "2026-10-03"
			})).
			Return(sampleQuote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
