//go:build e2e

package tour_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/tests/common/authtest"
	"tour-booking-api/tests/common/dbtest"
	"tour-booking-api/tests/common/httptest"
	"tour-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	toursURL        = "/api/tours"
	availabilityURL = "/api/tours/%s/availability"
	ticketsURL      = "/api/tours/%s/tickets"
)

type TourSuite struct {
	e2e.SharedSuite
}

func TestTourSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TourSuite))
}

func (s *TourSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func (s *TourSuite) TestListTours() {
	s.Run("Normal case: open tours are listed without authentication", func() {
		t := s.T()

		operatorID := dbtest.CreateTestUser(t, s.DB, "operator@example.com", "operator")
		dbtest.CreateTestTour(t, s.DB, operatorID, "Sunset Vineyard Walk", 20, 8500)
		dbtest.CreateTestTour(t, s.DB, operatorID, "Harvest Day Trip", 12, 12000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, toursURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var tours []*response.TourResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tours)
		require.Len(t, tours, 2)
	})
}

func (s *TourSuite) TestCheckAvailability() {
	s.Run("Normal case: remaining seats reflect sold tickets", func() {
		t := s.T()

		operatorID := dbtest.CreateTestUser(t, s.DB, "operator@example.com", "operator")
		tourID := dbtest.CreateTestTour(t, s.DB, operatorID, "Sunset Vineyard Walk", 20, 8500)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer")
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ticketsURL, tourID),
			request.PurchaseTicketRequest{Quantity: 3}, token)
		require.Equal(t, http.StatusCreated, pw.Code, pw.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, tourID)+"?quantity=4", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var availability response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &availability)
		require.True(t, availability.Available)
		require.Equal(t, int32(17), availability.Remaining)
	})

	s.Run("Error case: unknown tour returns not found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, uuid.New()), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *TourSuite) TestPurchaseTicket() {
	s.Run("Normal case: purchase returns the ticket and remaining seats", func() {
		t := s.T()

		operatorID := dbtest.CreateTestUser(t, s.DB, "operator@example.com", "operator")
		tourID := dbtest.CreateTestTour(t, s.DB, operatorID, "Sunset Vineyard Walk", 20, 8500)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ticketsURL, tourID),
			request.PurchaseTicketRequest{Quantity: 2}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var ticket response.TicketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &ticket)
		require.Equal(t, tourID, ticket.TourID)
		require.Equal(t, int32(2), ticket.Quantity)
		require.Equal(t, int64(17000), ticket.AmountCents)
		require.Equal(t, int32(18), ticket.SeatsRemaining)
	})

	s.Run("Error case: a closed tour cannot be booked", func() {
		t := s.T()

		operatorID := dbtest.CreateTestUser(t, s.DB, "operator@example.com", "operator")
		tourID := dbtest.CreateTestTour(t, s.DB, operatorID, "Sunset Vineyard Walk", 20, 8500)

		_, err := s.DB.Exec(context.Background(), "UPDATE tours SET status = 'closed' WHERE id = $1", tourID)
		require.NoError(t, err)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ticketsURL, tourID),
			request.PurchaseTicketRequest{Quantity: 1}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Tour is not open for booking")
	})

	s.Run("Error case: requesting more seats than remain is rejected", func() {
		t := s.T()

		operatorID := dbtest.CreateTestUser(t, s.DB, "operator@example.com", "operator")
		tourID := dbtest.CreateTestTour(t, s.DB, operatorID, "Sunset Vineyard Walk", 3, 8500)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ticketsURL, tourID),
			request.PurchaseTicketRequest{Quantity: 2}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ticketsURL, tourID),
			request.PurchaseTicketRequest{Quantity: 2}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Concurrency: simultaneous purchases never oversell the tour", func() {
		t := s.T()

		const (
			capacity = 5
			buyers   = 10
		)

		operatorID := dbtest.CreateTestUser(t, s.DB, "operator@example.com", "operator")
		tourID := dbtest.CreateTestTour(t, s.DB, operatorID, "Sunset Vineyard Walk", capacity, 8500)

		tokens := make([]string, buyers)
		for i := range tokens {
			email := fmt.Sprintf("buyer%d@example.com", i)
			tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, email, "customer")
		}

		codes := make([]int, buyers)
		var wg sync.WaitGroup
		for i := range buyers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(ticketsURL, tourID),
					request.PurchaseTicketRequest{Quantity: 1}, tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var sold, rejected int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				sold++
			case http.StatusConflict:
				rejected++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, capacity, sold)
		require.Equal(t, buyers-capacity, rejected)

		var totalTickets int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COALESCE(SUM(quantity), 0) FROM tickets WHERE tour_id = $1 AND status = 'active'", tourID).Scan(&totalTickets)
		require.NoError(t, err)
		require.Equal(t, capacity, totalTickets)
	})
}
